// Package taghelper defines the contract between the host HTML pipeline and
// the helpers that rewrite matched elements. A helper is bound to an element
// name plus the attributes that must be present, runs in Order() sequence, and
// mutates an Output accumulator instead of writing markup directly. Helpers
// append to PreContent/PostContent so content produced by other helpers (or
// authored statically in the template) is preserved.
package taghelper

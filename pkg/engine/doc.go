// Package engine is the host side of the tag helper contract. It streams an
// HTML document through the x/net/html tokenizer, hands every element bound in
// a taghelper.Registry to its helpers in execution order, and writes the
// rewritten element back in place. Unbound markup is copied through untouched.
// Optionally the document is rendered from a pongo2 template first and
// sanitised with a bluemonday policy last.
package engine

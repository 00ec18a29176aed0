// Package template defines the template seam the engine renders documents
// through before tag helpers run. Adapters live in subpackages.
package template

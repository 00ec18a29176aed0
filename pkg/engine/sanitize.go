package engine

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	defaultPolicyOnce sync.Once
	defaultPolicy     *bluemonday.Policy
)

// DefaultPolicy returns a UGC policy extended with the form elements helpers
// emit (datalist, option, input, label) and the document skeleton (html, head,
// title, meta, body) so whole pages survive. The doctype is always dropped;
// bluemonday has no safe way to pass it through.
func DefaultPolicy() *bluemonday.Policy {
	defaultPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("html", "head", "title", "body")
		policy.AllowAttrs("charset").OnElements("meta")
		policy.AllowElements("datalist", "option", "input", "label")

		policy.AllowAttrs("id").OnElements("datalist")
		policy.AllowAttrs("value", "label", "disabled").OnElements("option")
		policy.AllowAttrs(
			"id", "name", "type", "value", "list", "placeholder", "autocomplete",
		).OnElements("input")
		policy.AllowAttrs("for").OnElements("label")

		defaultPolicy = policy
	})
	return defaultPolicy
}

package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	contentPolicyOnce sync.Once
	contentPolicy     *bluemonday.Policy
)

// defaultPolicy allows user generated markup plus the structural elements
// layouts are commonly filled with.
func defaultPolicy() *bluemonday.Policy {
	contentPolicyOnce.Do(func() {
		policy := bluemonday.UGCPolicy()
		policy.AllowElements("header", "footer", "nav", "main", "aside", "section", "article")
		policy.AllowNoAttrs().OnElements("header", "footer", "nav", "main", "aside", "section", "article")
		policy.AllowAttrs("class").Globally()
		policy.AllowAttrs("type", "placeholder", "name", "value").OnElements("input", "button")
		policy.AllowElements("input", "button")
		contentPolicy = policy
	})
	return contentPolicy
}

func sanitizeContent(policy *bluemonday.Policy, raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	if policy == nil {
		return raw
	}
	return policy.Sanitize(raw)
}

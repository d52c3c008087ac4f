package normalizer

import (
	"regexp"
	"strings"
)

// transientSignatures are infrastructure-error substrings that show up in
// tool return text when the backend's own retry chatter leaks into the event
// stream. Returns matching any of them are suppressed entirely: the agent's
// fallback text is trusted instead.
var transientSignatures = []string{
	"connection refused",
	"connection reset",
	"connection aborted",
	"timed out",
	"timeout",
	"errno",
	"max retries exceeded",
	"temporary failure",
	"broken pipe",
	"no route to host",
}

// IsTransientNoise reports whether a tool return text looks like backend
// infrastructure noise rather than a user-relevant fact.
func IsTransientNoise(text string) bool {
	lower := strings.ToLower(text)
	for _, sig := range transientSignatures {
		if strings.Contains(lower, sig) {
			return true
		}
	}
	return false
}

var (
	// "Showing 5 of 12 results (page 0/2):" style summary headers.
	resultHeaderRe = regexp.MustCompile(`(?mi)^showing \d+ of \d+ results.*$`)
	// "Line 42: ..." markers emitted by file search tools.
	lineMarkerRe = regexp.MustCompile(`(?m)^Line (\d+):\s*`)
)

// CleanToolReturn strips search-summary boilerplate and normalizes
// line-number markers, leaving the quoted document text itself.
func CleanToolReturn(text string) string {
	cleaned := resultHeaderRe.ReplaceAllString(text, "")
	cleaned = lineMarkerRe.ReplaceAllString(cleaned, "(line $1) ")
	return strings.TrimSpace(cleaned)
}

package extract

import "strings"

// StripCodeFence removes a markdown code fence (```json ... ```) wrapping raw.
// Text without a leading fence is only trimmed.
func StripCodeFence(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "```") {
		return raw
	}

	raw = strings.TrimPrefix(raw, "```")
	if nl := strings.IndexByte(raw, '\n'); nl != -1 {
		// drop the info string, e.g. "json"
		if !strings.ContainsAny(raw[:nl], "[{") {
			raw = raw[nl+1:]
		}
	}
	if idx := strings.LastIndex(raw, "```"); idx != -1 {
		raw = raw[:idx]
	}

	return strings.TrimSpace(strings.Trim(raw, "`"))
}

package audit

import "strings"

// RedactedValue replaces the value of every redacted key.
const RedactedValue = "[REDACTED]"

var alwaysRedacted = []string{"password"}

// Redact returns a copy of payload with every listed key replaced by RedactedValue. Keys match
// case-insensitively at any depth, including inside arrays. The input is not modified.
func Redact(payload map[string]any, fields []string) map[string]any {
	if payload == nil {
		return nil
	}
	keys := make(map[string]struct{}, len(fields)+len(alwaysRedacted))
	for _, f := range fields {
		keys[strings.ToLower(f)] = struct{}{}
	}
	for _, f := range alwaysRedacted {
		keys[f] = struct{}{}
	}
	return redactMap(payload, keys)
}

func redactMap(in map[string]any, keys map[string]struct{}) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if _, ok := keys[strings.ToLower(k)]; ok {
			out[k] = RedactedValue
			continue
		}
		out[k] = redactValue(v, keys)
	}
	return out
}

func redactValue(v any, keys map[string]struct{}) any {
	switch val := v.(type) {
	case map[string]any:
		return redactMap(val, keys)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = redactValue(item, keys)
		}
		return out
	default:
		return v
	}
}

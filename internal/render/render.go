// Package render formats server output for the terminal.
package render

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FirstLine returns the first non-empty line of raw subprocess output,
// trimmed of surrounding whitespace. Servers are expected to answer with
// a single newline-terminated JSON object; anything after it is noise.
func FirstLine(out []byte) []byte {
	for _, line := range bytes.Split(out, []byte("\n")) {
		trimmed := bytes.TrimSpace(line)
		if len(trimmed) > 0 {
			return trimmed
		}
	}
	return nil
}

// PrettyJSON formats raw JSON with indentation, recursively expanding
// string values that themselves contain JSON. MCP tool results wrap
// their payload in content[].text strings, so without expansion the
// interesting part prints as one escaped blob. Returns ok=false if raw
// is not valid JSON.
func PrettyJSON(raw []byte) (string, bool) {
	var data any
	if err := json.Unmarshal(raw, &data); err != nil {
		return "", false
	}

	expanded := expandNested(data)

	pretty, err := json.MarshalIndent(expanded, "", "  ")
	if err != nil {
		return "", false
	}
	return string(pretty), true
}

// expandNested walks the decoded value and replaces any string that
// parses as a JSON object or array with its decoded form.
func expandNested(data any) any {
	switch v := data.(type) {
	case map[string]any:
		result := make(map[string]any, len(v))
		for key, val := range v {
			result[key] = expandNested(val)
		}
		return result
	case []any:
		result := make([]any, len(v))
		for i, val := range v {
			result[i] = expandNested(val)
		}
		return result
	case string:
		if looksLikeJSON(v) {
			var nested any
			if err := json.Unmarshal([]byte(v), &nested); err == nil {
				return expandNested(nested)
			}
		}
		return v
	default:
		return v
	}
}

func looksLikeJSON(s string) bool {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) == 0 {
		return false
	}
	return (strings.HasPrefix(trimmed, "{") && strings.HasSuffix(trimmed, "}")) ||
		(strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"))
}

// StderrLooksLikeError reports whether subprocess stderr should be
// surfaced to the user. Matches the substring "error" case-insensitively;
// servers log startup chatter to stderr and we don't want to echo that.
func StderrLooksLikeError(stderr []byte) bool {
	return strings.Contains(strings.ToLower(string(stderr)), "error")
}

package evaluate

import (
	"encoding/json"
	"fmt"
)

// FirstJSONObject extracts the first balanced top-level JSON object from s.
// Evaluation replies are sometimes wrapped in prose or code fences even
// when structured output was requested; this recovers the object without
// retrying the request.
func FirstJSONObject(s string) (json.RawMessage, error) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			if start >= 0 {
				inString = true
			}
		case '{':
			if start < 0 {
				start = i
			}
			depth++
		case '}':
			if start < 0 {
				continue
			}
			depth--
			if depth == 0 {
				candidate := s[start : i+1]
				if !json.Valid([]byte(candidate)) {
					return nil, fmt.Errorf("extracted object is not valid JSON")
				}
				return json.RawMessage(candidate), nil
			}
		}
	}

	return nil, fmt.Errorf("no JSON object found")
}

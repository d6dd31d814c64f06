package openapi

import (
	"encoding/json"
	"strings"
)

// messageExtractors are tried in order against the decoded upstream error
// body. The first one that yields a non-empty message wins.
var messageExtractors = []func(body map[string]interface{}) (string, bool){
	nestedErrorMessage,
	topLevelMessage,
	topLevelErrorString,
}

// {"error": {"message": "..."}}
func nestedErrorMessage(body map[string]interface{}) (string, bool) {
	nested, ok := body["error"].(map[string]interface{})
	if !ok {
		return "", false
	}
	msg, ok := nested["message"].(string)
	return msg, ok && msg != ""
}

// {"message": "..."}
func topLevelMessage(body map[string]interface{}) (string, bool) {
	msg, ok := body["message"].(string)
	return msg, ok && msg != ""
}

// {"error": "..."}
func topLevelErrorString(body map[string]interface{}) (string, bool) {
	msg, ok := body["error"].(string)
	return msg, ok && msg != ""
}

// extractMessage derives a human-readable message and a diagnostic detail
// payload from an upstream error body. fallback is the local error message
// used when the body yields nothing.
func extractMessage(raw []byte, fallback string) (string, interface{}) {
	var body map[string]interface{}
	if err := json.Unmarshal(raw, &body); err == nil {
		for _, extract := range messageExtractors {
			if msg, ok := extract(body); ok {
				return msg, body
			}
		}
		if len(body) > 0 {
			return string(raw), body
		}
	}

	if s := strings.TrimSpace(string(raw)); s != "" {
		return s, s
	}
	return fallback, nil
}

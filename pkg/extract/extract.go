// Package extract pulls a JSON payload out of free-form model output and validates it
// against a JSON-Schema shape before decoding it into a Go value.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fencedJSON matches a markdown block opened with ```json on its own line.
// Line endings may be LF or CRLF.
var fencedJSON = regexp.MustCompile("```json\\r?\\n([\\s\\S]*?)\\r?\\n```")

// Candidate returns the interior of the first fenced json block in raw, or raw itself
// when no such block exists.
func Candidate(raw string) string {
	if m := fencedJSON.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return raw
}

// Extract finds the JSON payload in raw, validates it against shape and decodes it into T.
// On failure the returned *Error carries raw unchanged.
func Extract[T any](raw string, shape Shape) (T, error) {
	var out T

	candidate := Candidate(raw)
	if strings.TrimSpace(candidate) == "" {
		return out, newError(StageParse, shape, raw, nil, errEmptyPayload)
	}

	var doc any
	if err := json.Unmarshal([]byte(candidate), &doc); err != nil {
		return out, newError(StageParse, shape, raw, nil, err)
	}

	if reasons, err := shape.validate(doc); err != nil || len(reasons) > 0 {
		return out, newError(StageValidate, shape, raw, reasons, err)
	}

	if err := json.Unmarshal([]byte(candidate), &out); err != nil {
		return out, newError(StageDecode, shape, raw, nil, err)
	}

	return out, nil
}

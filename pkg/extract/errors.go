package extract

import (
	"errors"
	"fmt"
	"strings"
)

// Stage identifies the extraction step that failed.
type Stage string

const (
	StageParse    Stage = "parse"
	StageValidate Stage = "validate"
	StageDecode   Stage = "decode"
)

// ErrExtraction matches every *Error via errors.Is.
var ErrExtraction = errors.New("structured output extraction failed")

var errEmptyPayload = errors.New("empty payload")

// Error reports a payload that could not be found, parsed, validated or decoded.
// Raw holds the untouched model output for operator diagnostics; it is deliberately
// left out of Error() so the message is safe to propagate.
type Error struct {
	Stage   Stage
	Shape   string
	Raw     string
	Reasons []string
	Err     error
}

func newError(stage Stage, shape Shape, raw string, reasons []string, err error) *Error {
	return &Error{
		Stage:   stage,
		Shape:   shape.Name(),
		Raw:     raw,
		Reasons: reasons,
		Err:     err,
	}
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("extract %s: %s failed", e.Shape, e.Stage)
	if len(e.Reasons) > 0 {
		msg += ": " + strings.Join(e.Reasons, "; ")
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	return target == ErrExtraction
}

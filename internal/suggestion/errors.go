package suggestion

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTaskTitle  = errors.New("task title is required")
	ErrEmptyEventTitle = errors.New("event title is required")

	// ErrSuggestion matches every *SuggestionError via errors.Is.
	ErrSuggestion = errors.New("task suggestion failed")
	// ErrResolution matches every *ResolutionError via errors.Is.
	ErrResolution = errors.New("vendor resolution failed")
)

// Stage names the step of a flow that failed.
type Stage string

const (
	StageGeneration Stage = "generation"
	StageExtraction Stage = "extraction"
)

// SuggestionError is the terminal failure of task suggestion.
type SuggestionError struct {
	Event string
	Stage Stage
	Err   error
}

func (e *SuggestionError) Error() string {
	return fmt.Sprintf("suggest tasks for %q: %s: %v", e.Event, e.Stage, e.Err)
}

func (e *SuggestionError) Unwrap() error { return e.Err }

func (e *SuggestionError) Is(target error) bool { return target == ErrSuggestion }

// ResolutionError is the terminal failure of vendor resolution: the general
// fallback could not produce a provider list.
type ResolutionError struct {
	Task  string
	Stage Stage
	Err   error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("resolve vendors for %q: %s: %v", e.Task, e.Stage, e.Err)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

func (e *ResolutionError) Is(target error) bool { return target == ErrResolution }

package classifier

import (
	"errors"
	"fmt"
)

// ErrClassification matches every *ClassificationError via errors.Is.
var ErrClassification = errors.New("task classification failed")

// ClassificationError reports that the category could not be determined.
type ClassificationError struct {
	Task string
	Err  error
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("classify %q: %v", e.Task, e.Err)
}

func (e *ClassificationError) Unwrap() error {
	return e.Err
}

func (e *ClassificationError) Is(target error) bool {
	return target == ErrClassification
}

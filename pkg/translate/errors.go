package translate

import (
	"errors"
	"fmt"
)

// ErrUnsupportedLanguage is returned when the requested target language is
// not in the supported set. It is surfaced before any request is made.
var ErrUnsupportedLanguage = errors.New("unsupported target language")

// BatchFailure records one failed batch: its position in the dispatch order,
// the underlying error, and the (node, field) pairs left untranslated.
type BatchFailure struct {
	Batch  int
	Err    error
	Fields []FieldRef
}

// BatchError aggregates the batches that failed during one Apply call.
// Successful batches were still applied; only the listed fields retain their
// original-language text.
type BatchError struct {
	Language string
	Batches  int
	Failed   []BatchFailure
}

func (e *BatchError) Error() string {
	fields := 0
	for _, f := range e.Failed {
		fields += len(f.Fields)
	}
	return fmt.Sprintf("translation to %s failed for %d of %d batches (%d fields untranslated): %v",
		e.Language, len(e.Failed), e.Batches, fields, e.Failed[0].Err)
}

// Unwrap exposes the underlying batch errors to errors.Is / errors.As.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, len(e.Failed))
	for i, f := range e.Failed {
		errs[i] = f.Err
	}
	return errs
}

// UntranslatedFields returns every (node, field) pair that failed to update.
func (e *BatchError) UntranslatedFields() []FieldRef {
	var out []FieldRef
	for _, f := range e.Failed {
		out = append(out, f.Fields...)
	}
	return out
}

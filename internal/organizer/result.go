package organizer

import (
	"fmt"

	"organize-photos/internal/photo"
)

// FileError records one file the batch could not organize.
type FileError struct {
	Name string // entry name as listed in the input directory
	Err  error
}

// Message is the line reported to the user for this failure.
func (e FileError) Message() string {
	return fmt.Sprintf("Error copying file: %s - %v", e.Name, e.Err)
}

// Result accumulates the outcome of a batch. Errors keep processing order.
type Result struct {
	Copied int
	Failed int
	Errors []FileError
	ByKind map[photo.Kind]int
}

func newResult() *Result {
	return &Result{ByKind: make(map[photo.Kind]int)}
}

func (r *Result) addCopied() {
	r.Copied++
}

func (r *Result) addError(name string, err error) {
	r.Failed++
	r.Errors = append(r.Errors, FileError{Name: name, Err: err})
	r.ByKind[photo.KindOf(err)]++
}

// Messages returns the formatted error lines in processing order.
func (r *Result) Messages() []string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message())
	}
	return msgs
}

package bank

import "fmt"

// MinRecommended is the bank size below which a ValidationWarning is raised.
const MinRecommended = 10

const (
	reasonNotFound = "source not found"
	reasonNotAList = "malformed bank: not a list"
	reasonEmpty    = "malformed bank: no questions"
)

// LoadError reports why a question bank could not be loaded. A load either
// yields a complete bank or a LoadError; partial banks are never returned.
type LoadError struct {
	Source string
	Record int // 1-based record number, 0 when not record-specific
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("load %s: %s", e.Source, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() error { return e.Err }

func recordError(source string, record int, format string, args ...any) *LoadError {
	prefix := fmt.Sprintf("record #%d ", record)
	return &LoadError{
		Source: source,
		Record: record,
		Reason: prefix + fmt.Sprintf(format, args...),
	}
}

// ValidationWarning is a non-fatal advisory: the bank loaded but holds fewer
// questions than recommended.
type ValidationWarning struct {
	Size    int
	Minimum int
}

func (w *ValidationWarning) Error() string {
	return fmt.Sprintf("bank has %d questions; at least %d recommended", w.Size, w.Minimum)
}

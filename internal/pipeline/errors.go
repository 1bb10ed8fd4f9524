package pipeline

import (
	"errors"
	"fmt"

	"icptargets/internal"
)

var (
	ErrNameMismatch   = errors.New("filename does not match <org>-YYYY-MM-DD--<timestamp>.xlsx")
	ErrSheetNotFound  = errors.New("sheet not found")
	ErrColumnNotFound = errors.New("column not found")
	ErrNoValues       = errors.New("no domains or IPs extracted")

	ErrTargetsDirMissing = errors.New("targets directory not found")
	ErrNoInputFiles      = errors.New("no xlsx files in targets directory")
)

// FileError describes why a single input file was skipped.
type FileError struct {
	File   string
	Reason internal.SkipReason
	Err    error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("skip %s (%s): %v", e.File, e.Reason, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func newFileError(file string, err error) *FileError {
	return &FileError{File: file, Reason: skipReasonFor(err), Err: err}
}

func skipReasonFor(err error) internal.SkipReason {
	switch {
	case errors.Is(err, ErrNameMismatch):
		return internal.SkipNameMismatch
	case errors.Is(err, ErrSheetNotFound):
		return internal.SkipSheetNotFound
	case errors.Is(err, ErrColumnNotFound):
		return internal.SkipColumnNotFound
	case errors.Is(err, ErrNoValues):
		return internal.SkipNoValues
	default:
		return internal.SkipReadError
	}
}

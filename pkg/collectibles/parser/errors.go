package parser

import (
	"errors"
	"fmt"
)

// ErrSheetNotFound indicates a requested sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnresolvedReference indicates a non-empty reference cell could not be
// matched against the reference table or a fixed subtype list.
var ErrUnresolvedReference = errors.New("unresolved reference")

// SheetNotFoundError reports a missing sheet.
type SheetNotFoundError struct {
	Sheet string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("worksheet %q not found in workbook", e.Sheet)
}

func (e *SheetNotFoundError) Unwrap() error {
	return ErrSheetNotFound
}

// UnresolvedReferenceError reports a reference cell that failed to resolve.
type UnresolvedReferenceError struct {
	Sheet string
	// Row is the 1-based sheet row.
	Row int
	// Kind is "subtype", "location" or "sublocation".
	Kind  string
	Value string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("could not resolve %s %q in %s at row %d", e.Kind, e.Value, e.Sheet, e.Row)
}

func (e *UnresolvedReferenceError) Unwrap() error {
	return ErrUnresolvedReference
}

package verrors

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyBlueprintString indicates the caller passed an empty string
	// where an encoded blueprint was expected.
	ErrEmptyBlueprintString = errors.New("verrors: blueprint string is empty")
	// ErrBadVersionByte indicates the leading version byte could not be
	// stripped because the string was shorter than one byte.
	ErrBadVersionByte = errors.New("verrors: blueprint string missing version byte")
	// ErrBase64Decode indicates the base64 payload failed to decode.
	ErrBase64Decode = errors.New("verrors: base64 decode failed")
	// ErrZlibInflate indicates the zlib-compressed payload failed to inflate.
	ErrZlibInflate = errors.New("verrors: zlib inflate failed")
	// ErrMalformedJSON indicates the inflated payload was not valid JSON.
	ErrMalformedJSON = errors.New("verrors: malformed blueprint JSON")
	// ErrNoBlueprintKey indicates the decoded JSON has no "blueprint" object.
	ErrNoBlueprintKey = errors.New("verrors: no blueprint key in decoded JSON")
	// ErrNoEntitiesKey indicates the blueprint object has no "entities" array.
	ErrNoEntitiesKey = errors.New("verrors: no entities key in blueprint")
	// ErrDuplicateEntityNumber indicates two entities share an entity_number.
	ErrDuplicateEntityNumber = errors.New("verrors: duplicate entity_number in blueprint")

	// ErrSolverUnknown is never returned by Prove itself — it documents
	// that a smt.Unknown result is a valid, non-error outcome callers must
	// handle explicitly rather than treat as success or failure.
	ErrSolverUnknown = errors.New("verrors: solver returned unknown within its resource bound")
)

// UnsupportedEntity names a blueprint entity the front-end does not model.
// Decode neither returns nor records it: unsupported entities are dropped
// without any report.
type UnsupportedEntity struct {
	Name         string
	EntityNumber int
}

func (u UnsupportedEntity) Error() string {
	return fmt.Sprintf("verrors: unsupported entity %q (entity_number %d)", u.Name, u.EntityNumber)
}

// StructuralError reports a broken internal invariant discovered by
// front-end or IR code — a bug in this module, not a malformed input.
type StructuralError struct {
	Component string
	Detail    string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("verrors: structural invariant violated in %s: %s", e.Component, e.Detail)
}

// NewStructuralError constructs a StructuralError for component, with detail
// describing the broken invariant.
func NewStructuralError(component, detail string) *StructuralError {
	return &StructuralError{Component: component, Detail: detail}
}

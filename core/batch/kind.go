package batch

import (
	"fmt"
	"strings"

	"github.com/paatthya/console/core"
)

// Kind is a material kind. Its value is the display (tab) name.
type Kind string

const (
	Lectures    Kind = "lectures"
	Notes       Kind = "notes"
	Assignments Kind = "assignments"
)

// Kinds lists all material kinds in display order.
var Kinds = []Kind{Lectures, Notes, Assignments}

// Stored field names of a batch document.
const (
	FieldLectures   = "lectures"
	FieldNotes      = "notes"
	FieldAssignment = "assignment" // singular, shared with the mobile apps
)

// ParseKind parses a display name or a stored field name.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lectures", "lecture":
		return Lectures, nil
	case "notes", "note":
		return Notes, nil
	case "assignments", "assignment":
		return Assignments, nil
	}
	return "", unknownKindError(s)
}

func unknownKindError(s string) error {
	return core.NewValidationError(
		fmt.Errorf("unknown material kind %q", s),
		core.FieldError{Field: "kind", Error: "must be one of lectures, notes or assignments"},
	)
}

func (k Kind) String() string { return string(k) }

// StoredField is the name of the batch document field holding this kind.
func (k Kind) StoredField() string {
	switch k {
	case Lectures:
		return FieldLectures
	case Notes:
		return FieldNotes
	case Assignments:
		return FieldAssignment
	}
	panic(fmt.Sprintf("batch: invalid Kind %q", string(k)))
}

// Singular is used as the prefix of synthesized material IDs.
func (k Kind) Singular() string {
	switch k {
	case Lectures:
		return "lecture"
	case Notes:
		return "note"
	case Assignments:
		return "assignment"
	}
	return strings.TrimSuffix(string(k), "s")
}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	return k == Lectures || k == Notes || k == Assignments
}

func (k Kind) validate() error {
	if !k.Valid() {
		return unknownKindError(string(k))
	}
	return nil
}

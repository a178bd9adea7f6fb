package session

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	// ErrNoPath indicates a save was requested for an ephemeral document,
	// which has no source path to write to.
	ErrNoPath = errors.New("document has no source path")
)

// InvalidDocumentIDError indicates a command referenced a document id that
// is not present in the document registry.
type InvalidDocumentIDError struct {
	ID DocumentID
}

func (e InvalidDocumentIDError) Error() string {
	return fmt.Sprintf("no document with id %s found", e.ID)
}

// InvalidViewIDError indicates a command referenced a view id that is not
// present in the view registry.
type InvalidViewIDError struct {
	ID ViewID
}

func (e InvalidViewIDError) Error() string {
	return fmt.Sprintf("no view with id %s found", e.ID)
}

package session

import "github.com/google/uuid"

// ViewID is the opaque identifier of a view.
type ViewID uuid.UUID

// NewViewID generates a fresh view id.
func NewViewID() ViewID {
	return ViewID(uuid.New())
}

// String returns the canonical UUID form of the id.
func (id ViewID) String() string {
	return uuid.UUID(id).String()
}

// View is a viewport onto one document. It tracks the visible region and
// geometry the frontend reported. The document reference is immutable for
// the view's lifetime and must always name a registered document.
type View struct {
	// DocumentID references the document this view displays.
	DocumentID DocumentID

	// Viewport geometry, in lines and columns.
	Height    int
	Width     int
	FirstLine int
	FirstCol  int
}

// NewView creates a view onto the given document with its initial geometry.
// The viewport starts at the top-left of the document.
func NewView(documentID DocumentID, height, width int) *View {
	return &View{
		DocumentID: documentID,
		Height:     height,
		Width:      width,
	}
}

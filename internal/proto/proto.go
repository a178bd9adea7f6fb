package proto

import (
	"github.com/google/uuid"

	"github.com/druskus20/bazed/internal/input/key"
)

// RequestID is an opaque correlation token issued by the frontend on
// request-style commands and echoed verbatim in the matching response.
type RequestID uuid.UUID

// String returns the canonical UUID form of the id.
func (id RequestID) String() string {
	return uuid.UUID(id).String()
}

// MarshalText implements encoding.TextMarshaler.
func (id RequestID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *RequestID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data)
}

// CaretPosition is an absolute position within a document.
type CaretPosition struct {
	Line int `json:"line"`
	Col  int `json:"col"`
}

// ToBackend is a command sent from the frontend to the backend.
// It is a closed union over the message types below.
type ToBackend interface {
	isToBackend()
	method() string
}

// SaveDocument asks the backend to persist a document to its source path.
type SaveDocument struct {
	DocumentID uuid.UUID `json:"document_id"`
}

// KeyPressed reports a key press within a view.
type KeyPressed struct {
	ViewID uuid.UUID `json:"view_id"`
	Input  key.Event `json:"input"`
}

// MouseInput reports a mouse click within a view at an absolute position.
type MouseInput struct {
	ViewID   uuid.UUID     `json:"view_id"`
	Position CaretPosition `json:"position"`
}

// MouseScroll reports a mouse wheel turn within a view. Positive and
// negative deltas mean scrolling down and up respectively.
type MouseScroll struct {
	ViewID    uuid.UUID `json:"view_id"`
	LineDelta int       `json:"line_delta"`
}

// ViewportChanged reports that the viewport for a view changed, because the
// window was resized or the user scrolled.
type ViewportChanged struct {
	ViewID    uuid.UUID `json:"view_id"`
	Height    int       `json:"height"`
	Width     int       `json:"width"`
	FirstLine int       `json:"first_line"`
	FirstCol  int       `json:"first_col"`
}

// ViewOpened requests a new view onto an existing document. The backend
// answers with a ViewOpenedResponse carrying the same request id.
type ViewOpened struct {
	RequestID  RequestID `json:"request_id"`
	DocumentID uuid.UUID `json:"document_id"`
	Height     int       `json:"height"`
	Width      int       `json:"width"`
}

func (SaveDocument) isToBackend()    {}
func (KeyPressed) isToBackend()      {}
func (MouseInput) isToBackend()      {}
func (MouseScroll) isToBackend()     {}
func (ViewportChanged) isToBackend() {}
func (ViewOpened) isToBackend()      {}

func (SaveDocument) method() string    { return "save_document" }
func (KeyPressed) method() string      { return "key_pressed" }
func (MouseInput) method() string      { return "mouse_input" }
func (MouseScroll) method() string     { return "mouse_scroll" }
func (ViewportChanged) method() string { return "viewport_changed" }
func (ViewOpened) method() string      { return "view_opened" }

// ToFrontend is a notification or response sent from the backend to the
// frontend. It is a closed union over the message types below.
type ToFrontend interface {
	isToFrontend()
	method() string
}

// OpenDocument announces a newly opened document with its full text.
// Path is null for ephemeral documents.
type OpenDocument struct {
	DocumentID uuid.UUID `json:"document_id"`
	Path       *string   `json:"path"`
	Text       string    `json:"text"`
}

// UpdateView is sent whenever anything in the view changed: the content,
// the viewport, or a caret position. Caret positions are absolute.
type UpdateView struct {
	ViewID    uuid.UUID       `json:"view_id"`
	FirstLine int             `json:"first_line"`
	Height    int             `json:"height"`
	Text      []string        `json:"text"`
	Carets    []CaretPosition `json:"carets"`
	VimMode   string          `json:"vim_mode"`
}

// ViewOpenedResponse is the response to a ViewOpened request.
type ViewOpenedResponse struct {
	RequestID RequestID `json:"request_id"`
	ViewID    uuid.UUID `json:"view_id"`
}

func (OpenDocument) isToFrontend()       {}
func (UpdateView) isToFrontend()         {}
func (ViewOpenedResponse) isToFrontend() {}

func (OpenDocument) method() string       { return "open_document" }
func (UpdateView) method() string         { return "update_view" }
func (ViewOpenedResponse) method() string { return "view_opened_response" }

package session

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/druskus20/bazed/internal/buffer"
	"github.com/druskus20/bazed/internal/proto"
)

// DocumentID is the opaque identifier of an open document.
type DocumentID uuid.UUID

// NewDocumentID generates a fresh document id.
func NewDocumentID() DocumentID {
	return DocumentID(uuid.New())
}

// String returns the canonical UUID form of the id.
func (id DocumentID) String() string {
	return uuid.UUID(id).String()
}

// Document is an open text document: a buffer plus the optional source path
// it was read from. A document with an empty path is ephemeral and cannot
// be saved.
type Document struct {
	// Path is the source file path, empty for ephemeral documents.
	Path string

	// Buffer holds the document content and its carets.
	Buffer *buffer.Buffer
}

// OpenFile creates a document from the contents of a file.
func OpenFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	buf, err := buffer.FromReader(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &Document{Path: path, Buffer: buf}, nil
}

// OpenEphemeral creates an empty document with no backing file.
func OpenEphemeral() *Document {
	return &Document{Buffer: buffer.New()}
}

// Ephemeral returns true if the document has no source path.
func (d *Document) Ephemeral() bool {
	return d.Path == ""
}

// Save writes the buffer content to the document's source path.
// Saving an ephemeral document fails with ErrNoPath.
func (d *Document) Save() error {
	if d.Ephemeral() {
		return ErrNoPath
	}
	if err := os.WriteFile(d.Path, []byte(d.Buffer.String()), 0o644); err != nil {
		return fmt.Errorf("save %s: %w", d.Path, err)
	}
	return nil
}

// UpdateNotification builds the UpdateView message describing how the given
// view currently sees this document: the visible slice of content, the
// absolute caret positions and the editing-mode label. It is a pure read
// over the document and view state.
func (d *Document) UpdateNotification(id ViewID, v *View) proto.UpdateView {
	carets := d.Buffer.Carets()
	wireCarets := make([]proto.CaretPosition, len(carets))
	for i, c := range carets {
		wireCarets[i] = proto.CaretPosition{Line: c.Line, Col: c.Col}
	}
	return proto.UpdateView{
		ViewID:    uuid.UUID(id),
		FirstLine: v.FirstLine,
		Height:    v.Height,
		Text:      d.Buffer.Lines(v.FirstLine, v.Height),
		Carets:    wireCarets,
		VimMode:   d.Buffer.Mode(),
	}
}

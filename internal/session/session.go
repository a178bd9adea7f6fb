package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/golang/glog"
	"github.com/google/uuid"

	"github.com/druskus20/bazed/internal/input"
	"github.com/druskus20/bazed/internal/input/key"
	"github.com/druskus20/bazed/internal/proto"
)

// Session is the single serialization point for all editor state mutation.
// It owns the document and view registries exclusively and processes one
// protocol command at a time, fully completing each (mutation first, then
// any outbound notification) before starting the next.
type Session struct {
	// mu is held for the full duration of each command, including any
	// file I/O performed while handling it. Commands are strictly
	// serialized, never pipelined.
	mu sync.Mutex

	documents *documentRegistry
	views     *viewRegistry
	notifier  Notifier
}

// New creates a session that emits outbound messages through notifier.
func New(notifier Notifier) *Session {
	return &Session{
		documents: newDocumentRegistry(),
		views:     newViewRegistry(),
		notifier:  notifier,
	}
}

// Run drains the inbound command channel until it is closed or ctx is
// cancelled. Per-command errors are logged and do not end the loop; a
// closed channel ends the session gracefully.
func (s *Session) Run(ctx context.Context, calls <-chan proto.ToBackend) {
	for {
		select {
		case <-ctx.Done():
			glog.Infof("session loop cancelled: %v", ctx.Err())
			return
		case call, ok := <-calls:
			if !ok {
				glog.Info("command stream ended, closing session loop")
				return
			}
			if err := s.HandleCall(call); err != nil {
				glog.Errorf("failed to handle %T: %v", call, err)
			}
		}
	}
}

// OpenFile opens a document from a file, registers it and announces it to
// the frontend with its full text.
func (s *Session) OpenFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := OpenFile(path)
	if err != nil {
		return err
	}
	return s.openDocument(doc)
}

// OpenEphemeral opens an empty, path-less document, registers it and
// announces it to the frontend.
func (s *Session) OpenEphemeral() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.openDocument(OpenEphemeral())
}

// openDocument registers doc and emits the OpenDocument notification.
func (s *Session) openDocument(doc *Document) error {
	id := s.documents.insert(doc)
	glog.Infof("opened document %s (path=%q)", id, doc.Path)

	var path *string
	if !doc.Ephemeral() {
		path = &doc.Path
	}
	return s.notifier.Send(proto.OpenDocument{
		DocumentID: uuid.UUID(id),
		Path:       path,
		Text:       doc.Buffer.String(),
	})
}

// HandleCall dispatches one inbound protocol command. The command's full
// effect, including outbound notifications, is complete when it returns.
func (s *Session) HandleCall(call proto.ToBackend) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	glog.V(1).Infof("handling call %T", call)
	switch c := call.(type) {
	case proto.KeyPressed:
		return s.handleKeyPressed(ViewID(c.ViewID), c.Input)
	case proto.MouseInput:
		return s.handleMouseInput(ViewID(c.ViewID), c.Position)
	case proto.MouseScroll:
		// Defined in the protocol but intentionally unhandled: scrolling
		// behavior is not decided yet, so the command is a no-op.
		glog.V(1).Infof("ignoring mouse scroll (delta=%d)", c.LineDelta)
		return nil
	case proto.ViewportChanged:
		return s.handleViewportChanged(ViewID(c.ViewID), c.Height, c.Width, c.FirstLine, c.FirstCol)
	case proto.ViewOpened:
		viewID, err := s.handleViewOpened(DocumentID(c.DocumentID), c.Height, c.Width)
		if err != nil {
			return err
		}
		return s.notifier.Send(proto.ViewOpenedResponse{
			RequestID: c.RequestID,
			ViewID:    uuid.UUID(viewID),
		})
	case proto.SaveDocument:
		return s.handleSaveDocument(DocumentID(c.DocumentID))
	default:
		return fmt.Errorf("unhandled call type %T", call)
	}
}

// handleViewOpened creates a view bound to an existing document and returns
// its freshly allocated id.
func (s *Session) handleViewOpened(documentID DocumentID, height, width int) (ViewID, error) {
	if !s.documents.contains(documentID) {
		return ViewID{}, InvalidDocumentIDError{ID: documentID}
	}
	id := s.views.insert(NewView(documentID, height, width))
	glog.Infof("opened view %s onto document %s", id, documentID)
	return id, nil
}

// handleViewportChanged writes the new geometry unconditionally, but only
// notifies the frontend when newly visible content may exist: when the
// height grew or the first visible line changed. Pure width and column
// changes, and height shrinks, leave the frontend with a superset of the
// visible lines, so no update is needed. The decision is made against the
// view state before the new values are written.
func (s *Session) handleViewportChanged(viewID ViewID, height, width, firstLine, firstCol int) error {
	view, err := s.views.get(viewID)
	if err != nil {
		return err
	}
	needsUpdate := height > view.Height || firstLine != view.FirstLine

	view.Height = height
	view.Width = width
	view.FirstLine = firstLine
	view.FirstCol = firstCol

	if !needsUpdate {
		glog.V(2).Infof("suppressing redundant update for view %s", viewID)
		return nil
	}
	doc, err := s.documents.get(view.DocumentID)
	if err != nil {
		return err
	}
	return s.notifier.Send(doc.UpdateNotification(viewID, view))
}

// handleKeyPressed interprets a key event and applies the resulting
// operation. Unrecognized input is ignored without side effects; every
// recognized operation is followed by exactly one UpdateView notification.
func (s *Session) handleKeyPressed(viewID ViewID, ev key.Event) error {
	view, err := s.views.get(viewID)
	if err != nil {
		return err
	}
	doc, err := s.documents.get(view.DocumentID)
	if err != nil {
		return err
	}

	op, ok := input.Interpret(ev)
	if !ok {
		glog.V(1).Infof("ignoring unbound key input %s", ev)
		return nil
	}
	switch op := op.(type) {
	case input.SaveOp:
		if err := doc.Save(); err != nil {
			return err
		}
	case input.EditOp:
		doc.Buffer.ApplyEdit(op.Op)
	case input.MoveOp:
		doc.Buffer.ApplyMovement(op.Op, view.Height)
	}
	return s.notifier.Send(doc.UpdateNotification(viewID, view))
}

// handleMouseInput validates the view id. Click handling itself is not
// implemented yet.
func (s *Session) handleMouseInput(viewID ViewID, pos proto.CaretPosition) error {
	if _, err := s.views.get(viewID); err != nil {
		return err
	}
	glog.Infof("mouse input at %d:%d ignored, no handling implemented", pos.Line, pos.Col)
	return nil
}

// handleSaveDocument persists a document's buffer to its source path.
func (s *Session) handleSaveDocument(documentID DocumentID) error {
	doc, err := s.documents.get(documentID)
	if err != nil {
		return err
	}
	return doc.Save()
}

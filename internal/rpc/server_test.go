package rpc

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/druskus20/bazed/internal/proto"
)

// dial connects a test client to the server.
func dial(t *testing.T, s *Server) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial("ws://"+s.Addr(), nil)
	if err != nil {
		t.Fatalf("dial %s: %v", s.Addr(), err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func listen(t *testing.T) *Server {
	t.Helper()
	s, err := Listen("127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestWaitForClientDeliversCommands(t *testing.T) {
	s := listen(t)
	client := dial(t, s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	send, calls, err := s.WaitForClient(ctx)
	if err != nil {
		t.Fatalf("WaitForClient() error = %v", err)
	}
	if send == nil {
		t.Fatal("WaitForClient() returned nil send handle")
	}

	docID := uuid.New()
	frame := `{"method":"save_document","params":{"document_id":"` + docID.String() + `"}}`
	if err := client.WriteMessage(websocket.TextMessage, []byte(frame)); err != nil {
		t.Fatal(err)
	}

	select {
	case msg := <-calls:
		save, ok := msg.(proto.SaveDocument)
		if !ok {
			t.Fatalf("received %T, want SaveDocument", msg)
		}
		if save.DocumentID != docID {
			t.Errorf("document id = %s, want %s", save.DocumentID, docID)
		}
	case <-ctx.Done():
		t.Fatal("no command received")
	}
}

func TestMalformedFramesAreSkipped(t *testing.T) {
	s := listen(t)
	client := dial(t, s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, calls, err := s.WaitForClient(ctx)
	if err != nil {
		t.Fatalf("WaitForClient() error = %v", err)
	}

	// A garbage frame, an unknown method, then a valid command. Only the
	// valid one must come through, order preserved.
	frames := []string{
		`not json at all`,
		`{"method":"quit","params":{}}`,
		`{"method":"mouse_scroll","params":{"view_id":"` + uuid.NewString() + `","line_delta":2}}`,
	}
	for _, f := range frames {
		if err := client.WriteMessage(websocket.TextMessage, []byte(f)); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case msg := <-calls:
		if _, ok := msg.(proto.MouseScroll); !ok {
			t.Fatalf("received %T, want MouseScroll", msg)
		}
	case <-ctx.Done():
		t.Fatal("valid command after malformed frames not received")
	}
}

func TestSendWritesEnvelope(t *testing.T) {
	s := listen(t)
	client := dial(t, s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	send, _, err := s.WaitForClient(ctx)
	if err != nil {
		t.Fatalf("WaitForClient() error = %v", err)
	}

	reqID := proto.RequestID(uuid.New())
	viewID := uuid.New()
	if err := send.Send(proto.ViewOpenedResponse{RequestID: reqID, ViewID: viewID}); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	client.SetReadDeadline(time.Now().Add(5 * time.Second))
	_, data, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("client read: %v", err)
	}

	var env struct {
		Method string                   `json:"method"`
		Params proto.ViewOpenedResponse `json:"params"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	if env.Method != "view_opened_response" {
		t.Errorf("method = %q, want view_opened_response", env.Method)
	}
	if env.Params.ViewID != viewID || env.Params.RequestID != reqID {
		t.Errorf("params = %+v, want ids echoed", env.Params)
	}
}

func TestClientDisconnectClosesChannel(t *testing.T) {
	s := listen(t)
	client := dial(t, s)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, calls, err := s.WaitForClient(ctx)
	if err != nil {
		t.Fatalf("WaitForClient() error = %v", err)
	}

	client.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	client.Close()

	select {
	case _, ok := <-calls:
		if ok {
			t.Fatal("received unexpected command")
		}
	case <-ctx.Done():
		t.Fatal("channel not closed after disconnect")
	}
}

func TestWaitForClientCancellation(t *testing.T) {
	s := listen(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := s.WaitForClient(ctx); err == nil {
		t.Fatal("WaitForClient() with cancelled context succeeded")
	}
}

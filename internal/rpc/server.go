package rpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"github.com/gorilla/websocket"

	"github.com/druskus20/bazed/internal/proto"
)

// inboundBuffer is the capacity of the inbound command channel. Commands
// are consumed strictly in order; the buffer only decouples the read loop
// from a session busy with file I/O.
const inboundBuffer = 16

// SendHandle writes protocol messages to the connected client.
// It is safe for concurrent use; writes are serialized internally since
// websocket connections support only one concurrent writer.
type SendHandle struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

// Send encodes msg and writes it as a single text frame.
func (h *SendHandle) Send(msg proto.ToFrontend) error {
	data, err := proto.Encode(msg)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if err := h.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return nil
}

// Server accepts exactly one websocket client and turns its connection
// into a pair of protocol-level primitives.
type Server struct {
	ln     net.Listener
	srv    *http.Server
	connCh chan *websocket.Conn
}

// Listen binds a listener at addr. Pass a ":0" port to let the OS choose;
// the bound address is available through Addr.
func Listen(addr string) (*Server, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", addr, err)
	}

	s := &Server{
		ln:     ln,
		connCh: make(chan *websocket.Conn, 1),
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(*http.Request) bool { return true },
	}
	s.srv = &http.Server{Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			glog.Errorf("websocket upgrade from %s failed: %v", r.RemoteAddr, err)
			return
		}
		select {
		case s.connCh <- conn:
		default:
			glog.Warningf("rejecting extra client from %s", conn.RemoteAddr())
			conn.Close()
		}
	})}
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			glog.Errorf("serve: %v", err)
		}
	}()
	return s, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.ln.Addr().String()
}

// Close stops accepting connections.
func (s *Server) Close() error {
	return s.srv.Close()
}

// WaitForClient blocks until the first websocket client connects or ctx is
// cancelled. It returns a send handle for outbound messages and the ordered
// channel of decoded inbound commands. The channel is closed when the
// client disconnects.
//
// Only one client is served; later connection attempts are dropped.
func (s *Server) WaitForClient(ctx context.Context) (*SendHandle, <-chan proto.ToBackend, error) {
	glog.Infof("waiting for client on %s", s.Addr())
	select {
	case <-ctx.Done():
		s.Close()
		return nil, nil, ctx.Err()
	case conn := <-s.connCh:
		glog.Infof("client connected from %s", conn.RemoteAddr())
		calls := make(chan proto.ToBackend, inboundBuffer)
		go readLoop(conn, calls)
		return &SendHandle{conn: conn}, calls, nil
	}
}

// WaitForClient binds a listener at addr and waits for the first client.
func WaitForClient(ctx context.Context, addr string) (*SendHandle, <-chan proto.ToBackend, error) {
	s, err := Listen(addr)
	if err != nil {
		return nil, nil, err
	}
	return s.WaitForClient(ctx)
}

// readLoop decodes inbound frames until the connection ends, preserving
// arrival order. Frames that fail to decode are skipped.
func readLoop(conn *websocket.Conn, calls chan<- proto.ToBackend) {
	defer close(calls)
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				glog.Info("client disconnected")
			} else {
				glog.Errorf("read: %v", err)
			}
			return
		}
		msg, err := proto.DecodeToBackend(data)
		if err != nil {
			glog.Errorf("skipping malformed frame: %v", err)
			continue
		}
		calls <- msg
	}
}

package session

import "github.com/druskus20/bazed/internal/proto"

// Notifier pushes protocol messages toward the frontend. It is the only
// object the session shares with the transport layer and is send-only from
// the session's perspective: fire-and-forget, but failures are observable
// and surface as per-command errors.
type Notifier interface {
	Send(msg proto.ToFrontend) error
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(msg proto.ToFrontend) error

// Send implements Notifier.
func (f NotifierFunc) Send(msg proto.ToFrontend) error {
	return f(msg)
}

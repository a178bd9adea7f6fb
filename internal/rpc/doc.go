// Package rpc provides the websocket transport between the backend core and
// a single frontend client.
//
// The server binds a listener, waits for one client to connect, and then
// exposes the connection as a pair of primitives: an ordered channel of
// decoded inbound commands, and a SendHandle for pushing outbound messages.
// Malformed inbound frames are logged and skipped; a client disconnect
// closes the inbound channel, which ends the session loop gracefully.
package rpc

// Package proto defines the messages exchanged between the backend core and
// a remote frontend, together with their JSON wire encoding.
//
// Each message travels in an envelope of the form
//
//	{"method": "view_opened", "params": {...}}
//
// where the method is the snake_case message name. ToBackend messages are
// commands from the frontend; ToFrontend messages are notifications and
// responses pushed back by the backend. Document, view and request ids are
// opaque 128-bit UUIDs.
package proto

package proto

import (
	"encoding/json"
	"fmt"
)

// envelope is the outer wire form of every message.
type envelope struct {
	Method string          `json:"method"`
	Params json.RawMessage `json:"params"`
}

// Encode serializes a ToFrontend message into its wire form.
func Encode(msg ToFrontend) ([]byte, error) {
	params, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode %s params: %w", msg.method(), err)
	}
	return json.Marshal(envelope{Method: msg.method(), Params: params})
}

// DecodeToBackend parses the wire form of a frontend command.
// Unknown methods and malformed params are errors.
func DecodeToBackend(data []byte) (ToBackend, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	switch env.Method {
	case SaveDocument{}.method():
		return decodeParams[SaveDocument](env)
	case KeyPressed{}.method():
		return decodeParams[KeyPressed](env)
	case MouseInput{}.method():
		return decodeParams[MouseInput](env)
	case MouseScroll{}.method():
		return decodeParams[MouseScroll](env)
	case ViewportChanged{}.method():
		return decodeParams[ViewportChanged](env)
	case ViewOpened{}.method():
		return decodeParams[ViewOpened](env)
	default:
		return nil, fmt.Errorf("unknown method %q", env.Method)
	}
}

func decodeParams[T ToBackend](env envelope) (ToBackend, error) {
	var msg T
	if err := json.Unmarshal(env.Params, &msg); err != nil {
		return nil, fmt.Errorf("decode %s params: %w", env.Method, err)
	}
	return msg, nil
}

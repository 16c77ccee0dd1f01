package lib

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

const EchoMessage = "Hello World!"

type Response struct {
	StatusCode int    `json:"statusCode" yaml:"statusCode"`
	Body       string `json:"body" yaml:"body"`
}

// Envelope is the record serialized into Response.Body. Field order is the
// key order on the wire.
type Envelope struct {
	Event   any    `json:"event" yaml:"event"`
	Context any    `json:"context" yaml:"context"`
	Message string `json:"message" yaml:"message"`
}

type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("serialization error: %s", e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// Echo wraps event and invocation context in an Envelope and returns it as
// the body of a 200 response. The only failure is a value the encoder cannot
// serialize. Echo performs no I/O.
func Echo(event, invocationContext any) (*Response, error) {
	body, err := marshalNoEscape(Envelope{
		Event:   event,
		Context: invocationContext,
		Message: EchoMessage,
	})
	if err != nil {
		return nil, &SerializationError{Err: err}
	}
	return &Response{
		StatusCode: http.StatusOK,
		Body:       string(body),
	}, nil
}

// Handler is the function handed to lambda.Start.
func Handler(ctx context.Context, event json.RawMessage) (*Response, error) {
	if len(bytes.TrimSpace(event)) == 0 {
		event = nil
	}
	response, err := Echo(event, NewInvocationContext(ctx))
	if err != nil {
		Logger.Println("error:", err)
		return nil, err
	}
	return response, nil
}

func DecodeEnvelope(body string) (*Envelope, error) {
	var envelope Envelope
	err := json.Unmarshal([]byte(body), &envelope)
	if err != nil {
		return nil, err
	}
	return &envelope, nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	err := enc.Encode(v)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func DecodeResponse(data []byte) (*Response, error) {
	var response Response
	err := json.Unmarshal(data, &response)
	if err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &response, nil
}

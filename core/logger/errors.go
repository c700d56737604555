package logger

import (
	"encoding/json"
	"log"
	"log/slog"
)

// Error is a structured error carrying the context needed to log it
type Error struct {
	Level   string      `json:"level"`
	Err     error       `json:"error"`
	Context interface{} `json:"context"`
	Message string      `json:"message"`
}

func (e *Error) Error() string {
	rerr := struct {
		Level   string      `json:"level"`
		Err     string      `json:"error"`
		Context interface{} `json:"context"`
		Message string      `json:"message"`
	}{
		Level:   e.Level,
		Context: e.Context,
		Message: e.Message,
	}
	if e.Err != nil {
		rerr.Err = e.Err.Error()
	}
	s, err := json.Marshal(rerr)
	if err != nil {
		log.Fatal("unable to marshal error: ", err)
	}

	return string(s)
}

// Unwrap exposes the underlying error to errors.Is and errors.As
func (e *Error) Unwrap() error {
	return e.Err
}

// LogValue renders the error as a group when passed to a slog logger
func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("level", e.Level),
		slog.String("message", e.Message),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	if e.Context != nil {
		attrs = append(attrs, slog.Any("context", e.Context))
	}

	return slog.GroupValue(attrs...)
}

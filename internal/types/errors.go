package types

import "errors"

var (
	// ErrDatasetUnavailable means the correlation tables were never built.
	ErrDatasetUnavailable = errors.New("dataset unavailable")
	// ErrInvalidInput means a required request field is missing or out of range.
	ErrInvalidInput = errors.New("invalid input")
)

type ErrorKind string

const (
	KindDatasetUnavailable ErrorKind = "DatasetUnavailable"
	KindInvalidInput       ErrorKind = "InvalidInput"
	KindInternal           ErrorKind = "Internal"
)

// ErrorResult is the well-formed error object returned in place of a result.
type ErrorResult struct {
	Error string    `json:"error"`
	Kind  ErrorKind `json:"kind"`
}

func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrDatasetUnavailable):
		return KindDatasetUnavailable
	case errors.Is(err, ErrInvalidInput):
		return KindInvalidInput
	default:
		return KindInternal
	}
}

func NewErrorResult(err error) ErrorResult {
	return ErrorResult{Error: err.Error(), Kind: KindOf(err)}
}

package client

import "errors"

var (
	ErrNoDataOperator   = errors.New("no data operator provided")
	ErrInvalidOperation = errors.New("invalid declared operation")
	ErrReadingInput     = errors.New("error reading input payloads")
)

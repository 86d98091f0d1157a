package service

import (
	"errors"
	"fmt"

	"github.com/latenitesite/mattermost-mobile/models"
)

var (
	// ErrUnknownTable matches every [UnknownTableError].
	ErrUnknownTable = errors.New("unknown table")

	ErrInvalidDescriptor = errors.New("invalid descriptor")
	ErrMixedScopes       = errors.New("batch spans default and server databases")
)

// UnknownTableError is returned for a table that is not registered, or that
// is not accepted by the handler it was passed to. Nothing is queried or
// written when it is returned.
type UnknownTableError struct {
	Table models.TableName
}

func (e *UnknownTableError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownTable, e.Table)
}

func (e *UnknownTableError) Is(target error) bool {
	return target == ErrUnknownTable
}

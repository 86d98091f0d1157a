package operator

import (
	"errors"
	"fmt"

	"github.com/latenitesite/mattermost-mobile/models"
)

// ErrValidation matches every [ValidationError] via [errors.Is].
var ErrValidation = errors.New("payload validation failed")

// ErrNoKeyFields is returned when a key is requested for a table that has
// no registered key fields.
var ErrNoKeyFields = errors.New("table has no key fields")

// ValidationError reports a payload that cannot be turned into a record:
// a missing or malformed key, a missing required field or a field of the
// wrong type.
type ValidationError struct {
	Table  models.TableName
	Field  string
	Reason string
}

func newValidationError(table models.TableName, field, reason string) *ValidationError {
	return &ValidationError{Table: table, Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid %s payload: %s", e.Table, e.Reason)
	}
	return fmt.Sprintf("invalid %s payload: field %q: %s", e.Table, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

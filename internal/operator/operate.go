// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package operator

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/latenitesite/mattermost-mobile/models"
)

// Operator prepares the write of one payload. existing is nil when the
// payload's key is not stored yet.
type Operator func(value models.Payload, existing *models.Row) (models.Descriptor, error)

// newRecordID generates ids for records whose key is not their id. Time
// ordered v7 ids are preferred.
var newRecordID = func() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v7.String()
}

// recordSpec describes how a payload becomes a record of type T.
type recordSpec[T any] struct {
	table models.TableName
	// requiredOnCreate lists payload fields a new record cannot do without.
	requiredOnCreate []string
	// newRecord returns a record holding the defaults of absent fields.
	newRecord func() *T
	// merge adjusts next against the stored record on update.
	merge func(next, prev *T)
}

func (s recordSpec[T]) operate(value models.Payload, existing *models.Row) (models.Descriptor, error) {
	fields := tableKeys[s.table]

	key, err := deriveKey(s.table, fields, value)
	if err != nil {
		return models.Descriptor{}, err
	}
	if existing != nil && existing.Key != key {
		return models.Descriptor{}, fmt.Errorf("stored %s row key %q does not match payload key %q", s.table, existing.Key, key)
	}

	op := models.OperationCreate
	merged := make(map[string]any, len(value)+1)

	var prev *T
	if existing != nil {
		op = models.OperationUpdate
		if len(existing.Data) > 0 {
			if err = json.Unmarshal(existing.Data, &merged); err != nil {
				return models.Descriptor{}, fmt.Errorf("decode stored %s row %q: %w", s.table, key, err)
			}
		}
		if s.merge != nil {
			prev = s.newRecord()
			if err = decodeMap(merged, prev); err != nil {
				return models.Descriptor{}, fmt.Errorf("decode stored %s row %q: %w", s.table, key, err)
			}
		}
	} else {
		for _, field := range s.requiredOnCreate {
			if !value.Has(field) {
				return models.Descriptor{}, newValidationError(s.table, field, "required to create a record")
			}
		}
	}

	// top-level merge: payload fields replace stored ones, the rest is kept
	for k, v := range value {
		merged[k] = v
	}

	id := recordID(fields, key, value, existing)
	merged["id"] = id

	rec := s.newRecord()
	if err = decodeMap(merged, rec); err != nil {
		return models.Descriptor{}, s.validationFromDecode(err)
	}
	if prev != nil {
		s.merge(rec, prev)
	}

	return models.Descriptor{
		Table:     s.table,
		Operation: op,
		Key:       key,
		ID:        id,
		Record:    rec,
	}, nil
}

func (s recordSpec[T]) validationFromDecode(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return newValidationError(s.table, typeErr.Field, fmt.Sprintf("cannot use %s value as %s", typeErr.Value, typeErr.Type))
	}
	return newValidationError(s.table, "", err.Error())
}

// recordID keeps the stored id on update. id-keyed tables use the key;
// other tables take the payload id or generate one.
func recordID(fields []KeyField, key string, value models.Payload, existing *models.Row) string {
	if isIDKeyed(fields) {
		return key
	}
	if existing != nil && existing.ID != "" {
		return existing.ID
	}
	if id, ok := value.String("id"); ok && id != "" {
		return id
	}
	return newRecordID()
}

func decodeMap(m map[string]any, dst any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// widen keeps the widest known [earliest, latest] range. Zero means unknown.
func widen(earliest, latest *int64, prevEarliest, prevLatest int64) {
	if prevEarliest != 0 && (*earliest == 0 || prevEarliest < *earliest) {
		*earliest = prevEarliest
	}
	if prevLatest > *latest {
		*latest = prevLatest
	}
}

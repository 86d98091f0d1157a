// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// OperationType is the write a caller declares or a descriptor carries.
//
// A declared operation is only a hint: reconciliation always creates when
// the key is not stored yet and always updates when it is.
type OperationType int

const (
	OperationCreate OperationType = iota + 1
	OperationUpdate
)

func (o OperationType) String() string {
	switch o {
	case OperationCreate:
		return "create"
	case OperationUpdate:
		return "update"
	default:
		return "none"
	}
}

// Valid reports whether o is one of the two write operations.
func (o OperationType) Valid() bool {
	return o == OperationCreate || o == OperationUpdate
}

// ParseOperationType maps "create"/"update" to an OperationType. Any other
// input returns the zero value and false.
func ParseOperationType(s string) (OperationType, bool) {
	switch s {
	case "create":
		return OperationCreate, true
	case "update":
		return OperationUpdate, true
	default:
		return 0, false
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package operator turns raw payloads into prepared write descriptors.
//
// Every entity family has one record operator (OperateAppRecord,
// OperatePostRecord, ...). An operator receives the payload and, when the
// key is already stored, a snapshot of the stored row. It never touches
// storage: with no row it prepares a create seeded from the record defaults,
// with a row it prepares an update that keeps every stored field the payload
// does not mention.
//
// The package also owns the static table registry used by the handlers to
// find a table's key fields, its database scope and its operator.
package operator

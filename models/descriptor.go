// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// Descriptor is a prepared, not yet applied, mutation of a single row.
//
// Operation is always OperationCreate or OperationUpdate: the committer
// applies it as-is and never re-derives intent.
type Descriptor struct {
	Table     TableName
	Operation OperationType
	// Key is the business key the row is stored under.
	Key string
	// ID is the record id written into the row.
	ID string
	// Record is a pointer to the populated record struct of Table.
	Record any
}

// Validate checks the descriptor is complete enough to be committed.
func (d Descriptor) Validate() error {
	if !d.Operation.Valid() {
		return fmt.Errorf("descriptor %s/%q: invalid operation %d", d.Table, d.Key, d.Operation)
	}
	if d.Table == "" || d.Key == "" || d.ID == "" {
		return fmt.Errorf("descriptor %s/%q: table, key and id are required", d.Table, d.Key)
	}
	if d.Record == nil {
		return fmt.Errorf("descriptor %s/%q: record is nil", d.Table, d.Key)
	}
	return nil
}

// CommitResult summarizes a committed batch.
type CommitResult struct {
	Created int
	Updated int
}

// Total returns the number of rows written.
func (r CommitResult) Total() int {
	return r.Created + r.Updated
}

// Add accumulates a descriptor's operation into the result.
func (r *CommitResult) Add(op OperationType) {
	switch op {
	case OperationCreate:
		r.Created++
	case OperationUpdate:
		r.Updated++
	}
}

package models

import (
	"time"

	"github.com/goccy/go-json"
)

// Row is a snapshot of a stored record, passed by value into record
// operators. Data holds the record encoded as JSON.
type Row struct {
	Table     TableName
	Key       string
	ID        string
	Data      []byte
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Decode unmarshals the row data into dst, which must be a pointer to the
// record struct of the row's table.
func (r Row) Decode(dst any) error {
	return json.Unmarshal(r.Data, dst)
}

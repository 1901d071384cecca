package db

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo/options"
)

// RecordCollection defines the read operations the bulk loader needs.
type RecordCollection interface {
	FindRecords(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (RecordCursor, error)
}

// RecordCursor defines the interface for record cursor operations.
type RecordCursor interface {
	All(ctx context.Context, out interface{}) error
	Close(ctx context.Context) error
}

package batch

import "context"

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mock_batch

type (
	// Store is the document store holding one document per batch.
	// WriteBatchField replaces the whole array of field; it is all-or-nothing.
	Store interface {
		ReadBatch(ctx context.Context, id string) (Batch, error)
		WriteBatchField(ctx context.Context, id, field string, seq []Record) error
	}

	Repository interface {
		Store

		QueryBatches(ctx context.Context) ([]Batch, error)
		CreateBatch(ctx context.Context, b Batch) (Batch, error)
		DeleteBatch(ctx context.Context, id string) error
	}
)

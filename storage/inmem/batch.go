package inmemdb

import (
	"context"

	"github.com/google/uuid"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/batch"
)

type batchRepository struct {
	db *batchTable
}

var _ batch.Repository = (*batchRepository)(nil)

func NewBatchRepository(db *DB) batch.Repository {
	return &batchRepository{db: db.batch}
}

// copyBatch detaches the material sequences from the stored ones.
func copyBatch(b batch.Batch) batch.Batch {
	for _, kind := range batch.Kinds {
		if seq := b.Materials(kind); seq != nil {
			b = b.WithMaterials(kind, copyRecords(seq))
		}
	}
	return b
}

func copyRecords(seq []batch.Record) []batch.Record {
	out := make([]batch.Record, len(seq))
	for i, rec := range seq {
		c := make(batch.Record, len(rec))
		for k, v := range rec {
			c[k] = v
		}
		out[i] = c
	}
	return out
}

func (repo *batchRepository) ReadBatch(_ context.Context, id string) (batch.Batch, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if b, ok := repo.db.table[id]; ok {
		return copyBatch(*b), nil
	}
	return batch.Batch{}, core.NewNotFoundError("batch", id)
}

func (repo *batchRepository) WriteBatchField(_ context.Context, id, field string, seq []batch.Record) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	b, ok := repo.db.table[id]
	if !ok {
		return core.NewNotFoundError("batch", id)
	}
	kind, err := batch.ParseKind(field)
	if err != nil {
		return err
	}
	*b = b.WithMaterials(kind, copyRecords(seq))
	return nil
}

func (repo *batchRepository) QueryBatches(_ context.Context) ([]batch.Batch, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	batches := make([]batch.Batch, 0, len(repo.db.order))
	for _, id := range repo.db.order {
		batches = append(batches, copyBatch(*repo.db.table[id]))
	}
	return batches, nil
}

func (repo *batchRepository) CreateBatch(_ context.Context, b batch.Batch) (batch.Batch, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	stored := copyBatch(b)
	repo.db.table[b.ID] = &stored
	repo.db.order = append(repo.db.order, b.ID)
	return b, nil
}

func (repo *batchRepository) DeleteBatch(_ context.Context, id string) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.table[id]; !ok {
		return core.NewNotFoundError("batch", id)
	}
	delete(repo.db.table, id)
	for i, oid := range repo.db.order {
		if oid == id {
			repo.db.order = append(repo.db.order[:i], repo.db.order[i+1:]...)
			break
		}
	}
	return nil
}

package firestoredb

import (
	"context"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/paatthya/console/core/batch"
)

type batchRepository struct {
	client *firestore.Client
}

var _ batch.Repository = (*batchRepository)(nil)

func NewBatchRepository(client *firestore.Client) batch.Repository {
	return &batchRepository{client: client}
}

func (repo *batchRepository) col() *firestore.CollectionRef {
	return repo.client.Collection(batchesCollection)
}

func decodeRecords(data map[string]interface{}, field string) []batch.Record {
	items, _ := data[field].([]interface{})
	seq := make([]batch.Record, 0, len(items))
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			seq = append(seq, batch.RawRecord(item))
			continue
		}
		rec := make(batch.Record, len(m))
		for k, v := range m {
			rec[k] = v
		}
		seq = append(seq, rec)
	}
	return seq
}

func decodeBatch(id string, data map[string]interface{}) batch.Batch {
	return batch.Batch{
		ID:                   id,
		Title:                str(data, "title"),
		Name:                 str(data, "name"),
		Description:          str(data, "description"),
		ImgURL:               str(data, "imgUrl"),
		Price:                number(data, "price"),
		MRP:                  number(data, "mrp"),
		LimitedTimeDeal:      boolean(data, "limitedTimeDeal"),
		StartDate:            str(data, "startDate"),
		CourseCompletionDate: str(data, "courseCompletionDate"),
		CreatedAt:            str(data, "createdAt"),
		Lectures:             decodeRecords(data, batch.FieldLectures),
		Notes:                decodeRecords(data, batch.FieldNotes),
		Assignment:           decodeRecords(data, batch.FieldAssignment),
	}
}

func encodeRecords(seq []batch.Record) []interface{} {
	out := make([]interface{}, len(seq))
	for i, rec := range seq {
		if raw, ok := rec.Raw(); ok {
			out[i] = raw
			continue
		}
		out[i] = map[string]interface{}(rec)
	}
	return out
}

func encodeBatch(b batch.Batch) map[string]interface{} {
	data := map[string]interface{}{
		"title":                b.Title,
		"description":          b.Description,
		"imgUrl":               b.ImgURL,
		"price":                b.Price,
		"mrp":                  b.MRP,
		"limitedTimeDeal":      b.LimitedTimeDeal,
		"startDate":            b.StartDate,
		"courseCompletionDate": b.CourseCompletionDate,
		"createdAt":            b.CreatedAt,
		batch.FieldLectures:    encodeRecords(b.Lectures),
		batch.FieldNotes:       encodeRecords(b.Notes),
		batch.FieldAssignment:  encodeRecords(b.Assignment),
	}
	if b.Name != "" && b.Name != b.Title {
		data["name"] = b.Name
	}
	return data
}

func (repo *batchRepository) ReadBatch(ctx context.Context, id string) (batch.Batch, error) {
	snap, err := repo.col().Doc(id).Get(ctx)
	if err != nil {
		return batch.Batch{}, storeError("reading batch", "batch", id, err)
	}
	return decodeBatch(snap.Ref.ID, snap.Data()), nil
}

// WriteBatchField replaces the whole array of field. Update fails when the document
// is gone, it never recreates it.
func (repo *batchRepository) WriteBatchField(ctx context.Context, id, field string, seq []batch.Record) error {
	_, err := repo.col().Doc(id).Update(ctx, []firestore.Update{
		{Path: field, Value: encodeRecords(seq)},
	})
	return storeError("writing "+field, "batch", id, err)
}

func (repo *batchRepository) QueryBatches(ctx context.Context) ([]batch.Batch, error) {
	iter := repo.col().Documents(ctx)
	defer iter.Stop()

	batches := make([]batch.Batch, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, storeError("querying batches", "batches", "", err)
		}
		batches = append(batches, decodeBatch(snap.Ref.ID, snap.Data()))
	}
	return batches, nil
}

func (repo *batchRepository) CreateBatch(ctx context.Context, b batch.Batch) (batch.Batch, error) {
	ref, _, err := repo.col().Add(ctx, encodeBatch(b))
	if err != nil {
		return batch.Batch{}, storeError("creating batch", "batch", "", err)
	}
	b.ID = ref.ID
	return b, nil
}

func (repo *batchRepository) DeleteBatch(ctx context.Context, id string) error {
	// Delete succeeds on missing documents unless a precondition is set
	_, err := repo.col().Doc(id).Delete(ctx, firestore.Exists)
	return storeError("deleting batch", "batch", id, err)
}

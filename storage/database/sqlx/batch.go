package sqlxrepos

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/volatiletech/null/v8"

	"github.com/paatthya/console/core"
	"github.com/paatthya/console/core/batch"
)

// material arrays are stored as JSONB columns named after the document fields
var materialColumns = map[string]string{
	batch.FieldLectures:   "lectures",
	batch.FieldNotes:      "notes",
	batch.FieldAssignment: "assignment",
}

type batchRow struct {
	ID                   string      `db:"id"`
	Title                string      `db:"title"`
	Name                 null.String `db:"name"`
	Description          string      `db:"description"`
	ImgURL               string      `db:"img_url"`
	Price                float64     `db:"price"`
	MRP                  float64     `db:"mrp"`
	LimitedTimeDeal      bool        `db:"limited_time_deal"`
	StartDate            null.String `db:"start_date"`
	CourseCompletionDate null.String `db:"course_completion_date"`
	CreatedAt            string      `db:"created_at"`
	Lectures             []byte      `db:"lectures"`
	Notes                []byte      `db:"notes"`
	Assignment           []byte      `db:"assignment"`
}

const batchColumns = `id, title, name, description, img_url, price, mrp, limited_time_deal,
	start_date, course_completion_date, created_at, lectures, notes, assignment`

func decodeRecords(data []byte) ([]batch.Record, error) {
	seq := make([]batch.Record, 0)
	if len(data) == 0 {
		return seq, nil
	}
	if err := json.Unmarshal(data, &seq); err != nil {
		return nil, err
	}
	return seq, nil
}

func encodeRecords(seq []batch.Record) ([]byte, error) {
	if seq == nil {
		seq = []batch.Record{}
	}
	return json.Marshal(seq)
}

func (row batchRow) batch() (batch.Batch, error) {
	b := batch.Batch{
		ID:                   row.ID,
		Title:                row.Title,
		Name:                 row.Name.String,
		Description:          row.Description,
		ImgURL:               row.ImgURL,
		Price:                row.Price,
		MRP:                  row.MRP,
		LimitedTimeDeal:      row.LimitedTimeDeal,
		StartDate:            row.StartDate.String,
		CourseCompletionDate: row.CourseCompletionDate.String,
		CreatedAt:            row.CreatedAt,
	}
	var err error
	if b.Lectures, err = decodeRecords(row.Lectures); err != nil {
		return b, err
	}
	if b.Notes, err = decodeRecords(row.Notes); err != nil {
		return b, err
	}
	b.Assignment, err = decodeRecords(row.Assignment)
	return b, err
}

type batchRepository struct {
	db *sqlx.DB
}

var _ batch.Repository = (*batchRepository)(nil)

func NewBatchRepository(db *sqlx.DB) batch.Repository {
	return &batchRepository{db: db}
}

func (repo *batchRepository) ReadBatch(ctx context.Context, id string) (batch.Batch, error) {
	var row batchRow
	err := repo.db.GetContext(ctx, &row, `SELECT `+batchColumns+` FROM batches WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return batch.Batch{}, core.NewNotFoundError("batch", id)
	}
	if err != nil {
		return batch.Batch{}, core.NewStoreError("reading batch", err)
	}
	b, err := row.batch()
	if err != nil {
		return batch.Batch{}, core.NewStoreError("decoding batch", err)
	}
	return b, nil
}

// WriteBatchField replaces the whole JSONB array of field in a single statement.
func (repo *batchRepository) WriteBatchField(ctx context.Context, id, field string, seq []batch.Record) error {
	col, ok := materialColumns[field]
	if !ok {
		return core.NewStoreError("writing "+field, errUnknownField)
	}
	data, err := encodeRecords(seq)
	if err != nil {
		return core.NewStoreError("encoding "+field, err)
	}
	res, err := repo.db.ExecContext(ctx, `UPDATE batches SET `+col+` = $1 WHERE id = $2`, data, id)
	if err != nil {
		return core.NewStoreError("writing "+field, err)
	}
	return checkAffected(res, "batch", id)
}

func (repo *batchRepository) QueryBatches(ctx context.Context) ([]batch.Batch, error) {
	rows := make([]batchRow, 0)
	if err := repo.db.SelectContext(ctx, &rows, `SELECT `+batchColumns+` FROM batches ORDER BY seq`); err != nil {
		return nil, core.NewStoreError("querying batches", err)
	}
	batches := make([]batch.Batch, 0, len(rows))
	for _, row := range rows {
		b, err := row.batch()
		if err != nil {
			return nil, core.NewStoreError("decoding batch "+row.ID, err)
		}
		batches = append(batches, b)
	}
	return batches, nil
}

func (repo *batchRepository) CreateBatch(ctx context.Context, b batch.Batch) (batch.Batch, error) {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	row := batchRow{
		ID:                   b.ID,
		Title:                b.Title,
		Name:                 null.NewString(b.Name, b.Name != "" && b.Name != b.Title),
		Description:          b.Description,
		ImgURL:               b.ImgURL,
		Price:                b.Price,
		MRP:                  b.MRP,
		LimitedTimeDeal:      b.LimitedTimeDeal,
		StartDate:            null.NewString(b.StartDate, b.StartDate != ""),
		CourseCompletionDate: null.NewString(b.CourseCompletionDate, b.CourseCompletionDate != ""),
		CreatedAt:            b.CreatedAt,
	}
	var err error
	if row.Lectures, err = encodeRecords(b.Lectures); err != nil {
		return batch.Batch{}, core.NewStoreError("encoding lectures", err)
	}
	if row.Notes, err = encodeRecords(b.Notes); err != nil {
		return batch.Batch{}, core.NewStoreError("encoding notes", err)
	}
	if row.Assignment, err = encodeRecords(b.Assignment); err != nil {
		return batch.Batch{}, core.NewStoreError("encoding assignment", err)
	}

	_, err = repo.db.NamedExecContext(ctx, `INSERT INTO batches (`+batchColumns+`) VALUES (
		:id, :title, :name, :description, :img_url, :price, :mrp, :limited_time_deal,
		:start_date, :course_completion_date, :created_at, :lectures, :notes, :assignment)`, row)
	if err != nil {
		return batch.Batch{}, core.NewStoreError("creating batch", err)
	}
	return b, nil
}

func (repo *batchRepository) DeleteBatch(ctx context.Context, id string) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM batches WHERE id = $1`, id)
	if err != nil {
		return core.NewStoreError("deleting batch", err)
	}
	return checkAffected(res, "batch", id)
}

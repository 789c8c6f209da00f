package batch

import (
	"context"
	"errors"
	"time"

	"github.com/paatthya/console/core"
)

const dateLayout = "2006-01-02"

var errTitleBlank = errors.New("title cannot be empty")

// LoadFor maps the stored sequence of kind to views, one per record, in stored order.
func LoadFor(b Batch, kind Kind, idFunc IDFunc) []MaterialView {
	seq := b.Materials(kind)
	views := make([]MaterialView, len(seq))
	for i, rec := range seq {
		views[i] = view(kind, i, rec, idFunc)
	}
	return views
}

// Catalog holds one batch snapshot and applies material edits to it.
// Each edit is a read-modify-write of one whole array field; the snapshot is only
// replaced once the store acknowledged the write.
// A Catalog must not be used from several goroutines.
type Catalog struct {
	store   Store
	batch   Batch
	idFunc  IDFunc
	nowFunc func() time.Time
	views   map[Kind][]MaterialView
}

type CatalogOption func(*Catalog)

// WithIDFunc sets how IDs are synthesized for records without one. Defaults to RandomID.
func WithIDFunc(f IDFunc) CatalogOption {
	return func(c *Catalog) { c.idFunc = f }
}

// WithClock sets the clock used for dateTimeStamp.
func WithClock(now func() time.Time) CatalogOption {
	return func(c *Catalog) { c.nowFunc = now }
}

func NewCatalog(store Store, b Batch, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		store:   store,
		batch:   b.Normalize(),
		idFunc:  RandomID,
		nowFunc: time.Now,
		views:   make(map[Kind][]MaterialView, len(Kinds)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Batch returns the current snapshot.
func (c *Catalog) Batch() Batch { return c.batch }

// LoadFor returns the views of kind. IDs passed to UpdateMaterial and DeleteMaterial
// are resolved against the last list returned here.
func (c *Catalog) LoadFor(kind Kind) []MaterialView {
	if views, ok := c.views[kind]; ok {
		return views
	}
	views := LoadFor(c.batch, kind, c.idFunc)
	c.views[kind] = views
	return views
}

// position resolves a view ID to its index in the stored sequence.
func (c *Catalog) position(kind Kind, id string) (int, error) {
	for i, v := range c.LoadFor(kind) {
		if v.ID == id {
			return i, nil
		}
	}
	return -1, core.NewNotFoundError(kind.Singular(), id)
}

func (c *Catalog) today() string {
	return c.nowFunc().UTC().Format(dateLayout)
}

func cleanInput(in MaterialInput) (MaterialInput, error) {
	in.Title = core.CleanString(in.Title)
	in.URL = core.CleanString(in.URL)
	if in.Title == "" {
		return in, core.NewValidationError(errTitleBlank, core.FieldError{Field: "title", Error: errTitleBlank.Error()})
	}
	return in, nil
}

// AddMaterial appends a new record to the sequence of kind.
func (c *Catalog) AddMaterial(ctx context.Context, kind Kind, in MaterialInput) (Batch, error) {
	if err := kind.validate(); err != nil {
		return c.batch, err
	}
	in, err := cleanInput(in)
	if err != nil {
		return c.batch, err
	}

	curr := c.batch.Materials(kind)
	seq := make([]Record, len(curr), len(curr)+1)
	copy(seq, curr)
	seq = append(seq, newRecord(kind, in, c.today()))

	return c.write(ctx, kind, seq)
}

// UpdateMaterial replaces the record behind the view id, keeping its other fields.
func (c *Catalog) UpdateMaterial(ctx context.Context, kind Kind, id string, in MaterialInput) (Batch, error) {
	if err := kind.validate(); err != nil {
		return c.batch, err
	}
	in, err := cleanInput(in)
	if err != nil {
		return c.batch, err
	}
	pos, err := c.position(kind, id)
	if err != nil {
		return c.batch, err
	}

	curr := c.batch.Materials(kind)
	seq := make([]Record, len(curr))
	copy(seq, curr)
	seq[pos] = overlay(kind, curr[pos], in)

	return c.write(ctx, kind, seq)
}

// DeleteMaterial removes the record behind the view id.
func (c *Catalog) DeleteMaterial(ctx context.Context, kind Kind, id string) (Batch, error) {
	if err := kind.validate(); err != nil {
		return c.batch, err
	}
	pos, err := c.position(kind, id)
	if err != nil {
		return c.batch, err
	}

	curr := c.batch.Materials(kind)
	seq := make([]Record, 0, len(curr)-1)
	seq = append(seq, curr[:pos]...)
	seq = append(seq, curr[pos+1:]...)

	return c.write(ctx, kind, seq)
}

func (c *Catalog) write(ctx context.Context, kind Kind, seq []Record) (Batch, error) {
	field := kind.StoredField()
	if err := c.store.WriteBatchField(ctx, c.batch.ID, field, seq); err != nil {
		if core.IsNotFound(err) || core.IsStore(err) {
			return c.batch, err
		}
		return c.batch, core.NewStoreError("writing "+field, err)
	}
	c.batch = c.batch.WithMaterials(kind, seq)
	delete(c.views, kind)
	return c.batch, nil
}

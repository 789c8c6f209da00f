package batch

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

type Service struct {
	repo     Repository
	validate *validator.Validate
	idFunc   IDFunc
	nowFunc  func() time.Time
}

// NewService returns a batch Service. Material IDs are content derived (see ContentID)
// since every call starts from a freshly read batch.
func NewService(repo Repository, validate *validator.Validate) *Service {
	return &Service{
		repo:     repo,
		validate: validate,
		idFunc:   ContentID,
		nowFunc:  time.Now,
	}
}

func (svc *Service) Query(ctx context.Context) ([]Batch, error) {
	batches, err := svc.repo.QueryBatches(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying batches")
	}
	for i := range batches {
		batches[i] = batches[i].Normalize()
	}
	return batches, nil
}

func (svc *Service) Get(ctx context.Context, id string) (Batch, error) {
	b, err := svc.repo.ReadBatch(ctx, id)
	if err != nil {
		return Batch{}, errors.Wrap(err, "reading batch")
	}
	return b.Normalize(), nil
}

func (svc *Service) Create(ctx context.Context, nb NewBatch) (Batch, error) {
	if err := nb.Validate(svc.validate); err != nil {
		return Batch{}, err
	}
	b, err := svc.repo.CreateBatch(ctx, nb.batch(svc.nowFunc()))
	if err != nil {
		return Batch{}, errors.Wrap(err, "creating batch")
	}
	return b.Normalize(), nil
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	return errors.Wrap(svc.repo.DeleteBatch(ctx, id), "deleting batch")
}

func (svc *Service) catalog(ctx context.Context, id string, kind Kind) (*Catalog, error) {
	if err := kind.validate(); err != nil {
		return nil, err
	}
	b, err := svc.repo.ReadBatch(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "reading batch")
	}
	return NewCatalog(svc.repo, b, WithIDFunc(svc.idFunc), WithClock(svc.nowFunc)), nil
}

// Materials lists the materials of kind.
func (svc *Service) Materials(ctx context.Context, id string, kind Kind) ([]MaterialView, error) {
	c, err := svc.catalog(ctx, id, kind)
	if err != nil {
		return nil, err
	}
	return c.LoadFor(kind), nil
}

// AddMaterial adds a material and returns the refreshed list of kind.
func (svc *Service) AddMaterial(ctx context.Context, id string, kind Kind, in MaterialInput) ([]MaterialView, error) {
	c, err := svc.catalog(ctx, id, kind)
	if err != nil {
		return nil, err
	}
	if _, err := c.AddMaterial(ctx, kind, in); err != nil {
		return nil, errors.Wrapf(err, "adding %s", kind.Singular())
	}
	return c.LoadFor(kind), nil
}

// UpdateMaterial edits a material and returns the refreshed list of kind.
func (svc *Service) UpdateMaterial(ctx context.Context, id string, kind Kind, materialID string, in MaterialInput) ([]MaterialView, error) {
	c, err := svc.catalog(ctx, id, kind)
	if err != nil {
		return nil, err
	}
	if _, err := c.UpdateMaterial(ctx, kind, materialID, in); err != nil {
		return nil, errors.Wrapf(err, "updating %s", kind.Singular())
	}
	return c.LoadFor(kind), nil
}

// DeleteMaterial removes a material and returns the refreshed list of kind.
func (svc *Service) DeleteMaterial(ctx context.Context, id string, kind Kind, materialID string) ([]MaterialView, error) {
	c, err := svc.catalog(ctx, id, kind)
	if err != nil {
		return nil, err
	}
	if _, err := c.DeleteMaterial(ctx, kind, materialID); err != nil {
		return nil, errors.Wrapf(err, "deleting %s", kind.Singular())
	}
	return c.LoadFor(kind), nil
}

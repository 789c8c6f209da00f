package batch

import (
	"math"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/paatthya/console/core"
)

// Batch is a course offering. It owns the lectures, notes and assignments of the course.
type Batch struct {
	ID                   string   `json:"id"`
	Title                string   `json:"title"`
	Name                 string   `json:"name,omitempty"`
	Description          string   `json:"description"`
	ImgURL               string   `json:"imgUrl"`
	Price                float64  `json:"price"`
	MRP                  float64  `json:"mrp"`
	LimitedTimeDeal      bool     `json:"limitedTimeDeal"`
	StartDate            string   `json:"startDate,omitempty"`            // YYYY-MM-DD
	CourseCompletionDate string   `json:"courseCompletionDate,omitempty"` // YYYY-MM-DD
	CreatedAt            string   `json:"createdAt,omitempty"`            // RFC3339
	Lectures             []Record `json:"lectures"`
	Notes                []Record `json:"notes"`
	Assignment           []Record `json:"assignment"`
}

// Normalize fills the display name from the title and replaces missing material arrays.
func (b Batch) Normalize() Batch {
	if b.Name == "" {
		b.Name = b.Title
	}
	if b.Lectures == nil {
		b.Lectures = []Record{}
	}
	if b.Notes == nil {
		b.Notes = []Record{}
	}
	if b.Assignment == nil {
		b.Assignment = []Record{}
	}
	return b
}

// DiscountPercent is the rounded discount of Price over MRP, 0 when there is none.
func (b Batch) DiscountPercent() int {
	if b.MRP <= 0 || b.MRP <= b.Price {
		return 0
	}
	return int(math.Round((b.MRP - b.Price) / b.MRP * 100))
}

// Materials returns the stored sequence of kind.
func (b Batch) Materials(kind Kind) []Record {
	switch kind {
	case Lectures:
		return b.Lectures
	case Notes:
		return b.Notes
	case Assignments:
		return b.Assignment
	}
	return nil
}

// WithMaterials returns a copy of b with the sequence of kind replaced.
func (b Batch) WithMaterials(kind Kind, seq []Record) Batch {
	switch kind {
	case Lectures:
		b.Lectures = seq
	case Notes:
		b.Notes = seq
	case Assignments:
		b.Assignment = seq
	}
	return b
}

// NewBatch contains information needed to create a new Batch.
type NewBatch struct {
	Title                string  `json:"title" validate:"notblank"`
	Description          string  `json:"description"`
	ImgURL               string  `json:"imgUrl" validate:"omitempty,url"`
	Price                float64 `json:"price" validate:"gte=0"`
	MRP                  float64 `json:"mrp" validate:"gte=0"`
	LimitedTimeDeal      bool    `json:"limitedTimeDeal"`
	StartDate            string  `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	CourseCompletionDate string  `json:"courseCompletionDate" validate:"omitempty,datetime=2006-01-02"`
}

func (nb *NewBatch) Validate(validate *validator.Validate) error {
	nb.Title = core.CleanString(nb.Title)
	nb.ImgURL = core.CleanString(nb.ImgURL)
	nb.StartDate = core.CleanString(nb.StartDate)
	nb.CourseCompletionDate = core.CleanString(nb.CourseCompletionDate)
	return validate.Struct(nb)
}

func (nb NewBatch) batch(now time.Time) Batch {
	return Batch{
		Title:                nb.Title,
		Description:          nb.Description,
		ImgURL:               nb.ImgURL,
		Price:                nb.Price,
		MRP:                  nb.MRP,
		LimitedTimeDeal:      nb.LimitedTimeDeal,
		StartDate:            nb.StartDate,
		CourseCompletionDate: nb.CourseCompletionDate,
		CreatedAt:            now.UTC().Format(time.RFC3339),
		Lectures:             []Record{},
		Notes:                []Record{},
		Assignment:           []Record{},
	}
}

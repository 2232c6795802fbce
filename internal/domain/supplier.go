package domain

import (
	"strconv"
	"time"
)

// Supplier is a registered supplier offer in the supplier registry. Unlike
// the loose Record type used at the matching boundary, suppliers are
// structured on the way into storage and converted to records on the way
// out so the engine can rank them like any other candidate.
type Supplier struct {
	ID             int64     `db:"id" json:"id"`
	Name           string    `db:"name" json:"name" validate:"required,min=1,max=255"`
	Material       string    `db:"material" json:"material" validate:"required,min=1,max=255"`
	Purity         float64   `db:"purity" json:"purity" validate:"min=0,max=100"`
	DeliveryRating float64   `db:"delivery_rating" json:"delivery_rating" validate:"min=0,max=10"`
	MinOrder       float64   `db:"min_order" json:"min_order" validate:"min=0"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// AsRecord converts the supplier into a candidate record the engine can
// score. Purity is expressed as a percentage string and the minimum order
// as a monthly rate, matching the units the rubric parses by default.
// Registry-only attributes ride along as passthrough fields.
func (s Supplier) AsRecord() Record {
	return Record{
		FieldMaterial:              s.Material,
		FieldPurity:                strconv.FormatFloat(s.Purity, 'g', -1, 64) + "%",
		FieldQuantity:              strconv.FormatFloat(s.MinOrder, 'g', -1, 64) + " kg/month",
		FieldTechnicalRequirements: []string{},
		"supplier_name":            s.Name,
		"delivery_rating":          s.DeliveryRating,
	}
}

package product

import (
	"github.com/furnimed/catalog-admin/internal/catalog"
	"github.com/furnimed/catalog-admin/internal/core/common/validation"
)

// ProductDTO accepts the loosely typed payloads the admin UI submits: price
// may arrive as a quoted number, in_stock as "true"/"false".
type ProductDTO struct {
	Name        string           `json:"name"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Material    string           `json:"material"`
	Dimensions  string           `json:"dimensions"`
	Price       *catalog.Decimal `json:"price"`
	ImageURL    string           `json:"image_url"`
	InStock     catalog.Flag     `json:"in_stock"`
}

// Validate checks the required fields. Description and image_url are
// optional.
func (d ProductDTO) Validate() error {
	appErr := validation.NewValidator().
		Require("name", d.Name).
		Require("category", d.Category).
		Require("material", d.Material).
		Require("dimensions", d.Dimensions).
		Require("price", d.Price).
		Validate()
	if appErr != nil {
		return appErr
	}
	return nil
}

func (d ProductDTO) ToModel() *Product {
	return &Product{
		Name:        d.Name,
		Category:    d.Category,
		Description: d.Description,
		Material:    d.Material,
		Dimensions:  d.Dimensions,
		Price:       float64(*d.Price),
		ImageURL:    d.ImageURL,
		InStock:     bool(d.InStock),
	}
}

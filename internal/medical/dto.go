package medical

import (
	"time"

	errors "github.com/furnimed/catalog-admin/internal"
	"github.com/furnimed/catalog-admin/internal/catalog"
	"github.com/furnimed/catalog-admin/internal/core/common/validation"
)

// GoodDTO accepts the loosely typed payloads of both medical catalogs.
type GoodDTO struct {
	Name              string           `json:"name"`
	Category          string           `json:"category"`
	Availability      catalog.Flag     `json:"availability"`
	Description       string           `json:"description"`
	Manufacturer      string           `json:"manufacturer"`
	ImageURL          string           `json:"image_url"`
	ExpirationDate    string           `json:"expiration_date"`
	Price             *catalog.Decimal `json:"price"`
	Contraindications string           `json:"contraindications"`
}

// Validate checks the required fields; description, image_url and
// contraindications are optional.
func (d GoodDTO) Validate() error {
	appErr := validation.NewValidator().
		Require("name", d.Name).
		Require("category", d.Category).
		Require("manufacturer", d.Manufacturer).
		Require("expiration_date", d.ExpirationDate).
		Require("price", d.Price).
		Validate()
	if appErr != nil {
		return appErr
	}

	if _, err := d.expirationDate(); err != nil {
		return errors.NewValidationFieldError("expiration_date", "expiration_date must be a YYYY-MM-DD date", errors.ErrCodeValidationFailed)
	}
	return nil
}

func (d GoodDTO) expirationDate() (time.Time, error) {
	if t, err := time.Parse("2006-01-02", d.ExpirationDate); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, d.ExpirationDate)
}

func (d GoodDTO) ToModel() *Good {
	expiration, _ := d.expirationDate()
	return &Good{
		Name:              d.Name,
		Category:          d.Category,
		Availability:      bool(d.Availability),
		Description:       d.Description,
		Manufacturer:      d.Manufacturer,
		ImageURL:          d.ImageURL,
		ExpirationDate:    expiration,
		Price:             float64(*d.Price),
		Contraindications: d.Contraindications,
	}
}

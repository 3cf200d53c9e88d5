package employee

import (
	"time"

	errors "github.com/furnimed/catalog-admin/internal"
	"github.com/furnimed/catalog-admin/internal/catalog"
	"github.com/furnimed/catalog-admin/internal/core/common/validation"
)

// EmployeeDTO tolerates string representations of salary and
// experience_years the way the admin UI submits them.
type EmployeeDTO struct {
	FullName        string           `json:"full_name"`
	Position        string           `json:"position"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email"`
	HireDate        string           `json:"hire_date"`
	Salary          *catalog.Decimal `json:"salary"`
	ExperienceYears *catalog.Count   `json:"experience_years"`
	ImageURL        string           `json:"image_url"`
}

// Validate checks the required fields; email and image_url are optional.
func (d EmployeeDTO) Validate() error {
	appErr := validation.NewValidator().
		Require("full_name", d.FullName).
		Require("position", d.Position).
		Require("phone", d.Phone).
		Require("hire_date", d.HireDate).
		Require("salary", d.Salary).
		Require("experience_years", d.ExperienceYears).
		Validate()
	if appErr != nil {
		return appErr
	}

	if _, err := d.hireDate(); err != nil {
		return errors.NewValidationFieldError("hire_date", "hire_date must be a YYYY-MM-DD date", errors.ErrCodeValidationFailed)
	}
	return nil
}

func (d EmployeeDTO) hireDate() (time.Time, error) {
	if t, err := time.Parse("2006-01-02", d.HireDate); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, d.HireDate)
}

func (d EmployeeDTO) ToModel() *Employee {
	hireDate, _ := d.hireDate()
	return &Employee{
		FullName:        d.FullName,
		Position:        d.Position,
		Phone:           d.Phone,
		Email:           d.Email,
		HireDate:        hireDate,
		Salary:          float64(*d.Salary),
		ExperienceYears: int(*d.ExperienceYears),
		ImageURL:        d.ImageURL,
	}
}

package employee

import "time"

// Employee is one row of the staff register.
type Employee struct {
	ID              int64     `json:"id" gorm:"primaryKey"`
	FullName        string    `json:"full_name" gorm:"column:full_name;not null"`
	Position        string    `json:"position" gorm:"not null"`
	Phone           string    `json:"phone" gorm:"not null"`
	Email           string    `json:"email"`
	HireDate        time.Time `json:"hire_date" gorm:"column:hire_date;type:date;not null"`
	Salary          float64   `json:"salary" gorm:"type:decimal(18,2);not null"`
	ExperienceYears int       `json:"experience_years" gorm:"column:experience_years;not null"`
	ImageURL        string    `json:"image_url" gorm:"column:image_url"`
}

func (Employee) TableName() string {
	return "employees"
}

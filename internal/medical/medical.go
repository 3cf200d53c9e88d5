package medical

import "time"

// Good is one row of a medical catalog. The same shape backs two tables,
// medical_goods and medicines; the repository is bound to one of them at
// construction time.
type Good struct {
	ID                int64     `json:"id" gorm:"primaryKey"`
	Name              string    `json:"name" gorm:"not null"`
	Category          string    `json:"category" gorm:"not null"`
	Availability      bool      `json:"availability" gorm:"not null"`
	Description       string    `json:"description"`
	Manufacturer      string    `json:"manufacturer" gorm:"not null"`
	ImageURL          string    `json:"image_url" gorm:"column:image_url"`
	ExpirationDate    time.Time `json:"expiration_date" gorm:"column:expiration_date;not null"`
	Price             float64   `json:"price" gorm:"type:decimal(18,2);not null"`
	Contraindications string    `json:"contraindications"`
}

const (
	TableMedicalGoods = "medical_goods"
	TableMedicines    = "medicines"
)

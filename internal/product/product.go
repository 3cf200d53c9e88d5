package product

// Product is one row of the furniture catalog.
type Product struct {
	ID          int64   `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Category    string  `json:"category" gorm:"not null"`
	Description string  `json:"description"`
	Material    string  `json:"material" gorm:"not null"`
	Dimensions  string  `json:"dimensions" gorm:"not null"`
	Price       float64 `json:"price" gorm:"type:decimal(18,2);not null"`
	ImageURL    string  `json:"image_url" gorm:"column:image_url"`
	// no default tag: gorm would omit a false value on insert and let the
	// column default overwrite it
	InStock bool `json:"in_stock" gorm:"column:in_stock;not null"`
}

func (Product) TableName() string {
	return "products"
}

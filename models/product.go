package models

// CategoryOther is the synthetic category for ad-hoc, off-menu items
// entered at order time. It holds no persisted products.
const (
	CategoryOtherID   = "other"
	CategoryOtherName = "Otro"
)

type Product struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"not null" json:"name"`
	Price        float64 `gorm:"not null" json:"price"`
	Description  *string `gorm:"type:text" json:"description,omitempty"`
	CategoryID   string  `gorm:"index;not null" json:"category_id"`
	CategoryName string  `gorm:"not null" json:"category_name"`
}

// Category is a read-time aggregation of products by category id, not a
// stored entity.
type Category struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Products []Product `json:"products"`
}

package entities

import (
	"github.com/google/uuid"
)

type ProductItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ReceiptID   uuid.UUID `gorm:"type:uuid" json:"-"`
	ProductName string    `json:"productName"`
	Category    string    `json:"category"`    // macro category, e.g. "LATICINIOS"
	SubCategory string    `json:"subCategory"` // specific product type, e.g. "Leite"
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"` // "UN", "KG", "LT"
	UnitPrice   float64   `json:"unitPrice"`
	TotalPrice  float64   `json:"totalPrice"`

	// Back-reference to the owning receipt. Never serialized, so receipt ->
	// items -> receipt cannot loop in JSON.
	Receipt *Receipt `gorm:"foreignKey:ReceiptID" json:"-"`
	Timestamp
}

package entities

import (
	"time"

	"github.com/google/uuid"
)

type Receipt struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SupermarketName string    `json:"supermarketName"`
	Date            time.Time `json:"date"`
	TotalAmount     float64   `json:"totalAmount"`
	ImageURL        string    `json:"image_url,omitempty"`

	Items []*ProductItem `gorm:"foreignKey:ReceiptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	Timestamp
}

// RecomputeTotal re-derives TotalAmount from the items. Every mutation of an
// item must go through here so the stored total cannot drift.
func (r *Receipt) RecomputeTotal() {
	var total float64
	for _, item := range r.Items {
		total += item.TotalPrice
	}
	r.TotalAmount = total
}

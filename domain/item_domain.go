package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessUpdateItem = "item updated successfully"

	MessageFailedUpdateItem  = "failed to update item"
	MessageFailedSearchItems = "failed to search items"
	MessageFailedGetHistory  = "failed to retrieve price history"

	ErrItemNotFound = errors.New("item not found")
)

type (
	UpdateItemRequest struct {
		ProductName string  `json:"productName" validate:"required"`
		Category    string  `json:"category" validate:"required"`
		SubCategory string  `json:"subCategory"`
		Quantity    float64 `json:"quantity" validate:"gte=0"`
		Unit        string  `json:"unit"`
		UnitPrice   float64 `json:"unitPrice" validate:"gte=0"`
	}

	// PriceHistoryResponse is one point of a product's price chart: the item
	// joined with its receipt's date and market.
	PriceHistoryResponse struct {
		ID          string    `json:"id"`
		ProductName string    `json:"productName"`
		Price       float64   `json:"price"`
		Date        time.Time `json:"date"`
		Supermarket string    `json:"supermarket"`
	}

	SearchResultResponse struct {
		Name string `json:"name"`
		Type string `json:"type"` // CATEGORIA or PRODUTO
	}
)

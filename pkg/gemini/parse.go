package gemini

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"marketlens-backend/domain"
	"marketlens-backend/entities"
)

// Gemini answers with a zone-less ISO timestamp ("2024-02-20T10:00:00").
const extractionDateLayout = "2006-01-02T15:04:05"

// ParseReceipt turns the extracted model text into a receipt draft. The text
// may arrive fenced in markdown code delimiters; fences are stripped before
// parsing. Business rules (negative quantities, category vocabulary) are
// deliberately not enforced here.
func ParseReceipt(text string) (*entities.Receipt, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	var extraction domain.ReceiptExtraction
	decoder := json.NewDecoder(strings.NewReader(cleaned))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&extraction); err != nil {
		return nil, fmt.Errorf("%w: %v - raw text: %s", domain.ErrMalformedReceiptJSON, err, cleaned)
	}

	date, err := time.Parse(extractionDateLayout, extraction.Date)
	if err != nil {
		date, err = time.Parse(time.RFC3339, extraction.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date %q - raw text: %s", domain.ErrMalformedReceiptJSON, extraction.Date, cleaned)
		}
	}

	receipt := &entities.Receipt{
		SupermarketName: extraction.SupermarketName,
		Date:            date,
		TotalAmount:     extraction.TotalAmount,
	}

	for _, item := range extraction.Items {
		receipt.Items = append(receipt.Items, &entities.ProductItem{
			ProductName: item.ProductName,
			Category:    item.Category,
			SubCategory: item.SubCategory,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitPrice:   item.UnitPrice,
			TotalPrice:  item.TotalPrice,
		})
	}

	return receipt, nil
}

package domain

import (
	"errors"
)

var (
	MessageSuccessUploadReceipt = "receipt processed successfully"
	MessageSuccessDeleteReceipt = "receipt deleted successfully"

	MessageFailedUploadReceipt = "failed to process receipt"
	MessageFailedGetReceipts   = "failed to retrieve receipts"
	MessageFailedDeleteReceipt = "failed to delete receipt"

	// Gemini reported an error payload of its own.
	ErrGeminiUpstream = errors.New("gemini api returned an error")
	// The HTTP call to Gemini never produced a usable response (network
	// failure, timeout, non-2xx status).
	ErrGeminiCallFailed = errors.New("gemini api call failed")
	// Well-formed envelope with nothing in it.
	ErrNoCandidates = errors.New("no candidates in gemini response")
	ErrEmptyContent = errors.New("empty content in gemini response")
	// The extracted text is not the receipt JSON we asked for.
	ErrMalformedReceiptJSON = errors.New("malformed receipt json")

	ErrReceiptNotFound = errors.New("receipt not found")
)

type (
	// ReceiptExtraction is the wire shape Gemini is prompted to return. The
	// date stays a string here; the parser converts it (the model answers
	// with a zone-less ISO timestamp a time.Time field could not decode).
	ReceiptExtraction struct {
		SupermarketName string                  `json:"supermarketName"`
		Date            string                  `json:"date"`
		TotalAmount     float64                 `json:"totalAmount"`
		Items           []ProductItemExtraction `json:"items"`
	}

	ProductItemExtraction struct {
		ProductName string  `json:"productName"`
		Category    string  `json:"category"`
		SubCategory string  `json:"subCategory"`
		Quantity    float64 `json:"quantity"`
		Unit        string  `json:"unit"`
		UnitPrice   float64 `json:"unitPrice"`
		TotalPrice  float64 `json:"totalPrice"`
	}
)

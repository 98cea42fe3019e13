package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"marketlens-backend/domain"
)

const receiptPrompt = `Analise esta imagem de cupom fiscal.
Extraia os dados em JSON estrito.

Regras de Categorização:
1. 'category': Escolha uma das Macro-Categorias: [%s].
2. 'subCategory': Seja ESPECÍFICO sobre o produto.
   - NÃO use termos genéricos como 'Roupas', 'Grãos' ou 'Bovinos'.
   - USE o nome do produto: 'Sabão em Pó', 'Água Sanitária', 'Arroz', 'Feijão', 'Picanha', 'Filé de Frango'.

Retorne APENAS este JSON:
{
    "supermarketName": "Nome",
    "date": "2024-02-20T10:00:00",
    "totalAmount": 0.00,
    "items": [
        {
            "productName": "Nome Completo",
            "category": "MACRO_CATEGORIA",
            "subCategory": "TIPO_ESPECIFICO",
            "quantity": 1.0,
            "unit": "UN",
            "unitPrice": 0.00,
            "totalPrice": 0.00
        }
    ]
}`

type (
	// Config carries the externally configured endpoint and key. It is read
	// once at wiring time and injected here, never looked up ambiently.
	Config struct {
		APIKey string
		APIURL string
	}

	Client struct {
		config     Config
		httpClient *http.Client
	}
)

func NewClient(config Config) *Client {
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// AnalyzeReceiptImage sends the image with the extraction prompt to Gemini
// and returns the generated text from the response envelope. One synchronous
// attempt; any transport failure is final.
func (c *Client) AnalyzeReceiptImage(ctx context.Context, imageBytes []byte, mimeType string) (string, error) {
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	base64Image := base64.StdEncoding.EncodeToString(imageBytes)
	prompt := fmt.Sprintf(receiptPrompt, strings.Join(domain.MacroCategories, ", "))

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{
						"text": prompt,
					},
					{
						"inline_data": map[string]interface{}{
							"mime_type": mimeType,
							"data":      base64Image,
						},
					},
				},
			},
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return "", err
	}

	url := c.config.APIURL + "?key=" + c.config.APIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrGeminiCallFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", domain.ErrGeminiCallFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s - %s", domain.ErrGeminiCallFailed, resp.Status, string(body))
	}

	return ExtractText(body)
}

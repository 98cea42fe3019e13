package seed

import (
	"context"
	"fmt"
	"time"

	"marketlens-backend/domain"
	"marketlens-backend/entities"
	"marketlens-backend/pkg/receipt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seed wipes receipts and plants a few months of purchases so price history
// and the search suggestions have data to chart. Dev only.
func Seed(db *gorm.DB) error {
	ctx := context.Background()
	receiptRepository := receipt.NewReceiptRepository(db)

	if err := receiptRepository.DeleteAllReceipts(ctx); err != nil {
		return err
	}

	fmt.Println("Seeding receipts...")

	r1 := newReceipt("Supermercado Preço Bom", time.Now().AddDate(0, -2, 0))
	addItem(r1, "Leite Integral Italac", domain.CategoryLaticinios, "Leite", 12.0, "UN", 4.50)
	addItem(r1, "Picanha Bovina", domain.CategoryAcougue, "Carne Bovina", 1.5, "KG", 69.90)
	addItem(r1, "Sabão em Pó Omo", domain.CategoryLimpeza, "Sabão em Pó", 1.0, "UN", 18.90)
	r1.RecomputeTotal()

	r2 := newReceipt("Mercadão da Cidade", time.Now().AddDate(0, -1, 0))
	addItem(r2, "Leite Integral Italac", domain.CategoryLaticinios, "Leite", 12.0, "UN", 4.89)
	addItem(r2, "Arroz Tio João 5kg", domain.CategoryMercearia, "Arroz", 2.0, "UN", 22.50)
	addItem(r2, "Coca-Cola 2L", domain.CategoryBebidas, "Refrigerante", 3.0, "UN", 8.99)
	addItem(r2, "Água Sanitária Ypê", domain.CategoryLimpeza, "Água Sanitária", 2.0, "UN", 4.50)
	r2.RecomputeTotal()

	r3 := newReceipt("Carrefour Bairro", time.Now().AddDate(0, 0, -2))
	addItem(r3, "Leite Integral Italac", domain.CategoryLaticinios, "Leite", 6.0, "UN", 5.49)
	addItem(r3, "Picanha Bovina", domain.CategoryAcougue, "Carne Bovina", 2.0, "KG", 75.00)
	addItem(r3, "Feijão Carioca Camil", domain.CategoryMercearia, "Feijão", 4.0, "UN", 8.90)
	r3.RecomputeTotal()

	for _, r := range []*entities.Receipt{r1, r2, r3} {
		if err := receiptRepository.CreateReceipt(ctx, r); err != nil {
			return err
		}
	}

	fmt.Println("Seeding complete")
	return nil
}

func newReceipt(market string, date time.Time) *entities.Receipt {
	return &entities.Receipt{
		ID:              uuid.New(),
		SupermarketName: market,
		Date:            date,
	}
}

func addItem(r *entities.Receipt, name, category, subCategory string, quantity float64, unit string, unitPrice float64) {
	r.Items = append(r.Items, &entities.ProductItem{
		ID:          uuid.New(),
		ReceiptID:   r.ID,
		ProductName: name,
		Category:    category,
		SubCategory: subCategory,
		Quantity:    quantity,
		Unit:        unit,
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice * quantity,
	})
}

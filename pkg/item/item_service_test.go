package item_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"marketlens-backend/domain"
	"marketlens-backend/entities"
	"marketlens-backend/pkg/item"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeItemRepository struct {
	items []*entities.ProductItem
}

func (f *fakeItemRepository) GetItemByID(_ context.Context, id string) (*entities.ProductItem, error) {
	for _, it := range f.items {
		if it.ID.String() == id {
			return it, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeItemRepository) UpdateItem(_ context.Context, _ *entities.ProductItem) error {
	return nil
}

func (f *fakeItemRepository) SearchAny(_ context.Context, text string) ([]*entities.ProductItem, error) {
	term := strings.ToLower(text)
	var matched []*entities.ProductItem
	for _, it := range f.items {
		if strings.Contains(strings.ToLower(it.ProductName), term) ||
			strings.Contains(strings.ToLower(it.Category), term) ||
			strings.Contains(strings.ToLower(it.SubCategory), term) {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

func (f *fakeItemRepository) FindByProductNameContaining(_ context.Context, name string) ([]*entities.ProductItem, error) {
	term := strings.ToLower(name)
	var matched []*entities.ProductItem
	for _, it := range f.items {
		if strings.Contains(strings.ToLower(it.ProductName), term) {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

func (f *fakeItemRepository) FindBySubCategory(_ context.Context, subCategory string) ([]*entities.ProductItem, error) {
	var matched []*entities.ProductItem
	for _, it := range f.items {
		if strings.EqualFold(it.SubCategory, subCategory) {
			matched = append(matched, it)
		}
	}
	return matched, nil
}

type fakeReceiptRepository struct {
	receipts map[uuid.UUID]*entities.Receipt
	updated  []*entities.Receipt
}

func (f *fakeReceiptRepository) CreateReceipt(_ context.Context, r *entities.Receipt) error {
	f.receipts[r.ID] = r
	return nil
}

func (f *fakeReceiptRepository) GetReceipts(_ context.Context) ([]*entities.Receipt, error) {
	return nil, nil
}

func (f *fakeReceiptRepository) GetReceiptByID(_ context.Context, id string) (*entities.Receipt, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, gorm.ErrRecordNotFound
	}
	r, ok := f.receipts[parsed]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return r, nil
}

func (f *fakeReceiptRepository) UpdateReceipt(_ context.Context, r *entities.Receipt) error {
	f.updated = append(f.updated, r)
	return nil
}

func (f *fakeReceiptRepository) DeleteReceipt(_ context.Context, _ string) error { return nil }

func (f *fakeReceiptRepository) DeleteAllReceipts(_ context.Context) error { return nil }

func newItem(name, category, subCategory string, quantity, unitPrice float64) *entities.ProductItem {
	return &entities.ProductItem{
		ID:          uuid.New(),
		ProductName: name,
		Category:    category,
		SubCategory: subCategory,
		Quantity:    quantity,
		Unit:        "UN",
		UnitPrice:   unitPrice,
		TotalPrice:  quantity * unitPrice,
	}
}

func TestUpdateItemRecomputesParentTotal(t *testing.T) {
	milk := newItem("Leite Integral Italac", domain.CategoryLaticinios, "Leite", 2, 4.50)
	rice := newItem("Arroz Tio João 5kg", domain.CategoryMercearia, "Arroz", 1, 22.50)

	parent := &entities.Receipt{ID: uuid.New(), SupermarketName: "Mercadão"}
	parent.Items = []*entities.ProductItem{milk, rice}
	parent.RecomputeTotal()
	require.Equal(t, 31.50, parent.TotalAmount)

	milk.ReceiptID = parent.ID
	rice.ReceiptID = parent.ID

	itemRepo := &fakeItemRepository{items: parent.Items}
	receiptRepo := &fakeReceiptRepository{receipts: map[uuid.UUID]*entities.Receipt{parent.ID: parent}}
	service := item.NewItemService(itemRepo, receiptRepo)

	updated, err := service.UpdateItem(context.Background(), milk.ID.String(), domain.UpdateItemRequest{
		ProductName: "Leite Integral Italac",
		Category:    domain.CategoryLaticinios,
		SubCategory: "Leite",
		Quantity:    3,
		Unit:        "UN",
		UnitPrice:   5.00,
	})
	require.NoError(t, err)

	assert.Equal(t, 15.00, updated.TotalPrice, "total price is derived from quantity and unit price")
	assert.Equal(t, 37.50, parent.TotalAmount, "parent total is the sum of all item totals")
	require.Len(t, receiptRepo.updated, 1, "recomputed parent must be persisted")
	assert.Same(t, parent, receiptRepo.updated[0])
}

func TestUpdateItemNotFound(t *testing.T) {
	service := item.NewItemService(&fakeItemRepository{}, &fakeReceiptRepository{receipts: map[uuid.UUID]*entities.Receipt{}})

	_, err := service.UpdateItem(context.Background(), uuid.NewString(), domain.UpdateItemRequest{ProductName: "X", Category: "OUTROS"})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
}

func TestSearchProductNamesDistinctAndSorted(t *testing.T) {
	itemRepo := &fakeItemRepository{items: []*entities.ProductItem{
		newItem("Leite Integral Italac", domain.CategoryLaticinios, "Leite", 1, 4.50),
		newItem("Leite Integral Italac", domain.CategoryLaticinios, "Leite", 2, 4.89),
		newItem("Creme de Leite Nestlé", domain.CategoryLaticinios, "Creme de Leite", 1, 3.20),
		newItem("Achocolatado Toddy", domain.CategoryMercearia, "Achocolatado com Leite", 1, 9.90),
	}}
	service := item.NewItemService(itemRepo, &fakeReceiptRepository{})

	names, err := service.SearchProductNames(context.Background(), "leite")
	require.NoError(t, err)

	assert.Equal(t, []string{"Achocolatado Toddy", "Creme de Leite Nestlé", "Leite Integral Italac"}, names)
}

func TestGetProductHistorySortedByDate(t *testing.T) {
	jan := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 15, 9, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)

	receiptFor := func(market string, date time.Time) *entities.Receipt {
		return &entities.Receipt{ID: uuid.New(), SupermarketName: market, Date: date}
	}

	withReceipt := func(it *entities.ProductItem, r *entities.Receipt) *entities.ProductItem {
		it.ReceiptID = r.ID
		it.Receipt = r
		return it
	}

	itemRepo := &fakeItemRepository{items: []*entities.ProductItem{
		withReceipt(newItem("Leite Integral Italac", domain.CategoryLaticinios, "Leite", 6, 5.49), receiptFor("Carrefour Bairro", mar)),
		withReceipt(newItem("Leite Integral Italac", domain.CategoryLaticinios, "Leite", 12, 4.50), receiptFor("Supermercado Preço Bom", jan)),
		withReceipt(newItem("Leite Integral Italac", domain.CategoryLaticinios, "Leite", 12, 4.89), receiptFor("Mercadão da Cidade", feb)),
	}}
	service := item.NewItemService(itemRepo, &fakeReceiptRepository{})

	history, err := service.GetProductHistory(context.Background(), "leite integral")
	require.NoError(t, err)
	require.Len(t, history, 3)

	assert.Equal(t, jan, history[0].Date)
	assert.Equal(t, feb, history[1].Date)
	assert.Equal(t, mar, history[2].Date)

	assert.Equal(t, "Supermercado Preço Bom", history[0].Supermarket)
	assert.Equal(t, 4.50, history[0].Price, "chart price is the unit price")
	assert.Equal(t, "Leite Integral Italac", history[0].ProductName)
}

func TestGetCategoryHistoryMatchesSubCategoryExactly(t *testing.T) {
	r := &entities.Receipt{ID: uuid.New(), SupermarketName: "Mercadão", Date: time.Now()}

	leite := newItem("Leite Integral Italac", domain.CategoryLaticinios, "Leite", 1, 4.50)
	leite.Receipt = r
	cremeDeLeite := newItem("Creme de Leite Nestlé", domain.CategoryLaticinios, "Creme de Leite", 1, 3.20)
	cremeDeLeite.Receipt = r

	service := item.NewItemService(&fakeItemRepository{items: []*entities.ProductItem{leite, cremeDeLeite}}, &fakeReceiptRepository{})

	history, err := service.GetCategoryHistory(context.Background(), "LEITE")
	require.NoError(t, err)

	require.Len(t, history, 1, "substring matches must not qualify")
	assert.Equal(t, "Leite Integral Italac", history[0].ProductName)
}

func TestSearchSmart(t *testing.T) {
	itemRepo := &fakeItemRepository{items: []*entities.ProductItem{
		newItem("Leite Integral Italac", domain.CategoryLaticinios, "Leite", 1, 4.50),
		newItem("Leite Desnatado Piracanjuba", domain.CategoryLaticinios, "Leite", 1, 5.10),
		newItem("Creme de Leite Nestlé", domain.CategoryLaticinios, "Creme de Leite", 1, 3.20),
		// Matches only through the product name; its subcategory must be
		// filtered out of the suggestions.
		newItem("Leite de Coco Sococo", domain.CategoryMercearia, "Açúcar", 1, 7.80),
	}}
	service := item.NewItemService(itemRepo, &fakeReceiptRepository{})

	results, err := service.SearchSmart(context.Background(), "leite")
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.LessOrEqual(t, len(results), 10)

	// Categories first, then products, each deduplicated.
	assert.Equal(t, []domain.SearchResultResponse{
		{Name: "Leite", Type: domain.SearchTypeCategory},
		{Name: "Creme de Leite", Type: domain.SearchTypeCategory},
		{Name: "Leite Integral Italac", Type: domain.SearchTypeProduct},
		{Name: "Leite Desnatado Piracanjuba", Type: domain.SearchTypeProduct},
		{Name: "Creme de Leite Nestlé", Type: domain.SearchTypeProduct},
		{Name: "Leite de Coco Sococo", Type: domain.SearchTypeProduct},
	}, results)
}

func TestSearchSmartCapsAtTen(t *testing.T) {
	var items []*entities.ProductItem
	names := []string{
		"Leite A", "Leite B", "Leite C", "Leite D", "Leite E", "Leite F",
		"Leite G", "Leite H", "Leite I", "Leite J", "Leite K", "Leite L",
	}
	for _, name := range names {
		items = append(items, newItem(name, domain.CategoryLaticinios, "", 1, 1))
	}

	service := item.NewItemService(&fakeItemRepository{items: items}, &fakeReceiptRepository{})

	results, err := service.SearchSmart(context.Background(), "leite")
	require.NoError(t, err)
	assert.Len(t, results, 10)
}

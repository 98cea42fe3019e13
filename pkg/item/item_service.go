package item

import (
	"context"
	"errors"
	"sort"
	"strings"

	"marketlens-backend/domain"
	"marketlens-backend/entities"
	"marketlens-backend/pkg/receipt"

	"gorm.io/gorm"
)

type (
	ItemService interface {
		UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) (*entities.ProductItem, error)
		SearchProductNames(ctx context.Context, name string) ([]string, error)
		GetProductHistory(ctx context.Context, exactName string) ([]domain.PriceHistoryResponse, error)
		GetCategoryHistory(ctx context.Context, categoryName string) ([]domain.PriceHistoryResponse, error)
		SearchSmart(ctx context.Context, name string) ([]domain.SearchResultResponse, error)
	}

	itemService struct {
		itemRepository    ItemRepository
		receiptRepository receipt.ReceiptRepository
	}
)

func NewItemService(itemRepository ItemRepository, receiptRepository receipt.ReceiptRepository) ItemService {
	return &itemService{
		itemRepository:    itemRepository,
		receiptRepository: receiptRepository,
	}
}

// UpdateItem applies the edit and re-derives the parent receipt's total from
// all of its items. Total price is always recomputed from quantity and unit
// price, whatever the client sent.
func (s *itemService) UpdateItem(ctx context.Context, id string, req domain.UpdateItemRequest) (*entities.ProductItem, error) {
	item, err := s.itemRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	item.ProductName = req.ProductName
	item.Category = req.Category
	item.SubCategory = req.SubCategory
	item.Quantity = req.Quantity
	item.Unit = req.Unit
	item.UnitPrice = req.UnitPrice
	item.TotalPrice = req.UnitPrice * req.Quantity

	if err := s.itemRepository.UpdateItem(ctx, item); err != nil {
		return nil, err
	}

	parent, err := s.receiptRepository.GetReceiptByID(ctx, item.ReceiptID.String())
	if err != nil {
		return nil, err
	}
	parent.RecomputeTotal()
	if err := s.receiptRepository.UpdateReceipt(ctx, parent); err != nil {
		return nil, err
	}

	return item, nil
}

func (s *itemService) SearchProductNames(ctx context.Context, name string) ([]string, error) {
	items, err := s.itemRepository.SearchAny(ctx, name)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	names := make([]string, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductName]; ok {
			continue
		}
		seen[item.ProductName] = struct{}{}
		names = append(names, item.ProductName)
	}
	sort.Strings(names)

	return names, nil
}

func (s *itemService) GetProductHistory(ctx context.Context, exactName string) ([]domain.PriceHistoryResponse, error) {
	items, err := s.itemRepository.FindByProductNameContaining(ctx, exactName)
	if err != nil {
		return nil, err
	}
	return toPriceHistory(items), nil
}

func (s *itemService) GetCategoryHistory(ctx context.Context, categoryName string) ([]domain.PriceHistoryResponse, error) {
	items, err := s.itemRepository.FindBySubCategory(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	return toPriceHistory(items), nil
}

// SearchSmart merges subcategory suggestions with product-name suggestions,
// categories first, deduplicated, capped at 10.
func (s *itemService) SearchSmart(ctx context.Context, name string) ([]domain.SearchResultResponse, error) {
	items, err := s.itemRepository.SearchAny(ctx, name)
	if err != nil {
		return nil, err
	}

	seen := make(map[domain.SearchResultResponse]struct{})
	results := make([]domain.SearchResultResponse, 0, len(items))

	appendResult := func(result domain.SearchResultResponse) {
		if result.Name == "" {
			return
		}
		if _, ok := seen[result]; ok {
			return
		}
		seen[result] = struct{}{}
		results = append(results, result)
	}

	for _, item := range items {
		appendResult(domain.SearchResultResponse{Name: item.SubCategory, Type: domain.SearchTypeCategory})
	}
	for _, item := range items {
		appendResult(domain.SearchResultResponse{Name: item.ProductName, Type: domain.SearchTypeProduct})
	}

	// The query already guarantees containment for most rows; this re-filter
	// drops subcategories that only matched through another column.
	term := strings.ToLower(name)
	filtered := make([]domain.SearchResultResponse, 0, len(results))
	for _, result := range results {
		if strings.Contains(strings.ToLower(result.Name), term) {
			filtered = append(filtered, result)
		}
	}

	// CATEGORIA sorts before PRODUTO; insertion order is kept within a type.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Type < filtered[j].Type
	})

	if len(filtered) > 10 {
		filtered = filtered[:10]
	}

	return filtered, nil
}

func toPriceHistory(items []*entities.ProductItem) []domain.PriceHistoryResponse {
	history := make([]domain.PriceHistoryResponse, 0, len(items))
	for _, item := range items {
		if item.Receipt == nil {
			continue
		}
		history = append(history, domain.PriceHistoryResponse{
			ID:          item.ID.String(),
			ProductName: item.ProductName,
			Price:       item.UnitPrice,
			Date:        item.Receipt.Date,
			Supermarket: item.Receipt.SupermarketName,
		})
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})

	return history
}

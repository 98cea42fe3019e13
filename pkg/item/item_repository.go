package item

import (
	"context"
	"strings"

	"marketlens-backend/entities"

	"gorm.io/gorm"
)

type (
	ItemRepository interface {
		GetItemByID(ctx context.Context, id string) (*entities.ProductItem, error)
		UpdateItem(ctx context.Context, item *entities.ProductItem) error
		// SearchAny matches the text as a case-insensitive substring of the
		// product name, category or subcategory.
		SearchAny(ctx context.Context, text string) ([]*entities.ProductItem, error)
		FindByProductNameContaining(ctx context.Context, name string) ([]*entities.ProductItem, error)
		FindBySubCategory(ctx context.Context, subCategory string) ([]*entities.ProductItem, error)
	}

	itemRepository struct {
		db *gorm.DB
	}
)

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) GetItemByID(ctx context.Context, id string) (*entities.ProductItem, error) {
	var item entities.ProductItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item *entities.ProductItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) SearchAny(ctx context.Context, text string) ([]*entities.ProductItem, error) {
	var items []*entities.ProductItem
	pattern := "%" + strings.ToLower(text) + "%"
	if err := r.db.WithContext(ctx).
		Where("LOWER(product_name) LIKE ? OR LOWER(category) LIKE ? OR LOWER(sub_category) LIKE ?",
			pattern, pattern, pattern).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindByProductNameContaining(ctx context.Context, name string) ([]*entities.ProductItem, error) {
	var items []*entities.ProductItem
	pattern := "%" + strings.ToLower(name) + "%"
	if err := r.db.WithContext(ctx).
		Preload("Receipt").
		Where("LOWER(product_name) LIKE ?", pattern).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindBySubCategory(ctx context.Context, subCategory string) ([]*entities.ProductItem, error) {
	var items []*entities.ProductItem
	if err := r.db.WithContext(ctx).
		Preload("Receipt").
		Where("LOWER(sub_category) = LOWER(?)", subCategory).
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

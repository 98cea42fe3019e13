package receipt

import (
	"context"

	"marketlens-backend/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	ReceiptRepository interface {
		// CreateReceipt writes the receipt and its items in one cascaded
		// transaction.
		CreateReceipt(ctx context.Context, receipt *entities.Receipt) error
		GetReceipts(ctx context.Context) ([]*entities.Receipt, error)
		GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error)
		UpdateReceipt(ctx context.Context, receipt *entities.Receipt) error
		DeleteReceipt(ctx context.Context, id string) error
		DeleteAllReceipts(ctx context.Context) error
	}

	receiptRepository struct {
		db *gorm.DB
	}
)

func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

func (r *receiptRepository) CreateReceipt(ctx context.Context, receipt *entities.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

func (r *receiptRepository) GetReceipts(ctx context.Context) ([]*entities.Receipt, error) {
	var receipts []*entities.Receipt
	if err := r.db.WithContext(ctx).Preload("Items").Order("date desc").Find(&receipts).Error; err != nil {
		return nil, err
	}
	return receipts, nil
}

func (r *receiptRepository) GetReceiptByID(ctx context.Context, id string) (*entities.Receipt, error) {
	var receipt entities.Receipt
	if err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&receipt).Error; err != nil {
		return nil, err
	}
	return &receipt, nil
}

func (r *receiptRepository) UpdateReceipt(ctx context.Context, receipt *entities.Receipt) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(receipt).Error
}

func (r *receiptRepository) DeleteReceipt(ctx context.Context, id string) error {
	// Items go with it via the FK's ON DELETE CASCADE.
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Receipt{}).Error
}

func (r *receiptRepository) DeleteAllReceipts(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&entities.Receipt{}).Error
}

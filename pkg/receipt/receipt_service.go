package receipt

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"marketlens-backend/domain"
	"marketlens-backend/entities"
	"marketlens-backend/internal/utils/storage"
	"marketlens-backend/pkg/gemini"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	ReceiptService interface {
		IngestReceipt(ctx context.Context, file *multipart.FileHeader) (*entities.Receipt, error)
		GetReceipts(ctx context.Context) ([]*entities.Receipt, error)
		DeleteReceipt(ctx context.Context, id string) error
	}

	receiptService struct {
		receiptRepository ReceiptRepository
		gemini            *gemini.Client
		s3                storage.AwsS3
	}
)

func NewReceiptService(receiptRepository ReceiptRepository, geminiClient *gemini.Client, s3 storage.AwsS3) ReceiptService {
	return &receiptService{
		receiptRepository: receiptRepository,
		gemini:            geminiClient,
		s3:                s3,
	}
}

// IngestReceipt runs the full pipeline for one uploaded image: Gemini call,
// envelope extraction, draft parsing, item linking, one cascaded write.
// Any step failing aborts the whole ingestion; nothing is persisted.
func (s *receiptService) IngestReceipt(ctx context.Context, file *multipart.FileHeader) (*entities.Receipt, error) {
	src, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	imageBytes, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}

	text, err := s.gemini.AnalyzeReceiptImage(ctx, imageBytes, file.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	receipt, err := gemini.ParseReceipt(text)
	if err != nil {
		return nil, err
	}

	// The wire format only carries receipt -> items. Assign identities here
	// and restore the reverse foreign key before the cascaded write.
	receipt.ID = uuid.New()
	for _, item := range receipt.Items {
		item.ID = uuid.New()
		item.ReceiptID = receipt.ID
	}

	s.archiveImage(receipt, file)

	if err := s.receiptRepository.CreateReceipt(ctx, receipt); err != nil {
		return nil, err
	}

	return receipt, nil
}

// archiveImage keeps the original photo in S3. Best effort: a storage failure
// never fails the ingestion, and nothing happens without a configured bucket.
func (s *receiptService) archiveImage(receipt *entities.Receipt, file *multipart.FileHeader) {
	if s.s3 == nil || !s.s3.Enabled() {
		return
	}

	fileName := fmt.Sprintf("receipt-%s", receipt.ID.String())
	objectKey, err := s.s3.UploadFile(fileName, file, "receipts", storage.AllowImage...)
	if err != nil {
		return
	}
	receipt.ImageURL = s.s3.GetPublicLinkKey(objectKey)
}

func (s *receiptService) GetReceipts(ctx context.Context) ([]*entities.Receipt, error) {
	return s.receiptRepository.GetReceipts(ctx)
}

func (s *receiptService) DeleteReceipt(ctx context.Context, id string) error {
	receipt, err := s.receiptRepository.GetReceiptByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrReceiptNotFound
		}
		return err
	}

	if receipt.ImageURL != "" && s.s3 != nil && s.s3.Enabled() {
		if objectKey := s.s3.GetObjectKeyFromLink(receipt.ImageURL); objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.receiptRepository.DeleteReceipt(ctx, id)
}

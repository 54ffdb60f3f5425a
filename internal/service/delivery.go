package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gigcampus/order-service/internal/entities"
	"github.com/gigcampus/order-service/pkg/trm"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// FileStore is the durable file collaborator: raw bytes and a name in, a
// public URL out.
type FileStore interface {
	Save(ctx context.Context, name string, data []byte) (string, error)
}

// DeliveryFile describes one file in a delivery submission. Files with a
// URL are already hosted and pass through unchanged; files with Data are
// uploaded first.
type DeliveryFile struct {
	Name string
	Type string
	Size int64
	URL  string
	Data []byte
}

// DeliveryResult reports the two phases separately: a non-nil
// CompletionErr means the attachments and message were written but the
// Done transition failed and should be retried on its own.
type DeliveryResult struct {
	Message       entities.Message
	Attachments   []entities.Attachment
	Completed     bool
	CompletionErr error
}

// DeliveryService bundles uploaded files and a message into one submission
// and optionally closes the order as a second step.
type DeliveryService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	files     FileStore
	cache     Cache
	orders    *OrderService
}

func NewDeliveryService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, files FileStore, cache Cache, orders *OrderService) *DeliveryService {
	return &DeliveryService{
		logger:    logger.With(slog.String("service", "delivery")),
		txManager: txManager,
		repo:      repo,
		files:     files,
		cache:     cache,
		orders:    orders,
	}
}

// SubmitDelivery uploads any new files (all-or-nothing), persists the
// delivery message and attachments in one transaction, then optionally
// invokes the Done transition. The completion step is reported on the
// result, never as a failure of the delivery write itself.
func (s *DeliveryService) SubmitDelivery(ctx context.Context, orderID, actingUserID string, files []DeliveryFile, message string, markComplete bool) (DeliveryResult, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return DeliveryResult{}, err
	}
	if actingUserID != order.SellerID {
		s.logger.Warn("delivery denied", "order_id", orderID, "user_id", actingUserID)
		return DeliveryResult{}, entities.ErrOrderNotFound
	}

	urls, err := s.uploadAll(ctx, files)
	if err != nil {
		// no partial deliveries: nothing was persisted yet
		return DeliveryResult{}, fmt.Errorf("failed to upload delivery files: %w", err)
	}

	now := time.Now().UTC()
	msgType := entities.MessageTypeText
	if len(files) > 0 {
		msgType = entities.MessageTypeFile
	}
	msg := entities.Message{
		MessageID: uuid.NewString(),
		OrderID:   orderID,
		SenderID:  actingUserID,
		Body:      message,
		Type:      msgType,
		CreatedAt: now,
	}

	attachments := make([]entities.Attachment, 0, len(files))
	for i, f := range files {
		attachments = append(attachments, entities.Attachment{
			AttachmentID: uuid.NewString(),
			OrderID:      orderID,
			FileName:     f.Name,
			FileURL:      urls[i],
			FileSize:     f.Size,
			FileType:     f.Type,
			IsPublic:     true,
			CreatedAt:    now,
		})
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.repo.SaveMessage(ctx, msg); err != nil {
			return err
		}
		return s.repo.SaveAttachments(ctx, attachments)
	})
	if err != nil {
		return DeliveryResult{}, err
	}

	s.cache.Invalidate(orderViewKey(orderID))
	s.cache.Invalidate(sellerViewKey(order.SellerID))
	s.logger.Info("delivery submitted", "order_id", orderID, "files", len(attachments))

	result := DeliveryResult{Message: msg, Attachments: attachments}
	if markComplete {
		if err := s.orders.completeDelivered(ctx, orderID, actingUserID); err != nil {
			// attachments are committed and visible; completion can be
			// retried on its own
			s.logger.Error("delivery saved but completion failed", slog.Any("error", err), "order_id", orderID)
			result.CompletionErr = err
		} else {
			result.Completed = true
		}
	}
	return result, nil
}

// uploadAll pushes every not-yet-hosted file to the file store in
// parallel. Any failure aborts the whole submission.
func (s *DeliveryService) uploadAll(ctx context.Context, files []DeliveryFile) ([]string, error) {
	urls := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, f := range files {
		if f.URL != "" {
			urls[i] = f.URL
			continue
		}
		g.Go(func() error {
			url, err := s.files.Save(ctx, f.Name, f.Data)
			if err != nil {
				return fmt.Errorf("upload %s: %w", f.Name, err)
			}
			urls[i] = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

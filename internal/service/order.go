package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gigcampus/order-service/internal/entities"
	"github.com/gigcampus/order-service/pkg/trm"
	"github.com/gigcampus/order-service/pkg/utils"

	"github.com/google/uuid"
)

type OrderRepo interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)

	// SaveOrder is idempotent, checkout events can be redelivered.
	SaveOrder(ctx context.Context, o entities.Order) error

	// UpdateOrderStatus is conditional on the status the service validated
	// against; false means nothing was changed.
	UpdateOrderStatus(ctx context.Context, orderID string, from, to entities.OrderStatus) (bool, error)
	UpdateOrderProgress(ctx context.Context, orderID string, progress int) error

	SaveMessage(ctx context.Context, m entities.Message) error
	ListMessages(ctx context.Context, orderID string) ([]entities.Message, error)

	SaveAttachments(ctx context.Context, attachments []entities.Attachment) error
	ListAttachments(ctx context.Context, orderID string) ([]entities.Attachment, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Invalidate(key string)
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.StatusChangedEvent) error
}

func orderViewKey(orderID string) string   { return "order:" + orderID }
func sellerViewKey(sellerID string) string { return "seller:" + sellerID }

var retryCfg = utils.RetryConfig{
	InitialDelay: 100 * time.Millisecond,
	MaxAttempts:  5,
	Multiplier:   2,
}

// OrderService is the sole write path for order status. Every successful
// status change invalidates the views keyed by the order and its seller and
// publishes a status event.
type OrderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	cache     Cache
	publisher EventPublisher
}

func NewOrderService(logger *slog.Logger, txManager trm.Manager, repo OrderRepo, cache Cache, publisher EventPublisher) *OrderService {
	return &OrderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		cache:     cache,
		publisher: publisher,
	}
}

// SaveOrder ingests an order created by the external checkout flow.
func (s *OrderService) SaveOrder(ctx context.Context, order entities.Order) error {
	if order.Status == "" {
		order.Status = entities.OrderStatusPending
	}
	if !order.Status.Valid() {
		return entities.ErrInvalidStatus
	}
	now := time.Now().UTC()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	fn := func() error {
		if err := s.repo.SaveOrder(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		s.logger.Debug("order saved", "order_id", order.OrderID)
		return nil
	}
	if err := utils.Retry(retryCfg, fn, entities.ErrInvalidStatus); err != nil {
		return err
	}

	s.cache.Invalidate(sellerViewKey(order.SellerID))
	return nil
}

// GetOrder returns the order for one of its participants. Outsiders get
// ErrOrderNotFound, indistinguishable from a missing order.
func (s *OrderService) GetOrder(ctx context.Context, orderID, actingUserID string) (entities.Order, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if !order.IsParticipant(actingUserID) {
		s.logger.Warn("order access denied", "order_id", orderID, "user_id", actingUserID)
		return entities.Order{}, entities.ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) getOrder(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderViewKey(orderID)); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err != nil {
			s.logger.Error("failed to unmarshal cached order", slog.Any("error", err))
			return entities.Order{}, err
		}
		return order, nil
	}

	var order entities.Order
	fn := func() error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		return err
	}
	if err := utils.Retry(retryCfg, fn, entities.ErrOrderNotFound); err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.Any("error", err))
		return entities.Order{}, err
	}
	s.cache.Set(orderViewKey(orderID), data)
	return order, nil
}

// UpdateStatus validates the caller and the transition, then applies the
// change with an atomic conditional update. The Done transition belongs to
// the client (approval); everything else belongs to the seller.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID string, requested entities.OrderStatus, actingUserID string) error {
	if !requested.Valid() {
		return entities.ErrInvalidStatus
	}

	authorized := func(order entities.Order) bool {
		if requested == entities.OrderStatusDone {
			return actingUserID == order.ClientID
		}
		return actingUserID == order.SellerID
	}
	return s.applyStatus(ctx, orderID, requested, actingUserID, authorized)
}

// StartProgress moves a pending order to in progress. Seller only.
func (s *OrderService) StartProgress(ctx context.Context, orderID, actingUserID string) error {
	return s.UpdateStatus(ctx, orderID, entities.OrderStatusInProgress, actingUserID)
}

// CancelOrder cancels a non-terminal order. Seller only.
func (s *OrderService) CancelOrder(ctx context.Context, orderID, actingUserID string) error {
	return s.UpdateStatus(ctx, orderID, entities.OrderStatusCancelled, actingUserID)
}

// ApproveAndComplete is the client-side approval that closes the order.
func (s *OrderService) ApproveAndComplete(ctx context.Context, orderID, actingUserID string) error {
	return s.UpdateStatus(ctx, orderID, entities.OrderStatusDone, actingUserID)
}

// completeDelivered is the Done path invoked by delivery submission. The
// seller was already authorized for the delivery write, so only the
// transition itself is validated here.
func (s *OrderService) completeDelivered(ctx context.Context, orderID, actingUserID string) error {
	return s.applyStatus(ctx, orderID, entities.OrderStatusDone, actingUserID, func(entities.Order) bool { return true })
}

func (s *OrderService) applyStatus(ctx context.Context, orderID string, requested entities.OrderStatus, actingUserID string, authorized func(entities.Order) bool) error {
	var order entities.Order

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.GetOrderByID(ctx, orderID)
		if err != nil {
			return err
		}

		if !authorized(order) {
			// surfaced as not found so error text does not leak existence
			s.logger.Warn("status change denied",
				"order_id", orderID, "user_id", actingUserID, "requested", string(requested))
			return entities.ErrOrderNotFound
		}

		if !order.Status.CanTransition(requested) {
			return entities.NewInvalidTransitionError(order.Status, requested)
		}

		updated, err := s.repo.UpdateOrderStatus(ctx, orderID, order.Status, requested)
		if err != nil {
			return err
		}
		if !updated {
			// a concurrent writer changed the status between read and write
			return entities.NewInvalidTransitionError(order.Status, requested)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.cache.Invalidate(orderViewKey(orderID))
	s.cache.Invalidate(sellerViewKey(order.SellerID))

	event := entities.StatusChangedEvent{
		OrderID:    orderID,
		SellerID:   order.SellerID,
		ClientID:   order.ClientID,
		From:       order.Status,
		To:         requested,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
		// the status change is already committed, a lost event only delays
		// downstream revalidation until the TTL expires
		s.logger.Error("failed to publish status event", slog.Any("error", err), "order_id", orderID)
	}

	s.logger.Info("order status changed",
		"order_id", orderID, "from", string(order.Status), "to", string(requested))
	return nil
}

// SendMessage appends to the order conversation. Both participants may
// write; there are no status side effects.
func (s *OrderService) SendMessage(ctx context.Context, orderID, senderID, body string, msgType entities.MessageType) (entities.Message, error) {
	if !msgType.Valid() {
		return entities.Message{}, entities.ErrInvalidStatus
	}

	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Message{}, err
	}
	if !order.IsParticipant(senderID) {
		s.logger.Warn("message denied", "order_id", orderID, "user_id", senderID)
		return entities.Message{}, entities.ErrOrderNotFound
	}

	message := entities.Message{
		MessageID: uuid.NewString(),
		OrderID:   orderID,
		SenderID:  senderID,
		Body:      body,
		Type:      msgType,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.SaveMessage(ctx, message); err != nil {
		return entities.Message{}, err
	}

	s.cache.Invalidate(orderViewKey(orderID))
	return message, nil
}

// Conversation returns the order's messages and attachments for one of its
// participants.
func (s *OrderService) Conversation(ctx context.Context, orderID, actingUserID string) ([]entities.Message, []entities.Attachment, error) {
	order, err := s.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	if !order.IsParticipant(actingUserID) {
		s.logger.Warn("conversation access denied", "order_id", orderID, "user_id", actingUserID)
		return nil, nil, entities.ErrOrderNotFound
	}

	messages, err := s.repo.ListMessages(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	attachments, err := s.repo.ListAttachments(ctx, orderID)
	if err != nil {
		return nil, nil, err
	}
	return messages, attachments, nil
}

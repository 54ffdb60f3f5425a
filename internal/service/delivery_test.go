package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/gigcampus/order-service/internal/entities"
	"github.com/gigcampus/order-service/internal/service"
	mocks "github.com/gigcampus/order-service/internal/service/mocks"
	txMocks "github.com/gigcampus/order-service/pkg/trm/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeliveryService(t *testing.T) (*service.DeliveryService, *mocks.MockOrderRepo, *mocks.MockFileStore, *mocks.MockCache, *mocks.MockEventPublisher) {
	t.Helper()

	repo := mocks.NewMockOrderRepo(t)
	files := mocks.NewMockFileStore(t)
	cache := mocks.NewMockCache(t)
	publisher := mocks.NewMockEventPublisher(t)
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, cb func(ctx context.Context) error) error {
			return cb(ctx)
		}).Maybe()

	orders := service.NewOrderService(logger, tx, repo, cache, publisher)
	svc := service.NewDeliveryService(logger, tx, repo, files, cache, orders)
	return svc, repo, files, cache, publisher
}

func TestDeliveryService_SubmitDelivery(t *testing.T) {
	newFile := service.DeliveryFile{Name: "final.zip", Type: "application/zip", Size: 1024, Data: []byte("zip")}
	hostedFile := service.DeliveryFile{Name: "brief.pdf", Type: "application/pdf", Size: 2048, URL: "http://files/brief.pdf"}

	t.Run("uploads new files and passes hosted through", func(t *testing.T) {
		svc, repo, files, cache, _ := newDeliveryService(t)
		repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
			Return(testOrder(entities.OrderStatusInProgress), nil).Once()
		files.EXPECT().Save(mock.Anything, "final.zip", []byte("zip")).
			Return("http://files/final.zip", nil).Once()
		repo.EXPECT().SaveMessage(mock.Anything, mock.MatchedBy(func(m entities.Message) bool {
			return m.Type == entities.MessageTypeFile && m.SenderID == sellerID
		})).Return(nil).Once()
		repo.EXPECT().SaveAttachments(mock.Anything, mock.MatchedBy(func(atts []entities.Attachment) bool {
			return len(atts) == 2 &&
				atts[0].FileURL == "http://files/final.zip" &&
				atts[1].FileURL == "http://files/brief.pdf"
		})).Return(nil).Once()
		cache.EXPECT().Invalidate("order:order-1").Once()
		cache.EXPECT().Invalidate("seller:" + sellerID).Once()

		result, err := svc.SubmitDelivery(context.Background(), "order-1", sellerID,
			[]service.DeliveryFile{newFile, hostedFile}, "here you go", false)
		require.NoError(t, err)
		assert.False(t, result.Completed)
		assert.NoError(t, result.CompletionErr)
		assert.Len(t, result.Attachments, 2)
	})

	t.Run("one failed upload persists nothing", func(t *testing.T) {
		svc, repo, files, _, _ := newDeliveryService(t)
		repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
			Return(testOrder(entities.OrderStatusInProgress), nil).Once()
		files.EXPECT().Save(mock.Anything, "final.zip", []byte("zip")).
			Return("http://files/final.zip", nil).Maybe()
		files.EXPECT().Save(mock.Anything, "extra.zip", mock.Anything).
			Return("", errors.New("disk full")).Once()

		_, err := svc.SubmitDelivery(context.Background(), "order-1", sellerID,
			[]service.DeliveryFile{newFile, {Name: "extra.zip", Data: []byte("x")}}, "", false)
		assert.Error(t, err)
	})

	t.Run("mark complete transitions the order", func(t *testing.T) {
		svc, repo, _, cache, publisher := newDeliveryService(t)
		repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
			Return(testOrder(entities.OrderStatusInProgress), nil).Twice()
		repo.EXPECT().SaveMessage(mock.Anything, mock.Anything).Return(nil).Once()
		repo.EXPECT().SaveAttachments(mock.Anything, mock.Anything).Return(nil).Once()
		repo.EXPECT().UpdateOrderStatus(mock.Anything, "order-1", entities.OrderStatusInProgress, entities.OrderStatusDone).
			Return(true, nil).Once()
		cache.EXPECT().Invalidate("order:order-1").Twice()
		cache.EXPECT().Invalidate("seller:" + sellerID).Twice()
		publisher.EXPECT().PublishStatusChanged(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := svc.SubmitDelivery(context.Background(), "order-1", sellerID, nil, "done", true)
		require.NoError(t, err)
		assert.True(t, result.Completed)
		assert.NoError(t, result.CompletionErr)
	})

	t.Run("completion failure is reported separately", func(t *testing.T) {
		svc, repo, _, cache, _ := newDeliveryService(t)
		repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
			Return(testOrder(entities.OrderStatusInProgress), nil).Once()
		repo.EXPECT().SaveMessage(mock.Anything, mock.Anything).Return(nil).Once()
		repo.EXPECT().SaveAttachments(mock.Anything, mock.Anything).Return(nil).Once()
		// a concurrent change already closed the order
		repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
			Return(testOrder(entities.OrderStatusCancelled), nil).Once()
		cache.EXPECT().Invalidate("order:order-1").Once()
		cache.EXPECT().Invalidate("seller:" + sellerID).Once()

		result, err := svc.SubmitDelivery(context.Background(), "order-1", sellerID, nil, "done", true)
		require.NoError(t, err)
		assert.False(t, result.Completed)
		assert.ErrorIs(t, result.CompletionErr, entities.ErrInvalidTransition)
		assert.NotEmpty(t, result.Message.MessageID)
	})

	t.Run("client cannot deliver", func(t *testing.T) {
		svc, repo, _, _, _ := newDeliveryService(t)
		repo.EXPECT().GetOrderByID(mock.Anything, "order-1").
			Return(testOrder(entities.OrderStatusInProgress), nil).Once()

		_, err := svc.SubmitDelivery(context.Background(), "order-1", clientID, nil, "done", false)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})

	t.Run("order not found", func(t *testing.T) {
		svc, repo, _, _, _ := newDeliveryService(t)
		repo.EXPECT().GetOrderByID(mock.Anything, "missing").
			Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		_, err := svc.SubmitDelivery(context.Background(), "missing", sellerID, nil, "", false)
		assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	})
}

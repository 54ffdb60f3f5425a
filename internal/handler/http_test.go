package handler_test

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gigcampus/order-service/internal/entities"
	"github.com/gigcampus/order-service/internal/handler"
	mocks "github.com/gigcampus/order-service/internal/handler/mocks"
	"github.com/gigcampus/order-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerMocks struct {
	orders     *mocks.MockOrderService
	milestones *mocks.MockMilestoneService
	delivery   *mocks.MockDeliveryService
	analytics  *mocks.MockAnalyticsService
}

func newTestRouter(t *testing.T) (chi.Router, handlerMocks) {
	t.Helper()

	m := handlerMocks{
		orders:     mocks.NewMockOrderService(t),
		milestones: mocks.NewMockMilestoneService(t),
		delivery:   mocks.NewMockDeliveryService(t),
		analytics:  mocks.NewMockAnalyticsService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handler.NewHTTPHandler(logger, m.orders, m.milestones, m.delivery, m.analytics)

	r := chi.NewRouter()
	h.Init(r)
	return r, m
}

func doRequest(t *testing.T, r chi.Router, method, path, userID, body string) (*http.Response, string) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	res := rr.Result()
	t.Cleanup(func() { res.Body.Close() })

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	return res, string(raw)
}

func TestHTTPHandler_GetOrder(t *testing.T) {
	validOrder := entities.Order{OrderID: "o1", ClientID: "client", SellerID: "seller", Status: entities.OrderStatusInProgress}

	testCases := []struct {
		name         string
		userID       string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name:   "success",
			userID: "client",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1", "client").
					Return(validOrder, nil).Once()
				m.milestones.EXPECT().ListMilestones(mock.Anything, "o1", "client").
					Return([]entities.Milestone{{Status: entities.MilestoneCompleted}}, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"progress":100`,
		},
		{
			name:   "not found",
			userID: "stranger",
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().GetOrder(mock.Anything, "o1", "stranger").
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
		{
			name:         "no user header",
			userID:       "",
			mockBehavior: func(handlerMocks) {},
			wantStatus:   http.StatusUnauthorized,
			wantBody:     `"unauthorized"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			res, body := doRequest(t, r, http.MethodGet, "/orders/o1", tc.userID, "")

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_UpdateStatus(t *testing.T) {
	testCases := []struct {
		name         string
		body         string
		mockBehavior func(m handlerMocks)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			body: `{"status":"in_progress"}`,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().UpdateStatus(mock.Anything, "o1", entities.OrderStatusInProgress, "seller").
					Return(nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"success":true`,
		},
		{
			name: "invalid transition",
			body: `{"status":"done"}`,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().UpdateStatus(mock.Anything, "o1", entities.OrderStatusDone, "seller").
					Return(entities.NewInvalidTransitionError(entities.OrderStatusDone, entities.OrderStatusDone)).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"success":false`,
		},
		{
			name: "unknown status",
			body: `{"status":"shipped"}`,
			mockBehavior: func(m handlerMocks) {
				m.orders.EXPECT().UpdateStatus(mock.Anything, "o1", entities.OrderStatus("shipped"), "seller").
					Return(entities.ErrInvalidStatus).Once()
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"invalid status"`,
		},
		{
			name:         "missing status field",
			body:         `{}`,
			mockBehavior: func(handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request"`,
		},
		{
			name:         "malformed body",
			body:         `{not json`,
			mockBehavior: func(handlerMocks) {},
			wantStatus:   http.StatusBadRequest,
			wantBody:     `"invalid request body"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, m := newTestRouter(t)
			tc.mockBehavior(m)

			res, body := doRequest(t, r, http.MethodPost, "/orders/o1/status", "seller", tc.body)

			assert.Equal(t, tc.wantStatus, res.StatusCode)
			assert.Contains(t, body, tc.wantBody)
		})
	}
}

func TestHTTPHandler_StatusShortcuts(t *testing.T) {
	t.Run("start", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().StartProgress(mock.Anything, "o1", "seller").Return(nil).Once()

		res, _ := doRequest(t, r, http.MethodPost, "/orders/o1/start", "seller", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("cancel", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().CancelOrder(mock.Anything, "o1", "seller").Return(nil).Once()

		res, _ := doRequest(t, r, http.MethodPost, "/orders/o1/cancel", "seller", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("complete denied for seller", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().ApproveAndComplete(mock.Anything, "o1", "seller").
			Return(entities.ErrOrderNotFound).Once()

		res, body := doRequest(t, r, http.MethodPost, "/orders/o1/complete", "seller", "")
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, `"order not found"`)
	})
}

func TestHTTPHandler_Milestones(t *testing.T) {
	milestone := entities.Milestone{MilestoneID: "m1", OrderID: "o1", Title: "Draft", Status: entities.MilestonePending}

	t.Run("create", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.milestones.EXPECT().
			CreateMilestone(mock.Anything, "seller", mock.MatchedBy(func(in entities.Milestone) bool {
				return in.OrderID == "o1" && in.Title == "Draft" && in.Position == 1
			})).
			Return(milestone, nil).Once()

		res, body := doRequest(t, r, http.MethodPost, "/orders/o1/milestones", "seller",
			`{"title":"Draft","position":1}`)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Contains(t, body, `"milestone_id":"m1"`)
	})

	t.Run("create position conflict", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.milestones.EXPECT().CreateMilestone(mock.Anything, "seller", mock.Anything).
			Return(entities.Milestone{}, entities.ErrPositionTaken).Once()

		res, body := doRequest(t, r, http.MethodPost, "/orders/o1/milestones", "seller",
			`{"title":"Draft","position":1}`)
		assert.Equal(t, http.StatusConflict, res.StatusCode)
		assert.Contains(t, body, "position already taken")
	})

	t.Run("list", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.milestones.EXPECT().ListMilestones(mock.Anything, "o1", "client").
			Return([]entities.Milestone{milestone}, nil).Once()

		res, body := doRequest(t, r, http.MethodGet, "/orders/o1/milestones", "client", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"order_id":"o1"`)
		assert.Contains(t, body, `"milestone_id":"m1"`)
	})

	t.Run("patch", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.milestones.EXPECT().
			UpdateMilestone(mock.Anything, "seller", "m1", mock.MatchedBy(func(p entities.MilestonePatch) bool {
				return p.Title != nil && *p.Title == "Final" && p.Status == nil
			})).
			Return(milestone, nil).Once()

		res, _ := doRequest(t, r, http.MethodPatch, "/milestones/m1", "seller", `{"title":"Final"}`)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("patch status", func(t *testing.T) {
		r, m := newTestRouter(t)
		completed := milestone
		completed.Status = entities.MilestoneCompleted
		m.milestones.EXPECT().
			UpdateMilestoneStatus(mock.Anything, "seller", "m1", entities.MilestoneCompleted).
			Return(completed, nil).Once()

		res, body := doRequest(t, r, http.MethodPatch, "/milestones/m1/status", "seller",
			`{"status":"completed"}`)
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"status":"completed"`)
	})

	t.Run("delete", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.milestones.EXPECT().DeleteMilestone(mock.Anything, "seller", "m1").Return(nil).Once()

		res, _ := doRequest(t, r, http.MethodDelete, "/milestones/m1", "seller", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("delete not found", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.milestones.EXPECT().DeleteMilestone(mock.Anything, "seller", "missing").
			Return(entities.ErrMilestoneNotFound).Once()

		res, body := doRequest(t, r, http.MethodDelete, "/milestones/missing", "seller", "")
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, `"milestone not found"`)
	})
}

func TestHTTPHandler_Messages(t *testing.T) {
	t.Run("send", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().
			SendMessage(mock.Anything, "o1", "client", "hello", entities.MessageTypeText).
			Return(entities.Message{MessageID: "msg1", OrderID: "o1", SenderID: "client", Body: "hello", Type: entities.MessageTypeText}, nil).Once()

		res, body := doRequest(t, r, http.MethodPost, "/orders/o1/messages", "client", `{"body":"hello"}`)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Contains(t, body, `"message_id":"msg1"`)
	})

	t.Run("conversation hides internal messages", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.orders.EXPECT().GetOrder(mock.Anything, "o1", "client").
			Return(entities.Order{OrderID: "o1", ClientID: "client", Status: entities.OrderStatusDone}, nil).Once()
		m.orders.EXPECT().Conversation(mock.Anything, "o1", "client").
			Return([]entities.Message{
				{MessageID: "msg1", Body: "delivered"},
				{MessageID: "msg2", Body: "ops note", IsInternal: true},
			}, nil, nil).Once()

		res, body := doRequest(t, r, http.MethodGet, "/orders/o1/messages", "client", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, "msg1")
		assert.NotContains(t, body, "msg2")
	})
}

func TestHTTPHandler_SubmitDelivery(t *testing.T) {
	t.Run("success with completion", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.delivery.EXPECT().
			SubmitDelivery(mock.Anything, "o1", "seller", mock.MatchedBy(func(files []service.DeliveryFile) bool {
				return len(files) == 1 && files[0].Name == "final.zip" && string(files[0].Data) == "zip"
			}), "here you go", true).
			Return(service.DeliveryResult{
				Message:     entities.Message{MessageID: "msg1"},
				Attachments: []entities.Attachment{{AttachmentID: "a1"}},
				Completed:   true,
			}, nil).Once()

		// "emlw" is base64 for "zip"
		res, body := doRequest(t, r, http.MethodPost, "/orders/o1/delivery", "seller",
			`{"message":"here you go","mark_complete":true,"files":[{"name":"final.zip","data":"emlw"}]}`)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Contains(t, body, `"completed":true`)
	})

	t.Run("completion failure surfaced in payload", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.delivery.EXPECT().
			SubmitDelivery(mock.Anything, "o1", "seller", mock.Anything, "done", true).
			Return(service.DeliveryResult{
				Message:       entities.Message{MessageID: "msg1"},
				Completed:     false,
				CompletionErr: entities.NewInvalidTransitionError(entities.OrderStatusCancelled, entities.OrderStatusDone),
			}, nil).Once()

		res, body := doRequest(t, r, http.MethodPost, "/orders/o1/delivery", "seller",
			`{"message":"done","mark_complete":true}`)
		assert.Equal(t, http.StatusCreated, res.StatusCode)
		assert.Contains(t, body, `"completed":false`)
		assert.Contains(t, body, `"completion_error"`)
	})

	t.Run("file without name rejected", func(t *testing.T) {
		r, _ := newTestRouter(t)

		res, body := doRequest(t, r, http.MethodPost, "/orders/o1/delivery", "seller",
			`{"files":[{"data":"emlw"}]}`)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Contains(t, body, `"invalid request"`)
	})
}

func TestHTTPHandler_SellerDashboard(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, m := newTestRouter(t)
		m.analytics.EXPECT().SellerDashboard(mock.Anything, "seller").
			Return(service.SellerDashboard{
				Stats: entities.SellerStats{SellerID: "seller", TotalRevenue: 50000},
			}, nil).Once()

		res, body := doRequest(t, r, http.MethodGet, "/sellers/seller/dashboard", "seller", "")
		assert.Equal(t, http.StatusOK, res.StatusCode)
		assert.Contains(t, body, `"total_revenue":50000`)
	})

	t.Run("other user denied as not found", func(t *testing.T) {
		r, _ := newTestRouter(t)

		res, body := doRequest(t, r, http.MethodGet, "/sellers/seller/dashboard", "intruder", "")
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
		assert.Contains(t, body, `"not found"`)
	})
}

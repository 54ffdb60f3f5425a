package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gigcampus/order-service/internal/entities"
	"github.com/gigcampus/order-service/internal/service"
	"github.com/gigcampus/order-service/internal/views"
	"github.com/gigcampus/order-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	GetOrder(ctx context.Context, orderID string, actingUserID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, requested entities.OrderStatus, actingUserID string) error
	StartProgress(ctx context.Context, orderID string, actingUserID string) error
	CancelOrder(ctx context.Context, orderID string, actingUserID string) error
	ApproveAndComplete(ctx context.Context, orderID string, actingUserID string) error
	SendMessage(ctx context.Context, orderID string, senderID string, body string, msgType entities.MessageType) (entities.Message, error)
	Conversation(ctx context.Context, orderID string, actingUserID string) ([]entities.Message, []entities.Attachment, error)
}

type MilestoneService interface {
	CreateMilestone(ctx context.Context, actingUserID string, m entities.Milestone) (entities.Milestone, error)
	UpdateMilestone(ctx context.Context, actingUserID string, milestoneID string, patch entities.MilestonePatch) (entities.Milestone, error)
	UpdateMilestoneStatus(ctx context.Context, actingUserID string, milestoneID string, status entities.MilestoneStatus) (entities.Milestone, error)
	DeleteMilestone(ctx context.Context, actingUserID string, milestoneID string) error
	ListMilestones(ctx context.Context, orderID string, actingUserID string) ([]entities.Milestone, error)
}

type DeliveryService interface {
	SubmitDelivery(ctx context.Context, orderID string, actingUserID string, files []service.DeliveryFile, message string, markComplete bool) (service.DeliveryResult, error)
}

type AnalyticsService interface {
	SellerDashboard(ctx context.Context, sellerID string) (service.SellerDashboard, error)
}

type HTTPHandler struct {
	logger     *slog.Logger
	validate   *validator.Validate
	orders     OrderService
	milestones MilestoneService
	delivery   DeliveryService
	analytics  AnalyticsService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, milestones MilestoneService, delivery DeliveryService, analytics AnalyticsService) *HTTPHandler {
	return &HTTPHandler{
		logger:     logger.With(slog.String("handler", "http")),
		validate:   validator.New(),
		orders:     orders,
		milestones: milestones,
		delivery:   delivery,
		analytics:  analytics,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/orders/{order_id}", func(r chi.Router) {
		r.Get("/", h.GetOrder)
		r.Post("/status", h.UpdateStatus)
		r.Post("/start", h.StartProgress)
		r.Post("/cancel", h.CancelOrder)
		r.Post("/complete", h.CompleteOrder)
		r.Get("/messages", h.GetConversation)
		r.Post("/messages", h.SendMessage)
		r.Get("/delivery", h.GetConversation)
		r.Post("/delivery", h.SubmitDelivery)
		r.Get("/milestones", h.ListMilestones)
		r.Post("/milestones", h.CreateMilestone)
	})

	r.Route("/milestones/{milestone_id}", func(r chi.Router) {
		r.Patch("/", h.UpdateMilestone)
		r.Patch("/status", h.UpdateMilestoneStatus)
		r.Delete("/", h.DeleteMilestone)
	})

	r.Get("/sellers/{seller_id}/dashboard", h.SellerDashboard)
}

// actingUser reads the authenticated user id set by the gateway. An empty
// value means the request never passed authentication.
func (h *HTTPHandler) actingUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := r.Header.Get("X-User-ID")
	if userID == "" {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
		return "", false
	}
	return userID, true
}

// writeServiceError maps service sentinels onto HTTP statuses. Transition
// and position conflicts carry their message through, everything unknown
// collapses into a 500.
func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error) {
	var transitionErr *entities.InvalidTransitionError

	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrMilestoneNotFound):
		utils.WriteError(w, "milestone not found", http.StatusNotFound)
	case errors.As(err, &transitionErr):
		utils.WriteError(w, transitionErr.Error(), http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidTransition):
		utils.WriteError(w, "invalid status transition", http.StatusConflict)
	case errors.Is(err, entities.ErrPositionTaken):
		utils.WriteError(w, "milestone position already taken", http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidStatus):
		utils.WriteError(w, "invalid status", http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, "request failed", slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// GetOrder returns the order overview for one of its participants.
// @Summary      Get order
// @Tags         orders
// @Param        order_id  path  string  true  "Order identifier"
// @Success      200  {object}  utils.Response{data=views.OrderOverview}
// @Failure      404  {object}  utils.Response "Order not found"
// @Router       /orders/{order_id} [get]
func (h *HTTPHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	if err := h.validate.Var(orderID, "required"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	order, err := h.orders.GetOrder(ctx, orderID, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	milestones, err := h.milestones.ListMilestones(ctx, orderID, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteSuccess(w, views.Overview(order, milestones), http.StatusOK)
}

// UpdateStatus applies the requested status transition.
// @Summary      Change order status
// @Tags         orders
// @Param        order_id  path  string               true  "Order identifier"
// @Param        body      body  UpdateStatusRequest  true  "Requested status"
// @Success      200  {object}  utils.Response
// @Failure      409  {object}  utils.Response "Invalid transition"
// @Router       /orders/{order_id}/status [post]
func (h *HTTPHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	var req UpdateStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	if err := h.orders.UpdateStatus(ctx, orderID, entities.OrderStatus(req.Status), userID); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteSuccess(w, nil, http.StatusOK)
}

// StartProgress moves the order into work.
// @Summary      Start working on an order
// @Tags         orders
// @Router       /orders/{order_id}/start [post]
func (h *HTTPHandler) StartProgress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	if err := h.orders.StartProgress(ctx, chi.URLParam(r, "order_id"), userID); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteSuccess(w, nil, http.StatusOK)
}

// CancelOrder cancels a non-terminal order.
// @Summary      Cancel order
// @Tags         orders
// @Router       /orders/{order_id}/cancel [post]
func (h *HTTPHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	if err := h.orders.CancelOrder(ctx, chi.URLParam(r, "order_id"), userID); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteSuccess(w, nil, http.StatusOK)
}

// CompleteOrder closes the order after client approval.
// @Summary      Approve and complete order
// @Tags         orders
// @Router       /orders/{order_id}/complete [post]
func (h *HTTPHandler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	if err := h.orders.ApproveAndComplete(ctx, chi.URLParam(r, "order_id"), userID); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteSuccess(w, nil, http.StatusOK)
}

// GetConversation returns the order conversation and attachments.
// @Summary      Get order conversation
// @Tags         messages
// @Success      200  {object}  utils.Response{data=views.DeliveryView}
// @Router       /orders/{order_id}/messages [get]
func (h *HTTPHandler) GetConversation(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	order, err := h.orders.GetOrder(ctx, orderID, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	messages, attachments, err := h.orders.Conversation(ctx, orderID, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}

	utils.WriteSuccess(w, views.Delivery(order, messages, attachments), http.StatusOK)
}

// SendMessage appends a message to the order conversation.
// @Summary      Send message
// @Tags         messages
// @Param        body  body  SendMessageRequest  true  "Message"
// @Router       /orders/{order_id}/messages [post]
func (h *HTTPHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	var req SendMessageRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	msgType := entities.MessageType(req.Type)
	if req.Type == "" {
		msgType = entities.MessageTypeText
	}

	msg, err := h.orders.SendMessage(ctx, orderID, userID, req.Body, msgType)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteSuccess(w, views.MessageView(msg), http.StatusCreated)
}

// SubmitDelivery accepts delivery files and a message in one request.
// @Summary      Submit delivery
// @Tags         delivery
// @Param        body  body  SubmitDeliveryRequest  true  "Files and message"
// @Success      201  {object}  utils.Response{data=SubmitDeliveryResponse}
// @Router       /orders/{order_id}/delivery [post]
func (h *HTTPHandler) SubmitDelivery(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	var req SubmitDeliveryRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	result, err := h.delivery.SubmitDelivery(ctx, orderID, userID, req.ToFiles(), req.Message, req.MarkComplete)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteSuccess(w, DeliveryResultToJSON(result), http.StatusCreated)
}

// ListMilestones returns the order milestones in position order.
// @Summary      List order milestones
// @Tags         milestones
// @Success      200  {object}  utils.Response{data=views.MilestoneTimeline}
// @Router       /orders/{order_id}/milestones [get]
func (h *HTTPHandler) ListMilestones(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	milestones, err := h.milestones.ListMilestones(ctx, orderID, userID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteSuccess(w, views.Timeline(entities.Order{OrderID: orderID}, milestones), http.StatusOK)
}

// CreateMilestone adds a milestone to the order.
// @Summary      Create milestone
// @Tags         milestones
// @Param        body  body  CreateMilestoneRequest  true  "Milestone"
// @Failure      409  {object}  utils.Response "Position already taken"
// @Router       /orders/{order_id}/milestones [post]
func (h *HTTPHandler) CreateMilestone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}
	orderID := chi.URLParam(r, "order_id")

	var req CreateMilestoneRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	milestone, err := h.milestones.CreateMilestone(ctx, userID, req.ToEntity(orderID))
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteSuccess(w, views.MilestoneView(milestone), http.StatusCreated)
}

// UpdateMilestone partially updates a milestone.
// @Summary      Update milestone
// @Tags         milestones
// @Param        milestone_id  path  string                  true  "Milestone identifier"
// @Param        body          body  UpdateMilestoneRequest  true  "Fields to change"
// @Router       /milestones/{milestone_id} [patch]
func (h *HTTPHandler) UpdateMilestone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}
	milestoneID := chi.URLParam(r, "milestone_id")

	var req UpdateMilestoneRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	milestone, err := h.milestones.UpdateMilestone(ctx, userID, milestoneID, req.ToPatch())
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteSuccess(w, views.MilestoneView(milestone), http.StatusOK)
}

// UpdateMilestoneStatus sets the milestone status directly.
// @Summary      Change milestone status
// @Tags         milestones
// @Param        body  body  MilestoneStatusRequest  true  "New status"
// @Router       /milestones/{milestone_id}/status [patch]
func (h *HTTPHandler) UpdateMilestoneStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}
	milestoneID := chi.URLParam(r, "milestone_id")

	var req MilestoneStatusRequest
	if err := utils.DecodeBody(r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	milestone, err := h.milestones.UpdateMilestoneStatus(ctx, userID, milestoneID, entities.MilestoneStatus(req.Status))
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteSuccess(w, views.MilestoneView(milestone), http.StatusOK)
}

// DeleteMilestone removes a milestone and recomputes the order progress.
// @Summary      Delete milestone
// @Tags         milestones
// @Router       /milestones/{milestone_id} [delete]
func (h *HTTPHandler) DeleteMilestone(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}

	if err := h.milestones.DeleteMilestone(ctx, userID, chi.URLParam(r, "milestone_id")); err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteSuccess(w, nil, http.StatusOK)
}

// SellerDashboard returns the seller's reporting summary.
// @Summary      Seller dashboard
// @Tags         analytics
// @Success      200  {object}  utils.Response{data=service.SellerDashboard}
// @Router       /sellers/{seller_id}/dashboard [get]
func (h *HTTPHandler) SellerDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID, ok := h.actingUser(w, r)
	if !ok {
		return
	}
	sellerID := chi.URLParam(r, "seller_id")

	// sellers see only their own dashboard; the denial mirrors a missing
	// resource just like order access does
	if userID != sellerID {
		utils.WriteError(w, "not found", http.StatusNotFound)
		return
	}

	dashboard, err := h.analytics.SellerDashboard(ctx, sellerID)
	if err != nil {
		h.writeServiceError(ctx, w, err)
		return
	}
	utils.WriteSuccess(w, dashboard, http.StatusOK)
}

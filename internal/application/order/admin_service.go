package order

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/storefront/backend/internal/domain/order"
	"github.com/storefront/backend/internal/domain/shared"
)

// AdminService exposes the back-office order operations: listing,
// inspection and fulfillment status updates. Orders are never deleted.
type AdminService struct {
	orders order.Repository
	logger *zap.Logger
}

// NewAdminService creates a new admin order service
func NewAdminService(orders order.Repository, logger *zap.Logger) *AdminService {
	return &AdminService{
		orders: orders,
		logger: logger.Named("order-admin"),
	}
}

// List returns a page of orders, newest first, optionally narrowed by
// fulfillment or payment status
func (s *AdminService) List(ctx context.Context, req ListRequest) (*ListResponse, error) {
	filter := order.ListFilter{
		Page:     req.Page,
		PageSize: req.PageSize,
	}
	if req.Status != "" {
		status := order.Status(req.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown order status filter")
		}
		filter.Status = &status
	}
	if req.PaymentStatus != "" {
		ps := order.PaymentStatus(req.PaymentStatus)
		if !ps.IsValid() {
			return nil, shared.NewDomainError("INVALID_PAYMENT_STATUS", "Unknown payment status filter")
		}
		filter.PaymentStatus = &ps
	}

	orders, total, err := s.orders.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list orders", zap.Error(err))
		return nil, err
	}

	responses := make([]Response, 0, len(orders))
	for i := range orders {
		responses = append(responses, ToResponse(&orders[i]))
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	return &ListResponse{
		Orders:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Get returns a single order with its items
func (s *AdminService) Get(ctx context.Context, orderID string) (*Response, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ORDER_ID", "Order ID must be a valid UUID")
	}
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToResponse(o)
	return &resp, nil
}

// UpdateStatus transitions an order's fulfillment status. Illegal
// transitions are rejected by the domain transition graph.
func (s *AdminService) UpdateStatus(ctx context.Context, orderID string, req UpdateStatusRequest) (*Response, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_ORDER_ID", "Order ID must be a valid UUID")
	}
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := o.UpdateStatus(order.Status(req.Status)); err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, o); err != nil {
		s.logger.Error("failed to save order status update",
			zap.String("order_id", orderID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("status", req.Status))

	resp := ToResponse(o)
	return &resp, nil
}

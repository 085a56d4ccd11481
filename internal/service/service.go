// Package service provides the implementation of order-related business logic.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	ordererrors "github.com/omnomnom-foods/orderdesk/internal/errors"
	"github.com/omnomnom-foods/orderdesk/internal/notify"
	"github.com/omnomnom-foods/orderdesk/internal/store"
)

// OrderService defines the methods for managing orders and customer notifications.
type OrderService interface {
	// List returns every order in insertion order.
	List(ctx context.Context) ([]store.Order, error)

	// UpdateStatus sets the status of the order matching id.
	// Returns ErrUnknownStatus for a status outside the accepted set and
	// ErrOrderNotFound if no order exists with the given ID.
	UpdateStatus(ctx context.Context, id, status string) (*store.Order, error)

	// Notify sends the status SMS for the order matching id.
	// Returns ErrOrderNotFound if no order exists with the given ID, or a
	// *notify.ProviderError if the provider rejected the message.
	Notify(ctx context.Context, id string) (*Notification, error)

	// Create adds a new order with a generated id.
	Create(ctx context.Context, order OrderCreateDto) (*store.Order, error)
}

// Notification reports a successfully dispatched customer notification.
type Notification struct {
	OrderID string
	Name    string
	Status  string
	Body    string
}

// OrderCreateDto represents the data transfer object for creating a new order.
type OrderCreateDto struct {
	Name   string `json:"name" validate:"required,max=64"`
	Phone  string `json:"phone" validate:"required,e164"`
	Items  string `json:"items" validate:"required,max=128"`
	Status string `json:"status" validate:"required"`
}

// Service implements OrderService on top of an OrderStore and a notification Dispatcher.
type Service struct {
	orderStore store.OrderStore
	dispatcher notify.Dispatcher
	originator string
}

// NewService creates a new instance of OrderService. originator is the sender
// name the SMS provider shows to customers.
func NewService(orderStore store.OrderStore, dispatcher notify.Dispatcher, originator string) *Service {
	return &Service{
		orderStore: orderStore,
		dispatcher: dispatcher,
		originator: originator,
	}
}

func (s *Service) List(ctx context.Context) ([]store.Order, error) {
	return s.orderStore.ListAll(ctx)
}

// UpdateStatus validates the submitted status against the accepted set before
// touching the store, so free-text statuses are rejected at the boundary.
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*store.Order, error) {
	if !KnownStatus(status) {
		return nil, fmt.Errorf("%q is not one of %s: %w", status, strings.Join(KnownStatuses, ", "), ordererrors.ErrUnknownStatus)
	}
	return s.orderStore.SetStatus(ctx, id, status)
}

func (s *Service) Notify(ctx context.Context, id string) (*Notification, error) {
	order, err := s.orderStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	body := MessageFor(order.Status, order.Name)
	if err := s.dispatcher.Send(ctx, s.originator, order.Phone, body); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "Customer notified",
		slog.String("order_id", order.ID),
		slog.String("status", order.Status))

	return &Notification{
		OrderID: order.ID,
		Name:    order.Name,
		Status:  order.Status,
		Body:    body,
	}, nil
}

func (s *Service) Create(ctx context.Context, order OrderCreateDto) (*store.Order, error) {
	if !KnownStatus(order.Status) {
		return nil, fmt.Errorf("%q is not one of %s: %w", order.Status, strings.Join(KnownStatuses, ", "), ordererrors.ErrUnknownStatus)
	}

	// Ids are opaque 32-char hex strings, same shape as the historical data.
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return s.orderStore.Create(ctx, store.CreateOrderParams{
		ID:     id,
		Name:   order.Name,
		Phone:  order.Phone,
		Items:  order.Items,
		Status: order.Status,
	})
}

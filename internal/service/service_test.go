package service

import (
	"context"
	"errors"
	"testing"
	"time"

	ordererrors "github.com/omnomnom-foods/orderdesk/internal/errors"
	"github.com/omnomnom-foods/orderdesk/internal/notify"
	"github.com/omnomnom-foods/orderdesk/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockOrderStore is a mock implementation of the OrderStore interface
type mockOrderStore struct {
	orders    []store.Order
	order     *store.Order
	error     error
	created   *store.CreateOrderParams
	setStatus struct {
		id     string
		status string
	}
}

func (m *mockOrderStore) ListAll(_ context.Context) ([]store.Order, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.orders, nil
}

func (m *mockOrderStore) FindByID(_ context.Context, _ string) (*store.Order, error) {
	if m.error != nil {
		return nil, m.error
	}
	return m.order, nil
}

func (m *mockOrderStore) SetStatus(_ context.Context, id string, status string) (*store.Order, error) {
	m.setStatus.id = id
	m.setStatus.status = status
	if m.error != nil {
		return nil, m.error
	}
	updated := *m.order
	updated.Status = status
	return &updated, nil
}

func (m *mockOrderStore) Create(_ context.Context, params store.CreateOrderParams) (*store.Order, error) {
	m.created = &params
	if m.error != nil {
		return nil, m.error
	}
	return &store.Order{
		ID:        params.ID,
		Name:      params.Name,
		Phone:     params.Phone,
		Items:     params.Items,
		Status:    params.Status,
		CreatedAt: time.Now(),
	}, nil
}

func (m *mockOrderStore) Seed(_ context.Context, _ []store.CreateOrderParams) error {
	return m.error
}

func (m *mockOrderStore) ClearAll(_ context.Context) error {
	return m.error
}

// mockDispatcher records the last send and returns a preconfigured error.
type mockDispatcher struct {
	originator string
	phone      string
	body       string
	calls      int
	error      error
}

func (m *mockDispatcher) Send(_ context.Context, originator, phone, body string) error {
	m.calls++
	m.originator = originator
	m.phone = phone
	m.body = body
	return m.error
}

var sampleOrder = store.Order{
	ID:     "c2972b5b4eef349fb1e5cc3e3150a2b6",
	Name:   "Hannah Hungry",
	Phone:  "+319876543210",
	Items:  "1 x Hipster Burger, Fries",
	Status: "pending",
}

func TestUpdateStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      string
		storeErr    error
		expectedErr error
		storeCalled bool
	}{
		{
			name:        "Success - known status",
			status:      "delivered",
			storeCalled: true,
		},
		{
			name:        "Error - unknown status rejected before the store",
			status:      "on the moon",
			expectedErr: ordererrors.ErrUnknownStatus,
			storeCalled: false,
		},
		{
			name:        "Error - empty status rejected",
			status:      "",
			expectedErr: ordererrors.ErrUnknownStatus,
			storeCalled: false,
		},
		{
			name:        "Error - order not found",
			status:      "confirmed",
			storeErr:    ordererrors.ErrOrderNotFound,
			expectedErr: ordererrors.ErrOrderNotFound,
			storeCalled: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			order := sampleOrder
			orderStore := &mockOrderStore{order: &order, error: tc.storeErr}
			svc := NewService(orderStore, &mockDispatcher{}, "OmNomNom")

			updated, err := svc.UpdateStatus(context.Background(), order.ID, tc.status)

			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				assert.Nil(t, updated)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.status, updated.Status)
			}
			if tc.storeCalled {
				assert.Equal(t, order.ID, orderStore.setStatus.id)
			} else {
				assert.Empty(t, orderStore.setStatus.id)
			}
		})
	}
}

func TestNotifySuccess(t *testing.T) {
	order := sampleOrder
	dispatcher := &mockDispatcher{}
	svc := NewService(&mockOrderStore{order: &order}, dispatcher, "OmNomNom")

	notification, err := svc.Notify(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, 1, dispatcher.calls)
	assert.Equal(t, "OmNomNom", dispatcher.originator)
	assert.Equal(t, order.Phone, dispatcher.phone)
	assert.Equal(t, MessageFor(order.Status, order.Name), dispatcher.body)

	assert.Equal(t, order.ID, notification.OrderID)
	assert.Equal(t, order.Name, notification.Name)
	assert.Equal(t, order.Status, notification.Status)
	assert.Equal(t, dispatcher.body, notification.Body)
}

func TestNotifyOrderNotFound(t *testing.T) {
	dispatcher := &mockDispatcher{}
	svc := NewService(&mockOrderStore{error: ordererrors.ErrOrderNotFound}, dispatcher, "OmNomNom")

	notification, err := svc.Notify(context.Background(), "missing")

	require.ErrorIs(t, err, ordererrors.ErrOrderNotFound)
	assert.Nil(t, notification)
	assert.Zero(t, dispatcher.calls, "dispatcher must not be invoked for a missing order")
}

func TestNotifyProviderError(t *testing.T) {
	order := sampleOrder
	providerErr := &notify.ProviderError{Descriptions: []string{"message could not be sent", "no (correct) recipients found"}}
	dispatcher := &mockDispatcher{error: providerErr}
	svc := NewService(&mockOrderStore{order: &order}, dispatcher, "OmNomNom")

	notification, err := svc.Notify(context.Background(), order.ID)

	assert.Nil(t, notification)
	var got *notify.ProviderError
	require.ErrorAs(t, err, &got)
	assert.Equal(t, providerErr.Descriptions, got.Descriptions)
}

func TestCreate(t *testing.T) {
	orderStore := &mockOrderStore{}
	svc := NewService(orderStore, &mockDispatcher{}, "OmNomNom")

	created, err := svc.Create(context.Background(), OrderCreateDto{
		Name:   "Don Cheetos",
		Phone:  "+319876543212",
		Items:  "1 x Awesome Cheese Platter",
		Status: "confirmed",
	})
	require.NoError(t, err)

	require.NotNil(t, orderStore.created)
	assert.Len(t, created.ID, 32, "ids keep the historical 32-char hex shape")
	assert.Equal(t, "Don Cheetos", created.Name)
	assert.Equal(t, "confirmed", created.Status)
}

func TestCreateUnknownStatus(t *testing.T) {
	orderStore := &mockOrderStore{}
	svc := NewService(orderStore, &mockDispatcher{}, "OmNomNom")

	created, err := svc.Create(context.Background(), OrderCreateDto{
		Name:   "Don Cheetos",
		Phone:  "+319876543212",
		Items:  "1 x Awesome Cheese Platter",
		Status: "weird",
	})

	require.ErrorIs(t, err, ordererrors.ErrUnknownStatus)
	assert.Nil(t, created)
	assert.Nil(t, orderStore.created)
}

func TestListPropagatesStoreFault(t *testing.T) {
	svc := NewService(&mockOrderStore{error: errors.New("connection refused")}, &mockDispatcher{}, "OmNomNom")

	orders, err := svc.List(context.Background())

	require.Error(t, err)
	assert.Nil(t, orders)
}

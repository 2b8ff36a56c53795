package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

func mustPhone(t *testing.T, raw string) valueobject.Phone {
	t.Helper()
	p, err := valueobject.NewPhone(raw)
	require.NoError(t, err)
	return p
}

func TestNewOrder(t *testing.T) {
	o, err := New("Asha Rao", "asha@example.com", mustPhone(t, "9876543210"))
	require.NoError(t, err)

	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, PaymentStatusPending, o.PaymentStatus)
	assert.Equal(t, "919876543210", o.CustomerPhone)
	assert.True(t, o.Total.IsZero())
}

func TestNewOrder_RequiresCustomerFields(t *testing.T) {
	phone := mustPhone(t, "9876543210")

	_, err := New("", "asha@example.com", phone)
	assert.Error(t, err)

	_, err = New("Asha Rao", "", phone)
	assert.Error(t, err)

	_, err = New("Asha Rao", "asha@example.com", valueobject.Phone{})
	assert.Error(t, err)
}

func TestAddItem_RecalculatesTotal(t *testing.T) {
	o, err := New("Asha Rao", "asha@example.com", mustPhone(t, "9876543210"))
	require.NoError(t, err)

	_, err = o.AddItem("v1", "Pure Ghee 500ml", 2, valueobject.NewMoneyINRFromFloat(250))
	require.NoError(t, err)
	_, err = o.AddItem("v2", "A2 Cow Ghee 250ml", 1, valueobject.NewMoneyINRFromFloat(450))
	require.NoError(t, err)

	assert.Equal(t, "950.00", o.Total.StringFixed(2))
	assert.Len(t, o.Items, 2)
}

func TestAddItem_RejectsInvalidLines(t *testing.T) {
	o, _ := New("Asha Rao", "asha@example.com", mustPhone(t, "9876543210"))

	_, err := o.AddItem("v1", "", 1, valueobject.NewMoneyINRFromFloat(250))
	assert.Error(t, err, "empty product name")

	_, err = o.AddItem("v1", "Pure Ghee", 0, valueobject.NewMoneyINRFromFloat(250))
	assert.Error(t, err, "zero quantity")

	_, err = o.AddItem("v1", "Pure Ghee", 1, valueobject.NewMoneyINRFromFloat(0))
	assert.Error(t, err, "zero unit price")
}

func TestValidate(t *testing.T) {
	o, _ := New("Asha Rao", "asha@example.com", mustPhone(t, "9876543210"))
	assert.Error(t, o.Validate(), "empty order must not validate")

	_, err := o.AddItem("v1", "Pure Ghee 500ml", 2, valueobject.NewMoneyINRFromFloat(250))
	require.NoError(t, err)
	assert.NoError(t, o.Validate())
}

func TestMarkPaid(t *testing.T) {
	o, _ := New("Asha Rao", "asha@example.com", mustPhone(t, "9876543210"))
	_, _ = o.AddItem("v1", "Pure Ghee 500ml", 2, valueobject.NewMoneyINRFromFloat(250))

	require.NoError(t, o.MarkPaid("cf_order_123", "txn_987"))

	assert.Equal(t, PaymentStatusPaid, o.PaymentStatus)
	assert.Equal(t, StatusConfirmed, o.Status)
	assert.Equal(t, "cf_order_123", o.ProviderOrderID)
	assert.Equal(t, "txn_987", o.PaymentID)
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusFailed, true},
		{StatusPending, StatusShipped, false},
		{StatusConfirmed, StatusProcessing, true},
		{StatusConfirmed, StatusDelivered, false},
		{StatusProcessing, StatusShipped, true},
		{StatusShipped, StatusDelivered, true},
		{StatusDelivered, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusFailed, StatusPending, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestUpdateStatus_RejectsInvalidTransition(t *testing.T) {
	o, _ := New("Asha Rao", "asha@example.com", mustPhone(t, "9876543210"))

	err := o.UpdateStatus(StatusDelivered)
	assert.Error(t, err)
	assert.Equal(t, StatusPending, o.Status)

	require.NoError(t, o.UpdateStatus(StatusConfirmed))
	assert.Equal(t, StatusConfirmed, o.Status)
}

func TestStatusEnums(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusFailed.IsValid())
	assert.False(t, Status("shipped-back").IsValid())

	assert.True(t, PaymentStatusPaid.IsValid())
	assert.True(t, PaymentStatusRefunded.IsValid())
	assert.False(t, PaymentStatus("success").IsValid())
}

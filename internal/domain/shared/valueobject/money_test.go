package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney_RequiresCurrency(t *testing.T) {
	_, err := NewMoney(decimal.NewFromInt(10), "")
	assert.Error(t, err)
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoneyINRFromFloat(250)
	b := NewMoneyINRFromFloat(99.50)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.Equal(t, "349.50", sum.StringFixed())

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.Equal(t, "150.50", diff.StringFixed())

	assert.Equal(t, "500.00", a.MulInt(2).StringFixed())
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	a := NewMoneyINRFromFloat(10)
	b, err := NewMoney(decimal.NewFromInt(10), USD)
	require.NoError(t, err)

	_, err = a.Add(b)
	assert.Error(t, err)
	_, err = a.Cmp(b)
	assert.Error(t, err)
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, ZeroINR().IsZero())
	assert.True(t, NewMoneyINRFromFloat(1).IsPositive())
	assert.True(t, NewMoneyINR(decimal.NewFromInt(-1)).IsNegative())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m, err := NewMoneyINRFromString("1399.50")
	require.NoError(t, err)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"1399.50","currency":"INR"}`, string(data))

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equals(back))
}

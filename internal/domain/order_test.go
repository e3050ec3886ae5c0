package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{"pending to completed", StatusPending, StatusCompleted, true},
		{"pending to paid", StatusPending, StatusPaid, true},
		{"completed to paid", StatusCompleted, StatusPaid, true},
		{"paid to pending", StatusPaid, StatusPending, false},
		{"paid to completed", StatusPaid, StatusCompleted, false},
		{"paid to paid", StatusPaid, StatusPaid, false},
		{"completed to pending", StatusCompleted, StatusPending, false},
		{"pending to pending", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"paid", "PAID", "Paid"} {
		status, err := ParseOrderStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, StatusPaid, status)
	}

	_, err := ParseOrderStatus("shipped")
	assert.Error(t, err)
}

func TestOrderItemLineTotal(t *testing.T) {
	item := OrderItem{
		Quantity: 3,
		Price:    decimal.RequireFromString("12.99"),
	}
	assert.True(t, item.LineTotal().Equal(decimal.RequireFromString("38.97")))
}

func TestSumItems(t *testing.T) {
	items := []OrderItem{
		{Quantity: 2, Price: decimal.RequireFromString("10.00")},
		{Quantity: 1, Price: decimal.RequireFromString("5.00")},
	}
	assert.True(t, SumItems(items).Equal(decimal.RequireFromString("25.00")))
	assert.True(t, SumItems(nil).Equal(decimal.Zero))
}

func TestOrderIsClosed(t *testing.T) {
	assert.False(t, (&Order{Status: StatusPending}).IsClosed())
	assert.False(t, (&Order{Status: StatusCompleted}).IsClosed())
	assert.True(t, (&Order{Status: StatusPaid}).IsClosed())
}

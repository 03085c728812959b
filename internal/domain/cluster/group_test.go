package cluster

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/granttrack/granttrack/internal/domain/ticket"
)

func TestIDSetBasics(t *testing.T) {
	s := NewIDSet(3, 1, 2)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(2))
	assert.False(t, s.Has(4))

	s.Add(4)
	s.Remove(1)
	assert.Equal(t, []uint{2, 3, 4}, s.IDs())
}

func TestIDSetMinAndPopMin(t *testing.T) {
	s := NewIDSet(7, 5, 9)

	assert.Equal(t, uint(5), s.Min())
	assert.Equal(t, uint(5), s.PopMin())
	assert.Equal(t, uint(7), s.PopMin())
	assert.Equal(t, uint(9), s.PopMin())
	assert.Equal(t, 0, s.Len())
}

func TestIDSetUpdate(t *testing.T) {
	s := NewIDSet(1, 2)
	s.Update(NewIDSet(2, 3))

	assert.Equal(t, []uint{1, 2, 3}, s.IDs())
}

func TestGroupUpdate(t *testing.T) {
	g := NewGroup()
	g.Tickets.Add(1)

	other := NewGroup()
	other.Tickets.Add(2)
	other.Transactions.Add(10)

	g.Update(other)

	assert.Equal(t, []uint{1, 2}, g.Tickets.IDs())
	assert.Equal(t, []uint{10}, g.Transactions.IDs())
	assert.True(t, g.HasTickets())
	assert.True(t, g.HasTransactions())
	assert.True(t, g.HasItems())
}

func TestGroupEmpty(t *testing.T) {
	g := NewGroup()

	assert.False(t, g.HasTickets())
	assert.False(t, g.HasTransactions())
	assert.False(t, g.HasItems())
}

func TestClusterStatus(t *testing.T) {
	dec := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}

	cases := []struct {
		name         string
		tickets      string
		transactions string
		want         ticket.PaymentStatus
	}{
		{"nothing owed, nothing paid", "0", "0", ticket.PaymentStatusNA},
		{"owed, nothing paid", "100.00", "0", ticket.PaymentStatusUnpaid},
		{"owed, partially covered", "100.00", "50.00", ticket.PaymentStatusPartiallyPaid},
		{"exactly covered", "100.00", "100.00", ticket.PaymentStatusPaid},
		{"covered to the cent", "100.00", "100.000", ticket.PaymentStatusPaid},
		{"overpaid", "100.00", "150.00", ticket.PaymentStatusOverpaid},
		{"paid with nothing owed", "0", "25.00", ticket.PaymentStatusOverpaid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := Cluster{TotalTickets: dec(tc.tickets), TotalTransactions: dec(tc.transactions)}
			assert.Equal(t, tc.want, c.Status())
		})
	}
}

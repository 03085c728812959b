package application

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/granttrack/granttrack/internal/domain/ticket"
	"github.com/granttrack/granttrack/internal/domain/topic"
	"github.com/granttrack/granttrack/internal/repository"
)

func makeTicketInTopic(t *testing.T, repos *repository.Repos, topicID uint, amount string) *ticket.Ticket {
	t.Helper()
	tk := &ticket.Ticket{
		Summary:          "test ticket",
		TopicID:          topicID,
		State:            ticket.StateExpensesFiled,
		RatingPercentage: intPtr(100),
	}
	require.NoError(t, repos.Ticket.CreateTicket(tk))
	require.NoError(t, repos.Ticket.CreateExpenditure(&ticket.Expenditure{
		TicketID:    tk.ID,
		Description: "expense",
		Amount:      decimal.RequireFromString(amount),
	}))
	return tk
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)), "want %s, got %s", want, got)
}

func TestPaymentSummarySimpleStatuses(t *testing.T) {
	repos, svc := setupClusterTest(t)
	finance := NewFinanceService(repos)

	unpaid := makeTicketInTopic(t, repos, 1, "100.00")
	paid := makeTicketInTopic(t, repos, 1, "40.00")
	makeTransaction(t, repos, "40.00", paid.ID)

	require.NoError(t, svc.RefreshAll())
	_ = unpaid

	f, err := finance.PaymentSummary(1)
	require.NoError(t, err)

	assert.False(t, f.Fuzzy)
	assertAmount(t, "100.00", f.Unpaid)
	assertAmount(t, "40.00", f.Paid)
	assertAmount(t, "0", f.Overpaid)
}

func TestPaymentSummaryCountsSharedClusterOnce(t *testing.T) {
	repos, svc := setupClusterTest(t)
	finance := NewFinanceService(repos)

	t1 := makeTicketInTopic(t, repos, 1, "60.00")
	t2 := makeTicketInTopic(t, repos, 1, "40.00")
	makeTransaction(t, repos, "50.00", t1.ID, t2.ID)

	require.NoError(t, svc.RefreshAll())

	f, err := finance.PaymentSummary(1)
	require.NoError(t, err)

	// One cluster owing 100 with 50 paid, counted once despite two tickets.
	assert.False(t, f.Fuzzy)
	assertAmount(t, "50.00", f.Paid)
	assertAmount(t, "50.00", f.Unpaid)
}

func TestPaymentSummaryApportionsCrossTopicCluster(t *testing.T) {
	repos, svc := setupClusterTest(t)
	finance := NewFinanceService(repos)

	require.NoError(t, repos.Topic.CreateTopic(&topic.Topic{Name: "second", OpenForTickets: true, TicketExpenses: true}))

	t1 := makeTicketInTopic(t, repos, 1, "60.00")
	t2 := makeTicketInTopic(t, repos, 2, "40.00")
	makeTransaction(t, repos, "50.00", t1.ID, t2.ID)

	require.NoError(t, svc.RefreshAll())

	f1, err := finance.PaymentSummary(1)
	require.NoError(t, err)
	f2, err := finance.PaymentSummary(2)
	require.NoError(t, err)

	// The cluster spans two topics, so each topic gets half of everything
	// and both summaries are flagged fuzzy.
	assert.True(t, f1.Fuzzy)
	assert.True(t, f2.Fuzzy)
	assertAmount(t, "25.00", f1.Paid)
	assertAmount(t, "25.00", f1.Unpaid)
	assertAmount(t, "25.00", f2.Paid)
	assertAmount(t, "25.00", f2.Unpaid)
}

func TestGrantSummaryRollsUpTopics(t *testing.T) {
	repos, svc := setupClusterTest(t)
	finance := NewFinanceService(repos)

	require.NoError(t, repos.Topic.CreateGrant(&topic.Grant{FullName: "Community Grant", ShortName: "CG", Slug: "cg"}))

	// Rewire both topics under the grant.
	first, err := repos.Topic.GetTopicByID(1)
	require.NoError(t, err)
	first.GrantID = 1
	require.NoError(t, repos.Topic.UpdateTopic(&first))
	require.NoError(t, repos.Topic.CreateTopic(&topic.Topic{Name: "second", GrantID: 1, OpenForTickets: true, TicketExpenses: true}))

	makeTicketInTopic(t, repos, 1, "100.00")
	t2 := makeTicketInTopic(t, repos, 2, "30.00")
	makeTransaction(t, repos, "30.00", t2.ID)

	require.NoError(t, svc.RefreshAll())

	f, err := finance.GrantSummary(1)
	require.NoError(t, err)

	assert.False(t, f.Fuzzy)
	assertAmount(t, "100.00", f.Unpaid)
	assertAmount(t, "30.00", f.Paid)
}

func TestClusterSumsAreExact(t *testing.T) {
	repos, svc := setupClusterTest(t)
	finance := NewFinanceService(repos)

	t1 := makeTicketInTopic(t, repos, 1, "100.00")
	makeTransaction(t, repos, "60.00", t1.ID)
	t2 := makeTicketInTopic(t, repos, 1, "50.00")
	makeTransaction(t, repos, "80.00", t2.ID)
	makeTicketInTopic(t, repos, 1, "10.00")

	require.NoError(t, svc.RefreshAll())

	f, err := finance.ClusterSums()
	require.NoError(t, err)

	// 60 of 100, all 50 of 50 plus 30 over, none of 10.
	assertAmount(t, "110.00", f.Paid)
	assertAmount(t, "50.00", f.Unpaid)
	assertAmount(t, "30.00", f.Overpaid)
}

func TestAddFinanceMerges(t *testing.T) {
	a := NewFinanceStatus()
	a.Unpaid = decimal.RequireFromString("10.00")

	b := NewFinanceStatus()
	b.Fuzzy = true
	b.Paid = decimal.RequireFromString("5.00")

	a.AddFinance(b)

	assert.True(t, a.Fuzzy)
	assertAmount(t, "10.00", a.Unpaid)
	assertAmount(t, "5.00", a.Paid)
}

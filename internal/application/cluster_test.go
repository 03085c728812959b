package application

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/granttrack/granttrack/internal/config/db"
	"github.com/granttrack/granttrack/internal/domain/ticket"
	"github.com/granttrack/granttrack/internal/domain/topic"
	"github.com/granttrack/granttrack/internal/domain/transaction"
	"github.com/granttrack/granttrack/internal/repository"
)

// --------------------- Setup ---------------------

func setupClusterTest(t *testing.T) (*repository.Repos, *ClusterService) {
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "clusters.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	repos := repository.NewRepositories(gdb)
	require.NoError(t, repos.Topic.CreateTopic(&topic.Topic{Name: "festival", OpenForTickets: true, TicketExpenses: true}))

	return repos, NewClusterService(repos, nil)
}

func intPtr(n int) *int { return &n }

func makeTicket(t *testing.T, repos *repository.Repos, amount string) *ticket.Ticket {
	t.Helper()
	tk := &ticket.Ticket{
		Summary:          "test ticket",
		TopicID:          1,
		State:            ticket.StateExpensesFiled,
		RatingPercentage: intPtr(100),
	}
	require.NoError(t, repos.Ticket.CreateTicket(tk))
	if amount != "0" {
		require.NoError(t, repos.Ticket.CreateExpenditure(&ticket.Expenditure{
			TicketID:    tk.ID,
			Description: "expense",
			Amount:      decimal.RequireFromString(amount),
		}))
	}
	return tk
}

func makeTransaction(t *testing.T, repos *repository.Repos, amount string, ticketIDs ...uint) *transaction.Transaction {
	t.Helper()
	tr := &transaction.Transaction{
		Description: "bank transfer",
		Amount:      decimal.RequireFromString(amount),
	}
	require.NoError(t, repos.Transaction.CreateTransaction(tr))
	for _, id := range ticketIDs {
		require.NoError(t, repos.Transaction.LinkTicket(tr.ID, id))
	}
	return tr
}

func reloadTicket(t *testing.T, repos *repository.Repos, id uint) ticket.Ticket {
	t.Helper()
	tk, err := repos.Ticket.GetTicketByID(id)
	require.NoError(t, err)
	return tk
}

func reloadTransaction(t *testing.T, repos *repository.Repos, id uint) transaction.Transaction {
	t.Helper()
	tr, err := repos.Transaction.GetTransactionByID(id)
	require.NoError(t, err)
	return tr
}

// --------------------- Component discovery ---------------------

func TestPerformSingleTicketNoLinks(t *testing.T) {
	repos, svc := setupClusterTest(t)
	tk := makeTicket(t, repos, "100.00")

	require.NoError(t, svc.Perform([]uint{tk.ID}, nil))

	got := reloadTicket(t, repos, tk.ID)
	require.NotNil(t, got.ClusterID)
	assert.Equal(t, tk.ID, *got.ClusterID)
	assert.Equal(t, ticket.PaymentStatusUnpaid, got.PaymentStatus)

	c, err := repos.Cluster.GetClusterByID(tk.ID)
	require.NoError(t, err)
	assert.False(t, c.MoreTickets)
	assert.True(t, c.TotalTickets.Equal(decimal.RequireFromString("100.00")))
	assert.True(t, c.TotalTransactions.IsZero())
}

func TestPerformLinkedPair(t *testing.T) {
	repos, svc := setupClusterTest(t)
	tk := makeTicket(t, repos, "100.00")
	tr := makeTransaction(t, repos, "100.00", tk.ID)

	require.NoError(t, svc.Perform([]uint{tk.ID}, nil))

	gotTicket := reloadTicket(t, repos, tk.ID)
	gotTransaction := reloadTransaction(t, repos, tr.ID)
	require.NotNil(t, gotTicket.ClusterID)
	require.NotNil(t, gotTransaction.ClusterID)
	assert.Equal(t, *gotTicket.ClusterID, *gotTransaction.ClusterID)
	assert.Equal(t, ticket.PaymentStatusPaid, gotTicket.PaymentStatus)
}

func TestPerformTransactionWithoutTicketsStaysClusterless(t *testing.T) {
	repos, svc := setupClusterTest(t)
	tr := makeTransaction(t, repos, "42.00")

	require.NoError(t, svc.Perform(nil, []uint{tr.ID}))

	got := reloadTransaction(t, repos, tr.ID)
	assert.Nil(t, got.ClusterID)

	clusters, err := repos.Cluster.ListClusters()
	require.NoError(t, err)
	assert.Empty(t, clusters)
}

func TestPerformIsIdempotent(t *testing.T) {
	repos, svc := setupClusterTest(t)
	tk := makeTicket(t, repos, "100.00")
	tr := makeTransaction(t, repos, "60.00", tk.ID)

	require.NoError(t, svc.Perform([]uint{tk.ID}, nil))
	first := reloadTicket(t, repos, tk.ID)

	require.NoError(t, svc.Perform([]uint{tk.ID}, []uint{tr.ID}))
	second := reloadTicket(t, repos, tk.ID)

	assert.Equal(t, *first.ClusterID, *second.ClusterID)
	assert.Equal(t, first.PaymentStatus, second.PaymentStatus)

	clusters, err := repos.Cluster.ListClusters()
	require.NoError(t, err)
	assert.Len(t, clusters, 1)
}

func TestPerformMergesComponentsThroughSharedTransaction(t *testing.T) {
	repos, svc := setupClusterTest(t)
	t1 := makeTicket(t, repos, "30.00") // ID 1
	t2 := makeTicket(t, repos, "70.00") // ID 2
	tr := makeTransaction(t, repos, "100.00", t1.ID, t2.ID)

	require.NoError(t, svc.Perform(nil, []uint{tr.ID}))

	got1 := reloadTicket(t, repos, t1.ID)
	got2 := reloadTicket(t, repos, t2.ID)
	require.NotNil(t, got1.ClusterID)
	require.NotNil(t, got2.ClusterID)

	// The cluster takes the lowest member ticket ID.
	assert.Equal(t, t1.ID, *got1.ClusterID)
	assert.Equal(t, t1.ID, *got2.ClusterID)

	c, err := repos.Cluster.GetClusterByID(t1.ID)
	require.NoError(t, err)
	assert.True(t, c.MoreTickets)
	assert.True(t, c.TotalTickets.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, ticket.PaymentStatusPaid, got1.PaymentStatus)
	assert.Equal(t, ticket.PaymentStatusPaid, got2.PaymentStatus)
}

func TestPerformSplitsClusterAfterUnlink(t *testing.T) {
	repos, svc := setupClusterTest(t)
	t1 := makeTicket(t, repos, "50.00")
	t2 := makeTicket(t, repos, "70.00")
	tr1 := makeTransaction(t, repos, "50.00", t1.ID)
	bridge := makeTransaction(t, repos, "10.00", t1.ID, t2.ID)
	tr2 := makeTransaction(t, repos, "60.00", t2.ID)

	require.NoError(t, svc.RefreshAll())

	merged := reloadTicket(t, repos, t2.ID)
	require.NotNil(t, merged.ClusterID)
	assert.Equal(t, t1.ID, *merged.ClusterID)

	// Severing the bridge must split the component in two.
	require.NoError(t, repos.Transaction.UnlinkTicket(bridge.ID, t2.ID))
	require.NoError(t, svc.Perform([]uint{t2.ID}, []uint{bridge.ID}))

	got1 := reloadTicket(t, repos, t1.ID)
	got2 := reloadTicket(t, repos, t2.ID)
	require.NotNil(t, got1.ClusterID)
	require.NotNil(t, got2.ClusterID)
	assert.Equal(t, t1.ID, *got1.ClusterID)
	assert.Equal(t, t2.ID, *got2.ClusterID)
	assert.NotEqual(t, *got1.ClusterID, *got2.ClusterID)

	// 50 + 10 against 50 owed.
	assert.Equal(t, ticket.PaymentStatusOverpaid, got1.PaymentStatus)
	// 60 against 70 owed.
	assert.Equal(t, ticket.PaymentStatusPartiallyPaid, got2.PaymentStatus)

	gotTr1 := reloadTransaction(t, repos, tr1.ID)
	gotTr2 := reloadTransaction(t, repos, tr2.ID)
	assert.Equal(t, t1.ID, *gotTr1.ClusterID)
	assert.Equal(t, t2.ID, *gotTr2.ClusterID)
}

func TestPerformLeavesOrphanedTransactionClusterless(t *testing.T) {
	repos, svc := setupClusterTest(t)
	tk := makeTicket(t, repos, "20.00")
	tr := makeTransaction(t, repos, "20.00", tk.ID)

	require.NoError(t, svc.Perform([]uint{tk.ID}, nil))
	require.NoError(t, repos.Transaction.UnlinkTicket(tr.ID, tk.ID))
	require.NoError(t, svc.Perform([]uint{tk.ID}, []uint{tr.ID}))

	got := reloadTransaction(t, repos, tr.ID)
	assert.Nil(t, got.ClusterID)

	gotTicket := reloadTicket(t, repos, tk.ID)
	require.NotNil(t, gotTicket.ClusterID)
	assert.Equal(t, ticket.PaymentStatusUnpaid, gotTicket.PaymentStatus)
}

// --------------------- Status thresholds ---------------------

func TestStatusProgression(t *testing.T) {
	repos, svc := setupClusterTest(t)
	tk := makeTicket(t, repos, "100.00")

	require.NoError(t, svc.Perform([]uint{tk.ID}, nil))
	assert.Equal(t, ticket.PaymentStatusUnpaid, reloadTicket(t, repos, tk.ID).PaymentStatus)

	makeTransaction(t, repos, "50.00", tk.ID)
	require.NoError(t, svc.Perform([]uint{tk.ID}, nil))
	assert.Equal(t, ticket.PaymentStatusPartiallyPaid, reloadTicket(t, repos, tk.ID).PaymentStatus)

	makeTransaction(t, repos, "50.00", tk.ID)
	require.NoError(t, svc.Perform([]uint{tk.ID}, nil))
	assert.Equal(t, ticket.PaymentStatusPaid, reloadTicket(t, repos, tk.ID).PaymentStatus)

	makeTransaction(t, repos, "50.00", tk.ID)
	require.NoError(t, svc.Perform([]uint{tk.ID}, nil))
	assert.Equal(t, ticket.PaymentStatusOverpaid, reloadTicket(t, repos, tk.ID).PaymentStatus)
}

func TestStatusUsesAcceptedAmount(t *testing.T) {
	repos, svc := setupClusterTest(t)

	tk := &ticket.Ticket{
		Summary:          "rated at half",
		TopicID:          1,
		State:            ticket.StateExpensesFiled,
		RatingPercentage: intPtr(50),
	}
	require.NoError(t, repos.Ticket.CreateTicket(tk))
	require.NoError(t, repos.Ticket.CreateExpenditure(&ticket.Expenditure{
		TicketID: tk.ID, Description: "expense", Amount: decimal.RequireFromString("100.00"),
	}))
	makeTransaction(t, repos, "50.00", tk.ID)

	require.NoError(t, svc.Perform([]uint{tk.ID}, nil))

	// 100 at 50% rating is exactly covered by the 50 transaction.
	assert.Equal(t, ticket.PaymentStatusPaid, reloadTicket(t, repos, tk.ID).PaymentStatus)
}

func TestStatusIgnoresUnfiledExpenses(t *testing.T) {
	repos, svc := setupClusterTest(t)

	tk := &ticket.Ticket{
		Summary:          "still accepted",
		TopicID:          1,
		State:            ticket.StateAccepted,
		RatingPercentage: intPtr(100),
	}
	require.NoError(t, repos.Ticket.CreateTicket(tk))
	require.NoError(t, repos.Ticket.CreateExpenditure(&ticket.Expenditure{
		TicketID: tk.ID, Description: "expense", Amount: decimal.RequireFromString("100.00"),
	}))

	require.NoError(t, svc.Perform([]uint{tk.ID}, nil))

	// No expenses filed yet means nothing is owed.
	assert.Equal(t, ticket.PaymentStatusNA, reloadTicket(t, repos, tk.ID).PaymentStatus)
}

// --------------------- Whole-store rebuild ---------------------

func TestRefreshAllRecoversFromDrift(t *testing.T) {
	repos, svc := setupClusterTest(t)
	t1 := makeTicket(t, repos, "10.00")
	t2 := makeTicket(t, repos, "20.00")
	makeTransaction(t, repos, "10.00", t1.ID)
	makeTransaction(t, repos, "5.00", t2.ID)

	require.NoError(t, svc.RefreshAll())

	got1 := reloadTicket(t, repos, t1.ID)
	got2 := reloadTicket(t, repos, t2.ID)
	assert.Equal(t, t1.ID, *got1.ClusterID)
	assert.Equal(t, t2.ID, *got2.ClusterID)
	assert.Equal(t, ticket.PaymentStatusPaid, got1.PaymentStatus)
	assert.Equal(t, ticket.PaymentStatusPartiallyPaid, got2.PaymentStatus)

	clusters, err := repos.Cluster.ListClusters()
	require.NoError(t, err)
	assert.Len(t, clusters, 2)

	// A second full rebuild settles on the same state.
	require.NoError(t, svc.RefreshAll())
	clusters, err = repos.Cluster.ListClusters()
	require.NoError(t, err)
	assert.Len(t, clusters, 2)
}

func TestPerformUnknownTicketFailsLoudly(t *testing.T) {
	_, svc := setupClusterTest(t)

	err := svc.Perform([]uint{999}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ticket 999")
}

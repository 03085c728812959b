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

func setupTicketTest(t *testing.T) (*repository.Repos, *TicketService) {
	repos, clusters := setupClusterTest(t)
	return repos, NewTicketService(repos, clusters)
}

func strPtr(s string) *string { return &s }

func TestCreateTicketAssignsCluster(t *testing.T) {
	repos, svc := setupTicketTest(t)

	tk, err := svc.CreateTicket(nil, ticket.CreateTicketDTO{
		Summary: "travel costs",
		TopicID: 1,
	})
	require.NoError(t, err)

	require.NotNil(t, tk.ClusterID)
	assert.Equal(t, tk.ID, *tk.ClusterID)
	assert.Equal(t, ticket.StateDraft, tk.State)
	assert.Equal(t, ticket.PaymentStatusNA, tk.PaymentStatus)

	_, err = repos.Cluster.GetClusterByID(tk.ID)
	assert.NoError(t, err)
}

func TestCreateTicketClosedTopic(t *testing.T) {
	repos, svc := setupTicketTest(t)
	require.NoError(t, repos.Topic.CreateTopic(&topic.Topic{Name: "closed", OpenForTickets: false}))

	_, err := svc.CreateTicket(nil, ticket.CreateTicketDTO{
		Summary: "too late",
		TopicID: 2,
	})
	assert.ErrorIs(t, err, ErrTopicClosed)
}

func TestUpdateTicketStateMovesMoney(t *testing.T) {
	repos, svc := setupTicketTest(t)

	tk, err := svc.CreateTicket(nil, ticket.CreateTicketDTO{
		Summary: "catering",
		TopicID: 1,
		State:   strPtr(string(ticket.StateAccepted)),
	})
	require.NoError(t, err)

	_, err = svc.CreateExpenditure(tk.ID, ticket.CreateExpenditureDTO{
		Description: "food",
		Amount:      decimal.RequireFromString("80.00"),
	})
	require.NoError(t, err)

	// Accepted expenses owe nothing until they are filed and rated.
	got, err := svc.GetTicket(tk.ID)
	require.NoError(t, err)
	assert.Equal(t, ticket.PaymentStatusNA, got.PaymentStatus)

	rating := 100
	got, err = svc.UpdateTicket(tk.ID, ticket.UpdateTicketDTO{
		State:            strPtr(string(ticket.StateExpensesFiled)),
		RatingPercentage: &rating,
	})
	require.NoError(t, err)
	assert.Equal(t, ticket.PaymentStatusUnpaid, got.PaymentStatus)

	c, err := repos.Cluster.GetClusterByID(tk.ID)
	require.NoError(t, err)
	assert.True(t, c.TotalTickets.Equal(decimal.RequireFromString("80.00")))
}

func TestExpenditureChangesRecomputeStatus(t *testing.T) {
	repos, svc := setupTicketTest(t)

	rating := 100
	tk, err := svc.CreateTicket(nil, ticket.CreateTicketDTO{
		Summary:          "printing",
		TopicID:          1,
		State:            strPtr(string(ticket.StateExpensesFiled)),
		RatingPercentage: &rating,
	})
	require.NoError(t, err)
	makeTransaction(t, repos, "50.00", tk.ID)
	require.NoError(t, svc.Clusters.Perform([]uint{tk.ID}, nil))

	e, err := svc.CreateExpenditure(tk.ID, ticket.CreateExpenditureDTO{
		Description: "posters",
		Amount:      decimal.RequireFromString("50.00"),
	})
	require.NoError(t, err)
	got, _ := svc.GetTicket(tk.ID)
	assert.Equal(t, ticket.PaymentStatusPaid, got.PaymentStatus)

	newAmount := decimal.RequireFromString("70.00")
	_, err = svc.UpdateExpenditure(e.ID, ticket.UpdateExpenditureDTO{Amount: &newAmount})
	require.NoError(t, err)
	got, _ = svc.GetTicket(tk.ID)
	assert.Equal(t, ticket.PaymentStatusPartiallyPaid, got.PaymentStatus)

	require.NoError(t, svc.DeleteExpenditure(e.ID))
	got, _ = svc.GetTicket(tk.ID)
	assert.Equal(t, ticket.PaymentStatusOverpaid, got.PaymentStatus)
}

func TestDeleteTicketReclustersLinkedTransactions(t *testing.T) {
	repos, svc := setupTicketTest(t)

	t1 := makeTicket(t, repos, "50.00")
	t2 := makeTicket(t, repos, "30.00")
	tr := makeTransaction(t, repos, "80.00", t1.ID, t2.ID)
	require.NoError(t, svc.Clusters.RefreshAll())

	require.NoError(t, svc.DeleteTicket(t1.ID))

	_, err := svc.GetTicket(t1.ID)
	assert.ErrorIs(t, err, ErrTicketNotFound)

	// The survivor takes over the component under its own ID.
	got2 := reloadTicket(t, repos, t2.ID)
	require.NotNil(t, got2.ClusterID)
	assert.Equal(t, t2.ID, *got2.ClusterID)
	assert.Equal(t, ticket.PaymentStatusOverpaid, got2.PaymentStatus)

	gotTr := reloadTransaction(t, repos, tr.ID)
	require.NotNil(t, gotTr.ClusterID)
	assert.Equal(t, t2.ID, *gotTr.ClusterID)
}

func TestDeleteLastTicketDropsCluster(t *testing.T) {
	repos, svc := setupTicketTest(t)

	tk := makeTicket(t, repos, "50.00")
	tr := makeTransaction(t, repos, "50.00", tk.ID)
	require.NoError(t, svc.Clusters.Perform([]uint{tk.ID}, nil))

	require.NoError(t, svc.DeleteTicket(tk.ID))

	clusters, err := repos.Cluster.ListClusters()
	require.NoError(t, err)
	assert.Empty(t, clusters)

	gotTr := reloadTransaction(t, repos, tr.ID)
	assert.Nil(t, gotTr.ClusterID)
}

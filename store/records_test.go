package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verifiedboiy/fanmeetzone/applications/order"
)

func newTestStore(t *testing.T) *RecordStore {
	t.Helper()
	return NewRecordStore(filepath.Join(t.TempDir(), "records.json"))
}

func sampleOrder(ticket string) order.Order {
	return order.Order{
		TicketID: ticket,
		Celebrity: order.Celebrity{
			Name:    "Alice",
			GenCode: "1234",
		},
		Client: order.ClientInfo{
			FullName: "Bob Fan",
			Email:    "bob@example.com",
			Package:  "gold",
		},
		Paid:      false,
		Status:    order.StatusPendingVerification,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}

func TestLoadAllMissingFile(t *testing.T) {
	s := newTestStore(t)
	rows := s.LoadAll()
	require.NotNil(t, rows)
	require.Empty(t, rows)
}

func TestLoadAllMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewRecordStore(path)
	require.Empty(t, s.LoadAll())
}

func TestAppendRoundTrip(t *testing.T) {
	s := newTestStore(t)
	o := sampleOrder("ABC123XYZ")
	o.PaymentInfo = &order.PaymentInfo{Method: "gift_card", ProofURL: "/uploads/x.png"}

	require.NoError(t, s.Append(o))

	rows := s.LoadAll()
	require.Len(t, rows, 1)
	require.Equal(t, o.TicketID, rows[0].TicketID)
	require.Equal(t, o.Celebrity, rows[0].Celebrity)
	require.Equal(t, o.Client, rows[0].Client)
	require.Equal(t, o.Status, rows[0].Status)
	require.Equal(t, o.Paid, rows[0].Paid)
	require.Equal(t, o.PaymentInfo.ProofURL, rows[0].PaymentInfo.ProofURL)
	require.True(t, o.CreatedAt.Equal(rows[0].CreatedAt))
}

func TestFindByTicket(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(sampleOrder("TICKET001")))
	require.NoError(t, s.Append(sampleOrder("TICKET002")))

	got, found := s.FindByTicket("TICKET002")
	require.True(t, found)
	require.Equal(t, "TICKET002", got.TicketID)

	_, found = s.FindByTicket("NOPE")
	require.False(t, found)
}

func TestDeleteByTicket(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(sampleOrder("KEEP00001")))
	require.NoError(t, s.Append(sampleOrder("DROP00001")))

	require.NoError(t, s.DeleteByTicket("DROP00001"))

	rows := s.LoadAll()
	require.Len(t, rows, 1)
	require.Equal(t, "KEEP00001", rows[0].TicketID)
}

func TestDeleteUnknownTicketLeavesStoreUnchanged(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(sampleOrder("KEEP00001")))

	before, err := os.ReadFile(s.path)
	require.NoError(t, err)

	require.NoError(t, s.DeleteByTicket("MISSING01"))

	after, err := os.ReadFile(s.path)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestRewriteAllReplacesDocument(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Append(sampleOrder("OLD000001")))

	replacement := []order.Order{sampleOrder("NEW000001"), sampleOrder("NEW000002")}
	require.NoError(t, s.RewriteAll(replacement))

	rows := s.LoadAll()
	require.Len(t, rows, 2)
	require.Equal(t, "NEW000001", rows[0].TicketID)
}

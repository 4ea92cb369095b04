package admin

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/verifiedboiy/fanmeetzone/applications/order"
	"github.com/verifiedboiy/fanmeetzone/store"
)

func newTestModerator(t *testing.T) (*Moderator, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.json")
	return &Moderator{
		Store:         store.NewRecordStore(path),
		PublicBaseURL: "http://localhost:8080",
	}, path
}

func giftOrder(ticket string, createdAt time.Time) order.Order {
	return order.Order{
		TicketID:  ticket,
		Celebrity: order.Celebrity{Name: "Alice", GenCode: "1234"},
		Client: order.ClientInfo{
			FullName: "Bob Fan",
			Package:  "gold",
		},
		Paid:   false,
		Status: order.StatusPendingVerification,
		PaymentInfo: &order.PaymentInfo{
			Method:   "gift_card",
			ProofURL: "/uploads/gift.png",
		},
		CreatedAt: createdAt,
	}
}

func TestVerifyMarksPaidAndVerified(t *testing.T) {
	m, _ := newTestModerator(t)
	require.NoError(t, m.Store.Append(giftOrder("GIFT00001", time.Now().UTC())))

	require.NoError(t, m.Verify("GIFT00001"))

	got, found := m.Store.FindByTicket("GIFT00001")
	require.True(t, found)
	require.Equal(t, order.StatusVerified, got.Status)
	require.True(t, got.Paid)
}

func TestRejectMarksRejectedAndUnpaid(t *testing.T) {
	m, _ := newTestModerator(t)
	o := giftOrder("GIFT00002", time.Now().UTC())
	o.Paid = true
	require.NoError(t, m.Store.Append(o))

	require.NoError(t, m.Reject("GIFT00002"))

	got, found := m.Store.FindByTicket("GIFT00002")
	require.True(t, found)
	require.Equal(t, order.StatusRejected, got.Status)
	require.False(t, got.Paid)
}

func TestVerifyUnknownTicketIsSilentNoOp(t *testing.T) {
	m, path := newTestModerator(t)
	require.NoError(t, m.Store.Append(giftOrder("GIFT00003", time.Now().UTC())))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, m.Verify("MISSING01"))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.JSONEq(t, string(before), string(after))
}

func TestDeleteUnknownTicketIsSilentNoOp(t *testing.T) {
	m, path := newTestModerator(t)
	require.NoError(t, m.Store.Append(giftOrder("GIFT00004", time.Now().UTC())))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, m.Delete("MISSING01"))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestDeleteRemovesRecord(t *testing.T) {
	m, _ := newTestModerator(t)
	require.NoError(t, m.Store.Append(giftOrder("GIFT00005", time.Now().UTC())))
	require.NoError(t, m.Store.Append(giftOrder("GIFT00006", time.Now().UTC())))

	require.NoError(t, m.Delete("GIFT00005"))

	rows := m.Store.LoadAll()
	require.Len(t, rows, 1)
	require.Equal(t, "GIFT00006", rows[0].TicketID)
}

func TestListRecordsNewestFirst(t *testing.T) {
	m, _ := newTestModerator(t)
	base := time.Now().UTC()
	require.NoError(t, m.Store.Append(giftOrder("OLD000001", base.Add(-2*time.Hour))))
	require.NoError(t, m.Store.Append(giftOrder("NEW000001", base)))
	require.NoError(t, m.Store.Append(giftOrder("MID000001", base.Add(-time.Hour))))

	rows := m.ListRecords()
	require.Len(t, rows, 3)
	require.Equal(t, "NEW000001", rows[0].TicketID)
	require.Equal(t, "MID000001", rows[1].TicketID)
	require.Equal(t, "OLD000001", rows[2].TicketID)
}

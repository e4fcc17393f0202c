package dao

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/festivalhub/festivalhub-api/internal/domain"
)

var testNow = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func seedMessage(t *testing.T, d *InboxDAO, message InboxMessage) InboxMessage {
	t.Helper()

	created, err := d.Insert(context.Background(), message)
	require.NoError(t, err)

	return created
}

func couponMessage(userID uint) InboxMessage {
	attachmentType := "coupon"

	return InboxMessage{
		UserID:         userID,
		Type:           "coupon",
		Title:          "할인 쿠폰",
		Body:           "축제 주점 10% 할인",
		AttachmentType: &attachmentType,
		AttachmentData: RawJSON(`{"discount":"10%"}`),
	}
}

func TestInboxDAO_FindByUserID(t *testing.T) {
	d := NewInboxDAO(newTestDB(t))
	ctx := context.Background()

	seedMessage(t, d, couponMessage(1))
	seedMessage(t, d, InboxMessage{UserID: 1, Type: "notification", Title: "공지", Body: "안내"})
	seedMessage(t, d, couponMessage(2))

	expired := testNow.Add(-time.Hour)
	seedMessage(t, d, InboxMessage{UserID: 1, Type: "event", Title: "지난 이벤트", Body: "종료", ExpiresAt: &expired})

	t.Run("lists only the owner's unexpired messages", func(t *testing.T) {
		messages, total, err := d.FindByUserID(ctx, 1, domain.InboxFilters{Page: 1, Limit: 10}, testNow)

		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, messages, 2)
	})

	t.Run("type filter", func(t *testing.T) {
		messages, total, err := d.FindByUserID(ctx, 1, domain.InboxFilters{Type: "coupon", Page: 1, Limit: 10}, testNow)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, messages, 1)
		assert.Equal(t, "할인 쿠폰", messages[0].Title)
	})

	t.Run("read state filter", func(t *testing.T) {
		isRead := true
		_, total, err := d.FindByUserID(ctx, 1, domain.InboxFilters{IsRead: &isRead, Page: 1, Limit: 10}, testNow)

		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("future expiry is still visible", func(t *testing.T) {
		future := testNow.Add(time.Hour)
		seedMessage(t, d, InboxMessage{UserID: 3, Type: "event", Title: "진행중", Body: "안내", ExpiresAt: &future})

		_, total, err := d.FindByUserID(ctx, 3, domain.InboxFilters{Page: 1, Limit: 10}, testNow)

		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}

func TestInboxDAO_MarkRead(t *testing.T) {
	d := NewInboxDAO(newTestDB(t))
	ctx := context.Background()

	message := seedMessage(t, d, couponMessage(1))

	require.NoError(t, d.MarkRead(ctx, message.ID, 1, testNow))

	found, err := d.FindOwnedByID(ctx, message.ID, 1)
	require.NoError(t, err)
	assert.True(t, found.IsRead)
	require.NotNil(t, found.ReadAt)
	firstReadAt := *found.ReadAt

	// A second mark leaves read_at where it was.
	require.NoError(t, d.MarkRead(ctx, message.ID, 1, testNow.Add(time.Hour)))

	found, err = d.FindOwnedByID(ctx, message.ID, 1)
	require.NoError(t, err)
	require.NotNil(t, found.ReadAt)
	assert.True(t, firstReadAt.Equal(*found.ReadAt))

	unread, err := d.CountUnread(ctx, 1, testNow)
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestInboxDAO_MarkAllRead(t *testing.T) {
	d := NewInboxDAO(newTestDB(t))
	ctx := context.Background()

	seedMessage(t, d, couponMessage(1))
	seedMessage(t, d, InboxMessage{UserID: 1, Type: "notification", Title: "공지", Body: "안내"})
	seedMessage(t, d, couponMessage(2))

	count, err := d.MarkAllRead(ctx, 1, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// Another user's inbox is untouched.
	unread, err := d.CountUnread(ctx, 2, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), unread)

	// Nothing left to mark.
	count, err = d.MarkAllRead(ctx, 1, testNow)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInboxDAO_MarkClaimed(t *testing.T) {
	d := NewInboxDAO(newTestDB(t))
	ctx := context.Background()

	message := seedMessage(t, d, couponMessage(1))

	require.NoError(t, d.MarkClaimed(ctx, message.ID, 1, testNow, testNow))

	found, err := d.FindOwnedByID(ctx, message.ID, 1)
	require.NoError(t, err)
	assert.True(t, found.IsClaimed)
	assert.True(t, found.IsRead)
	require.NotNil(t, found.ClaimedAt)

	coupons, err := d.CountClaimedCoupons(ctx, 1, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), coupons)

	t.Run("another user's message reads as missing", func(t *testing.T) {
		err := d.MarkClaimed(ctx, message.ID, 2, testNow, testNow)

		assert.ErrorIs(t, err, ErrMessageNotFound)
	})
}

func TestInboxDAO_CountClaimedCoupons_SkipsExpired(t *testing.T) {
	d := NewInboxDAO(newTestDB(t))
	ctx := context.Background()

	expired := testNow.Add(-time.Hour)
	stale := couponMessage(1)
	stale.ExpiresAt = &expired
	staleMessage := seedMessage(t, d, stale)

	liveMessage := seedMessage(t, d, couponMessage(1))

	require.NoError(t, d.MarkClaimed(ctx, staleMessage.ID, 1, expired, expired))
	require.NoError(t, d.MarkClaimed(ctx, liveMessage.ID, 1, testNow, testNow))

	coupons, err := d.CountClaimedCoupons(ctx, 1, testNow)
	require.NoError(t, err)
	assert.Equal(t, int64(1), coupons)
}

func TestInboxDAO_Delete(t *testing.T) {
	d := NewInboxDAO(newTestDB(t))
	ctx := context.Background()

	message := seedMessage(t, d, couponMessage(1))

	t.Run("ownership is enforced", func(t *testing.T) {
		assert.ErrorIs(t, d.Delete(ctx, message.ID, 2), ErrMessageNotFound)
	})

	require.NoError(t, d.Delete(ctx, message.ID, 1))

	_, err := d.FindOwnedByID(ctx, message.ID, 1)
	assert.ErrorIs(t, err, ErrMessageNotFound)
}

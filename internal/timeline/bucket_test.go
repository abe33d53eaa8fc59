package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBucketLabelsTodayYesterdayAndDates(t *testing.T) {
	now := time.Date(2025, time.November, 3, 18, 30, 0, 0, time.UTC)
	items := []Item{
		{ID: "a", Type: TypeOrderCreated, Date: now.Add(-time.Hour)},
		{ID: "b", Type: TypeTicket, Date: now.Add(-2 * time.Hour)},
		{ID: "c", Type: TypeReview, Date: now.AddDate(0, 0, -1)},
		{ID: "d", Type: TypeSecurity, Date: time.Date(2025, time.October, 20, 9, 0, 0, 0, time.UTC)},
	}

	buckets := Bucket(items, FilterAll, now)
	require.Len(t, buckets, 3)
	require.Equal(t, "Today", buckets[0].Label)
	require.Equal(t, []string{"a", "b"}, ids(buckets[0].Items))
	require.Equal(t, "Yesterday", buckets[1].Label)
	require.Equal(t, []string{"c"}, ids(buckets[1].Items))
	require.Equal(t, "Oct 20, 2025", buckets[2].Label)
	require.Equal(t, []string{"d"}, ids(buckets[2].Items))
}

func TestBucketIsAPartitionOfTheFilteredInput(t *testing.T) {
	now := time.Date(2025, time.November, 3, 18, 30, 0, 0, time.UTC)
	items := Sort([]Item{
		{ID: "a", Type: TypeOrderCreated, Date: now.Add(-time.Hour)},
		{ID: "b", Type: TypeOrderUpdated, Date: now.AddDate(0, 0, -1)},
		{ID: "c", Type: TypeTicket, Date: now.AddDate(0, 0, -3)},
		{ID: "d", Type: TypeSecurity, Date: now.AddDate(0, 0, -5)},
	})

	buckets := Bucket(items, FilterAll, now)
	var flattened []string
	for _, b := range buckets {
		flattened = append(flattened, ids(b.Items)...)
	}
	require.Equal(t, ids(items), flattened)
}

func TestBucketFilterSemantics(t *testing.T) {
	now := time.Date(2025, time.November, 3, 18, 30, 0, 0, time.UTC)
	items := []Item{
		{ID: "created", Type: TypeOrderCreated, Date: now},
		{ID: "updated", Type: TypeOrderUpdated, Date: now},
		{ID: "ticket", Type: TypeTicket, Date: now},
		{ID: "review", Type: TypeReview, Date: now},
		{ID: "security", Type: TypeSecurity, Date: now},
	}

	orderBuckets := Bucket(items, FilterOrder, now)
	require.Len(t, orderBuckets, 1)
	require.Equal(t, []string{"created", "updated"}, ids(orderBuckets[0].Items))

	securityBuckets := Bucket(items, FilterSecurity, now)
	require.Len(t, securityBuckets, 1)
	require.Equal(t, []string{"security"}, ids(securityBuckets[0].Items))

	allBuckets := Bucket(items, FilterAll, now)
	require.Len(t, allBuckets, 1)
	require.Len(t, allBuckets[0].Items, len(items))
}

func TestBucketSingleOpenTicket(t *testing.T) {
	now := time.Date(2025, time.November, 3, 18, 30, 0, 0, time.UTC)
	tickets := []SupportTicket{{ID: "t-1", Status: "open", Subject: "Help", CreatedAt: now.Add(-time.Minute)}}
	items := Sort(Normalize(nil, tickets, nil, nil))

	ticketBuckets := Bucket(items, FilterTicket, now)
	require.Len(t, ticketBuckets, 1)
	require.Len(t, ticketBuckets[0].Items, 1)

	require.Empty(t, Bucket(items, FilterOrder, now))
}

func TestParseFilter(t *testing.T) {
	for raw, want := range map[string]Filter{
		"":         FilterAll,
		"all":      FilterAll,
		"Order":    FilterOrder,
		"ticket":   FilterTicket,
		"security": FilterSecurity,
	} {
		got, err := ParseFilter(raw)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseFilter("reviews")
	require.Error(t, err)
}

package timeline

import "time"

// dateLabelLayout formats calendar-day bucket labels, e.g. "Jan 2, 2006".
const dateLabelLayout = "Jan 2, 2006"

// DayBucket is one labeled day group of the activity log.
type DayBucket struct {
	Label string
	Items []Item
}

// Bucket filters the items and groups them by calendar day relative to
// now: "Today", "Yesterday", or a formatted date. Buckets are emitted in
// the order their first item is encountered, so for pre-sorted input the
// bucket sequence is reverse-chronological and concatenating the buckets
// reproduces the filtered input exactly. An empty filtered result yields
// no buckets.
func Bucket(items []Item, filter Filter, now time.Time) []DayBucket {
	buckets := make([]DayBucket, 0)
	index := make(map[string]int)

	for _, item := range items {
		if !filter.Matches(item) {
			continue
		}
		label := dayLabel(item.Date, now)
		i, ok := index[label]
		if !ok {
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, DayBucket{Label: label})
		}
		buckets[i].Items = append(buckets[i].Items, item)
	}

	return buckets
}

func dayLabel(date, now time.Time) string {
	switch {
	case sameDay(date, now):
		return "Today"
	case sameDay(date, now.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return date.Format(dateLabelLayout)
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

package maintenance

import "sort"

// SortKey is the tuple a schedule listing is ordered by.
type SortKey struct {
	Title    string
	IsActive bool
	Status   Status
}

// Keyed is implemented by anything that can be placed in a schedule listing.
type Keyed interface {
	SortKey() SortKey
}

// Less orders active items first, then by urgency, then by the nearest
// mileage countdown, then by the nearest date countdown, then by title.
func Less(a, b SortKey) bool {
	if a.IsActive != b.IsActive {
		return a.IsActive
	}

	ra, rb := a.Status.DueStatus.Rank(), b.Status.DueStatus.Rank()
	if ra != rb {
		return ra < rb
	}

	if a.Status.MilesUntilDue != nil && b.Status.MilesUntilDue != nil &&
		*a.Status.MilesUntilDue != *b.Status.MilesUntilDue {
		return *a.Status.MilesUntilDue < *b.Status.MilesUntilDue
	}

	if a.Status.DaysUntilDue != nil && b.Status.DaysUntilDue != nil &&
		*a.Status.DaysUntilDue != *b.Status.DaysUntilDue {
		return *a.Status.DaysUntilDue < *b.Status.DaysUntilDue
	}

	return a.Title < b.Title
}

// Sort orders items in place for a "show all" listing.
func Sort[T Keyed](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		return Less(items[i].SortKey(), items[j].SortKey())
	})
}

// NeedsAttention returns the active, non-ok items in listing order.
// The input slice is not modified.
func NeedsAttention[T Keyed](items []T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		key := item.SortKey()
		if key.IsActive && key.Status.DueStatus != StatusOK {
			out = append(out, item)
		}
	}
	Sort(out)
	return out
}

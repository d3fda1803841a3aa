package board

import (
	"sort"

	"backend/internal/apperror"
)

// Sort keys accepted by the listing endpoints. createdAt and title are
// persisted columns and ordered by the storage layer; likes is derived from
// an aggregate at read time and ordered in memory after assembly.
const (
	SortByCreatedAt = "createdAt"
	SortByTitle     = "title"
	SortByLikes     = "likes"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

type SortSpec struct {
	By    string
	Order string
}

// Derived reports whether the key has no backing column and must be sorted
// post-fetch.
func (s SortSpec) Derived() bool {
	return s.By == SortByLikes
}

// Column translates a persisted sort key into its ORDER BY clause. Callers
// must have run ParseSortSpec first; derived keys have no column.
func (s SortSpec) Column() string {
	col := map[string]string{
		SortByCreatedAt: "boards.created_at",
		SortByTitle:     "boards.title",
	}[s.By]
	if s.Order == OrderAsc {
		return col + " ASC"
	}
	return col + " DESC"
}

// ParseSortSpec validates the request parameters. Unknown keys or orders are
// request errors; nothing downstream re-checks them.
func ParseSortSpec(by, order string) (SortSpec, error) {
	if by == "" {
		by = SortByCreatedAt
	}
	if order == "" {
		order = OrderDesc
	}
	switch by {
	case SortByCreatedAt, SortByTitle, SortByLikes:
	default:
		return SortSpec{}, apperror.BadRequest("unknown sort key: " + by)
	}
	switch order {
	case OrderAsc, OrderDesc:
	default:
		return SortSpec{}, apperror.BadRequest("unknown sort order: " + order)
	}
	return SortSpec{By: by, Order: order}, nil
}

// SortByLikeCount orders summaries by their attached like counts. The sort is
// stable: ties keep the relative order the storage layer returned them in.
func SortByLikeCount(items []Summary, order string) {
	sort.SliceStable(items, func(i, j int) bool {
		if order == OrderAsc {
			return items[i].LikeCount < items[j].LikeCount
		}
		return items[i].LikeCount > items[j].LikeCount
	})
}

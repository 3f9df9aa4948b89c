package request

import "strings"

// ListQuery carries the optional search/sort query parameters shared by
// the listing endpoints. Sort is a combined "field:direction" token.
type ListQuery struct {
	Search string
	Role   string
	Sort   string
}

// SortBy splits the sort token into field and direction. Direction is
// "desc" only when explicitly requested.
func (q ListQuery) SortBy() (field, direction string) {
	if q.Sort == "" {
		return "", ""
	}

	parts := strings.SplitN(q.Sort, ":", 2)
	field = parts[0]
	direction = "asc"
	if len(parts) == 2 && parts[1] == "desc" {
		direction = "desc"
	}

	return field, direction
}

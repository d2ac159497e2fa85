package repository

import "math"

// ModsPageLimit is the fixed window size of the mods listing.
const ModsPageLimit = 50

// Page represents a simple limit/offset window for listing operations.
type Page struct {
	Limit  int
	Offset int
}

// PageResult carries a slice of items and the total row count at query time.
type PageResult[T any] struct {
	Items []T
	Total int
}

// MaxPageNumber is the largest 1-based page whose offset still fits in an int.
func MaxPageNumber(limit int) int {
	if limit <= 0 {
		return 0
	}
	return math.MaxInt / limit
}

// PageFor maps a 1-based page number onto a limit/offset window.
// Callers validate number >= 1 first; page 0 would yield offset -limit.
func PageFor(number, limit int) Page {
	return Page{Limit: limit, Offset: number*limit - limit}
}

// TotalPages is ceil(total/limit) in integer arithmetic, so exact multiples never round up.
func TotalPages(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

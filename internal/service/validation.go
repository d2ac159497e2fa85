package service

import (
	"strconv"

	"github.com/maxviazov/mods-catalog-service/internal/repository"
)

// validatePage enforces the documented page policy: 1 <= page <= the last page
// whose offset still fits in an int. Zero and negatives are client errors,
// never forwarded to the store as a negative OFFSET.
func validatePage(page, limit int) error {
	maxPage := repository.MaxPageNumber(limit)
	switch {
	case page < 1:
		return InvalidInput(FieldError{Field: "page", Message: "must be >= 1"})
	case page > maxPage:
		return InvalidInput(FieldError{Field: "page", Message: "must be <= " + strconv.Itoa(maxPage)})
	}
	return nil
}

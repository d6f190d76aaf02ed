package validation

import (
	"fmt"
	"math"

	dErrors "librarian/pkg/domain-errors"
)

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed request body size (64 KB).
	MaxBodySize = 64 * 1024
)

// Paging limits
const (
	// DefaultPageSize is used when the caller does not provide a size.
	DefaultPageSize = 10

	// MaxPageSize caps a single page so list endpoints stay bounded.
	MaxPageSize = 100

	// MaxPage keeps page*size within int range for every accepted size.
	MaxPage = math.MaxInt / MaxPageSize
)

// String element length limits
const (
	MaxNameLength   = 255
	MaxEmailLength  = 255
	MaxISBNLength   = 32
	MaxTitleLength  = 512
	MaxAuthorLength = 255
)

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}

// CheckPaging validates zero-based page numbers and bounded page sizes.
func CheckPaging(page, size int) error {
	if page < 0 {
		return dErrors.New(dErrors.CodeValidation, "page must not be negative")
	}
	if page > MaxPage {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("page must be at most %d", MaxPage))
	}
	if size < 1 || size > MaxPageSize {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("size must be between 1 and %d", MaxPageSize))
	}
	return nil
}

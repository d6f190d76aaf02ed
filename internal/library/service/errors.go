package service

import (
	"context"
	"errors"

	"librarian/internal/sentinel"
	dErrors "librarian/pkg/domain-errors"
)

// Store error handling: translates sentinel errors into domain errors exactly once.

const (
	msgBookNotFound       = "book not found"
	msgBorrowerNotFound   = "borrower not found"
	msgDuplicateEmail     = "A borrower with this email already exists."
	msgConflictingCatalog = "A book with this ISBN already exists with a different title and author."
	msgAlreadyBorrowed    = "The book is currently borrowed and cannot be borrowed by another borrower."
	msgNotBorrowed        = "The book is not currently borrowed."
)

// Rejection reasons recorded in metrics.
const (
	reasonBookNotFound       = "book_not_found"
	reasonBorrowerNotFound   = "borrower_not_found"
	reasonDuplicateEmail     = "duplicate_email"
	reasonConflictingCatalog = "conflicting_catalog_entry"
	reasonAlreadyBorrowed    = "already_borrowed"
	reasonNotBorrowed        = "not_borrowed"
	reasonValidation         = "validation"
)

// errorMapping defines how a sentinel error maps to a domain error.
type errorMapping struct {
	sentinel error
	code     dErrors.Code
	msg      string
	reason   string
}

// First match wins; more specific errors should come first.
var (
	borrowerErrorMappings = []errorMapping{
		{sentinel.ErrNotFound, dErrors.CodeNotFound, msgBorrowerNotFound, reasonBorrowerNotFound},
		{sentinel.ErrAlreadyUsed, dErrors.CodeDuplicateEmail, msgDuplicateEmail, reasonDuplicateEmail},
	}
	bookErrorMappings = []errorMapping{
		{sentinel.ErrNotFound, dErrors.CodeNotFound, msgBookNotFound, reasonBookNotFound},
		{sentinel.ErrMissingReference, dErrors.CodeNotFound, msgBorrowerNotFound, reasonBorrowerNotFound},
	}
	borrowErrorMappings = append([]errorMapping{
		{sentinel.ErrInvalidState, dErrors.CodeAlreadyBorrowed, msgAlreadyBorrowed, reasonAlreadyBorrowed},
	}, bookErrorMappings...)
	returnErrorMappings = append([]errorMapping{
		{sentinel.ErrInvalidState, dErrors.CodeNotBorrowed, msgNotBorrowed, reasonNotBorrowed},
	}, bookErrorMappings...)
)

// translate maps err using mappings. Domain errors pass through unchanged;
// anything unmapped becomes an internal error described by action.
func (s *Service) translate(ctx context.Context, err error, mappings []errorMapping, action string) error {
	if err == nil {
		return nil
	}

	var de *dErrors.Error
	if errors.As(err, &de) {
		s.reject(ctx, reasonFor(de.Code), "error", err)
		return err
	}

	for _, m := range mappings {
		if errors.Is(err, m.sentinel) {
			s.reject(ctx, m.reason, "error", err)
			return dErrors.Wrap(err, m.code, m.msg)
		}
	}

	s.logger.ErrorContext(ctx, action, "error", err)
	return dErrors.Wrap(err, dErrors.CodeInternal, action)
}

func (s *Service) wrapBorrowerErr(ctx context.Context, err error, action string) error {
	return s.translate(ctx, err, borrowerErrorMappings, action)
}

func (s *Service) wrapBookErr(ctx context.Context, err error, action string) error {
	return s.translate(ctx, err, bookErrorMappings, action)
}

func reasonFor(code dErrors.Code) string {
	switch code {
	case dErrors.CodeNotFound:
		return "not_found"
	case dErrors.CodeDuplicateEmail:
		return reasonDuplicateEmail
	case dErrors.CodeConflictingCatalogEntry:
		return reasonConflictingCatalog
	case dErrors.CodeAlreadyBorrowed:
		return reasonAlreadyBorrowed
	case dErrors.CodeNotBorrowed:
		return reasonNotBorrowed
	case dErrors.CodeValidation:
		return reasonValidation
	default:
		return string(code)
	}
}

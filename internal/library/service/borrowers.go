package service

import (
	"context"
	"errors"

	"librarian/internal/library/models"
	"librarian/internal/sentinel"
	id "librarian/pkg/domain"
	dErrors "librarian/pkg/domain-errors"
	"librarian/pkg/platform/tracer"
)

// RegisterBorrower creates a borrower after checking that the email is free.
// The store insert is authoritative: a concurrent registration of the same
// email still fails with CodeDuplicateEmail.
func (s *Service) RegisterBorrower(ctx context.Context, name, email string) (_ *models.Borrower, err error) {
	ctx, finish := s.startOp(ctx, tracer.SpanRegisterBorrower, "register_borrower")
	defer func() { finish(err) }()

	borrower, err := models.NewBorrower(id.NewBorrowerID(), name, email, s.now())
	if err != nil {
		s.reject(ctx, reasonValidation, "error", err)
		return nil, err
	}

	_, findErr := s.borrowers.FindByEmail(ctx, borrower.Email)
	switch {
	case findErr == nil:
		s.reject(ctx, reasonDuplicateEmail)
		return nil, dErrors.New(dErrors.CodeDuplicateEmail, msgDuplicateEmail)
	case !errors.Is(findErr, sentinel.ErrNotFound):
		return nil, s.wrapBorrowerErr(ctx, findErr, "failed to look up borrower by email")
	}

	if err = s.borrowers.CreateIfEmailAvailable(ctx, borrower); err != nil {
		return nil, s.wrapBorrowerErr(ctx, err, "failed to save borrower")
	}

	s.audit(ctx, models.EventBorrowerRegistered, models.BorrowerRegistered{
		BorrowerID: borrower.ID.String(),
		Name:       borrower.Name,
		Email:      borrower.Email,
	}, "borrower_id", borrower.ID.String())
	s.incrementBorrowerRegistered()

	return borrower, nil
}

// GetBorrower returns a single borrower or CodeNotFound.
func (s *Service) GetBorrower(ctx context.Context, borrowerID id.BorrowerID) (_ *models.Borrower, err error) {
	ctx, finish := s.startOp(ctx, tracer.SpanGetBorrower, "get_borrower",
		tracer.String(tracer.AttrBorrowerID, borrowerID.String()))
	defer func() { finish(err) }()

	borrower, err := s.borrowers.FindByID(ctx, borrowerID)
	if err != nil {
		return nil, s.wrapBorrowerErr(ctx, err, "failed to get borrower")
	}
	return borrower, nil
}

// ListBorrowers returns one page of borrowers in registration order.
func (s *Service) ListBorrowers(ctx context.Context, page, size int) (_ models.Page[*models.Borrower], err error) {
	ctx, finish := s.startOp(ctx, tracer.SpanListBorrowers, "list_borrowers",
		tracer.Int(tracer.AttrPage, page), tracer.Int(tracer.AttrPageSize, size))
	defer func() { finish(err) }()

	req, err := models.NewPageRequest(page, size)
	if err != nil {
		return models.Page[*models.Borrower]{}, err
	}
	items, total, err := s.borrowers.List(ctx, req)
	if err != nil {
		return models.Page[*models.Borrower]{}, s.wrapBorrowerErr(ctx, err, "failed to list borrowers")
	}
	return models.NewPage(items, total, req), nil
}

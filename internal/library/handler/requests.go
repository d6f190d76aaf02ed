package handler

import (
	dErrors "librarian/pkg/domain-errors"
	strutil "librarian/pkg/string"
	"librarian/pkg/validation"
)

// RegisterBorrowerRequest is the body of POST /borrowers.
type RegisterBorrowerRequest struct {
	Name  string `json:"name" validate:"notblank,max=255"`
	Email string `json:"email" validate:"notblank,email,max=255"`
}

// Normalize trims surrounding whitespace; the email keeps its casing.
func (r *RegisterBorrowerRequest) Normalize() {
	if r == nil {
		return
	}
	strutil.TrimStrings(&r.Name, &r.Email)
}

// Validate checks that the request is well-formed.
func (r *RegisterBorrowerRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

// RegisterBookRequest is the body of POST /books.
type RegisterBookRequest struct {
	ISBN   string `json:"isbn" validate:"notblank,max=32"`
	Title  string `json:"title" validate:"notblank,max=512"`
	Author string `json:"author" validate:"notblank,max=255"`
}

// Normalize trims surrounding whitespace. Case is preserved.
func (r *RegisterBookRequest) Normalize() {
	if r == nil {
		return
	}
	strutil.TrimStrings(&r.ISBN, &r.Title, &r.Author)
}

// Validate checks that the request is well-formed.
func (r *RegisterBookRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	return validation.Validate(r)
}

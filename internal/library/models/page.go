package models

import "librarian/pkg/platform/validation"

// PageRequest selects a zero-based page of a listing.
type PageRequest struct {
	Page int
	Size int
}

// NewPageRequest validates paging parameters.
func NewPageRequest(page, size int) (PageRequest, error) {
	if err := validation.CheckPaging(page, size); err != nil {
		return PageRequest{}, err
	}
	return PageRequest{Page: page, Size: size}, nil
}

// DefaultPageRequest is the first page at the default size.
func DefaultPageRequest() PageRequest {
	return PageRequest{Page: 0, Size: validation.DefaultPageSize}
}

func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Page is one slice of an insertion-ordered listing plus totals.
type Page[T any] struct {
	Content       []T
	TotalElements int
	TotalPages    int
	Page          int
	Size          int
}

// NewPage computes totals; an empty listing has zero pages.
func NewPage[T any](content []T, total int, req PageRequest) Page[T] {
	if content == nil {
		content = []T{}
	}
	totalPages := 0
	if req.Size > 0 {
		totalPages = (total + req.Size - 1) / req.Size
	}
	return Page[T]{
		Content:       content,
		TotalElements: total,
		TotalPages:    totalPages,
		Page:          req.Page,
		Size:          req.Size,
	}
}

package handler

import (
	"time"

	"librarian/internal/library/models"
)

type BorrowerResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// BookResponse renders a copy. Borrower is null while the copy is on the shelf.
type BookResponse struct {
	ID        string            `json:"id"`
	ISBN      string            `json:"isbn"`
	Title     string            `json:"title"`
	Author    string            `json:"author"`
	Status    string            `json:"status"`
	Borrower  *BorrowerResponse `json:"borrower"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// PageResponse is one page of a listing.
type PageResponse[T any] struct {
	Content       []T `json:"content"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Page          int `json:"page"`
	Size          int `json:"size"`
}

func toBorrowerResponse(b *models.Borrower) BorrowerResponse {
	return BorrowerResponse{
		ID:        b.ID.String(),
		Name:      b.Name,
		Email:     b.Email,
		CreatedAt: b.CreatedAt,
	}
}

func toBookResponse(b *models.Book) BookResponse {
	res := BookResponse{
		ID:        b.ID.String(),
		ISBN:      b.ISBN,
		Title:     b.Title,
		Author:    b.Author,
		Status:    string(b.Status()),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.Borrower != nil {
		borrower := toBorrowerResponse(b.Borrower)
		res.Borrower = &borrower
	}
	return res
}

func toPageResponse[M, R any](p models.Page[M], convert func(M) R) PageResponse[R] {
	content := make([]R, 0, len(p.Content))
	for _, item := range p.Content {
		content = append(content, convert(item))
	}
	return PageResponse[R]{
		Content:       content,
		TotalElements: p.TotalElements,
		TotalPages:    p.TotalPages,
		Page:          p.Page,
		Size:          p.Size,
	}
}

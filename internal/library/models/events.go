package models

// Event types published after successful mutations.
const (
	EventBorrowerRegistered = "borrower.registered"
	EventBookRegistered     = "book.registered"
	EventBookBorrowed       = "book.borrowed"
	EventBookReturned       = "book.returned"
)

// Domain event payloads. These are pure data; the service publishes them.

// BorrowerRegistered is emitted when a new borrower is registered.
type BorrowerRegistered struct {
	BorrowerID string `json:"borrowerId"`
	Name       string `json:"name"`
	Email      string `json:"email"`
}

// BookRegistered is emitted when a copy is added to the catalog.
type BookRegistered struct {
	BookID string `json:"bookId"`
	ISBN   string `json:"isbn"`
	Title  string `json:"title"`
	Author string `json:"author"`
}

// BookBorrowed is emitted when a copy leaves the shelf.
type BookBorrowed struct {
	BookID     string `json:"bookId"`
	BorrowerID string `json:"borrowerId"`
}

// BookReturned is emitted when a copy comes back to the shelf.
type BookReturned struct {
	BookID     string `json:"bookId"`
	BorrowerID string `json:"borrowerId"`
}

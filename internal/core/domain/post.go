package domain

import "time"

// Post is an article written by exactly one user in exactly one category.
// The author is immutable after creation; the category can be swapped via
// update. User and Category are attached on reads that request relations and
// are nil otherwise.
type Post struct {
	ID         string
	Title      string
	Content    string
	UserID     string
	CategoryID string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	User     *User
	Category *Category
}

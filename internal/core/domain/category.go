package domain

import "time"

// Category groups posts under a unique title. UserID records the admin who
// created it; the reference is informational and does not tie the category's
// lifecycle to that user.
type Category struct {
	ID        string
	Title     string
	UserID    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package domain

import "time"

// Skill is a single entry on the skills page, grouped by category and ordered
// by SortOrder.
type Skill struct {
	ID        string
	Name      string
	Category  string
	Level     int
	IconURL   string
	SortOrder int
	CreatedAt time.Time
	UpdatedAt time.Time
}

package domain

import "time"

// BlogPost is a published or draft article. Drafts (Published=false) are
// visible to admins only.
type BlogPost struct {
	ID             string
	Title          string
	Excerpt        string
	Content        string
	ImageURL       string
	Category       string
	Tags           []string
	ReadTime       string
	Featured       bool
	Published      bool
	AuthorID       string
	Likes          int64
	SEOTitle       string
	SEODescription string
	SEOKeywords    []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

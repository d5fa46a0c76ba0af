package domain

import "time"

// Post is a thread inside a forum.
//
// Number is a per-forum sequential integer, 1-based, assigned at creation as
// max(existing numbers in the forum)+1. Numbers are unique within a forum and
// monotone: they are never reused (there is no delete operation). The Number
// is the public addressing handle for a post; ID is its global identifier.
type Post struct {
	ID        string     `json:"id"`
	ForumID   string     `json:"forumId"`
	Number    int        `json:"number"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Tags      []string   `json:"tags"`
	AuthorID  string     `json:"authorId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the post.
func (p *Post) Clone() *Post {
	clone := *p
	if p.Tags != nil {
		clone.Tags = make([]string, len(p.Tags))
		copy(clone.Tags, p.Tags)
	}
	if p.UpdatedAt != nil {
		t := *p.UpdatedAt
		clone.UpdatedAt = &t
	}
	return &clone
}

package domain

import "time"

// Comment is a reply attached to a post. Comments carry no per-post
// numbering; listings order them by CreatedAt descending.
type Comment struct {
	ID        string     `json:"id"`
	PostID    string     `json:"postId"`
	Content   string     `json:"content"`
	AuthorID  string     `json:"authorId"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// Clone returns a deep copy of the comment.
func (c *Comment) Clone() *Comment {
	clone := *c
	if c.UpdatedAt != nil {
		t := *c.UpdatedAt
		clone.UpdatedAt = &t
	}
	return &clone
}

package entity

// Comment is a reader's remark on a post.
type Comment struct {
	ID       uint
	Text     string
	AuthorID uint
	PostID   uint
}

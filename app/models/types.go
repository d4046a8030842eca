package models

// Post is a persisted blog entry. PostID and Date are assigned by the
// store at insert time; AuthorID comes from the caller's verified
// identity. None of the three are ever taken from a request body.
type Post struct {
	PostID   string `json:"postID"`
	AuthorID string `json:"authorID"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Date     int64  `json:"date"`
}

// BlogSubmission is the client-supplied portion of a new post. Field
// declaration order matters: validation reports the first missing field.
type BlogSubmission struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

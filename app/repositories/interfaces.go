package repositories

import (
	"context"

	"github.com/MentorMountain/blog/app/models"
)

// PostRepository defines the interface for post data access. There is
// deliberately no update or delete: posts are written once and read
// back whole.
type PostRepository interface {
	// Insert stores the post under a freshly assigned ID and returns
	// it. Never upserts, never deduplicates.
	Insert(ctx context.Context, post *models.Post) (string, error)

	// ListAll returns every post in the collection in backend key
	// order, which is not insertion or chronological order.
	ListAll(ctx context.Context) ([]*models.Post, error)
}

package mock

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/MentorMountain/blog/app/models"
)

// PostRepository is an in-memory PostRepository for tests. Unlike the
// real store it preserves insertion order, which tests may rely on only
// for counting, not ordering assertions.
type PostRepository struct {
	mutex sync.RWMutex
	posts []*models.Post

	// InsertErr and ListErr, when set, are returned by the matching
	// operation to simulate a backend failure.
	InsertErr error
	ListErr   error

	// InsertCalls counts Insert invocations, including failed ones.
	InsertCalls int
}

func NewPostRepository() *PostRepository {
	return &PostRepository{}
}

func (m *PostRepository) Insert(ctx context.Context, post *models.Post) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.InsertCalls++
	if m.InsertErr != nil {
		return "", m.InsertErr
	}

	post.PostID = uuid.NewString()
	stored := *post
	m.posts = append(m.posts, &stored)
	return post.PostID, nil
}

func (m *PostRepository) ListAll(ctx context.Context) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	if m.ListErr != nil {
		return nil, m.ListErr
	}

	posts := make([]*models.Post, len(m.posts))
	copy(posts, m.posts)
	return posts, nil
}

// Stored returns a snapshot of everything inserted so far.
func (m *PostRepository) Stored() []*models.Post {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	posts := make([]*models.Post, len(m.posts))
	copy(posts, m.posts)
	return posts
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.posts = nil
	m.InsertCalls = 0
}

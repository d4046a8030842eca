package services

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/MentorMountain/blog/app/auth"
	"github.com/MentorMountain/blog/app/models"
	"github.com/MentorMountain/blog/app/repositories"
)

// ErrRoleForbidden means the caller is authenticated but lacks the role
// required to submit posts.
var ErrRoleForbidden = errors.New("role may not submit posts")

// BlogService runs the submission pipeline: role gate, required-field
// validation, normalization, then persistence. It holds no per-request
// state.
type BlogService struct {
	repo repositories.PostRepository
	now  func() time.Time
}

// NewBlogService creates a BlogService over the given repository.
func NewBlogService(repo repositories.PostRepository) *BlogService {
	return &BlogService{
		repo: repo,
		now:  time.Now,
	}
}

// CreatePost validates and persists a submission on behalf of the
// verified caller. The stored author is always the caller's username;
// the submission carries no identity fields. Checks short-circuit in
// order: role, title, content.
func (s *BlogService) CreatePost(ctx context.Context, caller auth.Identity, sub models.BlogSubmission) error {
	if caller.Role != auth.RoleMentor {
		return ErrRoleForbidden
	}
	if err := sub.Validate(); err != nil {
		return err
	}

	post := &models.Post{
		AuthorID: models.NormalizeField(caller.Username),
		Title:    models.NormalizeField(sub.Title),
		Content:  models.NormalizeField(sub.Content),
		Date:     s.now().UnixMilli(),
	}

	id, err := s.repo.Insert(ctx, post)
	if err != nil {
		return err
	}

	zap.L().Info("stored new post", zap.String("postID", id), zap.String("authorID", post.AuthorID))
	return nil
}

// ListPosts returns every post in the collection, in store order.
func (s *BlogService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.repo.ListAll(ctx)
}

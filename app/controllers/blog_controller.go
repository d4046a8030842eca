package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/MentorMountain/blog/app/auth"
	"github.com/MentorMountain/blog/app/models"
	"github.com/MentorMountain/blog/app/services"
)

// BlogController handles HTTP requests for blog posts. Failure responses
// carry a bare status code: backend detail is logged, never leaked.
type BlogController struct {
	blogService *services.BlogService
}

// NewBlogController creates a new BlogController.
func NewBlogController(blogService *services.BlogService) *BlogController {
	return &BlogController{blogService: blogService}
}

// Health reports service liveness. Unauthenticated.
func (bc *BlogController) Health(w http.ResponseWriter, r *http.Request) {
	bc.sendJSON(w, map[string]string{"health": "OK"})
}

// Create handles a post submission and responds 201 with no body on
// success. The author is taken from the verified identity only; any
// identity fields in the body are ignored by the decoder.
func (bc *BlogController) Create(w http.ResponseWriter, r *http.Request) {
	caller, ok := auth.IdentityFrom(r.Context())
	if !ok {
		// The access gate should make this unreachable.
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var sub models.BlogSubmission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := bc.blogService.CreatePost(r.Context(), caller, sub); err != nil {
		var missing *models.MissingFieldError
		switch {
		case errors.As(err, &missing):
			zap.L().Warn("submission rejected", zap.String("field", missing.Field))
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, services.ErrRoleForbidden):
			zap.L().Warn("submission forbidden", zap.String("role", caller.Role))
			w.WriteHeader(http.StatusForbidden)
		default:
			zap.L().Error("unable to store post", zap.Error(err))
			w.WriteHeader(http.StatusBadRequest)
		}
		return
	}

	w.WriteHeader(http.StatusCreated)
}

// Index handles listing all posts.
func (bc *BlogController) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := bc.blogService.ListPosts(r.Context())
	if err != nil {
		zap.L().Error("unable to list posts", zap.Error(err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if posts == nil {
		posts = []*models.Post{}
	}
	bc.sendJSON(w, posts)
}

func (bc *BlogController) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

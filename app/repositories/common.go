package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MentorMountain/blog/app/models"
)

var (
	// ErrFieldTooLong surfaces the backend's indexed-field ceiling.
	// Normalization keeps fields well under it, so hitting this means a
	// caller bypassed the service layer.
	ErrFieldTooLong = errors.New("field exceeds backend length limit")
)

// postKey builds the document key for a post within a collection.
func postKey(collection, id string) []byte {
	return []byte(collection + "/" + id)
}

// checkFieldLimits rejects posts the backend would refuse to index.
func checkFieldLimits(post *models.Post) error {
	for name, value := range map[string]string{
		"authorID": post.AuthorID,
		"title":    post.Title,
		"content":  post.Content,
	} {
		if len([]rune(value)) > models.BackendStringLimit {
			return fmt.Errorf("%w: %s", ErrFieldTooLong, name)
		}
	}
	return nil
}

func marshalPost(post *models.Post) ([]byte, error) {
	data, err := json.Marshal(post)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal post: %v", err)
	}
	return data, nil
}

func unmarshalPost(data []byte) (*models.Post, error) {
	var post models.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, fmt.Errorf("failed to unmarshal post: %v", err)
	}
	return &post, nil
}

package repositories

import (
	"context"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/MentorMountain/blog/app/models"
)

// BadgerPostRepository implements PostRepository on a Badger document
// collection. Documents live under "<collection>/<uuid>" keys, so list
// order follows key order rather than insertion order.
type BadgerPostRepository struct {
	db         *badger.DB
	collection string
}

// NewBadgerPostRepository creates a repository over the given DB and
// collection name.
func NewBadgerPostRepository(db *badger.DB, collection string) *BadgerPostRepository {
	return &BadgerPostRepository{db: db, collection: collection}
}

// Insert assigns a fresh ID, writes the post and returns the ID.
func (r *BadgerPostRepository) Insert(ctx context.Context, post *models.Post) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := checkFieldLimits(post); err != nil {
		return "", err
	}

	post.PostID = uuid.NewString()
	data, err := marshalPost(post)
	if err != nil {
		return "", err
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(postKey(r.collection, post.PostID), data)
	})
	if err != nil {
		return "", err
	}
	return post.PostID, nil
}

// ListAll fetches the whole collection in a single read transaction.
func (r *BadgerPostRepository) ListAll(ctx context.Context) ([]*models.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(r.collection + "/")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				post, err := unmarshalPost(val)
				if err != nil {
					return err
				}
				posts = append(posts, post)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

package services

import (
	"context"
	"strings"

	"github.com/anonto42/red-social/backend/internal/models"
	"github.com/anonto42/red-social/backend/internal/repositories"
)

const DefaultFeedSize = 10

type PostService struct {
	posts    repositories.PostRepository
	feedSize int
}

func NewPostService(posts repositories.PostRepository, feedSize int) *PostService {
	if feedSize <= 0 {
		feedSize = DefaultFeedSize
	}
	return &PostService{posts: posts, feedSize: feedSize}
}

// Create stores a post. A blank body is dropped and (nil, nil) is returned.
func (s *PostService) Create(ctx context.Context, authorID uint, body string) (*models.Post, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, nil
	}
	post := &models.Post{AuthorID: authorID, Body: body}
	if err := s.posts.CreatePost(ctx, post); err != nil {
		return nil, storeErr("create post", err)
	}
	return post, nil
}

// Feed returns the newest posts from everyone, capped at the feed size.
func (s *PostService) Feed(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.GetRecentPosts(ctx, s.feedSize)
	return posts, storeErr("load feed", err)
}

func (s *PostService) ByAuthor(ctx context.Context, authorID uint) ([]models.Post, error) {
	posts, err := s.posts.GetPostsByAuthor(ctx, authorID)
	return posts, storeErr("load posts", err)
}

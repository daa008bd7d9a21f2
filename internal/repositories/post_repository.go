package repositories

import (
	"context"
	"time"

	"github.com/anonto42/red-social/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gorm.io/gorm"
)

// PostRepository defines the interface for post data operations
type PostRepository interface {
	CreatePost(ctx context.Context, post *models.Post) error
	GetRecentPosts(ctx context.Context, limit int) ([]models.Post, error)
	GetPostsByAuthor(ctx context.Context, authorID uint) ([]models.Post, error)
}

// GormPostRepository stores posts in the relational store
type GormPostRepository struct {
	db *gorm.DB
}

// NewGormPostRepository creates a new GormPostRepository
func NewGormPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

func (r *GormPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

// GetRecentPosts returns the newest posts across all users. A limit <= 0
// means no limit.
func (r *GormPostRepository) GetRecentPosts(ctx context.Context, limit int) ([]models.Post, error) {
	var posts []models.Post
	q := r.db.WithContext(ctx).Preload("Author").Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&posts).Error
	return posts, err
}

func (r *GormPostRepository) GetPostsByAuthor(ctx context.Context, authorID uint) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).Preload("Author").
		Where("author_id = ?", authorID).
		Order("created_at DESC").Order("id DESC").
		Find(&posts).Error
	return posts, err
}

// postDocument is the MongoDB shape of a post
type postDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AuthorID  uint               `bson:"author_id"`
	Body      string             `bson:"body"`
	CreatedAt time.Time          `bson:"created_at"`
}

// MongoPostRepository implements PostRepository for MongoDB. Authors still live
// in the relational store and are attached after each query.
type MongoPostRepository struct {
	collection *mongo.Collection
	users      UserRepository
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database, users UserRepository) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts"), users: users}
}

func (r *MongoPostRepository) CreatePost(ctx context.Context, post *models.Post) error {
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}
	doc := postDocument{
		ID:        primitive.NewObjectID(),
		AuthorID:  post.AuthorID,
		Body:      post.Body,
		CreatedAt: post.CreatedAt,
	}
	_, err := r.collection.InsertOne(ctx, doc)
	return err
}

func (r *MongoPostRepository) GetRecentPosts(ctx context.Context, limit int) ([]models.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		findOptions.SetLimit(int64(limit))
	}
	return r.find(ctx, bson.D{}, findOptions)
}

func (r *MongoPostRepository) GetPostsByAuthor(ctx context.Context, authorID uint) ([]models.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	return r.find(ctx, bson.M{"author_id": authorID}, findOptions)
}

func (r *MongoPostRepository) find(ctx context.Context, filter any, opts *options.FindOptions) ([]models.Post, error) {
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []postDocument
	if err = cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return r.attachAuthors(ctx, docs)
}

func (r *MongoPostRepository) attachAuthors(ctx context.Context, docs []postDocument) ([]models.Post, error) {
	ids := make([]uint, 0, len(docs))
	seen := make(map[uint]bool)
	for _, d := range docs {
		if !seen[d.AuthorID] {
			seen[d.AuthorID] = true
			ids = append(ids, d.AuthorID)
		}
	}
	authors, err := r.users.GetUsersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]models.User, len(authors))
	for _, a := range authors {
		byID[a.ID] = a
	}

	posts := make([]models.Post, len(docs))
	for i, d := range docs {
		posts[i] = models.Post{
			AuthorID:  d.AuthorID,
			Body:      d.Body,
			CreatedAt: d.CreatedAt,
			Author:    byID[d.AuthorID],
		}
	}
	return posts, nil
}

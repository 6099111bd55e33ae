package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/kn1ghtm0nster/blog/internal/core/domain"
)

const (
	postsCollection    = "posts"
	commentsCollection = "comments"
)

// PostRepository implements ports.PostRepository using MongoDB.
type PostRepository struct {
	posts    *mongo.Collection
	comments *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{
		posts:    db.Collection(postsCollection),
		comments: db.Collection(commentsCollection),
	}
}

type mongoPost struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Title         string             `bson:"title"`
	Content       string             `bson:"content"`
	AuthorID      string             `bson:"author_id"`
	AuthorName    string             `bson:"author_name"`
	AllowComments bool               `bson:"allow_comments"`
	CreatedAt     int64              `bson:"created_at"`
	UpdatedAt     int64              `bson:"updated_at"`
}

type mongoComment struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	PostID     string             `bson:"post_id"`
	AuthorID   string             `bson:"author_id"`
	AuthorName string             `bson:"author_name"`
	Content    string             `bson:"content"`
	ParentID   string             `bson:"parent_id,omitempty"`
	Moderated  bool               `bson:"is_moderated"`
	CreatedAt  int64              `bson:"created_at"`
}

func toDomainPost(mp mongoPost) *domain.Post {
	return &domain.Post{
		ID:            mp.ID.Hex(),
		Title:         mp.Title,
		Content:       mp.Content,
		AuthorID:      mp.AuthorID,
		AuthorName:    mp.AuthorName,
		AllowComments: mp.AllowComments,
		CreatedAt:     unixToTime(mp.CreatedAt),
		UpdatedAt:     unixToTime(mp.UpdatedAt),
	}
}

func toDomainComment(mc mongoComment) *domain.Comment {
	return &domain.Comment{
		ID:         mc.ID.Hex(),
		PostID:     mc.PostID,
		AuthorID:   mc.AuthorID,
		AuthorName: mc.AuthorName,
		Content:    mc.Content,
		ParentID:   mc.ParentID,
		Moderated:  mc.Moderated,
		CreatedAt:  unixToTime(mc.CreatedAt),
	}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPost{
		Title:         post.Title,
		Content:       post.Content,
		AuthorID:      post.AuthorID,
		AuthorName:    post.AuthorName,
		AllowComments: post.AllowComments,
		CreatedAt:     post.CreatedAt.Unix(),
		UpdatedAt:     post.UpdatedAt.Unix(),
	}

	res, err := r.posts.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	post.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPostNotFound
	}

	var mp mongoPost
	if err := r.posts.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return toDomainPost(mp), nil
}

func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.posts.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Post
	for cur.Next(ctx) {
		var mp mongoPost
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		out = append(out, toDomainPost(mp))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return out, nil
}

func (r *PostRepository) PostIDsByAuthor(ctx context.Context, authorID string) ([]string, error) {
	return idsByAuthor(ctx, r.posts, authorID)
}

func (r *PostRepository) InsertComment(ctx context.Context, comment *domain.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoComment{
		PostID:     comment.PostID,
		AuthorID:   comment.AuthorID,
		AuthorName: comment.AuthorName,
		Content:    comment.Content,
		ParentID:   comment.ParentID,
		Moderated:  comment.Moderated,
		CreatedAt:  comment.CreatedAt.Unix(),
	}

	res, err := r.comments.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	comment.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *PostRepository) FindCommentByID(ctx context.Context, id string) (*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrCommentNotFound
	}

	var mc mongoComment
	if err := r.comments.FindOne(ctx, bson.M{"_id": oid}).Decode(&mc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, fmt.Errorf("find comment: %w", err)
	}
	return toDomainComment(mc), nil
}

func (r *PostRepository) CommentsByPost(ctx context.Context, postID string) ([]*domain.Comment, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.comments.Find(ctx, bson.M{"post_id": postID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Comment
	for cur.Next(ctx) {
		var mc mongoComment
		if err := cur.Decode(&mc); err != nil {
			return nil, fmt.Errorf("decode comment: %w", err)
		}
		out = append(out, toDomainComment(mc))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return out, nil
}

func (r *PostRepository) CommentIDsByAuthor(ctx context.Context, authorID string) ([]string, error) {
	return idsByAuthor(ctx, r.comments, authorID)
}

// idsByAuthor projects the _id of every document authored by the user,
// ordered by creation time.
func idsByAuthor(ctx context.Context, coll *mongo.Collection, authorID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := coll.Find(ctx, bson.M{"author_id": authorID},
		options.Find().
			SetSort(bson.D{{Key: "created_at", Value: 1}}).
			SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return nil, fmt.Errorf("find by author: %w", err)
	}
	defer cur.Close(ctx)

	var ids []string
	for cur.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode id: %w", err)
		}
		ids = append(ids, doc.ID.Hex())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("find by author: %w", err)
	}
	return ids, nil
}

// EnsureIndexes creates the lookup indexes for posts and comments.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	if _, err := r.posts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
	}); err != nil {
		return err
	}
	_, err := r.comments.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "post_id", Value: 1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
	})
	return err
}

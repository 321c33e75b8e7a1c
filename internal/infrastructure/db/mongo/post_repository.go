package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

const collectionPosts = "posts"

type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection(collectionPosts)}
}

type mongoPost struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Title      string             `bson:"title"`
	Content    string             `bson:"content"`
	UserID     primitive.ObjectID `bson:"user_id"`
	CategoryID primitive.ObjectID `bson:"category_id"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
}

// mongoPostJoined is the aggregation result shape: the post document with its
// author and category attached by $lookup.
type mongoPostJoined struct {
	mongoPost `bson:",inline"`
	User      *mongoUser     `bson:"user,omitempty"`
	Category  *mongoCategory `bson:"category,omitempty"`
}

func (mp *mongoPost) toDomain() *domain.Post {
	return &domain.Post{
		ID:         mp.ID.Hex(),
		Title:      mp.Title,
		Content:    mp.Content,
		UserID:     mp.UserID.Hex(),
		CategoryID: mp.CategoryID.Hex(),
		CreatedAt:  mp.CreatedAt,
		UpdatedAt:  mp.UpdatedAt,
	}
}

func (mj *mongoPostJoined) toDomain() *domain.Post {
	p := mj.mongoPost.toDomain()
	if mj.User != nil {
		p.User = mj.User.toDomain()
	}
	if mj.Category != nil {
		p.Category = mj.Category.toDomain()
	}
	return p
}

func (r *PostRepository) Create(ctx context.Context, data ports.CreatePostData) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	userOID, ok := oidFromHex(data.UserID)
	if !ok {
		return nil, domain.ErrNotRegistered
	}
	categoryOID, ok := oidFromHex(data.CategoryID)
	if !ok {
		return nil, domain.ErrCategoryNotFound
	}

	now := time.Now().UTC()
	doc := mongoPost{
		Title:      data.Title,
		Content:    data.Content,
		UserID:     userOID,
		CategoryID: categoryOID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PostRepository) Save(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := oidFromHex(post.ID)
	if !ok {
		return nil, domain.ErrPostNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":      post.Title,
		"content":    post.Content,
		"updated_at": post.UpdatedAt,
	}}

	if _, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return nil, fmt.Errorf("save post: %w", err)
	}
	return post, nil
}

func (r *PostRepository) Remove(ctx context.Context, post *domain.Post) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := oidFromHex(post.ID)
	if !ok {
		return domain.ErrPostNotFound
	}

	if _, err := r.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("remove post: %w", err)
	}
	return nil
}

func (r *PostRepository) Find(ctx context.Context) ([]*domain.Post, error) {
	return r.aggregate(ctx, bson.M{})
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	oid, ok := oidFromHex(id)
	if !ok {
		return nil, nil
	}

	posts, err := r.aggregate(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}
	return posts[0], nil
}

func (r *PostRepository) FindByCategoryID(ctx context.Context, categoryID string) ([]*domain.Post, error) {
	oid, ok := oidFromHex(categoryID)
	if !ok {
		return nil, nil
	}
	return r.aggregate(ctx, bson.M{"category_id": oid})
}

func (r *PostRepository) FindByUserID(ctx context.Context, userID string) ([]*domain.Post, error) {
	oid, ok := oidFromHex(userID)
	if !ok {
		return nil, nil
	}
	return r.aggregate(ctx, bson.M{"user_id": oid})
}

// aggregate runs the shared read pipeline: match, attach author and category
// via $lookup, oldest first.
func (r *PostRepository) aggregate(ctx context.Context, match bson.M) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionUsers,
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$user", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         collectionCategories,
			"localField":   "category_id",
			"foreignField": "_id",
			"as":           "category",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$category", "preserveNullAndEmptyArrays": true}}},
	}

	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("aggregate posts: %w", err)
	}
	defer cur.Close(ctx)

	var posts []*domain.Post
	for cur.Next(ctx) {
		var mj mongoPostJoined
		if err := cur.Decode(&mj); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, mj.toDomain())
	}
	return posts, cur.Err()
}

// EnsureIndexes creates the lookup indexes used by the category-deletion
// guard and the per-author listing.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "category_id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

package repositories

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"portfolio/db"
	"portfolio/models"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(d *mongo.Database) *UserRepository {
	return &UserRepository{col: d.Collection(db.CollectionUsers)}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"email": normalizeEmail(email)}).Decode(&u); err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

func (r *UserRepository) FindByID(ctx context.Context, hexID string) (*models.User, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	var u models.User
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, mapError(err)
	}
	return &u, nil
}

// Insert creates a user; a taken email yields ErrDuplicate.
func (r *UserRepository) Insert(ctx context.Context, u *models.User) (string, error) {
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	u.Email = normalizeEmail(u.Email)
	if u.Role == "" {
		u.Role = models.RoleUser
	}

	res, err := r.col.InsertOne(ctx, u)
	if err != nil {
		return "", mapError(err)
	}
	return idHex(res.InsertedID), nil
}

// UpsertByEmail creates or refreshes an OAuth user identified by email.
// The stored role is never overwritten; new users start as RoleUser.
func (r *UserRepository) UpsertByEmail(ctx context.Context, u *models.User) (*models.User, error) {
	now := time.Now().UTC()
	filter := bson.M{"email": normalizeEmail(u.Email)}
	update := bson.M{
		"$setOnInsert": bson.M{
			"created_at": now,
			"role":       models.RoleUser,
		},
		"$set": bson.M{
			"updated_at":    now,
			"name":          u.Name,
			"provider":      u.Provider,
			"provider_sub":  u.ProviderSub,
			"profile_image": u.ProfileImage,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var out models.User
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&out); err != nil {
		return nil, mapError(err)
	}
	return &out, nil
}

// SetRole changes the role of the user with the email.
func (r *UserRepository) SetRole(ctx context.Context, email, role string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"email": normalizeEmail(email)}, bson.M{
		"$set": bson.M{"role": role, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return mapError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

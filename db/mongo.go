package db

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"portfolio/config"
	"portfolio/internal/logger"
)

const (
	CollectionBlogPosts = "blog_posts"
	CollectionProjects  = "projects"
	CollectionUsers     = "users"
)

var (
	clientOnce sync.Once
	client     *mongo.Client
	db         *mongo.Database
)

// Init initializes the global Mongo client and database using config values.
func Init(ctx context.Context) error {
	var initErr error
	clientOnce.Do(func() {
		cfg := config.GetConfig().Mongo

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
		if err != nil {
			initErr = err
			return
		}
		// Ping to verify connection
		if err := cl.Ping(ctx, readpref.Primary()); err != nil {
			initErr = err
			return
		}
		client = cl
		db = client.Database(cfg.DBName)

		if err := EnsureIndexes(ctx, db); err != nil {
			initErr = err
			return
		}
		logger.Log.Info("MongoDB connected and indexes ensured")
	})
	return initErr
}

func Client() *mongo.Client     { return client }
func Database() *mongo.Database { return db }

// Disconnect closes the global client, if any.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// Ping reports whether the database answers a ping command.
func Ping(ctx context.Context) error {
	return db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// EnsureIndexes creates the indexes every collection relies on.
// Slug and email uniqueness live here, not in application code.
func EnsureIndexes(ctx context.Context, d *mongo.Database) error {
	// blog_posts: unique slug, created_at desc listing, published filter
	{
		models := []mongo.IndexModel{
			{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetName("uniq_slug").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "published", Value: 1}, {Key: "created_at", Value: -1}},
				Options: options.Index().SetName("idx_published_created_at"),
			},
		}
		if _, err := d.Collection(CollectionBlogPosts).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}

	// projects: sort_order asc
	{
		if _, err := d.Collection(CollectionProjects).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "sort_order", Value: 1}},
			Options: options.Index().SetName("idx_sort_order"),
		}); err != nil {
			return err
		}
	}

	// users: unique email
	{
		if _, err := d.Collection(CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		}); err != nil {
			return err
		}
	}
	return nil
}

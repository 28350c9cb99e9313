package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func idHex(v interface{}) string {
	if oid, ok := v.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(v)
}

// updateFields applies a $set of updates plus updated_at to one document.
func updateFields(ctx context.Context, col *mongo.Collection, hexID string, updates map[string]any) error {
	id, err := parseID(hexID)
	if err != nil {
		return err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	for k, v := range updates {
		set[k] = v
	}
	res, err := col.UpdateByID(ctx, id, bson.M{"$set": set})
	if err != nil {
		return mapError(err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, hexID string) error {
	id, err := parseID(hexID)
	if err != nil {
		return err
	}
	res, err := col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return mapError(err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

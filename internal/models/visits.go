package models

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	AnalyticsDBName = "inviteleaf"
	VisitsColName   = "invite_visits"
)

// InviteVisit counts public views of one invitation page. It lives in
// Mongo rather than Supabase because it is write-heavy operational data,
// not invitation content.
type InviteVisit struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClientID  uuid.UUID          `bson:"client_id" json:"client_id"`
	Slug      string             `bson:"slug" json:"slug"`
	Count     int64              `bson:"count" json:"count"`
	LastVisit time.Time          `bson:"last_visit" json:"last_visit"`
}

type VisitsRepo interface {
	RecordVisit(ctx context.Context, clientID uuid.UUID, slug string) error
	VisitCount(ctx context.Context, clientID uuid.UUID) (int64, error)
}

func (mdb *MongodbRepo) RecordVisit(ctx context.Context, clientID uuid.UUID, slug string) error {
	col, err := mdb.GetCollection(AnalyticsDBName, VisitsColName)
	if err != nil {
		return fmt.Errorf("error getting collection: %v", err)
	}

	filter := bson.M{"client_id": clientID}
	update := bson.M{
		"$inc": bson.M{"count": int64(1)},
		"$set": bson.M{
			"slug":       slug,
			"last_visit": time.Now(),
		},
		"$setOnInsert": bson.M{
			"client_id": clientID,
		},
	}

	_, err = col.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("error upserting visit: %v", err)
	}
	return nil
}

func (mdb *MongodbRepo) VisitCount(ctx context.Context, clientID uuid.UUID) (int64, error) {
	col, err := mdb.GetCollection(AnalyticsDBName, VisitsColName)
	if err != nil {
		return 0, fmt.Errorf("error getting collection: %v", err)
	}

	var visit InviteVisit
	err = col.FindOne(ctx, bson.M{"client_id": clientID}).Decode(&visit)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("error reading visit count: %v", err)
	}

	return visit.Count, nil
}

package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/supabase-community/supabase-go"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

// ErrNotFound is returned when a lookup matches no rows; handlers map it to
// a 404.
var ErrNotFound = errors.New("not found")

// ErrInvalid marks input rejected before any remote call; handlers map it
// to a 400 while other failures stay server-side errors.
var ErrInvalid = errors.New("invalid input")

const (
	ClientsTable    = "clients"
	CeremoniesTable = "ceremonies"
	PhotosTable     = "photos"
	BlessingsTable  = "blessings"
	RSVPsTable      = "rsvps"
	SettingsTable   = "settings"
)

type SupabaseRepo struct {
	supabaseClient *supabase.Client
	url            string
	key            string
	bucket         string
}

func SupabaseNewRepo(supabaseClient *supabase.Client, url, key, bucket string) *SupabaseRepo {
	return &SupabaseRepo{
		supabaseClient: supabaseClient,
		url:            url,
		key:            key,
		bucket:         bucket,
	}
}

// GetAuthenticatedClient returns a Supabase client acting as the given
// access token, so row level security applies to admin writes.
func (su *SupabaseRepo) GetAuthenticatedClient(accessToken string) (*supabase.Client, error) {
	if accessToken == "" || su.url == "" || su.key == "" {
		return su.supabaseClient, nil
	}

	options := &supabase.ClientOptions{
		Headers: map[string]string{
			"Authorization": "Bearer " + accessToken,
		},
	}

	return supabase.NewClient(su.url, su.key, options)
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
}

func MongodbNewRepo(mongodbClient *mongo.Client) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
	}
}

func (mdb *MongodbRepo) GetCollection(dbName, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, errors.New("mongodb client is not initialized")
	}
	return mdb.mongodbClient.Database(dbName).Collection(colName), nil
}

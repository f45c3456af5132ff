package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"videosurvey/internal/model"
)

// DefaultCatalogID is the document holding the startup configuration
const DefaultCatalogID = "default"

// catalogDoc is the stored form of a configuration
type catalogDoc struct {
	ID        string           `bson:"_id"`
	Questions []model.Question `bson:"questions"`
	Videos    []model.Video    `bson:"videos"`
	UpdatedAt time.Time        `bson:"updatedAt"`
}

// CatalogRepo reads and writes the question/video catalog a server starts with
type CatalogRepo interface {
	Get(ctx context.Context, id string) (*model.Configuration, error)
	Put(ctx context.Context, id string, cfg model.Configuration) error
}

type catalogRepo struct {
	collection *mongo.Collection
}

// NewCatalogRepo creates a new catalog repository
func NewCatalogRepo(db *mongo.Database) CatalogRepo {
	return &catalogRepo{
		collection: db.Collection("catalogs"),
	}
}

func (r *catalogRepo) Get(ctx context.Context, id string) (*model.Configuration, error) {
	var doc catalogDoc
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &model.Configuration{
		Questions: doc.Questions,
		Videos:    doc.Videos,
	}, nil
}

func (r *catalogRepo) Put(ctx context.Context, id string, cfg model.Configuration) error {
	doc := catalogDoc{
		ID:        id,
		Questions: cfg.Questions,
		Videos:    cfg.Videos,
		UpdatedAt: time.Now(),
	}
	_, err := r.collection.ReplaceOne(ctx, bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	return err
}

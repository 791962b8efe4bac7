package documents

import (
	"context"
	"sutra-service/internal/app/contracts"
	"sutra-service/internal/app/models"
	"sutra-service/internal/pkg/constvars"
	"sutra-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DocumentMongoRepository struct {
	Collection *mongo.Collection
}

func NewDocumentMongoRepository(db *mongo.Database) contracts.DocumentArchiveRepository {
	return &DocumentMongoRepository{
		Collection: db.Collection(constvars.MongoCollectionDocuments),
	}
}

func (repo *DocumentMongoRepository) InsertDocument(ctx context.Context, record *models.DocumentRecord) error {
	_, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *DocumentMongoRepository) FindDocuments(ctx context.Context, sessionID string, limit int) ([]models.DocumentRecord, error) {
	filter := bson.M{}
	if sessionID != "" {
		filter["session_id"] = sessionID
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "assembled_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := repo.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocuments(err)
	}

	var records []models.DocumentRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}

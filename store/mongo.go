package store

import (
	"context"
	"fmt"

	"CloseByRentals/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPropertyStore is the durable store variant, used as the secondary
// write sink and read fallback when a Mongo connection is configured.
type MongoPropertyStore struct {
	collection *mongo.Collection
}

func NewMongoPropertyStore(collection *mongo.Collection) *MongoPropertyStore {
	return &MongoPropertyStore{collection: collection}
}

func (s *MongoPropertyStore) GetAll(ctx context.Context) ([]models.Property, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var properties []models.Property
	for cursor.Next(ctx) {
		var p models.Property
		if err := cursor.Decode(&p); err != nil {
			continue
		}
		properties = append(properties, p)
	}
	return properties, cursor.Err()
}

func (s *MongoPropertyStore) Insert(ctx context.Context, p models.Property) (models.Property, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.Property{}, err
	}
	p.ID = fmt.Sprintf("p%d", count+1)
	if _, err := s.collection.InsertOne(ctx, p); err != nil {
		return models.Property{}, err
	}
	return p, nil
}

type MongoAmenityStore struct {
	collection *mongo.Collection
}

func NewMongoAmenityStore(collection *mongo.Collection) *MongoAmenityStore {
	return &MongoAmenityStore{collection: collection}
}

func (s *MongoAmenityStore) GetAll(ctx context.Context) ([]models.Amenity, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var amenities []models.Amenity
	for cursor.Next(ctx) {
		var a models.Amenity
		if err := cursor.Decode(&a); err != nil {
			continue
		}
		amenities = append(amenities, a)
	}
	return amenities, cursor.Err()
}

func (s *MongoAmenityStore) Insert(ctx context.Context, a models.Amenity) (models.Amenity, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return models.Amenity{}, err
	}
	a.ID = fmt.Sprintf("a%d", count+1)
	if _, err := s.collection.InsertOne(ctx, a); err != nil {
		return models.Amenity{}, err
	}
	return a, nil
}

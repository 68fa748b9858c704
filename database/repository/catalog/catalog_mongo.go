package catalogRepo

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"findmylocal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// serviceDocument stores the catalog position next to the service so listing
// keeps seed order.
type serviceDocument struct {
	Position       int `bson:"position"`
	models.Service `bson:",inline"`
}

// MongoCatalogRepo implements Repository on a MongoDB collection.
type MongoCatalogRepo struct {
	coll    *mongo.Collection
	version atomic.Uint64
}

// NewMongoCatalogRepo wraps the "services" collection of the given database.
func NewMongoCatalogRepo(client *mongo.Client, dbName string) *MongoCatalogRepo {
	coll := client.Database(dbName).Collection("services")
	return &MongoCatalogRepo{coll: coll}
}

func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

// EnsureIndexes creates the unique id index and the position index used for ordering.
func (r *MongoCatalogRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "position", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create service indexes: %w", err)
	}
	return nil
}

// EnsureSeeded inserts services when the collection is empty. It reports whether
// anything was inserted.
func (r *MongoCatalogRepo) EnsureSeeded(ctx context.Context, services []models.Service) (bool, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return false, fmt.Errorf("failed to count services: %w", err)
	}
	if count > 0 || len(services) == 0 {
		return false, nil
	}
	docs := make([]interface{}, len(services))
	for i, s := range services {
		docs[i] = serviceDocument{Position: i, Service: s}
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return false, fmt.Errorf("failed to seed services: %w", err)
	}
	r.version.Add(1)
	return true, nil
}

// Reset deletes every stored service and inserts services in order.
func (r *MongoCatalogRepo) Reset(ctx context.Context, services []models.Service) error {
	ctx, cancel := newContext(ctx, 15*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear services: %w", err)
	}
	r.version.Add(1)
	if _, err := r.EnsureSeeded(ctx, services); err != nil {
		return err
	}
	return nil
}

func (r *MongoCatalogRepo) List(ctx context.Context) ([]models.Service, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	services := make([]models.Service, 0)
	for cursor.Next(ctx) {
		var doc serviceDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, doc.Service)
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("service cursor failed: %w", err)
	}
	return services, nil
}

func (r *MongoCatalogRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var doc serviceDocument
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &doc.Service, nil
}

func (r *MongoCatalogRepo) UpdateStatus(ctx context.Context, id string, status models.ServiceStatus) (bool, error) {
	return r.updateOne(ctx, id, bson.M{"$set": bson.M{"status": status}})
}

func (r *MongoCatalogRepo) SetVerified(ctx context.Context, id string) (bool, error) {
	return r.updateOne(ctx, id, bson.M{"$set": bson.M{"provider.verified": true}})
}

func (r *MongoCatalogRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return false, fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return false, nil
	}
	r.version.Add(1)
	return true, nil
}

// Version only tracks mutations made through this process.
func (r *MongoCatalogRepo) Version() uint64 {
	return r.version.Load()
}

func (r *MongoCatalogRepo) updateOne(ctx context.Context, id string, update bson.M) (bool, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return false, fmt.Errorf("failed to update service with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return false, nil
	}
	r.version.Add(1)
	return true, nil
}

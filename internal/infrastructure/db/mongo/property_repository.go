package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/unistay/rental-platform/internal/core/domain"
)

const propertiesCollection = "properties"

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection(propertiesCollection)}
}

// Create inserts a new property document. The generated id is written back
// into p.
func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	p.ID = primitive.NewObjectID().Hex()
	_, err := r.col.InsertOne(ctx, p)
	return err
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Property
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, err
	}
	return &p, nil
}

// ListByOwner returns the owner's properties in creation order.
func (r *PropertyRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{"owner_id": ownerID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	properties := []*domain.Property{}
	if err := cur.All(ctx, &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *PropertyRepository) CountByOwner(ctx context.Context, ownerID string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{"owner_id": ownerID})
}

// Update applies patch with a single conditional write: the document must
// still carry the given owner_id and version. A non-match means a concurrent
// writer won the race.
func (r *PropertyRepository) Update(ctx context.Context, id, ownerID string, version int64, patch domain.PropertyPatch) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Address != nil {
		set["address"] = *patch.Address
	}
	if patch.City != nil {
		set["city"] = *patch.City
	}
	if patch.PricePerMonth != nil {
		set["price_per_month"] = *patch.PricePerMonth
	}
	if patch.Bedrooms != nil {
		set["bedrooms"] = *patch.Bedrooms
	}
	if patch.Amenities != nil {
		set["amenities"] = patch.Amenities
	}

	filter := bson.M{"_id": id, "owner_id": ownerID, "version": version}
	update := bson.M{"$set": set, "$inc": bson.M{"version": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Property
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return &updated, nil
}

// Delete removes the property only when it is still owned by ownerID.
func (r *PropertyRepository) Delete(ctx context.Context, id, ownerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "owner_id": ownerID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

// EnsureIndexes creates the owner lookup index.
func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}

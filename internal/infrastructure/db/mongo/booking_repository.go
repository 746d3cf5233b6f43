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

const bookingsCollection = "bookings"

type BookingRepository struct {
	col *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{col: db.Collection(bookingsCollection)}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	b.ID = primitive.NewObjectID().Hex()
	_, err := r.col.InsertOne(ctx, b)
	return err
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Booking
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) ListByStudent(ctx context.Context, studentID string) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"student_id": studentID})
}

func (r *BookingRepository) ListByProperty(ctx context.Context, propertyID string) ([]*domain.Booking, error) {
	return r.list(ctx, bson.M{"property_id": propertyID})
}

func (r *BookingRepository) list(ctx context.Context, filter bson.M) ([]*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	bookings := []*domain.Booking{}
	if err := cur.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindOverlapping returns pending or confirmed bookings of the property whose
// date range intersects [from, to). Cancelled bookings do not block dates.
func (r *BookingRepository) FindOverlapping(ctx context.Context, propertyID string, from, to time.Time) ([]*domain.Booking, error) {
	filter := bson.M{
		"property_id": propertyID,
		"status":      bson.M{"$in": bson.A{string(domain.StatusPending), string(domain.StatusConfirmed)}},
		"date_from":   bson.M{"$lt": to.UTC()},
		"date_to":     bson.M{"$gt": from.UTC()},
	}
	return r.list(ctx, filter)
}

// UpdateStatus moves the booking from one status to another in a single
// conditional write. The filter pins the status the caller decided against,
// so two racing transitions cannot both apply.
func (r *BookingRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) (*domain.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"_id": id, "status": string(from)}
	update := bson.M{"$set": bson.M{
		"status":     string(to),
		"updated_at": time.Now().UTC(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated domain.Booking
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrConflict
		}
		return nil, err
	}
	return &updated, nil
}

// EnsureIndexes creates the lookup indexes used by the overlap check and the
// per-student and per-property listings.
func (r *BookingRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "property_id", Value: 1}, {Key: "date_from", Value: 1}}},
		{Keys: bson.D{{Key: "student_id", Value: 1}, {Key: "created_at", Value: 1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sevakendra/portal-api/internal/core/domain"
)

const collectionRequests = "requests"

type RequestRepository struct {
	col *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{col: db.Collection(collectionRequests)}
}

type requestDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserName       string             `bson:"user_name"`
	UserPhone      string             `bson:"user_phone"`
	ServiceName    string             `bson:"service_name"`
	ServiceID      string             `bson:"service_id"`
	AadharNumber   string             `bson:"aadhar_number,omitempty"`
	Address        string             `bson:"address,omitempty"`
	RegistrationNo string             `bson:"registration_no"`
	Status         string             `bson:"status"`
	SubmittedAt    time.Time          `bson:"submitted_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
}

func (d requestDoc) toDomain() *domain.Request {
	return &domain.Request{
		ID:             d.ID.Hex(),
		UserName:       d.UserName,
		UserPhone:      d.UserPhone,
		ServiceName:    d.ServiceName,
		ServiceID:      d.ServiceID,
		AadharNumber:   d.AadharNumber,
		Address:        d.Address,
		RegistrationNo: d.RegistrationNo,
		Status:         domain.RequestStatus(d.Status),
		SubmittedAt:    d.SubmittedAt.UTC(),
		UpdatedAt:      d.UpdatedAt.UTC(),
	}
}

func fromDomain(r *domain.Request) requestDoc {
	return requestDoc{
		UserName:       r.UserName,
		UserPhone:      r.UserPhone,
		ServiceName:    r.ServiceName,
		ServiceID:      r.ServiceID,
		AadharNumber:   r.AadharNumber,
		Address:        r.Address,
		RegistrationNo: r.RegistrationNo,
		Status:         string(r.Status),
		SubmittedAt:    r.SubmittedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// Insert stores a new application. The unique index on registration_no
// rejects colliding numbers, caller-supplied or generated.
func (r *RequestRepository) Insert(ctx context.Context, req *domain.Request) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := fromDomain(req)
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateRegistration
		}
		return nil, fmt.Errorf("insert request: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *RequestRepository) List(ctx context.Context) ([]*domain.Request, error) {
	return r.find(ctx, bson.M{})
}

func (r *RequestRepository) ListByPhone(ctx context.Context, phone string) ([]*domain.Request, error) {
	return r.find(ctx, bson.M{"user_phone": phone})
}

func (r *RequestRepository) find(ctx context.Context, filter bson.M) ([]*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "submitted_at", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Request
	for cur.Next(ctx) {
		var doc requestDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

func (r *RequestRepository) FindByRegistrationNo(ctx context.Context, registrationNo string) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc requestDoc
	if err := r.col.FindOne(ctx, bson.M{"registration_no": registrationNo}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("find request: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateStatus overwrites status and refreshes updated_at in one round trip.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, status domain.RequestStatus) (*domain.Request, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	update := bson.M{"$set": bson.M{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	}}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc requestDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("update request status: %w", err)
	}
	return doc.toDomain(), nil
}

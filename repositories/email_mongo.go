package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"persona-emails/domain"
	"persona-emails/errors"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// MongoEmailRepository stores emails in a MongoDB collection.
// The collection handle is shared by every call and is safe for concurrent use.
type MongoEmailRepository struct {
	collection *mongo.Collection
	log        *slog.Logger
}

func NewMongoEmailRepository(collection *mongo.Collection, log *slog.Logger) *MongoEmailRepository {
	return &MongoEmailRepository{collection: collection, log: log}
}

// EnsureIndexes creates the index backing the recipient listing.
func (r *MongoEmailRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "to.address", Value: 1}, {Key: "date", Value: -1}},
	})
	if err != nil {
		return errors.Unavailable("create index", err)
	}
	return nil
}

func (r *MongoEmailRepository) Insert(ctx context.Context, email domain.Email) (string, error) {
	result, err := r.collection.InsertOne(ctx, fromEmail(email))
	if err != nil {
		return "", errors.Unavailable("insert", err)
	}
	oid, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
	return oid.Hex(), nil
}

func (r *MongoEmailRepository) Find(ctx context.Context, filter Filter, sort *Sort) ([]domain.Email, error) {
	cursor, err := r.collection.Find(ctx, recipientFilter(filter), findOptions(sort))
	if err != nil {
		return nil, errors.Unavailable("find", err)
	}
	var docs []emailDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Unavailable("find", err)
	}
	return lo.Map(docs, func(doc emailDocument, _ int) domain.Email {
		return toEmail(doc)
	}), nil
}

func (r *MongoEmailRepository) FindByID(ctx context.Context, id string) (domain.Email, error) {
	oid, err := parseID(id)
	if err != nil {
		return domain.Email{}, err
	}
	var doc emailDocument
	err = r.collection.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return domain.Email{}, errors.ErrNotFound
	}
	if err != nil {
		return domain.Email{}, errors.Unavailable("find by id", err)
	}
	return toEmail(doc), nil
}

// MarkRead only touches the read field, the update is atomic per document.
func (r *MongoEmailRepository) MarkRead(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	result, err := r.collection.UpdateByID(ctx, oid, bson.D{{Key: "$set", Value: bson.D{{Key: "read", Value: true}}}})
	if err != nil {
		return errors.Unavailable("mark read", err)
	}
	if result.MatchedCount == 0 {
		return errors.ErrNotFound
	}
	return nil
}

func (r *MongoEmailRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}
	result, err := r.collection.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return errors.Unavailable("delete", err)
	}
	if result.DeletedCount == 0 {
		return errors.ErrNotFound
	}
	return nil
}

func (r *MongoEmailRepository) Ping(ctx context.Context) error {
	if err := r.collection.Database().Client().Ping(ctx, readpref.Primary()); err != nil {
		return errors.Unavailable("ping", err)
	}
	return nil
}

// recipientFilter matches documents whose to array holds the address.
func recipientFilter(filter Filter) bson.D {
	if filter.Recipient == "" {
		return bson.D{}
	}
	return bson.D{{Key: "to", Value: bson.D{{Key: "$elemMatch", Value: bson.D{{Key: "address", Value: filter.Recipient}}}}}}
}

func findOptions(sort *Sort) *options.FindOptionsBuilder {
	opts := options.Find()
	if sort == nil {
		return opts
	}
	direction := 1
	if sort.Descending {
		direction = -1
	}
	return opts.SetSort(bson.D{{Key: string(sort.Field), Value: direction}})
}

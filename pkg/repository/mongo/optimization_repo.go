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

	"github.com/artem13815/resume-optimizer/pkg/optimization"
)

const collectionName = "optimizations"

type optimizationDocument struct {
	ID                primitive.ObjectID `bson:"_id,omitempty"`
	UserEmail         string             `bson:"user_email"`
	JobURL            string             `bson:"job_url"`
	JobTitle          *string            `bson:"job_title,omitempty"`
	CompanyName       *string            `bson:"company_name,omitempty"`
	JobPostingContent string             `bson:"job_posting_content"`
	JobPostingRaw     string             `bson:"job_posting_raw"`
	OriginalResume    string             `bson:"original_resume"`
	OptimizedResume   string             `bson:"optimized_resume"`
	Suggestions       []string           `bson:"suggestions"`
	MatchScore        float64            `bson:"match_score"`
	CreatedAt         time.Time          `bson:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at"`
}

// OptimizationRepository хранит оптимизации в коллекции "optimizations".
type OptimizationRepository struct {
	coll *mongo.Collection
}

var _ optimization.Repository = (*OptimizationRepository)(nil)

// NewOptimizationRepository заодно создаёт индекс created_at для списка.
func NewOptimizationRepository(ctx context.Context, db *mongo.Database) (*OptimizationRepository, error) {
	r := &OptimizationRepository{coll: db.Collection(collectionName)}
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		return nil, fmt.Errorf("create created_at index: %w", err)
	}
	return r, nil
}

func (r *OptimizationRepository) Insert(ctx context.Context, rec optimization.Record) (optimization.Record, error) {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = rec.CreatedAt
	}
	doc := toDocument(rec)
	doc.ID = primitive.NewObjectID()
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return optimization.Record{}, err
	}
	rec.ID = doc.ID.Hex()
	return rec, nil
}

func (r *OptimizationRepository) List(ctx context.Context, skip, limit int) ([]optimization.Record, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))
	cur, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	res := []optimization.Record{}
	for cur.Next(ctx) {
		var doc optimizationDocument
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		res = append(res, fromDocument(doc))
	}
	return res, cur.Err()
}

func (r *OptimizationRepository) Get(ctx context.Context, id string) (optimization.Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return optimization.Record{}, optimization.ErrInvalidID
	}
	var doc optimizationDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return optimization.Record{}, optimization.ErrNotFound
		}
		return optimization.Record{}, err
	}
	return fromDocument(doc), nil
}

func (r *OptimizationRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return optimization.ErrInvalidID
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return optimization.ErrNotFound
	}
	return nil
}

func toDocument(rec optimization.Record) optimizationDocument {
	suggestions := rec.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}
	return optimizationDocument{
		UserEmail:         rec.UserEmail,
		JobURL:            rec.JobURL,
		JobTitle:          rec.JobTitle,
		CompanyName:       rec.CompanyName,
		JobPostingContent: rec.JobPostingContent,
		JobPostingRaw:     rec.JobPostingRaw,
		OriginalResume:    rec.OriginalResume,
		OptimizedResume:   rec.OptimizedResume,
		Suggestions:       suggestions,
		MatchScore:        rec.MatchScore,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}
}

func fromDocument(doc optimizationDocument) optimization.Record {
	return optimization.Record{
		ID:                doc.ID.Hex(),
		UserEmail:         doc.UserEmail,
		JobURL:            doc.JobURL,
		JobTitle:          doc.JobTitle,
		CompanyName:       doc.CompanyName,
		JobPostingContent: doc.JobPostingContent,
		JobPostingRaw:     doc.JobPostingRaw,
		OriginalResume:    doc.OriginalResume,
		OptimizedResume:   doc.OptimizedResume,
		Suggestions:       doc.Suggestions,
		MatchScore:        doc.MatchScore,
		CreatedAt:         doc.CreatedAt.UTC(),
		UpdatedAt:         doc.UpdatedAt.UTC(),
	}
}

package records

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/haemo-report-api/databases"
	"github.com/linesmerrill/haemo-report-api/models"
)

const patientSequence = "patients"

// MongoStore keeps patient cases in mongo so they survive restarts
type MongoStore struct {
	DB databases.PatientDatabase
}

// NewMongoStore creates a store on top of the patient collection
func NewMongoStore(db databases.PatientDatabase) *MongoStore {
	return &MongoStore{DB: db}
}

// Append takes the next value of the patient counter as the case id and inserts the case
func (s *MongoStore) Append(ctx context.Context, c models.PatientCase) (models.PatientCase, error) {
	seq, err := s.DB.NextSequence(ctx, patientSequence)
	if err != nil {
		return models.PatientCase{}, fmt.Errorf("failed to allocate patient id: %w", err)
	}
	c.Sequence = seq
	c.ID = FormatID(seq)

	if _, err := s.DB.InsertOne(ctx, c); err != nil {
		return models.PatientCase{}, fmt.Errorf("failed to insert patient %s: %w", c.ID, err)
	}
	return c, nil
}

// All returns every stored case ordered by insertion sequence
func (s *MongoStore) All(ctx context.Context) ([]models.PatientCase, error) {
	opts := options.Find().SetSort(bson.D{{Key: "seq", Value: 1}})
	cases, err := s.DB.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	if cases == nil {
		cases = []models.PatientCase{}
	}
	return cases, nil
}

// Seed inserts seed when the collection is empty, keeping the counter in step
func (s *MongoStore) Seed(ctx context.Context, seed []models.PatientCase) error {
	count, err := s.DB.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count patients: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, c := range seed {
		if _, err := s.Append(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

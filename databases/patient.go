package databases

// go generate: mockery --name PatientDatabase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/linesmerrill/haemo-report-api/models"
)

const (
	patientName = "patients"
	counterName = "counters"
)

// PatientDatabase contains the methods to use with the patient database
type PatientDatabase interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.PatientCase, error)
	CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error)
	InsertOne(ctx context.Context, patient models.PatientCase, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error)
	NextSequence(ctx context.Context, name string) (int64, error)
}

type patientDatabase struct {
	db DatabaseHelper
}

type counter struct {
	ID  string `bson:"_id"`
	Seq int64  `bson:"seq"`
}

// NewPatientDatabase initializes a new instance of patient database with the provided db connection
func NewPatientDatabase(db DatabaseHelper) PatientDatabase {
	return &patientDatabase{
		db: db,
	}
}

func (c *patientDatabase) Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]models.PatientCase, error) {
	var patients []models.PatientCase
	cur, err := c.db.Collection(patientName).Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	err = cur.Decode(&patients)
	if err != nil {
		return nil, err
	}
	return patients, nil
}

func (c *patientDatabase) CountDocuments(ctx context.Context, filter interface{}, opts ...*options.CountOptions) (int64, error) {
	count, err := c.db.Collection(patientName).CountDocuments(ctx, filter, opts...)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (c *patientDatabase) InsertOne(ctx context.Context, patient models.PatientCase, opts ...*options.InsertOneOptions) (InsertOneResultHelper, error) {
	return c.db.Collection(patientName).InsertOne(ctx, patient, opts...)
}

// NextSequence atomically increments and returns the named counter, creating it on first use
func (c *patientDatabase) NextSequence(ctx context.Context, name string) (int64, error) {
	var ctr counter
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	err := c.db.Collection(counterName).FindOneAndUpdate(ctx, bson.M{"_id": name}, bson.M{"$inc": bson.M{"seq": 1}}, opts).Decode(&ctr)
	if err != nil {
		return 0, err
	}
	return ctr.Seq, nil
}

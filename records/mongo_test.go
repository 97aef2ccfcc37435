package records_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/linesmerrill/haemo-report-api/databases/mocks"
	"github.com/linesmerrill/haemo-report-api/models"
	"github.com/linesmerrill/haemo-report-api/records"
)

func TestMongoStore_Append(t *testing.T) {
	db := &mocks.PatientDatabase{}
	db.On("NextSequence", mock.Anything, "patients").Return(int64(7), nil)
	db.On("InsertOne", mock.Anything, mock.MatchedBy(func(c models.PatientCase) bool {
		return c.ID == "P007" && c.Sequence == 7
	})).Return(&mocks.InsertOneResultHelper{}, nil)

	c, err := records.NewMongoStore(db).Append(context.Background(), models.PatientCase{Name: "Karim Khan"})
	require.NoError(t, err)

	assert.Equal(t, "P007", c.ID)
	db.AssertExpectations(t)
}

func TestMongoStore_AppendSequenceError(t *testing.T) {
	db := &mocks.PatientDatabase{}
	db.On("NextSequence", mock.Anything, "patients").Return(int64(0), errors.New("mocked-error"))

	_, err := records.NewMongoStore(db).Append(context.Background(), models.PatientCase{})

	assert.EqualError(t, err, "failed to allocate patient id: mocked-error")
	db.AssertNotCalled(t, "InsertOne", mock.Anything, mock.Anything)
}

func TestMongoStore_AppendInsertError(t *testing.T) {
	db := &mocks.PatientDatabase{}
	db.On("NextSequence", mock.Anything, "patients").Return(int64(1), nil)
	db.On("InsertOne", mock.Anything, mock.Anything).Return(nil, errors.New("mocked-error"))

	_, err := records.NewMongoStore(db).Append(context.Background(), models.PatientCase{})

	assert.EqualError(t, err, "failed to insert patient P001: mocked-error")
}

func TestMongoStore_All(t *testing.T) {
	db := &mocks.PatientDatabase{}
	db.On("Find", mock.Anything, bson.M{}, mock.Anything).Return(records.DemoCases(), nil)

	all, err := records.NewMongoStore(db).All(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"P001", "P002", "P003"}, ids(all))
}

func TestMongoStore_AllEmpty(t *testing.T) {
	db := &mocks.PatientDatabase{}
	db.On("Find", mock.Anything, bson.M{}, mock.Anything).Return(nil, nil)

	all, err := records.NewMongoStore(db).All(context.Background())
	require.NoError(t, err)

	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestMongoStore_AllError(t *testing.T) {
	db := &mocks.PatientDatabase{}
	db.On("Find", mock.Anything, bson.M{}, mock.Anything).Return(nil, errors.New("mocked-error"))

	_, err := records.NewMongoStore(db).All(context.Background())

	assert.EqualError(t, err, "failed to list patients: mocked-error")
}

func TestMongoStore_SeedSkipsPopulatedCollection(t *testing.T) {
	db := &mocks.PatientDatabase{}
	db.On("CountDocuments", mock.Anything, bson.M{}).Return(int64(3), nil)

	err := records.NewMongoStore(db).Seed(context.Background(), records.DemoCases())

	assert.NoError(t, err)
	db.AssertNotCalled(t, "NextSequence", mock.Anything, mock.Anything)
}

func TestMongoStore_SeedEmptyCollection(t *testing.T) {
	db := &mocks.PatientDatabase{}
	db.On("CountDocuments", mock.Anything, bson.M{}).Return(int64(0), nil)
	db.On("NextSequence", mock.Anything, "patients").Return(int64(1), nil).Once()
	db.On("NextSequence", mock.Anything, "patients").Return(int64(2), nil).Once()
	db.On("NextSequence", mock.Anything, "patients").Return(int64(3), nil).Once()
	db.On("InsertOne", mock.Anything, mock.Anything).Return(&mocks.InsertOneResultHelper{}, nil)

	err := records.NewMongoStore(db).Seed(context.Background(), records.DemoCases())

	assert.NoError(t, err)
	db.AssertNumberOfCalls(t, "InsertOne", 3)
}

package db

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/terraincognita07/mindguard/internal/models"
)

type MongoEntryRepositoryTestSuite struct {
	suite.Suite
	connURI     string
	testDBName  string
	mongoClient *mongo.Client
	repo        *MongoEntryRepository
}

func NewMongoEntryRepositoryTestSuite(connURI, dbName string) *MongoEntryRepositoryTestSuite {
	return &MongoEntryRepositoryTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *MongoEntryRepositoryTestSuite) SetupSuite() {
	client, err := OpenMongo(context.Background(), s.connURI)
	s.Require().NoError(err)
	s.mongoClient = client

	// every run starts from an empty database
	s.Require().NoError(client.Database(s.testDBName).Drop(context.Background()))

	s.repo = NewMongoEntryRepository(client, s.testDBName)
	s.Require().NoError(s.repo.EnsureIndexes(context.Background()))
}

func (s *MongoEntryRepositoryTestSuite) TearDownSuite() {
	_ = s.mongoClient.Database(s.testDBName).Drop(context.Background())
	_ = s.mongoClient.Disconnect(context.Background())
}

func (s *MongoEntryRepositoryTestSuite) SetupTest() {
	_, err := s.mongoClient.Database(s.testDBName).Collection(MoodEntryCollection).DeleteMany(context.Background(), map[string]any{})
	s.Require().NoError(err)
}

func (s *MongoEntryRepositoryTestSuite) TestSaveUpsertsByDay() {
	day := time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC)

	s.NoError(s.repo.Create(&models.MoodEntry{UserID: 7, Date: day, OverallMood: 3, Energy: 4, Sleep: 5}))
	s.NoError(s.repo.Save(&models.MoodEntry{UserID: 7, Date: day, OverallMood: 8, Energy: 4, Sleep: 5, Activities: []string{"Exercise"}}))

	entries, err := s.repo.ListByUserRange(7, nil, nil)
	s.NoError(err)
	s.Len(entries, 1)
	s.Equal(8, entries[0].OverallMood)
	s.Equal([]string{"Exercise"}, entries[0].Activities)
}

func (s *MongoEntryRepositoryTestSuite) TestRecentAndDelete() {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	for offset := 0; offset < 4; offset++ {
		s.NoError(s.repo.Save(&models.MoodEntry{UserID: 9, Date: base.AddDate(0, 0, offset), OverallMood: offset + 1, Energy: 5, Sleep: 5}))
	}

	recent, err := s.repo.ListRecentByUser(9, 2)
	s.NoError(err)
	s.Len(recent, 2)
	s.Equal(3, recent[0].OverallMood)
	s.Equal(4, recent[1].OverallMood)

	deleted, err := s.repo.DeleteByUserAndDayRange(9, base, base.AddDate(0, 0, 1))
	s.NoError(err)
	s.EqualValues(1, deleted)

	_, found, err := s.repo.FindByUserAndDayRange(9, base, base.AddDate(0, 0, 1))
	s.NoError(err)
	s.False(found)

	s.NoError(s.repo.DeleteByUser(9))
	remaining, err := s.repo.ListByUserRange(9, nil, nil)
	s.NoError(err)
	s.Empty(remaining)
}

func TestMongoEntryRepositoryTestSuite(t *testing.T) {
	uri := os.Getenv("MINDGUARD_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("MINDGUARD_TEST_MONGO_URI is not set")
	}
	suite.Run(t, NewMongoEntryRepositoryTestSuite(uri, "mindguard-test"))
}

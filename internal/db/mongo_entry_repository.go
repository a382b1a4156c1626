package db

import (
	"context"
	"errors"
	"time"

	"github.com/terraincognita07/mindguard/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const MoodEntryCollection = "mood_entries"

type mongoEntryDocument struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	UserID             uint               `bson:"user_id"`
	Date               time.Time          `bson:"date"`
	OverallMood        int                `bson:"overall_mood"`
	Energy             int                `bson:"energy"`
	Sleep              int                `bson:"sleep"`
	DepressiveSymptoms map[string]int     `bson:"depressive_symptoms"`
	AnxietySymptoms    map[string]int     `bson:"anxiety_symptoms"`
	StressIndicators   map[string]int     `bson:"stress_indicators"`
	Activities         []string           `bson:"activities"`
	Triggers           []string           `bson:"triggers"`
	CopingStrategies   []string           `bson:"coping_strategies"`
	Notes              string             `bson:"notes"`
	CreatedAt          time.Time          `bson:"created_at"`
	UpdatedAt          time.Time          `bson:"updated_at"`
}

func (document mongoEntryDocument) model() models.MoodEntry {
	return models.MoodEntry{
		UserID:             document.UserID,
		Date:               document.Date,
		OverallMood:        document.OverallMood,
		Energy:             document.Energy,
		Sleep:              document.Sleep,
		DepressiveSymptoms: document.DepressiveSymptoms,
		AnxietySymptoms:    document.AnxietySymptoms,
		StressIndicators:   document.StressIndicators,
		Activities:         document.Activities,
		Triggers:           document.Triggers,
		CopingStrategies:   document.CopingStrategies,
		Notes:              document.Notes,
		CreatedAt:          document.CreatedAt,
		UpdatedAt:          document.UpdatedAt,
	}
}

// MongoEntryRepository keeps mood entries in a MongoDB collection with one
// document per user and day.
type MongoEntryRepository struct {
	collection *mongo.Collection
}

func NewMongoEntryRepository(client *mongo.Client, database string) *MongoEntryRepository {
	return &MongoEntryRepository{collection: client.Database(database).Collection(MoodEntryCollection)}
}

func (repo *MongoEntryRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, mongoOperationTimeout)
	defer cancel()

	_, err := repo.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("uidx_mood_entries_user_date"),
	})
	return err
}

func (repo *MongoEntryRepository) ListByUserRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.MoodEntry, error) {
	filter := bson.M{"user_id": userID}
	dateFilter := bson.M{}
	if fromStart != nil {
		dateFilter["$gte"] = fromStart.UTC()
	}
	if toEnd != nil {
		dateFilter["$lt"] = toEnd.UTC()
	}
	if len(dateFilter) > 0 {
		filter["date"] = dateFilter
	}
	return repo.find(filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
}

// ListRecentByUser returns at most limit of the newest entries, oldest first.
func (repo *MongoEntryRepository) ListRecentByUser(userID uint, limit int) ([]models.MoodEntry, error) {
	entries, err := repo.find(
		bson.M{"user_id": userID},
		options.Find().SetSort(bson.D{{Key: "date", Value: -1}}).SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, err
	}
	for left, right := 0, len(entries)-1; left < right; left, right = left+1, right-1 {
		entries[left], entries[right] = entries[right], entries[left]
	}
	return entries, nil
}

func (repo *MongoEntryRepository) FindByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (models.MoodEntry, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOperationTimeout)
	defer cancel()

	var document mongoEntryDocument
	err := repo.collection.FindOne(ctx, dayFilter(userID, dayStart, dayEnd)).Decode(&document)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MoodEntry{}, false, nil
	}
	if err != nil {
		return models.MoodEntry{}, false, err
	}
	return document.model(), true, nil
}

func (repo *MongoEntryRepository) Create(entry *models.MoodEntry) error {
	return repo.Save(entry)
}

// Save upserts the entry keyed by user and day.
func (repo *MongoEntryRepository) Save(entry *models.MoodEntry) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOperationTimeout)
	defer cancel()

	now := time.Now().UTC()
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now

	update := bson.M{
		"$set": bson.M{
			"overall_mood":        entry.OverallMood,
			"energy":              entry.Energy,
			"sleep":               entry.Sleep,
			"depressive_symptoms": entry.DepressiveSymptoms,
			"anxiety_symptoms":    entry.AnxietySymptoms,
			"stress_indicators":   entry.StressIndicators,
			"activities":          entry.Activities,
			"triggers":            entry.Triggers,
			"coping_strategies":   entry.CopingStrategies,
			"notes":               entry.Notes,
			"updated_at":          entry.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"created_at": entry.CreatedAt,
		},
	}
	_, err := repo.collection.UpdateOne(
		ctx,
		bson.M{"user_id": entry.UserID, "date": entry.Date.UTC()},
		update,
		options.Update().SetUpsert(true),
	)
	return err
}

func (repo *MongoEntryRepository) DeleteByUserAndDayRange(userID uint, dayStart time.Time, dayEnd time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOperationTimeout)
	defer cancel()

	result, err := repo.collection.DeleteMany(ctx, dayFilter(userID, dayStart, dayEnd))
	if err != nil {
		return 0, err
	}
	return result.DeletedCount, nil
}

func (repo *MongoEntryRepository) DeleteByUser(userID uint) error {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOperationTimeout)
	defer cancel()

	_, err := repo.collection.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}

func (repo *MongoEntryRepository) find(filter bson.M, opts *options.FindOptions) ([]models.MoodEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), mongoOperationTimeout)
	defer cancel()

	cursor, err := repo.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	entries := make([]models.MoodEntry, 0)
	for cursor.Next(ctx) {
		var document mongoEntryDocument
		if err := cursor.Decode(&document); err != nil {
			return nil, err
		}
		entries = append(entries, document.model())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func dayFilter(userID uint, dayStart time.Time, dayEnd time.Time) bson.M {
	return bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": dayStart.UTC(), "$lt": dayEnd.UTC()},
	}
}

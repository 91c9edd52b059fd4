package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/beka-birhanu/labyrinth-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrChallengeNotFound reports a lookup for an unknown challenge ID.
var ErrChallengeNotFound = errors.New("challenge not found")

// ChallengeRepo handles the persistence of generated challenges. The
// maze artifact is stored whole; it is immutable once generated.
type ChallengeRepo struct {
	collection *mongo.Collection
}

// NewChallengeRepo creates a new ChallengeRepo with the given MongoDB client, database name, and collection name.
func NewChallengeRepo(client *mongo.Client, dbName, collectionName string) *ChallengeRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &ChallengeRepo{
		collection: collection,
	}
}

// Save stores a newly generated challenge. Challenges are never
// updated, so a plain insert is enough.
func (c *ChallengeRepo) Save(ctx context.Context, challenge *dmn.Challenge) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if _, err := c.collection.InsertOne(ctx, challenge); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a challenge by its ID.
func (c *ChallengeRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Challenge, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": id}
	var challenge dmn.Challenge
	if err := c.collection.FindOne(ctx, filter).Decode(&challenge); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrChallengeNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &challenge, nil
}

package auth

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoAccountRepository struct {
	collection *mongo.Collection
}

type dbAccount struct {
	ID        ID `bson:"_id"`
	Name      string
	Email     string
	Password  string
	CreatedAt time.Time
}

func NewMongoAccountRepository(c *mongo.Collection) Repository {
	return &mongoAccountRepository{collection: c}
}

//EnsureMongoIndexes creates the unique email index the repository relies on
// to reject duplicate signups
func EnsureMongoIndexes(ctx context.Context, c *mongo.Collection) error {
	_, err := c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (m *mongoAccountRepository) Add(ctx context.Context, cmd EncodedAccountCommand) (*Account, error) {
	acc := newAccount(cmd)
	dba := dbAccountFromAccount(acc)

	if _, err := m.collection.InsertOne(ctx, &dba); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrExistingEmail
		}
		return nil, err
	}
	return acc, nil
}

func (m *mongoAccountRepository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	var dba dbAccount
	sr := m.collection.FindOne(ctx, bson.M{"email": email})

	if sr.Err() == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}

	if err := sr.Decode(&dba); err != nil {
		return nil, err
	}

	acc := accountFromDBAccount(dba)
	return &acc, nil
}

func dbAccountFromAccount(a *Account) dbAccount {
	return dbAccount{a.ID, a.Name, a.Email, a.Password, a.CreatedAt}
}

func accountFromDBAccount(a dbAccount) Account {
	return Account{a.ID, a.Name, a.Email, a.Password, a.CreatedAt}
}

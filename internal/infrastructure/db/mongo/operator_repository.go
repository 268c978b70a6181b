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

	"github.com/hrledger/payroll-system/internal/core/domain"
)

const operatorsCollection = "operators"

// OperatorRepository stores the accounts allowed to log in to the HTTP
// shell. Usernames are unique.
type OperatorRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewOperatorRepository(db *mongo.Database) *OperatorRepository {
	return &OperatorRepository{coll: db.Collection(operatorsCollection), now: time.Now}
}

type operatorDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	Role         string             `bson:"role"`
	UpdatedAt    time.Time          `bson:"updated_at"`
}

// EnsureIndexes creates the unique username index. It is safe to call on
// every start.
func (r *OperatorRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return fmt.Errorf("create operator index: %w", err)
	}
	return nil
}

// Save inserts u or replaces the hash and role of the operator with the same
// username.
func (r *OperatorRepository) Save(ctx context.Context, u domain.User) error {
	if u.Username == "" || u.PasswordHash == "" || !domain.ValidRole(u.Role) {
		return fmt.Errorf("save operator %q: %w", u.Username, domain.ErrInvalidInput)
	}

	_, err := r.coll.UpdateOne(ctx,
		bson.M{"username": u.Username},
		bson.M{"$set": bson.M{
			"password_hash": u.PasswordHash,
			"role":          u.Role,
			"updated_at":    r.now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("save operator %q: %w", u.Username, err)
	}
	return nil
}

func (r *OperatorRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	var doc operatorDoc
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find operator: %w", err)
	}

	return &domain.User{
		Username:     doc.Username,
		PasswordHash: doc.PasswordHash,
		Role:         doc.Role,
	}, nil
}

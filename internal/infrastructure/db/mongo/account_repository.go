package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/relutech/asset-management/internal/core/domain"
)

const accountCollection = "accounts"

type AccountRepository struct {
	coll *mongo.Collection
}

func NewAccountRepository(db *mongo.Database) *AccountRepository {
	return &AccountRepository{coll: db.Collection(accountCollection)}
}

type mongoAccount struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Email        string             `bson:"email"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"password_hash"`
	IsActive     bool               `bson:"is_active"`
	IsAdmin      bool               `bson:"is_admin"`
	IsSuperuser  bool               `bson:"is_superuser"`
	LastLogin    int64              `bson:"last_login,omitempty"`
	CreatedAt    int64              `bson:"created_at"`
	UpdatedAt    int64              `bson:"updated_at"`
}

func (r *AccountRepository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	doc := mongoAccount{
		Email:        account.Email,
		Username:     account.Username,
		PasswordHash: account.PasswordHash,
		IsActive:     account.IsActive,
		IsAdmin:      account.IsAdmin,
		IsSuperuser:  account.IsSuperuser,
		CreatedAt:    account.CreatedAt.Unix(),
		UpdatedAt:    account.UpdatedAt.Unix(),
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("insert account: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *account
	created.ID = id.Hex()
	return &created, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid}, domain.ErrAccountNotFound)
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"username": username}, domain.ErrAccountNotFound)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*domain.Account, error) {
	return r.findOne(ctx, bson.M{"email": email}, domain.ErrAccountNotFound)
}

// FindDeveloper resolves id to a non-admin account. An id that is not
// a valid ObjectID is simply a developer that does not exist.
func (r *AccountRepository) FindDeveloper(ctx context.Context, id string) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrDeveloperNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid, "is_admin": false}, domain.ErrDeveloperNotFound)
}

func (r *AccountRepository) ListDevelopers(ctx context.Context) ([]domain.Account, error) {
	cur, err := r.coll.Find(ctx, bson.M{"is_admin": false})
	if err != nil {
		return nil, fmt.Errorf("list developers: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Account
	for cur.Next(ctx) {
		var ma mongoAccount
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode account: %w", err)
		}
		out = append(out, *toAccount(&ma))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list developers: %w", err)
	}
	return out, nil
}

func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	oid, err := primitive.ObjectIDFromHex(account.ID)
	if err != nil {
		return nil, domain.ErrAccountNotFound
	}

	update := bson.M{"$set": bson.M{
		"email":      account.Email,
		"username":   account.Username,
		"is_active":  account.IsActive,
		"is_admin":   account.IsAdmin,
		"updated_at": account.UpdatedAt.Unix(),
	}}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("update account: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (r *AccountRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAccountNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAccountNotFound
	}
	_, err = r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"last_login": at.Unix()}})
	if err != nil {
		return fmt.Errorf("update last login: %w", err)
	}
	return nil
}

func (r *AccountRepository) HasSuperuser(ctx context.Context) (bool, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{"is_superuser": true})
	if err != nil {
		return false, fmt.Errorf("count superusers: %w", err)
	}
	return n > 0, nil
}

func (r *AccountRepository) findOne(ctx context.Context, filter bson.M, notFound error) (*domain.Account, error) {
	var ma mongoAccount
	if err := r.coll.FindOne(ctx, filter).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, notFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return toAccount(&ma), nil
}

func toAccount(ma *mongoAccount) *domain.Account {
	a := &domain.Account{
		ID:           ma.ID.Hex(),
		Email:        ma.Email,
		Username:     ma.Username,
		PasswordHash: ma.PasswordHash,
		IsActive:     ma.IsActive,
		IsAdmin:      ma.IsAdmin,
		IsSuperuser:  ma.IsSuperuser,
		CreatedAt:    unixToTime(ma.CreatedAt),
		UpdatedAt:    unixToTime(ma.UpdatedAt),
	}
	if ma.LastLogin != 0 {
		t := time.Unix(ma.LastLogin, 0).UTC()
		a.LastLogin = &t
	}
	return a
}

func unixToTime(ts int64) time.Time {
	if ts == 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}

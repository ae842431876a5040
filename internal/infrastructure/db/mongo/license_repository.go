package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/relutech/asset-management/internal/core/domain"
)

const licenseCollection = "licenses"

type LicenseRepository struct {
	coll *mongo.Collection
}

func NewLicenseRepository(db *mongo.Database) *LicenseRepository {
	return &LicenseRepository{coll: db.Collection(licenseCollection)}
}

type mongoLicense struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Software    string             `bson:"software"`
	DeveloperID string             `bson:"developer_id"`
}

func (r *LicenseRepository) Create(ctx context.Context, license *domain.License) (*domain.License, error) {
	doc := mongoLicense{
		Software:    license.Software,
		DeveloperID: license.DeveloperID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert license: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *license
	created.ID = id.Hex()
	return &created, nil
}

func (r *LicenseRepository) ListAll(ctx context.Context) ([]domain.License, error) {
	return r.list(ctx, bson.M{})
}

func (r *LicenseRepository) ListByDeveloper(ctx context.Context, developerID string) ([]domain.License, error) {
	return r.list(ctx, bson.M{"developer_id": developerID})
}

func (r *LicenseRepository) FindForDeveloper(ctx context.Context, developerID, licenseID string) (*domain.License, error) {
	oid, err := primitive.ObjectIDFromHex(licenseID)
	if err != nil {
		return nil, domain.ErrLicenseNotFound
	}

	var ml mongoLicense
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "developer_id": developerID}).Decode(&ml); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrLicenseNotFound
		}
		return nil, fmt.Errorf("find license: %w", err)
	}
	return toLicense(&ml), nil
}

func (r *LicenseRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrLicenseNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete license: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrLicenseNotFound
	}
	return nil
}

func (r *LicenseRepository) DeleteByDeveloper(ctx context.Context, developerID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"developer_id": developerID}); err != nil {
		return fmt.Errorf("delete licenses by developer: %w", err)
	}
	return nil
}

func (r *LicenseRepository) list(ctx context.Context, filter bson.M) ([]domain.License, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.License
	for cur.Next(ctx) {
		var ml mongoLicense
		if err := cur.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode license: %w", err)
		}
		out = append(out, *toLicense(&ml))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	return out, nil
}

func toLicense(ml *mongoLicense) *domain.License {
	return &domain.License{
		ID:          ml.ID.Hex(),
		Software:    ml.Software,
		DeveloperID: ml.DeveloperID,
	}
}

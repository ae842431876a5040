package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/relutech/asset-management/internal/core/domain"
)

const assetCollection = "assets"

type AssetRepository struct {
	coll *mongo.Collection
}

func NewAssetRepository(db *mongo.Database) *AssetRepository {
	return &AssetRepository{coll: db.Collection(assetCollection)}
}

type mongoAsset struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Brand       string             `bson:"brand"`
	Model       string             `bson:"model"`
	Type        string             `bson:"type"`
	DeveloperID string             `bson:"developer_id"`
}

func (r *AssetRepository) Create(ctx context.Context, asset *domain.Asset) (*domain.Asset, error) {
	doc := mongoAsset{
		Brand:       asset.Brand,
		Model:       asset.Model,
		Type:        string(asset.Type),
		DeveloperID: asset.DeveloperID,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert asset: %w", err)
	}

	id, _ := res.InsertedID.(primitive.ObjectID)
	created := *asset
	created.ID = id.Hex()
	return &created, nil
}

func (r *AssetRepository) ListAll(ctx context.Context) ([]domain.Asset, error) {
	return r.list(ctx, bson.M{})
}

func (r *AssetRepository) ListByDeveloper(ctx context.Context, developerID string) ([]domain.Asset, error) {
	return r.list(ctx, bson.M{"developer_id": developerID})
}

func (r *AssetRepository) FindForDeveloper(ctx context.Context, developerID, assetID string) (*domain.Asset, error) {
	oid, err := primitive.ObjectIDFromHex(assetID)
	if err != nil {
		return nil, domain.ErrAssetNotFound
	}

	var ma mongoAsset
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid, "developer_id": developerID}).Decode(&ma); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.ErrAssetNotFound
		}
		return nil, fmt.Errorf("find asset: %w", err)
	}
	return toAsset(&ma), nil
}

func (r *AssetRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrAssetNotFound
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrAssetNotFound
	}
	return nil
}

func (r *AssetRepository) DeleteByDeveloper(ctx context.Context, developerID string) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{"developer_id": developerID}); err != nil {
		return fmt.Errorf("delete assets by developer: %w", err)
	}
	return nil
}

func (r *AssetRepository) list(ctx context.Context, filter bson.M) ([]domain.Asset, error) {
	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer cur.Close(ctx)

	var out []domain.Asset
	for cur.Next(ctx) {
		var ma mongoAsset
		if err := cur.Decode(&ma); err != nil {
			return nil, fmt.Errorf("decode asset: %w", err)
		}
		out = append(out, *toAsset(&ma))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	return out, nil
}

func toAsset(ma *mongoAsset) *domain.Asset {
	return &domain.Asset{
		ID:          ma.ID.Hex(),
		Brand:       ma.Brand,
		Model:       ma.Model,
		Type:        domain.AssetType(ma.Type),
		DeveloperID: ma.DeveloperID,
	}
}

package repository

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-dam-service/entity"
	"github.com/tnqbao/gau-dam-service/workflow"
)

type AssetRepository struct {
	db *gorm.DB
}

func NewAssetRepository(db *gorm.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

// AssetQuery mirrors the GET /api/assets query surface. Zero values are
// pass-through; Status "all" is too.
type AssetQuery struct {
	Status   string
	Campaign string
	Tags     []string
	Search   string
	Limit    int
	Offset   int
}

func (r *AssetRepository) Create(asset *entity.Asset) error {
	return r.db.Create(asset).Error
}

// CreateAsset satisfies the upload pipeline's store interface.
func (r *AssetRepository) CreateAsset(asset *entity.Asset) error {
	return r.Create(asset)
}

func (r *AssetRepository) FindByID(id uuid.UUID) (*entity.Asset, error) {
	var asset entity.Asset
	err := r.db.Where("id = ?", id).First(&asset).Error
	if err != nil {
		return nil, err
	}
	return &asset, nil
}

// apply adds the query's conditions to db. Tags must bind as a text[]
// parameter; jsonb_exists_any takes (jsonb, text[]) and a bare slice would
// expand into a row constructor Postgres rejects.
func (q AssetQuery) apply(db *gorm.DB) *gorm.DB {
	if q.Status != "" && q.Status != "all" {
		db = db.Where("status = ?", q.Status)
	}
	if q.Campaign != "" {
		db = db.Where("campaign = ?", q.Campaign)
	}
	if len(q.Tags) > 0 {
		// Array overlap on the jsonb tag set.
		db = db.Where("jsonb_exists_any(tags, ?::text[])", pq.StringArray(q.Tags))
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		db = db.Where("filename ILIKE ? OR notes ILIKE ?", pattern, pattern)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}
	return db
}

func (r *AssetRepository) List(q AssetQuery) ([]entity.Asset, error) {
	db := q.apply(r.db.Model(&entity.Asset{}).Order("created_at DESC"))

	var assets []entity.Asset
	err := db.Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *AssetRepository) FindByProductID(productID uuid.UUID) ([]entity.Asset, error) {
	var assets []entity.Asset
	err := r.db.Where("product_id = ?", productID).Order("created_at DESC").Find(&assets).Error
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *AssetRepository) Update(id uuid.UUID, updates map[string]interface{}) (*entity.Asset, error) {
	updates["updated_at"] = time.Now()
	err := r.db.Model(&entity.Asset{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *AssetRepository) UpdateStatus(id uuid.UUID, status workflow.Status) error {
	return r.db.Model(&entity.Asset{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *AssetRepository) UpdateTags(id uuid.UUID, tags []string) error {
	return r.db.Model(&entity.Asset{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"tags":       datatypes.JSONSlice[string](tags),
			"updated_at": time.Now(),
		}).Error
}

func (r *AssetRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&entity.Asset{}).Error
}

func (r *AssetRepository) DeleteByProductID(productID uuid.UUID) error {
	return r.db.Where("product_id = ?", productID).Delete(&entity.Asset{}).Error
}

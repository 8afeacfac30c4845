package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-dam-service/entity"
)

type ChecklistRepository struct {
	db *gorm.DB
}

func NewChecklistRepository(db *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{db: db}
}

func (r *ChecklistRepository) ListByAssetID(assetID uuid.UUID) ([]entity.AssetChecklistItem, error) {
	var items []entity.AssetChecklistItem
	err := r.db.Where("asset_id = ?", assetID).Order("order_index ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ChecklistRepository) ListByProductID(productID uuid.UUID) ([]entity.ProductChecklistItem, error) {
	var items []entity.ProductChecklistItem
	err := r.db.Where("product_id = ?", productID).Order("order_index ASC").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ToggleAssetItem flips a single item's completion flag and returns the
// updated row. A failed write leaves the row untouched.
func (r *ChecklistRepository) ToggleAssetItem(itemID uuid.UUID, completed bool) (*entity.AssetChecklistItem, error) {
	err := r.db.Model(&entity.AssetChecklistItem{}).Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"is_completed": completed,
			"updated_at":   time.Now(),
		}).Error
	if err != nil {
		return nil, err
	}

	var item entity.AssetChecklistItem
	if err := r.db.Where("id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *ChecklistRepository) ToggleProductItem(itemID uuid.UUID, completed bool) (*entity.ProductChecklistItem, error) {
	err := r.db.Model(&entity.ProductChecklistItem{}).Where("id = ?", itemID).
		Updates(map[string]interface{}{
			"is_completed": completed,
			"updated_at":   time.Now(),
		}).Error
	if err != nil {
		return nil, err
	}

	var item entity.ProductChecklistItem
	if err := r.db.Where("id = ?", itemID).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateProductItems seeds a product's checklist in one batch.
func (r *ChecklistRepository) CreateProductItems(items []entity.ProductChecklistItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.Create(&items).Error
}

func (r *ChecklistRepository) DeleteByProductID(productID uuid.UUID) error {
	return r.db.Where("product_id = ?", productID).Delete(&entity.ProductChecklistItem{}).Error
}

func (r *ChecklistRepository) DeleteByAssetID(assetID uuid.UUID) error {
	return r.db.Where("asset_id = ?", assetID).Delete(&entity.AssetChecklistItem{}).Error
}

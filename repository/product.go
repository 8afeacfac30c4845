package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-dam-service/entity"
	"github.com/tnqbao/gau-dam-service/workflow"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

type ProductQuery struct {
	Category string
	Status   string
	Gender   string
	Search   string
	Limit    int
	Offset   int
}

func (r *ProductRepository) Create(product *entity.Product) error {
	return r.db.Create(product).Error
}

func (r *ProductRepository) FindByID(id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// FindByIDWithAssets loads a product and its owned assets, newest first.
func (r *ProductRepository) FindByIDWithAssets(id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := r.db.Preload("Assets", func(db *gorm.DB) *gorm.DB {
		return db.Order("assets.created_at DESC")
	}).Where("id = ?", id).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) List(q ProductQuery) ([]entity.Product, error) {
	db := r.db.Model(&entity.Product{}).Order("created_at DESC")

	if q.Category != "" && q.Category != "all" {
		db = db.Where("category = ?", q.Category)
	}
	if q.Status != "" && q.Status != "all" {
		db = db.Where("status = ?", q.Status)
	}
	if q.Gender != "" && q.Gender != "all" {
		db = db.Where("gender = ?", q.Gender)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if q.Limit > 0 {
		db = db.Limit(q.Limit)
	}
	if q.Offset > 0 {
		db = db.Offset(q.Offset)
	}

	var products []entity.Product
	err := db.Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepository) Update(id uuid.UUID, updates map[string]interface{}) (*entity.Product, error) {
	updates["updated_at"] = time.Now()
	err := r.db.Model(&entity.Product{}).Where("id = ?", id).Updates(updates).Error
	if err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *ProductRepository) UpdateStatus(id uuid.UUID, status workflow.Status) error {
	return r.db.Model(&entity.Product{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

func (r *ProductRepository) Delete(id uuid.UUID) error {
	return r.db.Where("id = ?", id).Delete(&entity.Product{}).Error
}

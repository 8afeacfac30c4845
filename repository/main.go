package repository

import (
	"github.com/tnqbao/gau-dam-service/infra"
	"gorm.io/gorm"
)

type Repository struct {
	AssetRepo     *AssetRepository
	ProductRepo   *ProductRepository
	ChecklistRepo *ChecklistRepository
	TagRepo       *TagRepository
}

var repository *Repository

func InitRepository(infra *infra.Infra) *Repository {
	repository = &Repository{
		AssetRepo:     NewAssetRepository(infra.Postgres.DB),
		ProductRepo:   NewProductRepository(infra.Postgres.DB),
		ChecklistRepo: NewChecklistRepository(infra.Postgres.DB),
		TagRepo:       NewTagRepository(infra.Postgres.DB),
	}
	return repository
}

func GetRepository() *Repository {
	if repository == nil {
		panic("repository not initialized")
	}
	return repository
}

func (r *Repository) BeginTransaction(db *gorm.DB) *gorm.DB {
	return db.Begin()
}

func (r *Repository) WithTransaction(tx *gorm.DB) *Repository {
	return &Repository{
		AssetRepo:     NewAssetRepository(tx),
		ProductRepo:   NewProductRepository(tx),
		ChecklistRepo: NewChecklistRepository(tx),
		TagRepo:       NewTagRepository(tx),
	}
}

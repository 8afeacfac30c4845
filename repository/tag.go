package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tnqbao/gau-dam-service/entity"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// SuggestLimit caps autocomplete results.
const SuggestLimit = 8

// Suggest returns tags whose name contains match (case-insensitive),
// ranked by usage, excluding names already attached to the target.
func (r *TagRepository) Suggest(match string, exclude []string) ([]entity.Tag, error) {
	db := r.db.Model(&entity.Tag{}).
		Where("name ILIKE ?", "%"+match+"%").
		Order("usage_count DESC").
		Limit(SuggestLimit)

	if len(exclude) > 0 {
		db = db.Where("name NOT IN ?", exclude)
	}

	var tags []entity.Tag
	err := db.Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}

// IncrementUsage bumps the usage counter for name, creating the registry
// row on first use. The counter never decrements.
func (r *TagRepository) IncrementUsage(name string) error {
	tag := entity.Tag{
		ID:         uuid.New(),
		Name:       name,
		UsageCount: 1,
	}
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "name"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"usage_count": gorm.Expr("tags.usage_count + 1"),
		}),
	}).Create(&tag).Error
}

func (r *TagRepository) FindByName(name string) (*entity.Tag, error) {
	var tag entity.Tag
	err := r.db.Where("name = ?", name).First(&tag).Error
	if err != nil {
		return nil, err
	}
	return &tag, nil
}

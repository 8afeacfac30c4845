package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/tnqbao/gau-dam-service/workflow"
)

type ProductCategory string

const (
	CategoryActivewear  ProductCategory = "activewear"
	CategoryLoungewear  ProductCategory = "loungewear"
	CategoryTops        ProductCategory = "tops"
	CategoryBottoms     ProductCategory = "bottoms"
	CategoryAccessories ProductCategory = "accessories"
	CategoryOther       ProductCategory = "other"
)

func ValidProductCategory(c ProductCategory) bool {
	switch c {
	case CategoryActivewear, CategoryLoungewear, CategoryTops,
		CategoryBottoms, CategoryAccessories, CategoryOther:
		return true
	}
	return false
}

type ProductGender string

const (
	ProductGenderMen    ProductGender = "men"
	ProductGenderWomen  ProductGender = "women"
	ProductGenderUnisex ProductGender = "unisex"
)

func ValidProductGender(g ProductGender) bool {
	switch g {
	case ProductGenderMen, ProductGenderWomen, ProductGenderUnisex:
		return true
	}
	return false
}

type Product struct {
	ID          uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(255);not null"`
	Description *string         `json:"description,omitempty" gorm:"type:text"`
	Category    ProductCategory `json:"category" gorm:"type:varchar(32);not null;index"`
	Status      workflow.Status `json:"status" gorm:"type:varchar(32);not null;index;default:draft"`
	Gender      ProductGender   `json:"gender" gorm:"type:varchar(16);not null;default:unisex"`
	CreatedBy   *uuid.UUID      `json:"created_by,omitempty" gorm:"type:uuid"`
	CreatedAt   time.Time       `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Assets []Asset `json:"assets,omitempty" gorm:"foreignKey:ProductID"`
}

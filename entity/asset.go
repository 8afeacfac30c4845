package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/tnqbao/gau-dam-service/workflow"
)

type GenderCategory string

const (
	GenderMens   GenderCategory = "mens"
	GenderWomens GenderCategory = "womens"
	GenderUnisex GenderCategory = "unisex"
)

func ValidGenderCategory(g GenderCategory) bool {
	switch g {
	case GenderMens, GenderWomens, GenderUnisex:
		return true
	}
	return false
}

type Asset struct {
	ID               uuid.UUID                   `json:"id" gorm:"type:uuid;primaryKey"`
	Filename         string                      `json:"filename" gorm:"type:varchar(512);not null"`
	OriginalFilename *string                     `json:"original_filename,omitempty" gorm:"type:varchar(512)"`
	FileURL          string                      `json:"file_url" gorm:"type:varchar(1024);not null"`
	StorageKey       string                      `json:"storage_key" gorm:"type:varchar(1024);not null;uniqueIndex"`
	Filetype         string                      `json:"filetype" gorm:"type:varchar(255)"`
	Filesize         int64                       `json:"filesize" gorm:"not null"`
	UploadTime       time.Time                   `json:"upload_time"`
	Status           workflow.Status             `json:"status" gorm:"type:varchar(32);not null;index;default:draft"`
	ProductID        *uuid.UUID                  `json:"product_id,omitempty" gorm:"type:uuid;index"`
	Campaign         *string                     `json:"campaign,omitempty" gorm:"type:varchar(255);index"`
	Tags             datatypes.JSONSlice[string] `json:"tags" gorm:"type:jsonb"`
	QCPassed         bool                        `json:"qc_passed" gorm:"not null;default:false"`
	Notes            *string                     `json:"notes,omitempty" gorm:"type:text"`
	GenderCategory   GenderCategory              `json:"gender_category" gorm:"type:varchar(16);not null;default:unisex"`
	CreatedAt        time.Time                   `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt        time.Time                   `json:"updated_at" gorm:"autoUpdateTime"`

	Product *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

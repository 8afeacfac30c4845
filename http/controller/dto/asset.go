package dto

import "github.com/google/uuid"

type CreateAssetRequest struct {
	Filename         string     `json:"filename" binding:"required"`
	OriginalFilename *string    `json:"original_filename"`
	FileURL          string     `json:"file_url" binding:"required"`
	StorageKey       string     `json:"storage_key" binding:"required"`
	Filetype         string     `json:"filetype"`
	Filesize         int64      `json:"filesize"`
	ProductID        *uuid.UUID `json:"product_id"`
	Campaign         *string    `json:"campaign"`
	Tags             []string   `json:"tags"`
	Notes            *string    `json:"notes"`
	GenderCategory   string     `json:"gender_category"`
}

// UpdateAssetRequest carries a partial metadata update. Nil fields are left
// untouched.
type UpdateAssetRequest struct {
	Filename       *string    `json:"filename"`
	ProductID      *uuid.UUID `json:"product_id"`
	Campaign       *string    `json:"campaign"`
	Tags           *[]string  `json:"tags"`
	Notes          *string    `json:"notes"`
	GenderCategory *string    `json:"gender_category"`
	QCPassed       *bool      `json:"qc_passed"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

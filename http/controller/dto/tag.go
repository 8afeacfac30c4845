package dto

import "github.com/google/uuid"

type TagAttachRequest struct {
	AssetID uuid.UUID `json:"asset_id" binding:"required"`
	Name    string    `json:"name" binding:"required"`
}

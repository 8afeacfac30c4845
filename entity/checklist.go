package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// ChecklistCore holds the fields shared by asset- and product-scoped
// checklist items. is_required is fixed at creation; only is_completed is
// user-toggled.
type ChecklistCore struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Title       string    `json:"title" gorm:"type:varchar(255);not null"`
	Description *string   `json:"description,omitempty" gorm:"type:text"`
	IsCompleted bool      `json:"is_completed" gorm:"not null;default:false"`
	IsRequired  bool      `json:"is_required" gorm:"not null;default:false"`
	OrderIndex  int       `json:"order_index" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at" gorm:"not null;autoCreateTime"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

type AssetChecklistItem struct {
	ChecklistCore
	AssetID uuid.UUID `json:"asset_id" gorm:"type:uuid;not null;index"`
}

type ProductChecklistItem struct {
	ChecklistCore
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
}

type ChecklistProgress struct {
	CompletedRequired int `json:"completed_required"`
	TotalRequired     int `json:"total_required"`
	CompletedOptional int `json:"completed_optional"`
	TotalOptional     int `json:"total_optional"`
	Percentage        int `json:"percentage"`
}

// Progress computes completion fractions over checklist items. Percentage
// tracks required items only and is defined as 100 when none are required.
func Progress(items []ChecklistCore) ChecklistProgress {
	var p ChecklistProgress
	for _, item := range items {
		if item.IsRequired {
			p.TotalRequired++
			if item.IsCompleted {
				p.CompletedRequired++
			}
		} else {
			p.TotalOptional++
			if item.IsCompleted {
				p.CompletedOptional++
			}
		}
	}
	if p.TotalRequired == 0 {
		p.Percentage = 100
		return p
	}
	p.Percentage = int(math.Round(100 * float64(p.CompletedRequired) / float64(p.TotalRequired)))
	return p
}

// DefaultQCChecklist is the template seeded for every new product. Order
// mirrors the review flow: required gates first, optional bookkeeping last.
func DefaultQCChecklist(productID uuid.UUID) []ProductChecklistItem {
	template := []struct {
		title    string
		required bool
	}{
		{"File format is correct (JPG, PNG, MP4, etc.)", true},
		{"Resolution meets minimum requirements", true},
		{"File naming follows conventions", true},
		{"Image/video quality is acceptable", true},
		{"Content is appropriate and on-brand", true},
		{"Metadata and tags are accurate", false},
		{"Usage rights and licensing are clear", false},
	}

	items := make([]ProductChecklistItem, 0, len(template))
	for i, t := range template {
		items = append(items, ProductChecklistItem{
			ChecklistCore: ChecklistCore{
				ID:         uuid.New(),
				Title:      t.title,
				IsRequired: t.required,
				OrderIndex: i,
			},
			ProductID: productID,
		})
	}
	return items
}

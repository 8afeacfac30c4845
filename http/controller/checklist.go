package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-dam-service/entity"
	"github.com/tnqbao/gau-dam-service/http/controller/dto"
	"github.com/tnqbao/gau-dam-service/utils"
)

func (ctrl *Controller) GetAssetChecklist(c *gin.Context) {
	ctx := c.Request.Context()

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid asset id format")
		return
	}

	items, err := ctrl.Repository.ChecklistRepo.ListByAssetID(assetID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Checklist] Failed to list items for asset %s", assetID)
		utils.JSON500(c, "Failed to fetch checklist")
		return
	}

	cores := make([]entity.ChecklistCore, 0, len(items))
	for _, item := range items {
		cores = append(cores, item.ChecklistCore)
	}

	utils.JSON200(c, gin.H{
		"items":    items,
		"progress": entity.Progress(cores),
	})
}

func (ctrl *Controller) ToggleAssetChecklistItem(c *gin.Context) {
	ctx := c.Request.Context()

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		utils.JSON400(c, "Invalid checklist item id format")
		return
	}

	var req dto.ToggleChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	item, err := ctrl.Repository.ChecklistRepo.ToggleAssetItem(itemID, *req.IsCompleted)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Checklist item not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Checklist] Failed to toggle asset item %s", itemID)
		utils.JSON500(c, "Failed to update checklist item")
		return
	}

	utils.JSON200(c, item)
}

func (ctrl *Controller) GetProductChecklist(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid product id format")
		return
	}

	items, err := ctrl.Repository.ChecklistRepo.ListByProductID(productID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Checklist] Failed to list items for product %s", productID)
		utils.JSON500(c, "Failed to fetch checklist")
		return
	}

	cores := make([]entity.ChecklistCore, 0, len(items))
	for _, item := range items {
		cores = append(cores, item.ChecklistCore)
	}

	utils.JSON200(c, gin.H{
		"items":    items,
		"progress": entity.Progress(cores),
	})
}

func (ctrl *Controller) ToggleProductChecklistItem(c *gin.Context) {
	ctx := c.Request.Context()

	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		utils.JSON400(c, "Invalid checklist item id format")
		return
	}

	var req dto.ToggleChecklistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	item, err := ctrl.Repository.ChecklistRepo.ToggleProductItem(itemID, *req.IsCompleted)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Checklist item not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Checklist] Failed to toggle product item %s", itemID)
		utils.JSON500(c, "Failed to update checklist item")
		return
	}

	utils.JSON200(c, item)
}

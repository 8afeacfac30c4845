package controller

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-dam-service/entity"
	"github.com/tnqbao/gau-dam-service/http/controller/dto"
	"github.com/tnqbao/gau-dam-service/repository"
	"github.com/tnqbao/gau-dam-service/utils"
	"github.com/tnqbao/gau-dam-service/workflow"
)

func (ctrl *Controller) ListAssets(c *gin.Context) {
	ctx := c.Request.Context()

	query := repository.AssetQuery{
		Status:   c.Query("status"),
		Campaign: c.Query("campaign"),
		Tags:     entity.ParseTagList(c.Query("tags")),
		Search:   c.Query("search"),
	}
	query.Limit, _ = strconv.Atoi(c.Query("limit"))
	query.Offset, _ = strconv.Atoi(c.Query("offset"))

	if query.Status != "" && query.Status != "all" && !workflow.Valid(workflow.Status(query.Status)) {
		utils.JSON400(c, "Invalid status filter: "+query.Status)
		return
	}

	assets, err := ctrl.Repository.AssetRepo.List(query)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Asset] Failed to list assets")
		utils.JSON500(c, "Failed to list assets")
		return
	}

	utils.JSON200(c, assets)
}

func (ctrl *Controller) CreateAsset(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	gender := entity.GenderCategory(req.GenderCategory)
	if req.GenderCategory == "" {
		gender = entity.GenderUnisex
	}
	if !entity.ValidGenderCategory(gender) {
		utils.JSON400(c, "Invalid gender_category: "+req.GenderCategory)
		return
	}

	asset := &entity.Asset{
		ID:               uuid.New(),
		Filename:         req.Filename,
		OriginalFilename: req.OriginalFilename,
		FileURL:          req.FileURL,
		StorageKey:       req.StorageKey,
		Filetype:         req.Filetype,
		Filesize:         req.Filesize,
		UploadTime:       time.Now(),
		Status:           workflow.StatusDraft,
		ProductID:        req.ProductID,
		Campaign:         req.Campaign,
		Tags:             datatypes.JSONSlice[string](req.Tags),
		Notes:            req.Notes,
		GenderCategory:   gender,
	}

	if err := ctrl.Repository.AssetRepo.Create(asset); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Asset] Failed to create asset %s", req.Filename)
		utils.JSON500(c, "Failed to create asset")
		return
	}

	utils.JSON201(c, asset)
}

func (ctrl *Controller) GetAssetByID(c *gin.Context) {
	ctx := c.Request.Context()

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid asset id format")
		return
	}

	asset, err := ctrl.Repository.AssetRepo.FindByID(assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Asset not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Asset] Failed to fetch asset %s", assetID)
		utils.JSON500(c, "Failed to fetch asset")
		return
	}

	utils.JSON200(c, asset)
}

func (ctrl *Controller) UpdateAsset(c *gin.Context) {
	ctx := c.Request.Context()

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid asset id format")
		return
	}

	var req dto.UpdateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	updates, err := assetUpdates(req)
	if err != nil {
		utils.JSON400(c, err.Error())
		return
	}

	if len(updates) == 0 {
		utils.JSON400(c, "No fields to update")
		return
	}

	asset, err := ctrl.Repository.AssetRepo.Update(assetID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Asset not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Asset] Failed to update asset %s", assetID)
		utils.JSON500(c, "Failed to update asset")
		return
	}

	utils.JSON200(c, asset)
}

// assetUpdates maps a partial update request onto column assignments. An
// empty string on the nullable text columns (campaign, notes) and a nil
// UUID on product_id clear the column back to NULL.
func assetUpdates(req dto.UpdateAssetRequest) (map[string]interface{}, error) {
	updates := map[string]interface{}{}
	if req.Filename != nil {
		updates["filename"] = *req.Filename
	}
	if req.ProductID != nil {
		if *req.ProductID == uuid.Nil {
			updates["product_id"] = nil
		} else {
			updates["product_id"] = *req.ProductID
		}
	}
	if req.Campaign != nil {
		updates["campaign"] = nullableText(*req.Campaign)
	}
	if req.Tags != nil {
		updates["tags"] = datatypes.JSONSlice[string](*req.Tags)
	}
	if req.Notes != nil {
		updates["notes"] = nullableText(*req.Notes)
	}
	if req.GenderCategory != nil {
		if !entity.ValidGenderCategory(entity.GenderCategory(*req.GenderCategory)) {
			return nil, fmt.Errorf("Invalid gender_category: %s", *req.GenderCategory)
		}
		updates["gender_category"] = *req.GenderCategory
	}
	if req.QCPassed != nil {
		updates["qc_passed"] = *req.QCPassed
	}
	return updates, nil
}

func nullableText(v string) interface{} {
	if v == "" {
		return nil
	}
	return v
}

// UpdateAssetStatus validates the requested transition against the workflow
// table before touching the row.
func (ctrl *Controller) UpdateAssetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid asset id format")
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	asset, err := ctrl.Repository.AssetRepo.FindByID(assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Asset not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Asset] Failed to fetch asset %s", assetID)
		utils.JSON500(c, "Failed to fetch asset")
		return
	}

	requested := workflow.Status(req.Status)
	if err := workflow.Validate(asset.Status, requested); err != nil {
		if errors.Is(err, workflow.ErrInvalidTransition) {
			utils.JSON409(c, "Invalid status transition: "+string(asset.Status)+" -> "+req.Status)
			return
		}
		utils.JSON400(c, "Unknown status: "+req.Status)
		return
	}

	if err := ctrl.Repository.AssetRepo.UpdateStatus(assetID, requested); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Asset] Failed to update status for asset %s", assetID)
		utils.JSON500(c, "Failed to update asset status")
		return
	}

	utils.JSON200(c, gin.H{
		"id":     assetID,
		"status": requested,
	})
}

// DeleteAsset removes the storage object first, then the metadata row and
// its checklist items. A failed object removal is queued for the cleanup
// consumer instead of blocking the delete.
func (ctrl *Controller) DeleteAsset(c *gin.Context) {
	ctx := c.Request.Context()

	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid asset id format")
		return
	}

	asset, err := ctrl.Repository.AssetRepo.FindByID(assetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Asset not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Asset] Failed to fetch asset %s", assetID)
		utils.JSON500(c, "Failed to fetch asset")
		return
	}

	if err := ctrl.Infra.Minio.Remove(ctx, asset.StorageKey); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Asset] Failed to remove object %s, queueing cleanup", asset.StorageKey)
		if pubErr := ctrl.Infra.Produce.CleanupService.PublishRemoveObjects(ctx, []string{asset.StorageKey}); pubErr != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, pubErr, "[Asset] Failed to queue cleanup for %s", asset.StorageKey)
		}
	}

	if err := ctrl.Repository.ChecklistRepo.DeleteByAssetID(assetID); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Asset] Failed to delete checklist for asset %s", assetID)
		utils.JSON500(c, "Failed to delete asset checklist")
		return
	}

	if err := ctrl.Repository.AssetRepo.Delete(assetID); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Asset] Failed to delete asset %s", assetID)
		utils.JSON500(c, "Failed to delete asset")
		return
	}

	utils.JSON200(c, gin.H{
		"id":      assetID,
		"deleted": true,
	})
}

package controller

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-dam-service/entity"
	"github.com/tnqbao/gau-dam-service/http/controller/dto"
	"github.com/tnqbao/gau-dam-service/utils"
)

// SuggestTags serves autocomplete: case-insensitive name-contains match
// ranked by usage, excluding tags already attached to the target.
func (ctrl *Controller) SuggestTags(c *gin.Context) {
	ctx := c.Request.Context()

	match := entity.NormalizeTagName(c.Query("q"))
	exclude := entity.ParseTagList(c.Query("exclude"))

	tags, err := ctrl.Repository.TagRepo.Suggest(match, exclude)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Tag] Failed to suggest tags for %q", match)
		utils.JSON500(c, "Failed to suggest tags")
		return
	}

	utils.JSON200(c, tags)
}

// AttachTag adds a normalized tag to an asset's tag set. The usage counter
// increment rides RabbitMQ; a publish failure is logged, never surfaced.
func (ctrl *Controller) AttachTag(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.TagAttachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	name := entity.NormalizeTagName(req.Name)
	if name == "" {
		utils.JSON400(c, "Tag name is required")
		return
	}

	asset, err := ctrl.Repository.AssetRepo.FindByID(req.AssetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Asset not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Tag] Failed to fetch asset %s", req.AssetID)
		utils.JSON500(c, "Failed to fetch asset")
		return
	}

	tags, changed := entity.AttachTag(asset.Tags, name)
	if changed {
		if err := ctrl.Repository.AssetRepo.UpdateTags(req.AssetID, tags); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Tag] Failed to attach tag %q to asset %s", name, req.AssetID)
			utils.JSON500(c, "Failed to attach tag")
			return
		}

		if err := ctrl.Infra.Produce.TagService.PublishTagUsage(ctx, name); err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Tag] Failed to publish usage for tag %q", name)
		}
	}

	utils.JSON200(c, gin.H{
		"asset_id": req.AssetID,
		"tags":     tags,
		"attached": changed,
	})
}

// DetachTag removes a tag from the asset's set only. Usage counters are
// never decremented.
func (ctrl *Controller) DetachTag(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.TagAttachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	name := entity.NormalizeTagName(req.Name)
	if name == "" {
		utils.JSON400(c, "Tag name is required")
		return
	}

	asset, err := ctrl.Repository.AssetRepo.FindByID(req.AssetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Asset not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Tag] Failed to fetch asset %s", req.AssetID)
		utils.JSON500(c, "Failed to fetch asset")
		return
	}

	tags := entity.DetachTag(asset.Tags, name)
	if err := ctrl.Repository.AssetRepo.UpdateTags(req.AssetID, tags); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Tag] Failed to detach tag %q from asset %s", name, req.AssetID)
		utils.JSON500(c, "Failed to detach tag")
		return
	}

	utils.JSON200(c, gin.H{
		"asset_id": req.AssetID,
		"tags":     tags,
	})
}

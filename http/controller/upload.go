package controller

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tnqbao/gau-dam-service/uploader"
	"github.com/tnqbao/gau-dam-service/utils"
)

// UploadAssets accepts a multipart batch of files with shared metadata and
// runs the upload pipeline. Each file succeeds or fails independently; the
// response carries per-file results plus the batch id for progress polling.
func (ctrl *Controller) UploadAssets(c *gin.Context) {
	ctx := c.Request.Context()

	form, err := c.MultipartForm()
	if err != nil {
		utils.JSON400(c, "Invalid multipart form: "+err.Error())
		return
	}

	fileHeaders := form.File["file"]
	if len(fileHeaders) == 0 {
		utils.JSON400(c, "No file provided")
		return
	}

	metadata := uploader.Metadata{
		Campaign:       strings.TrimSpace(c.PostForm("campaign")),
		Tags:           c.PostForm("tags"),
		Notes:          strings.TrimSpace(c.PostForm("notes")),
		GenderCategory: strings.TrimSpace(c.PostForm("gender_category")),
	}

	if productIDStr := strings.TrimSpace(c.PostForm("product_id")); productIDStr != "" {
		productID, err := uuid.Parse(productIDStr)
		if err != nil {
			utils.JSON400(c, "Invalid product_id format")
			return
		}
		metadata.ProductID = &productID
	}

	files := make([]uploader.File, 0, len(fileHeaders))
	for _, header := range fileHeaders {
		reader, err := header.Open()
		if err != nil {
			ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Upload] Failed to open file %s", header.Filename)
			utils.JSON500(c, "Failed to read file: "+header.Filename)
			return
		}
		defer reader.Close()

		files = append(files, uploader.File{
			Name:        header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
			Reader:      reader,
			Metadata:    metadata,
		})
	}

	batchID := uuid.New().String()
	ctrl.Infra.Logger.InfoWithContextf(ctx, "[Upload] Processing batch %s with %d file(s)", batchID, len(files))

	results := ctrl.Uploader.Process(ctx, batchID, files)

	response := make([]gin.H, 0, len(results))
	for _, result := range results {
		item := gin.H{
			"filename": result.Filename,
		}
		if result.Err != nil {
			item["error"] = result.Err.Error()
		} else {
			item["asset_id"] = result.AssetID
		}
		response = append(response, item)
	}

	utils.JSON201(c, gin.H{
		"batch_id": batchID,
		"results":  response,
	})
}

// GetUploadProgress returns the transient per-file progress of a batch from
// Redis. An unknown or expired batch id yields an empty list.
func (ctrl *Controller) GetUploadProgress(c *gin.Context) {
	ctx := c.Request.Context()

	batchID := c.Param("batch_id")
	if batchID == "" {
		utils.JSON400(c, "batch_id is required")
		return
	}

	progress, err := ctrl.Infra.Progress.Batch(ctx, batchID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Upload] Failed to fetch progress for batch %s", batchID)
		utils.JSON500(c, "Failed to fetch upload progress")
		return
	}

	utils.JSON200(c, gin.H{
		"batch_id": batchID,
		"files":    progress,
	})
}

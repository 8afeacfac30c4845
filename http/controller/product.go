package controller

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-dam-service/entity"
	"github.com/tnqbao/gau-dam-service/filter"
	"github.com/tnqbao/gau-dam-service/http/controller/dto"
	"github.com/tnqbao/gau-dam-service/repository"
	"github.com/tnqbao/gau-dam-service/utils"
	"github.com/tnqbao/gau-dam-service/workflow"
)

func (ctrl *Controller) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	query := repository.ProductQuery{
		Category: c.Query("category"),
		Status:   c.Query("status"),
		Gender:   c.Query("gender"),
		Search:   c.Query("search"),
	}
	query.Limit, _ = strconv.Atoi(c.Query("limit"))
	query.Offset, _ = strconv.Atoi(c.Query("offset"))

	products, err := ctrl.Repository.ProductRepo.List(query)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to list products")
		utils.JSON500(c, "Failed to list products")
		return
	}

	utils.JSON200(c, products)
}

// CreateProduct inserts the product and seeds its QC checklist in one
// transaction.
func (ctrl *Controller) CreateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	if !entity.ValidProductCategory(entity.ProductCategory(req.Category)) {
		utils.JSON400(c, "Invalid category: "+req.Category)
		return
	}

	gender := entity.ProductGender(req.Gender)
	if req.Gender == "" {
		gender = entity.ProductGenderUnisex
	}
	if !entity.ValidProductGender(gender) {
		utils.JSON400(c, "Invalid gender: "+req.Gender)
		return
	}

	product := &entity.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Category:    entity.ProductCategory(req.Category),
		Status:      workflow.StatusDraft,
		Gender:      gender,
	}

	if userID, err := utils.GetUserIDFromContext(c); err == nil {
		product.CreatedBy = &userID
	}

	tx := ctrl.Repository.BeginTransaction(ctrl.Infra.Postgres.DB)
	txRepo := ctrl.Repository.WithTransaction(tx)

	if err := txRepo.ProductRepo.Create(product); err != nil {
		tx.Rollback()
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to create product %s", req.Name)
		utils.JSON500(c, "Failed to create product")
		return
	}

	if err := txRepo.ChecklistRepo.CreateProductItems(entity.DefaultQCChecklist(product.ID)); err != nil {
		tx.Rollback()
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to seed checklist for product %s", product.ID)
		utils.JSON500(c, "Failed to seed product checklist")
		return
	}

	if err := tx.Commit().Error; err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to commit product %s", product.ID)
		utils.JSON500(c, "Failed to create product")
		return
	}

	utils.JSON201(c, product)
}

func (ctrl *Controller) GetProductByID(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid product id format")
		return
	}

	product, err := ctrl.Repository.ProductRepo.FindByIDWithAssets(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Product not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to fetch product %s", productID)
		utils.JSON500(c, "Failed to fetch product")
		return
	}

	// Query params narrow the embedded asset list in memory; the count
	// reflects what is returned.
	state := filter.AssetState{
		Status:         c.Query("status"),
		Campaign:       c.Query("campaign"),
		GenderCategory: c.Query("gender_category"),
		Tags:           entity.ParseTagList(c.Query("tags")),
		Search:         c.Query("search"),
	}
	product.Assets = filter.Assets(product.Assets, state)

	utils.JSON200(c, gin.H{
		"product":     product,
		"asset_count": len(product.Assets),
	})
}

func (ctrl *Controller) UpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid product id format")
		return
	}

	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Category != nil {
		if !entity.ValidProductCategory(entity.ProductCategory(*req.Category)) {
			utils.JSON400(c, "Invalid category: "+*req.Category)
			return
		}
		updates["category"] = *req.Category
	}
	if req.Gender != nil {
		if !entity.ValidProductGender(entity.ProductGender(*req.Gender)) {
			utils.JSON400(c, "Invalid gender: "+*req.Gender)
			return
		}
		updates["gender"] = *req.Gender
	}

	if len(updates) == 0 {
		utils.JSON400(c, "No fields to update")
		return
	}

	product, err := ctrl.Repository.ProductRepo.Update(productID, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Product not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to update product %s", productID)
		utils.JSON500(c, "Failed to update product")
		return
	}

	utils.JSON200(c, product)
}

func (ctrl *Controller) UpdateProductStatus(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid product id format")
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSON400(c, "Invalid request payload")
		return
	}

	product, err := ctrl.Repository.ProductRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Product not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to fetch product %s", productID)
		utils.JSON500(c, "Failed to fetch product")
		return
	}

	requested := workflow.Status(req.Status)
	if err := workflow.Validate(product.Status, requested); err != nil {
		if errors.Is(err, workflow.ErrInvalidTransition) {
			utils.JSON409(c, "Invalid status transition: "+string(product.Status)+" -> "+req.Status)
			return
		}
		utils.JSON400(c, "Unknown status: "+req.Status)
		return
	}

	if err := ctrl.Repository.ProductRepo.UpdateStatus(productID, requested); err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to update status for product %s", productID)
		utils.JSON500(c, "Failed to update product status")
		return
	}

	utils.JSON200(c, gin.H{
		"id":     productID,
		"status": requested,
	})
}

// DeleteProduct cascades: storage objects for every owned asset, then the
// asset rows, checklist rows and the product itself in one transaction.
// Failed object removals are queued for the cleanup consumer.
func (ctrl *Controller) DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.JSON400(c, "Invalid product id format")
		return
	}

	if _, err := ctrl.Repository.ProductRepo.FindByID(productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSON404(c, "Product not found")
			return
		}
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to fetch product %s", productID)
		utils.JSON500(c, "Failed to fetch product")
		return
	}

	assets, err := ctrl.Repository.AssetRepo.FindByProductID(productID)
	if err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to list assets for product %s", productID)
		utils.JSON500(c, "Failed to list product assets")
		return
	}

	tx := ctrl.Repository.BeginTransaction(ctrl.Infra.Postgres.DB)
	txRepo := ctrl.Repository.WithTransaction(tx)

	err = cascadeDeleteProduct(ctx,
		ctrl.Infra.Minio,
		ctrl.Infra.Produce.CleanupService,
		ctrl.Infra.Logger,
		txRepo.AssetRepo,
		txRepo.ChecklistRepo,
		txRepo.ProductRepo,
		productID,
		assets,
	)
	if err != nil {
		tx.Rollback()
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed cascade delete for product %s", productID)
		utils.JSON500(c, "Failed to delete product")
		return
	}

	if err := tx.Commit().Error; err != nil {
		ctrl.Infra.Logger.ErrorWithContextf(ctx, err, "[Product] Failed to commit delete for product %s", productID)
		utils.JSON500(c, "Failed to delete product")
		return
	}

	utils.JSON200(c, gin.H{
		"id":             productID,
		"deleted":        true,
		"deleted_assets": len(assets),
	})
}

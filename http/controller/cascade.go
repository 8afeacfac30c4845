package controller

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tnqbao/gau-dam-service/entity"
	"github.com/tnqbao/gau-dam-service/uploader"
)

type objectBatchRemover interface {
	RemoveAll(ctx context.Context, keys []string) error
}

type assetRowDeleter interface {
	DeleteByProductID(productID uuid.UUID) error
}

type checklistDeleter interface {
	DeleteByAssetID(assetID uuid.UUID) error
	DeleteByProductID(productID uuid.UUID) error
}

type productRowDeleter interface {
	Delete(id uuid.UUID) error
}

// cascadeDeleteProduct removes a product and everything it owns: storage
// objects first, then per-asset checklists, asset rows, the product
// checklist and finally the product row. A failed object removal is queued
// for the cleanup consumer and does not block the delete; any row delete
// failure aborts so the caller can roll back.
func cascadeDeleteProduct(
	ctx context.Context,
	storage objectBatchRemover,
	cleanup uploader.CleanupPublisher,
	logger uploader.Logger,
	assets assetRowDeleter,
	checklists checklistDeleter,
	products productRowDeleter,
	productID uuid.UUID,
	owned []entity.Asset,
) error {
	keys := make([]string, 0, len(owned))
	for _, asset := range owned {
		keys = append(keys, asset.StorageKey)
	}
	if len(keys) > 0 {
		if err := storage.RemoveAll(ctx, keys); err != nil {
			logger.ErrorWithContextf(ctx, err, "[Product] Failed to remove objects for product %s, queueing cleanup", productID)
			if cleanup != nil {
				if pubErr := cleanup.PublishRemoveObjects(ctx, keys); pubErr != nil {
					logger.ErrorWithContextf(ctx, pubErr, "[Product] Failed to queue cleanup for product %s", productID)
				}
			}
		}
	}

	for _, asset := range owned {
		if err := checklists.DeleteByAssetID(asset.ID); err != nil {
			return fmt.Errorf("delete checklist for asset %s: %w", asset.ID, err)
		}
	}
	if err := assets.DeleteByProductID(productID); err != nil {
		return fmt.Errorf("delete assets for product %s: %w", productID, err)
	}
	if err := checklists.DeleteByProductID(productID); err != nil {
		return fmt.Errorf("delete checklist for product %s: %w", productID, err)
	}
	if err := products.Delete(productID); err != nil {
		return fmt.Errorf("delete product %s: %w", productID, err)
	}
	return nil
}

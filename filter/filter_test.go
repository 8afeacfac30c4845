package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/tnqbao/gau-dam-service/entity"
	"github.com/tnqbao/gau-dam-service/workflow"
)

func strPtr(s string) *string { return &s }

func testAssets() []entity.Asset {
	return []entity.Asset{
		{
			Filename:       "hero_shot.jpg",
			Status:         workflow.StatusDraft,
			Campaign:       strPtr("summer-2026"),
			Tags:           datatypes.JSONSlice[string]{"outdoor", "lifestyle"},
			GenderCategory: entity.GenderMens,
		},
		{
			Filename:       "studio_video.mp4",
			Status:         workflow.StatusApproved,
			Campaign:       strPtr("summer-2026"),
			Tags:           datatypes.JSONSlice[string]{"studio"},
			Notes:          strPtr("Needs color grading"),
			GenderCategory: entity.GenderWomens,
		},
		{
			Filename:       "lookbook_cover.png",
			Status:         workflow.StatusInReview,
			Tags:           datatypes.JSONSlice[string]{"lookbook", "outdoor"},
			GenderCategory: entity.GenderUnisex,
		},
	}
}

func names(assets []entity.Asset) []string {
	out := make([]string, len(assets))
	for i, a := range assets {
		out[i] = a.Filename
	}
	return out
}

func TestAssetsStatusFilter(t *testing.T) {
	assets := testAssets()

	assert.Equal(t, []string{"hero_shot.jpg"}, names(Assets(assets, AssetState{Status: "draft"})))
	assert.Len(t, Assets(assets, AssetState{Status: All}), 3)
	assert.Len(t, Assets(assets, AssetState{}), 3)
}

func TestAssetsCampaignFilter(t *testing.T) {
	got := Assets(testAssets(), AssetState{Campaign: "summer-2026"})
	assert.Equal(t, []string{"hero_shot.jpg", "studio_video.mp4"}, names(got))
}

func TestAssetsGenderFilter(t *testing.T) {
	got := Assets(testAssets(), AssetState{GenderCategory: "womens"})
	assert.Equal(t, []string{"studio_video.mp4"}, names(got))
	assert.Len(t, Assets(testAssets(), AssetState{GenderCategory: All}), 3)
}

func TestAssetsTagsAreDisjunctive(t *testing.T) {
	// An asset matches when it carries at least one of the filter tags.
	got := Assets(testAssets(), AssetState{Tags: []string{"studio", "lookbook"}})
	assert.Equal(t, []string{"studio_video.mp4", "lookbook_cover.png"}, names(got))
}

func TestAssetsSearch(t *testing.T) {
	assets := testAssets()

	// Filename, notes, and tags all participate, case-insensitively.
	assert.Equal(t, []string{"hero_shot.jpg"}, names(Assets(assets, AssetState{Search: "HERO"})))
	assert.Equal(t, []string{"studio_video.mp4"}, names(Assets(assets, AssetState{Search: "color grading"})))
	assert.Equal(t, []string{"hero_shot.jpg", "lookbook_cover.png"}, names(Assets(assets, AssetState{Search: "outdoor"})))
	assert.Empty(t, Assets(assets, AssetState{Search: "nomatch"}))
}

// TestAssetsCompositionOrderIndependent verifies that conjunctive filters
// commute: applying them together equals applying them one at a time in any
// order.
func TestAssetsCompositionOrderIndependent(t *testing.T) {
	assets := testAssets()
	combined := AssetState{Status: "approved", Campaign: "summer-2026", Tags: []string{"studio"}}

	allAtOnce := Assets(assets, combined)

	statusFirst := Assets(Assets(Assets(assets, AssetState{Status: "approved"}), AssetState{Campaign: "summer-2026"}), AssetState{Tags: []string{"studio"}})
	tagsFirst := Assets(Assets(Assets(assets, AssetState{Tags: []string{"studio"}}), AssetState{Status: "approved"}), AssetState{Campaign: "summer-2026"})

	assert.Equal(t, allAtOnce, statusFirst)
	assert.Equal(t, allAtOnce, tagsFirst)
	assert.Equal(t, []string{"studio_video.mp4"}, names(allAtOnce))
}

func TestAssetsDoesNotMutateInput(t *testing.T) {
	assets := testAssets()
	_ = Assets(assets, AssetState{Status: "draft", Search: "hero"})

	require.Len(t, assets, 3)
	assert.Equal(t, "hero_shot.jpg", assets[0].Filename)
	assert.Equal(t, workflow.StatusApproved, assets[1].Status)
}

func testProducts() []entity.Product {
	return []entity.Product{
		{Name: "Trail Jacket", Category: entity.CategoryActivewear, Status: workflow.StatusApproved, Gender: entity.ProductGenderMen},
		{Name: "Lounge Set", Description: strPtr("Two-piece knit set"), Category: entity.CategoryLoungewear, Status: workflow.StatusDraft, Gender: entity.ProductGenderWomen},
		{Name: "Canvas Tote", Category: entity.CategoryAccessories, Status: workflow.StatusDraft, Gender: entity.ProductGenderUnisex},
	}
}

func TestProductsFilters(t *testing.T) {
	products := testProducts()

	got := Products(products, ProductState{Category: "loungewear"})
	require.Len(t, got, 1)
	assert.Equal(t, "Lounge Set", got[0].Name)

	got = Products(products, ProductState{Status: "draft", Gender: "unisex"})
	require.Len(t, got, 1)
	assert.Equal(t, "Canvas Tote", got[0].Name)

	got = Products(products, ProductState{Search: "knit"})
	require.Len(t, got, 1)
	assert.Equal(t, "Lounge Set", got[0].Name)

	assert.Len(t, Products(products, ProductState{Category: All, Status: All, Gender: All}), 3)
}

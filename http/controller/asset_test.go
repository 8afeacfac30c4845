package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/tnqbao/gau-dam-service/http/controller/dto"
)

func strPtr(v string) *string { return &v }

func TestAssetUpdatesSkipsAbsentFields(t *testing.T) {
	updates, err := assetUpdates(dto.UpdateAssetRequest{})
	require.NoError(t, err)
	assert.Empty(t, updates)
}

func TestAssetUpdatesSetsValues(t *testing.T) {
	productID := uuid.New()
	qc := true
	tags := []string{"outdoor"}

	updates, err := assetUpdates(dto.UpdateAssetRequest{
		Filename:       strPtr("hero.jpg"),
		ProductID:      &productID,
		Campaign:       strPtr("spring-drop"),
		Tags:           &tags,
		Notes:          strPtr("retouched"),
		GenderCategory: strPtr("womens"),
		QCPassed:       &qc,
	})
	require.NoError(t, err)

	assert.Equal(t, "hero.jpg", updates["filename"])
	assert.Equal(t, productID, updates["product_id"])
	assert.Equal(t, "spring-drop", updates["campaign"])
	assert.Equal(t, datatypes.JSONSlice[string](tags), updates["tags"])
	assert.Equal(t, "retouched", updates["notes"])
	assert.Equal(t, "womens", updates["gender_category"])
	assert.Equal(t, true, updates["qc_passed"])
}

func TestAssetUpdatesClearsNullableColumns(t *testing.T) {
	nilID := uuid.Nil
	updates, err := assetUpdates(dto.UpdateAssetRequest{
		Campaign:  strPtr(""),
		Notes:     strPtr(""),
		ProductID: &nilID,
	})
	require.NoError(t, err)

	campaign, ok := updates["campaign"]
	require.True(t, ok, "empty campaign must still produce an assignment")
	assert.Nil(t, campaign)

	notes, ok := updates["notes"]
	require.True(t, ok)
	assert.Nil(t, notes)

	productID, ok := updates["product_id"]
	require.True(t, ok)
	assert.Nil(t, productID)
}

func TestAssetUpdatesRejectsUnknownGender(t *testing.T) {
	_, err := assetUpdates(dto.UpdateAssetRequest{GenderCategory: strPtr("kids")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gender_category")
}

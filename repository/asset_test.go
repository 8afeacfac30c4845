package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tnqbao/gau-dam-service/entity"
)

func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(postgres.Open("host=localhost user=postgres dbname=postgres"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)
	return db
}

func TestAssetQueryTagsBindsAsTextArray(t *testing.T) {
	db := newDryRunDB(t)

	q := AssetQuery{Tags: []string{"outdoor", "lifestyle"}}
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return q.apply(tx.Model(&entity.Asset{})).Find(&[]entity.Asset{})
	})

	require.Contains(t, sql, "jsonb_exists_any(tags, ", "tag filter should use the jsonb overlap function")
	require.Contains(t, sql, "::text[]", "tag list must bind as a text array parameter")
	require.Contains(t, sql, `'{"outdoor","lifestyle"}'`, "tag list should serialize as one array literal")
	require.NotContains(t, sql, `('outdoor','lifestyle')`, "tag list must not expand into a row constructor")
}

func TestAssetQuerySingleTagBindsAsTextArray(t *testing.T) {
	db := newDryRunDB(t)

	q := AssetQuery{Tags: []string{"summer"}}
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return q.apply(tx.Model(&entity.Asset{})).Find(&[]entity.Asset{})
	})

	require.Contains(t, sql, `'{"summer"}'::text[]`)
}

func TestAssetQueryComposesFilters(t *testing.T) {
	db := newDryRunDB(t)

	q := AssetQuery{
		Status:   "draft",
		Campaign: "spring-drop",
		Search:   "hero",
		Limit:    20,
		Offset:   40,
	}
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return q.apply(tx.Model(&entity.Asset{}).Order("created_at DESC")).Find(&[]entity.Asset{})
	})

	require.Contains(t, sql, `status = 'draft'`)
	require.Contains(t, sql, `campaign = 'spring-drop'`)
	require.Contains(t, sql, `filename ILIKE '%hero%' OR notes ILIKE '%hero%'`)
	require.Contains(t, sql, "LIMIT 20")
	require.Contains(t, sql, "OFFSET 40")
	require.Contains(t, sql, `ORDER BY created_at DESC`)
}

func TestAssetQueryStatusAllPassesThrough(t *testing.T) {
	db := newDryRunDB(t)

	q := AssetQuery{Status: "all"}
	sql := db.ToSQL(func(tx *gorm.DB) *gorm.DB {
		return q.apply(tx.Model(&entity.Asset{})).Find(&[]entity.Asset{})
	})

	require.NotContains(t, sql, "status =")
}

func TestListBuildsWithoutExecuting(t *testing.T) {
	db := newDryRunDB(t)
	repo := NewAssetRepository(db.Session(&gorm.Session{DryRun: true}))

	_, err := repo.List(AssetQuery{Tags: []string{"outdoor"}, Status: "approved"})
	require.NoError(t, err)
}

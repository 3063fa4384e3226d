package seed_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/perphorum/perphorum-api/database"
	"github.com/perphorum/perphorum-api/models"
	"github.com/perphorum/perphorum-api/seed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

const catalogJSON = `[
  {
    "brand": "Dior",
    "name_perfume": "Sauvage",
    "family": "Aromatic",
    "subfamily": "Fougere",
    "gender": "Male",
    "description": "Radiant bergamot over ambroxan.",
    "ingredients": ["Bergamot", "Pepper", "Ambroxan"],
    "image_name": "dior_sauvage.jpg"
  },
  {
    "brand": "Guerlain",
    "name_perfume": "Shalimar",
    "family": "Oriental",
    "subfamily": "Amber",
    "gender": "Female",
    "description": "Bergamot and iris over vanilla.",
    "ingredients": ["Bergamot", "Iris", "Vanilla", "Vanilla"],
    "image_name": "guerlain_shalimar.jpg"
  }
]`

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite",
		DSN:        filepath.Join(t.TempDir(), "test.db"),
	}, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestLoadCatalog(t *testing.T) {
	db := openTestDB(t)

	n, err := seed.LoadCatalog(db, strings.NewReader(catalogJSON), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	var perfume models.Perfume
	require.NoError(t, db.
		Preload("Ingredients", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		First(&perfume, "name = ?", "Shalimar").Error)
	assert.Equal(t, "Guerlain", perfume.Brand)
	// order and duplicates preserved as imported
	assert.Equal(t, []string{"Bergamot", "Iris", "Vanilla", "Vanilla"}, perfume.IngredientNames())
}

func TestLoadCatalogSkipsWhenBigEnough(t *testing.T) {
	db := openTestDB(t)

	n, err := seed.LoadCatalog(db, strings.NewReader(catalogJSON), 2)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// catalog already at the threshold: nothing is reloaded
	n, err = seed.LoadCatalog(db, strings.NewReader(catalogJSON), 2)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLoadCatalogReplacesWholesale(t *testing.T) {
	db := openTestDB(t)

	stale := models.Perfume{Brand: "Old", Name: "Gone"}
	require.NoError(t, db.Create(&stale).Error)
	user := models.User{Username: "maciej", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	review := models.Review{Rating: 5, UserID: user.ID, PerfumeID: stale.ID}
	require.NoError(t, db.Create(&review).Error)

	n, err := seed.LoadCatalog(db, strings.NewReader(catalogJSON), 50)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	var perfumes, reviews, users int64
	require.NoError(t, db.Model(&models.Perfume{}).Count(&perfumes).Error)
	require.NoError(t, db.Model(&models.Review{}).Count(&reviews).Error)
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(2), perfumes)
	assert.Zero(t, reviews)
	// users survive a catalog reload
	assert.Equal(t, int64(1), users)

	var gone int64
	require.NoError(t, db.Model(&models.Perfume{}).Where("name = ?", "Gone").Count(&gone).Error)
	assert.Zero(t, gone)
}

func TestSeedUsers(t *testing.T) {
	db := openTestDB(t)

	n, err := seed.SeedUsers(db)
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	var admins int64
	require.NoError(t, db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&admins).Error)
	assert.Equal(t, int64(1), admins)

	// second run is a no-op
	n, err = seed.SeedUsers(db)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedReviews(t *testing.T) {
	db := openTestDB(t)

	_, err := seed.LoadCatalog(db, strings.NewReader(catalogJSON), 2)
	require.NoError(t, err)
	_, err = seed.SeedUsers(db)
	require.NoError(t, err)

	n, err := seed.SeedReviews(db, 42)
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	// one review per (author, subject) pair
	type pair struct {
		UserID    uint
		PerfumeID uint
	}
	var pairs []pair
	require.NoError(t, db.Model(&models.Review{}).
		Select("user_id, perfume_id").Find(&pairs).Error)
	seen := make(map[pair]bool)
	for _, p := range pairs {
		assert.False(t, seen[p], "duplicate review pair %+v", p)
		seen[p] = true
	}

	// reviews exist: second run is a no-op
	n, err = seed.SeedReviews(db, 42)
	require.NoError(t, err)
	assert.Zero(t, n)
}

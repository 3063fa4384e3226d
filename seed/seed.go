package seed

import (
	"encoding/json"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/perphorum/perphorum-api/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultMinCatalogSize is the threshold below which the catalog is treated as
// incomplete and reloaded wholesale from the reference dataset.
const DefaultMinCatalogSize = 50

// CatalogRecord is one entry of the perfumes.json reference dataset.
type CatalogRecord struct {
	Brand       string   `json:"brand"`
	Name        string   `json:"name_perfume"`
	Family      string   `json:"family"`
	Subfamily   string   `json:"subfamily"`
	Gender      string   `json:"gender"`
	Description string   `json:"description"`
	Ingredients []string `json:"ingredients"`
	ImageName   string   `json:"image_name"`
}

// LoadCatalog replaces the perfume catalog with the records read from r when
// the current catalog is smaller than minCount. Reviews (and their comments
// and likes) are wiped with it, since they reference the old rows. Returns
// the number of perfumes loaded, 0 when the catalog was already big enough.
func LoadCatalog(db *gorm.DB, r io.Reader, minCount int64) (int, error) {
	var count int64
	if err := db.Model(&models.Perfume{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count >= minCount {
		return 0, nil
	}
	log.Printf("Perfume count is low (%d). Reloading catalog...", count)

	var records []CatalogRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return 0, err
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM review_likes",
			"DELETE FROM user_wishlist",
			"DELETE FROM user_owned",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("1 = 1").Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.PerfumeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("1 = 1").Delete(&models.Perfume{}).Error; err != nil {
			return err
		}

		for _, rec := range records {
			perfume := models.Perfume{
				Brand:       rec.Brand,
				Name:        rec.Name,
				Family:      rec.Family,
				Subfamily:   rec.Subfamily,
				Gender:      rec.Gender,
				Description: rec.Description,
				ImageName:   rec.ImageName,
			}
			for i, name := range rec.Ingredients {
				perfume.Ingredients = append(perfume.Ingredients, models.PerfumeIngredient{
					Position: i,
					Name:     name,
				})
			}
			if err := tx.Create(&perfume).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Printf("✅ Loaded %d perfumes", len(records))
	return len(records), nil
}

// demo accounts created on an empty user table
var demoUsers = []struct {
	username string
	password string
	role     models.Role
}{
	{"maciej", "maciej123", models.RoleUser},
	{"mateusz", "mateusz123", models.RoleUser},
	{"prowadzacy", "admin123", models.RoleAdmin},
	{"anna_perfumy", "anna123", models.RoleUser},
	{"piotr_k", "piotr123", models.RoleUser},
	{"kasia_scent", "kasia123", models.RoleUser},
	{"tomek_niche", "tomek123", models.RoleUser},
	{"ewa_luxury", "ewa123", models.RoleUser},
	{"jan_vintage", "jan123", models.RoleUser},
	{"magda_fresh", "magda123", models.RoleUser},
	{"pawel_woody", "pawel123", models.RoleUser},
	{"zofia_floral", "zofia123", models.RoleUser},
	{"adam_oud", "adam123", models.RoleUser},
	{"natalia_sweet", "natalia123", models.RoleUser},
	{"krzysztof_classic", "krzysztof123", models.RoleUser},
	{"aleksandra_chic", "ola123", models.RoleUser},
	{"bartosz_intense", "bartek123", models.RoleUser},
	{"monika_elegant", "monika123", models.RoleUser},
}

// SeedUsers creates the demo accounts when no users exist yet. Returns the
// number of users created.
func SeedUsers(db *gorm.DB) (int, error) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, nil
	}

	created := 0
	for _, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return created, err
		}
		user := models.User{
			Username: u.username,
			Password: string(hash),
			Role:     u.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return created, err
		}
		created++
	}
	log.Printf("✅ Created %d demo users", created)
	return created, nil
}

var reviewTexts = []string{
	"Fantastic scent! Lasts all day and keeps drawing compliments.",
	"A true classic. Elegant, masculine, full of character. Perfect for evenings out.",
	"Fresh and light, ideal for summer. Projection could be better, but very good overall.",
	"Very unusual composition. Surprising at first, then addictive.",
	"Great value for money. Not niche, but it does the job for everyday wear.",
	"Absolutely gorgeous! The floral notes here are stunning. My new favourite.",
	"A bit too sweet for my taste, but my wife loves it. Good for date nights.",
	"Wow! This is what I spent years looking for. Pure elegance.",
	"Solid performer. 8+ hours on skin without a problem, great sillage.",
	"I had doubts before buying, but it turned out to be a perfect hit!",
	"Every time I wear it I get compliments. A must have!",
	"Interesting composition, but not for everyone. Test before you buy.",
	"I feel like a millionaire wearing this. Premium through and through.",
	"Subtle but with character. Great for the office and daily wear.",
	"Fell in love after the first spray. Warm, cosy, feminine.",
	"Niche character at an accessible price. Points for originality.",
	"First bottle nearly empty, time for another. Addictive!",
	"Longevity is superb, still noticeable after 12 hours. Top tier.",
	"Great for autumn and winter. The warm woody notes are genius.",
	"Bought it as a present and she is delighted. Success!",
	"I don't get the hype. Far too intense for me.",
	"Subtle and elegant. The perfect finish to a suit.",
	"This is luxury bottled.",
	"I wear it to work every day. Discreet yet noticeable.",
	"Beautiful evolution over the day, from freshness to warmth.",
}

var reviewRatings = []int{5, 5, 4, 4, 4, 5, 3, 5, 5, 4, 5, 3, 5, 4, 5, 4, 5, 5, 4, 5, 2, 4, 5, 4, 5}

// SeedReviews fills an empty review table with deterministic synthetic
// reviews over the first 100 perfumes, 1-4 per perfume. The (author, subject)
// uniqueness rule is respected, so a perfume can collect at most one review
// per randomly drawn user. Returns the number of reviews created.
func SeedReviews(db *gorm.DB, randSeed int64) (int, error) {
	var reviewCount int64
	if err := db.Model(&models.Review{}).Count(&reviewCount).Error; err != nil {
		return 0, err
	}
	if reviewCount > 0 {
		return 0, nil
	}

	var perfumes []models.Perfume
	if err := db.Order("id ASC").Limit(100).Find(&perfumes).Error; err != nil {
		return 0, err
	}
	var users []models.User
	if err := db.Order("id ASC").Find(&users).Error; err != nil {
		return 0, err
	}
	if len(perfumes) == 0 || len(users) == 0 {
		return 0, nil
	}

	rng := rand.New(rand.NewSource(randSeed))
	now := time.Now()
	created := 0

	for _, perfume := range perfumes {
		numReviews := 1 + rng.Intn(4)
		seen := make(map[uint]bool)

		for j := 0; j < numReviews; j++ {
			user := users[rng.Intn(len(users))]
			if seen[user.ID] {
				continue
			}
			seen[user.ID] = true

			review := models.Review{
				Rating:    reviewRatings[rng.Intn(len(reviewRatings))],
				Text:      reviewTexts[rng.Intn(len(reviewTexts))],
				UserID:    user.ID,
				PerfumeID: perfume.ID,
				CreatedAt: now.Add(-time.Duration(rng.Intn(30*24)) * time.Hour),
			}
			if err := db.Create(&review).Error; err != nil {
				return created, err
			}
			created++
		}
	}

	log.Printf("✅ Created %d synthetic reviews", created)
	return created, nil
}

package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/perphorum/perphorum-api/database"
	"github.com/perphorum/perphorum-api/seed"
	"github.com/spf13/cobra"
)

var (
	catalogFile    string
	minCatalogSize int64
	randSeed       int64
)

var rootCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the perfume reference catalog and demo content",
	Long: `seed populates the database used by the perphorum API: it reloads the
perfume catalog from a JSON reference file when the stored catalog is below the
minimum size, creates demo user accounts on an empty user table, and generates
deterministic synthetic reviews on an empty review table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		db, err := database.Connect()
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}

		f, err := os.Open(catalogFile)
		if err != nil {
			return err
		}
		defer f.Close()

		if _, err := seed.LoadCatalog(db, f, minCatalogSize); err != nil {
			return err
		}
		if _, err := seed.SeedUsers(db); err != nil {
			return err
		}
		if _, err := seed.SeedReviews(db, randSeed); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&catalogFile, "file", "data/perfumes.json", "path to the catalog reference JSON")
	rootCmd.Flags().Int64Var(&minCatalogSize, "min-catalog", seed.DefaultMinCatalogSize, "reload the catalog when fewer perfumes are stored")
	rootCmd.Flags().Int64Var(&randSeed, "rand-seed", 42, "seed for the synthetic review generator")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}

package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/franciscosanchezn/gin-bar-api/internal/seed"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// defaultSeedFile selects the catalog compiled into the binary
const defaultSeedFile = "default"

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load a YAML catalog into the database",
	Long:  "Creates every category, ingredient, cocktail, food and water pipe of a YAML catalog through the validated write path",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}

		catalog, err := readCatalog(seedFile)
		if err != nil {
			return err
		}

		result, err := seed.Load(cmd.Context(), seedServices(db), catalog)
		if err != nil {
			return err
		}
		cmd.Printf("Seeded %d categories, %d ingredients, %d cocktails, %d food and %d water pipes\n",
			result.Categories, result.Ingredients, result.Cocktails, result.Foods, result.WaterPipes)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", defaultSeedFile, "YAML catalog to load, or \"default\" for the built-in one")
	rootCmd.AddCommand(seedCmd)
}

func seedServices(db *gorm.DB) seed.Services {
	return seed.Services{
		Categories:  services.NewCategoryService(db),
		Ingredients: services.NewIngredientService(db),
		Cocktails:   services.NewCocktailService(db),
		Foods:       services.NewFoodService(db),
		WaterPipes:  services.NewWaterPipeService(db),
	}
}

func readCatalog(path string) (*seed.Catalog, error) {
	if path == "" || path == defaultSeedFile {
		return seed.Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return seed.Parse(f)
}

// seedIfEmpty loads path only into a database holding no catalog records
func seedIfEmpty(ctx context.Context, db *gorm.DB, path string) error {
	stats, err := services.NewStatsService(db).GetCatalogStats(ctx)
	if err != nil {
		return err
	}
	if !stats.IsEmpty() {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.WithField("seed_file", path).Info("Database is empty, seeding initial data")
	catalog, err := readCatalog(path)
	if err != nil {
		return err
	}
	_, err = seed.Load(ctx, seedServices(db), catalog)
	return err
}

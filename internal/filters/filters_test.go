package filters

import (
	"testing"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCheapCocktails(t *testing.T) {
	cocktails := []models.Cocktail{
		{Name: "CheapCocktail", Price: price("5.00")},
		{Name: "EdgeCocktail", Price: price("8.00")},
		{Name: "ExpensiveCocktail", Price: price("15.00")},
	}

	cheap := Cheap(cocktails, price("8.00"))

	require.Len(t, cheap, 2)
	assert.Equal(t, "CheapCocktail", cheap[0].Name)
	assert.Equal(t, "EdgeCocktail", cheap[1].Name)
}

func TestCheapFood(t *testing.T) {
	foods := []models.Food{
		{Name: "Bread", Price: price("2.50")},
		{Name: "Steak", Price: price("25.00")},
	}

	cheap := Cheap(foods, price("10.00"))

	require.Len(t, cheap, 1)
	assert.Equal(t, "Bread", cheap[0].Name)
	assert.Empty(t, Cheap([]models.Food{}, price("10.00")))
}

func TestGroupByBaseAlcohol(t *testing.T) {
	cocktails := []models.Cocktail{
		{Name: "Gimlet", BaseAlcohol: models.BaseAlcoholGin},
		{Name: "Mojito", BaseAlcohol: models.BaseAlcoholRum},
		{Name: "Negroni", BaseAlcohol: models.BaseAlcoholGin},
		{Name: "Virgin Colada", BaseAlcohol: models.BaseAlcoholNone},
	}

	groups := GroupByBaseAlcohol(cocktails)

	assert.Len(t, groups, 5)
	assert.NotContains(t, groups, models.BaseAlcoholNone)
	require.Len(t, groups[models.BaseAlcoholGin], 2)
	assert.Equal(t, "Gimlet", groups[models.BaseAlcoholGin][0].Name)
	assert.Equal(t, "Negroni", groups[models.BaseAlcoholGin][1].Name)

	for bucket, members := range groups {
		for _, cocktail := range members {
			assert.Equal(t, bucket, cocktail.BaseAlcohol, "%s landed in the %s bucket", cocktail.Name, bucket)
		}
	}
	assert.Empty(t, groups[models.BaseAlcoholTequila])
}

func TestGroupByTobacco(t *testing.T) {
	pipes := []models.WaterPipe{
		{Name: "Breeze", Tobacco: models.TobaccoLight},
		{Name: "Storm", Tobacco: models.TobaccoDark},
		{Name: "Herbal", Tobacco: models.TobaccoNone},
	}

	groups := GroupByTobacco(pipes)

	assert.Len(t, groups, 2)
	require.Len(t, groups[models.TobaccoLight], 1)
	assert.Equal(t, "Breeze", groups[models.TobaccoLight][0].Name)
	require.Len(t, groups[models.TobaccoDark], 1)
	assert.Equal(t, "Storm", groups[models.TobaccoDark][0].Name)
}

package services

import (
	"context"
	"testing"

	"github.com/franciscosanchezn/gin-bar-api/internal/database"
	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

type fixture struct {
	ctx         context.Context
	db          *gorm.DB
	categories  CategoryService
	ingredients IngredientService
	cocktails   CocktailService
	foods       FoodService
	pipes       WaterPipeService
}

func newFixture(t *testing.T) *fixture {
	db := setupTestDB(t)
	return &fixture{
		ctx:         context.Background(),
		db:          db,
		categories:  NewCategoryService(db),
		ingredients: NewIngredientService(db),
		cocktails:   NewCocktailService(db),
		foods:       NewFoodService(db),
		pipes:       NewWaterPipeService(db),
	}
}

func (f *fixture) category(t *testing.T, name string) models.Category {
	category, err := f.categories.CreateCategory(f.ctx, CategoryInput{Name: name})
	require.NoError(t, err)
	return category
}

func (f *fixture) ingredient(t *testing.T, name string) models.CocktailIngredient {
	ingredient, err := f.ingredients.CreateIngredient(f.ctx, IngredientInput{Name: name})
	require.NoError(t, err)
	return ingredient
}

func (f *fixture) cocktail(t *testing.T, name, price string, category models.Category, alcohol models.BaseAlcohol, ingredients ...models.CocktailIngredient) models.Cocktail {
	ids := make([]uint, 0, len(ingredients))
	for _, ingredient := range ingredients {
		ids = append(ids, ingredient.ID)
	}
	cocktail, err := f.cocktails.CreateCocktail(f.ctx, CocktailInput{
		Name:          name,
		Price:         RawPrice(price),
		Description:   "A drink",
		IngredientIDs: ids,
		CategoryID:    category.ID,
		BaseAlcohol:   string(alcohol),
	})
	require.NoError(t, err)
	return cocktail
}

func (f *fixture) food(t *testing.T, name, price string, category models.Category) models.Food {
	food, err := f.foods.CreateFood(f.ctx, FoodInput{Name: name, Price: RawPrice(price), Description: "Tasty", CategoryID: category.ID})
	require.NoError(t, err)
	return food
}

func (f *fixture) pipe(t *testing.T, name string, tobacco models.Tobacco, category models.Category) models.WaterPipe {
	pipe, err := f.pipes.CreateWaterPipe(f.ctx, WaterPipeInput{Name: name, Price: "20", Flavour: "Mint", Tobacco: string(tobacco), CategoryID: category.ID})
	require.NoError(t, err)
	return pipe
}

func requireFieldError(t *testing.T, err error, field string) validation.Errors {
	t.Helper()
	require.Error(t, err)
	fieldErrs, ok := validation.AsErrors(err)
	require.True(t, ok, "expected field errors, got %v", err)
	assert.Contains(t, fieldErrs, field)
	return fieldErrs
}

func TestNameRuleOnEveryEntity(t *testing.T) {
	f := newFixture(t)
	category := f.category(t, "Drinks")

	creators := map[string]func(name string) error{
		"category": func(name string) error {
			_, err := f.categories.CreateCategory(f.ctx, CategoryInput{Name: name})
			return err
		},
		"ingredient": func(name string) error {
			_, err := f.ingredients.CreateIngredient(f.ctx, IngredientInput{Name: name})
			return err
		},
		"cocktail": func(name string) error {
			_, err := f.cocktails.CreateCocktail(f.ctx, CocktailInput{Name: name, Price: "5", Description: "d", CategoryID: category.ID, BaseAlcohol: "Gin"})
			return err
		},
		"food": func(name string) error {
			_, err := f.foods.CreateFood(f.ctx, FoodInput{Name: name, Price: "5", Description: "d", CategoryID: category.ID})
			return err
		},
		"water pipe": func(name string) error {
			_, err := f.pipes.CreateWaterPipe(f.ctx, WaterPipeInput{Name: name, Price: "5", Flavour: "Mint", Tobacco: "Light", CategoryID: category.ID})
			return err
		},
	}

	for entity, create := range creators {
		t.Run(entity, func(t *testing.T) {
			err := create("  ab  ")
			fieldErrs := requireFieldError(t, err, "name")
			assert.Equal(t, validation.ErrNameTooShort.Error(), fieldErrs["name"])

			assert.NoError(t, create("  Abc "+entity+"  "))
		})
	}
}

func TestPriceRuleOnPricedEntities(t *testing.T) {
	f := newFixture(t)
	category := f.category(t, "Menu")

	creators := map[string]func(price RawPrice) error{
		"cocktail": func(price RawPrice) error {
			_, err := f.cocktails.CreateCocktail(f.ctx, CocktailInput{Name: "Drink " + string(price), Price: price, Description: "d", CategoryID: category.ID, BaseAlcohol: "Rum"})
			return err
		},
		"food": func(price RawPrice) error {
			_, err := f.foods.CreateFood(f.ctx, FoodInput{Name: "Dish " + string(price), Price: price, Description: "d", CategoryID: category.ID})
			return err
		},
		"water pipe": func(price RawPrice) error {
			_, err := f.pipes.CreateWaterPipe(f.ctx, WaterPipeInput{Name: "Pipe " + string(price), Price: price, Flavour: "Mint", Tobacco: "Dark", CategoryID: category.ID})
			return err
		},
	}

	for entity, create := range creators {
		t.Run(entity, func(t *testing.T) {
			for _, rejected := range []RawPrice{"", "0", "-3.50", "free"} {
				fieldErrs := requireFieldError(t, create(rejected), "price")
				assert.Equal(t, validation.ErrPriceNotPositive.Error(), fieldErrs["price"])
			}
			for _, oversized := range []RawPrice{"100000000", "12345678901234567890.12"} {
				fieldErrs := requireFieldError(t, create(oversized), "price")
				assert.Equal(t, validation.ErrPriceTooLarge.Error(), fieldErrs["price"])
			}
			assert.NoError(t, create("0.50"))
		})
	}
}

func TestLargestPriceReadsBackUnchanged(t *testing.T) {
	f := newFixture(t)
	category := f.category(t, "Reserve")

	created := f.cocktail(t, "Vintage Sazerac", "99999999.99", category, models.BaseAlcoholWhisky)
	loaded, err := f.cocktails.GetCocktailByID(f.ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, loaded.Price.Equal(decimal.RequireFromString("99999999.99")), "price %s", loaded.Price)

	_, err = f.cocktails.CreateCocktail(f.ctx, CocktailInput{
		Name:        "Overpriced Sour",
		Price:       "12345678901234567890.12",
		Description: "d",
		CategoryID:  category.ID,
		BaseAlcohol: "Gin",
	})
	requireFieldError(t, err, "price")

	all, err := f.cocktails.GetAllCocktails(f.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestCategoryRoundTripStoresTrimmedName(t *testing.T) {
	f := newFixture(t)

	created, err := f.categories.CreateCategory(f.ctx, CategoryInput{Name: "   Cocktails   "})
	require.NoError(t, err)
	assert.Equal(t, "Cocktails", created.Name)

	loaded, err := f.categories.GetCategoryByID(f.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cocktails", loaded.Name)
}

func TestCategoryUniqueName(t *testing.T) {
	f := newFixture(t)
	f.category(t, "Classics")

	_, err := f.categories.CreateCategory(f.ctx, CategoryInput{Name: " Classics "})
	fieldErrs := requireFieldError(t, err, "name")
	assert.Equal(t, ErrNameTaken.Error(), fieldErrs["name"])

	other := f.category(t, "Tiki")
	_, err = f.categories.UpdateCategory(f.ctx, other.ID, CategoryInput{Name: "Classics"})
	requireFieldError(t, err, "name")

	// keeping its own name is not a conflict
	updated, err := f.categories.UpdateCategory(f.ctx, other.ID, CategoryInput{Name: "Tiki "})
	require.NoError(t, err)
	assert.Equal(t, "Tiki", updated.Name)
}

func TestCategoryNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.categories.GetCategoryByID(f.ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.categories.UpdateCategory(f.ctx, 999, CategoryInput{Name: "Whatever"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.categories.DeleteCategory(f.ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllCategoriesOrderedByName(t *testing.T) {
	f := newFixture(t)
	f.category(t, "Wine")
	f.category(t, "Beer")
	f.category(t, "Gin Corner")

	categories, err := f.categories.GetAllCategories(f.ctx)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, []string{"Beer", "Gin Corner", "Wine"}, []string{categories[0].Name, categories[1].Name, categories[2].Name})
}

func TestDeleteCategoryCascades(t *testing.T) {
	f := newFixture(t)
	doomed := f.category(t, "Doomed")
	kept := f.category(t, "Kept")
	lime := f.ingredient(t, "Lime")

	f.cocktail(t, "Gimlet", "7", doomed, models.BaseAlcoholGin, lime)
	survivor := f.cocktail(t, "Daiquiri", "7", kept, models.BaseAlcoholRum, lime)
	f.food(t, "Olives", "3", doomed)
	f.pipe(t, "Cloud", models.TobaccoLight, doomed)
	f.pipe(t, "Storm", models.TobaccoDark, kept)

	result, err := f.categories.DeleteCategory(f.ctx, doomed.ID)
	require.NoError(t, err)
	assert.Equal(t, CascadeResult{Cocktails: 1, Foods: 1, WaterPipes: 1}, result)

	_, err = f.categories.GetCategoryByID(f.ctx, doomed.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	cocktails, err := f.cocktails.GetAllCocktails(f.ctx)
	require.NoError(t, err)
	require.Len(t, cocktails, 1)
	assert.Equal(t, survivor.ID, cocktails[0].ID)

	foods, err := f.foods.GetAllFoods(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, foods)

	pipes, err := f.pipes.GetAllWaterPipes(f.ctx)
	require.NoError(t, err)
	require.Len(t, pipes, 1)
	assert.Equal(t, "Storm", pipes[0].Name)

	var links int64
	require.NoError(t, f.db.Table(models.IngredientLinkTable).Count(&links).Error)
	assert.Equal(t, int64(1), links, "only the surviving cocktail keeps its ingredient link")

	// ingredients are not owned by categories
	_, err = f.ingredients.GetIngredientByID(f.ctx, lime.ID)
	assert.NoError(t, err)
}

func TestCocktailRoundTrip(t *testing.T) {
	f := newFixture(t)
	category := f.category(t, "Classics")
	sugar := f.ingredient(t, "Sugar")
	gin := f.ingredient(t, "Gin")

	created, err := f.cocktails.CreateCocktail(f.ctx, CocktailInput{
		Name:          "  Gin Fizz ",
		Price:         "9.5",
		Description:   "  Gin, lemon and soda.  ",
		IngredientIDs: []uint{sugar.ID, gin.ID, gin.ID},
		CategoryID:    category.ID,
		BaseAlcohol:   "Gin",
		Image:         "images/gin-fizz.png",
	})
	require.NoError(t, err)

	loaded, err := f.cocktails.GetCocktailByID(f.ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gin Fizz", loaded.Name)
	assert.True(t, loaded.Price.Equal(decimal.RequireFromString("9.50")), "price %s", loaded.Price)
	assert.Equal(t, "Gin, lemon and soda.", loaded.Description)
	assert.Equal(t, models.BaseAlcoholGin, loaded.BaseAlcohol)
	require.NotNil(t, loaded.Image)
	assert.Equal(t, "images/gin-fizz.png", *loaded.Image)
	require.NotNil(t, loaded.Category)
	assert.Equal(t, "Classics", loaded.Category.Name)
	require.Len(t, loaded.Ingredients, 2)
	assert.Equal(t, "Gin", loaded.Ingredients[0].Name)
	assert.Equal(t, "Sugar", loaded.Ingredients[1].Name)
}

func TestCocktailReferencesMustExist(t *testing.T) {
	f := newFixture(t)
	category := f.category(t, "Classics")

	_, err := f.cocktails.CreateCocktail(f.ctx, CocktailInput{Name: "Ghost", Price: "5", Description: "d", CategoryID: 42, BaseAlcohol: "Gin"})
	fieldErrs := requireFieldError(t, err, "category_id")
	assert.Equal(t, ErrInvalidChoice.Error(), fieldErrs["category_id"])

	_, err = f.cocktails.CreateCocktail(f.ctx, CocktailInput{Name: "Ghost", Price: "5", Description: "d", CategoryID: category.ID, BaseAlcohol: "Gin", IngredientIDs: []uint{77}})
	requireFieldError(t, err, "ingredient_ids")

	_, err = f.cocktails.CreateCocktail(f.ctx, CocktailInput{Name: "Ghost", Price: "5", Description: "d", BaseAlcohol: "Absinthe"})
	fieldErrs = requireFieldError(t, err, "base_alcohol")
	assert.Contains(t, fieldErrs, "category_id")

	cocktails, err := f.cocktails.GetAllCocktails(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, cocktails, "nothing is persisted when validation fails")
}

func TestCocktailUniqueName(t *testing.T) {
	f := newFixture(t)
	category := f.category(t, "Classics")
	f.cocktail(t, "Negroni", "9", category, models.BaseAlcoholGin)

	_, err := f.cocktails.CreateCocktail(f.ctx, CocktailInput{Name: "Negroni", Price: "9", Description: "d", CategoryID: category.ID, BaseAlcohol: "Gin"})
	requireFieldError(t, err, "name")
}

func TestUpdateCocktailReplacesIngredients(t *testing.T) {
	f := newFixture(t)
	category := f.category(t, "Classics")
	rum := f.ingredient(t, "Rum")
	mint := f.ingredient(t, "Mint")
	lime := f.ingredient(t, "Lime")
	cocktail := f.cocktail(t, "Mojito", "8", category, models.BaseAlcoholRum, rum, mint)

	updated, err := f.cocktails.UpdateCocktail(f.ctx, cocktail.ID, CocktailInput{
		Name:          "Mojito Royale",
		Price:         "10.00",
		Description:   "With champagne",
		IngredientIDs: []uint{lime.ID},
		CategoryID:    category.ID,
		BaseAlcohol:   "Rum",
	})
	require.NoError(t, err)
	assert.Equal(t, "Mojito Royale", updated.Name)
	assert.Equal(t, cocktail.CreatedAt.Unix(), updated.CreatedAt.Unix())
	require.Len(t, updated.Ingredients, 1)
	assert.Equal(t, "Lime", updated.Ingredients[0].Name)

	cleared, err := f.cocktails.UpdateCocktail(f.ctx, cocktail.ID, CocktailInput{Name: "Mojito Royale", Price: "10", Description: "d", CategoryID: category.ID, BaseAlcohol: "Rum"})
	require.NoError(t, err)
	assert.Empty(t, cleared.Ingredients)

	_, err = f.cocktails.UpdateCocktail(f.ctx, 999, CocktailInput{Name: "Nope", Price: "1", Description: "d", CategoryID: category.ID, BaseAlcohol: "Rum"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetCheapCocktails(t *testing.T) {
	f := newFixture(t)
	category := f.category(t, "Cat")
	gin := f.ingredient(t, "Gin")
	f.cocktail(t, "ExpensiveCocktail", "15.00", category, models.BaseAlcoholVodka, gin)
	f.cocktail(t, "CheapCocktail", "5.00", category, models.BaseAlcoholGin, gin)
	f.cocktail(t, "BorderCocktail", "8.00", category, models.BaseAlcoholRum)

	cheap, err := f.cocktails.GetCheapCocktails(f.ctx, decimal.RequireFromString("8.00"))
	require.NoError(t, err)
	require.Len(t, cheap, 2)
	assert.Equal(t, "BorderCocktail", cheap[0].Name)
	assert.Equal(t, "CheapCocktail", cheap[1].Name)
	require.Len(t, cheap[1].Ingredients, 1)
}

func TestGetCheapFoods(t *testing.T) {
	f := newFixture(t)
	category := f.category(t, "FoodCat")
	f.food(t, "Bread", "2.50", category)
	f.food(t, "Steak", "25.00", category)

	cheap, err := f.foods.GetCheapFoods(f.ctx, decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	require.Len(t, cheap, 1)
	assert.Equal(t, "Bread", cheap[0].Name)
	assert.True(t, cheap[0].Price.Equal(decimal.RequireFromString("2.50")))
}

func TestDeleteIngredientUnlinksCocktails(t *testing.T) {
	f := newFixture(t)
	category := f.category(t, "Classics")
	mint := f.ingredient(t, "Mint")
	rum := f.ingredient(t, "Rum")
	cocktail := f.cocktail(t, "Mojito", "8", category, models.BaseAlcoholRum, mint, rum)

	require.NoError(t, f.ingredients.DeleteIngredient(f.ctx, mint.ID))

	loaded, err := f.cocktails.GetCocktailByID(f.ctx, cocktail.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Ingredients, 1)
	assert.Equal(t, "Rum", loaded.Ingredients[0].Name)

	assert.ErrorIs(t, f.ingredients.DeleteIngredient(f.ctx, mint.ID), ErrNotFound)
}

func TestDeleteCocktail(t *testing.T) {
	f := newFixture(t)
	category := f.category(t, "Classics")
	mint := f.ingredient(t, "Mint")
	cocktail := f.cocktail(t, "Mojito", "8", category, models.BaseAlcoholRum, mint)

	require.NoError(t, f.cocktails.DeleteCocktail(f.ctx, cocktail.ID))
	assert.ErrorIs(t, f.cocktails.DeleteCocktail(f.ctx, cocktail.ID), ErrNotFound)

	var links int64
	require.NoError(t, f.db.Table(models.IngredientLinkTable).Count(&links).Error)
	assert.Zero(t, links)
}

func TestFoodAndWaterPipeLifecycle(t *testing.T) {
	f := newFixture(t)
	snacks := f.category(t, "Snacks")
	shisha := f.category(t, "Shisha")

	food := f.food(t, "  Nachos  ", "8.90", snacks)
	assert.Equal(t, "Nachos", food.Name)
	require.NotNil(t, food.Category)
	assert.Equal(t, "Snacks", food.Category.Name)

	food, err := f.foods.UpdateFood(f.ctx, food.ID, FoodInput{Name: "Loaded Nachos", Price: "9.90", Description: "More cheese", CategoryID: snacks.ID})
	require.NoError(t, err)
	assert.Equal(t, "Loaded Nachos", food.Name)

	_, err = f.foods.CreateFood(f.ctx, FoodInput{Name: "No description", Price: "1", CategoryID: snacks.ID})
	requireFieldError(t, err, "description")

	require.NoError(t, f.foods.DeleteFood(f.ctx, food.ID))
	assert.ErrorIs(t, f.foods.DeleteFood(f.ctx, food.ID), ErrNotFound)

	pipe := f.pipe(t, "Minty", models.TobaccoLight, shisha)
	_, err = f.pipes.CreateWaterPipe(f.ctx, WaterPipeInput{Name: "Bad", Price: "10", Flavour: "", Tobacco: "Medium", CategoryID: shisha.ID})
	fieldErrs := requireFieldError(t, err, "flavour")
	assert.Contains(t, fieldErrs, "tobacco")

	pipe, err = f.pipes.UpdateWaterPipe(f.ctx, pipe.ID, WaterPipeInput{Name: "Minty", Price: "19", Flavour: "Mint", Tobacco: "Dark", CategoryID: shisha.ID})
	require.NoError(t, err)
	assert.Equal(t, models.TobaccoDark, pipe.Tobacco)

	require.NoError(t, f.pipes.DeleteWaterPipe(f.ctx, pipe.ID))
	_, err = f.pipes.GetWaterPipeByID(f.ctx, pipe.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCatalogStats(t *testing.T) {
	f := newFixture(t)
	stats := NewStatsService(f.db)

	empty, err := stats.GetCatalogStats(f.ctx)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	category := f.category(t, "Bar")
	f.food(t, "Fries", "4", category)
	f.ingredient(t, "Salt")

	counts, err := stats.GetCatalogStats(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, CatalogStats{Categories: 1, Ingredients: 1, Foods: 1}, counts)
}

func TestUserService(t *testing.T) {
	db := setupTestDB(t)
	users := NewUserService(db)
	ctx := context.Background()

	user := &models.User{Email: " Admin@Bar.Local ", Name: "Admin", Role: models.RoleAdmin}
	require.NoError(t, user.SetPassword("correct horse"))
	require.NoError(t, users.CreateUser(ctx, user))
	assert.Equal(t, "admin@bar.local", user.Email)

	duplicate := &models.User{Email: "admin@bar.local"}
	assert.ErrorIs(t, users.CreateUser(ctx, duplicate), ErrUserAlreadyExists)

	authenticated, err := users.Authenticate(ctx, "ADMIN@bar.local", "correct horse")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authenticated.ID)

	_, err = users.Authenticate(ctx, "admin@bar.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.Authenticate(ctx, "nobody@bar.local", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.GetUserByID(ctx, 999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientService(t *testing.T) {
	db := setupTestDB(t)
	clients := NewClientService(db)
	ctx := context.Background()

	require.NoError(t, clients.CreateClient(ctx, &models.OAuthClient{ID: "c1", Secret: "hash", Name: "POS", UserID: 1}))
	require.NoError(t, clients.CreateClient(ctx, &models.OAuthClient{ID: "c2", Secret: "hash", Name: "Other", UserID: 2}))

	owned, err := clients.GetClientsByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, "c1", owned[0].ID)

	assert.ErrorIs(t, clients.DeleteClient(ctx, "c2", 1), ErrClientNotFound)
	require.NoError(t, clients.DeleteClient(ctx, "c1", 1))

	_, err = clients.GetClientByID(ctx, "c1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRegisterClient(t *testing.T) {
	db := setupTestDB(t)
	clients := NewClientService(db)
	ctx := context.Background()

	_, _, err := clients.RegisterClient(ctx, ClientRegistration{Name: "orphan"})
	assert.Error(t, err)

	client, secret, err := clients.RegisterClient(ctx, ClientRegistration{Name: "POS", Scopes: "read", UserID: 4})
	require.NoError(t, err)
	assert.NotEmpty(t, client.ID)
	assert.NotEqual(t, secret, client.Secret)
	assert.Equal(t, "client_credentials", client.GrantTypes)

	stored, err := clients.GetClientByID(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, stored.VerifyPassword(secret))
	assert.Equal(t, uint(4), stored.UserID)
}

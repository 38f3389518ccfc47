package models

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBaseAlcohol(t *testing.T) {
	got, err := ParseBaseAlcohol(" Gin ")
	require.NoError(t, err)
	assert.Equal(t, BaseAlcoholGin, got)

	_, err = ParseBaseAlcohol("gin")
	assert.Error(t, err, "matching is case sensitive")

	_, err = ParseBaseAlcohol("Absinthe")
	assert.Error(t, err)
}

func TestParseTobacco(t *testing.T) {
	got, err := ParseTobacco("Dark")
	require.NoError(t, err)
	assert.Equal(t, TobaccoDark, got)

	_, err = ParseTobacco("")
	assert.Error(t, err)
}

func TestStringers(t *testing.T) {
	cocktail := Cocktail{Name: "CheapCocktail", Price: decimal.RequireFromString("5"), BaseAlcohol: BaseAlcoholGin}
	assert.Equal(t, "CheapCocktail - Price: 5.00$ - Base alcohol: Gin", cocktail.String())

	food := Food{Name: "Bread", Price: decimal.RequireFromString("2.5")}
	assert.Equal(t, "Bread - Price: 2.50$", food.String())

	pipe := WaterPipe{Name: "Classic", Price: decimal.RequireFromString("20"), Flavour: "Mint", Tobacco: TobaccoLight}
	assert.Equal(t, "Classic - Price: 20.00$ - Flavour: Mint - Tobacco: Light", pipe.String())
}

func TestUserPassword(t *testing.T) {
	user := &User{Email: "admin@bar.local"}
	require.NoError(t, user.SetPassword("s3cret-pass"))

	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)
	assert.True(t, user.CheckPassword("s3cret-pass"))
	assert.False(t, user.CheckPassword("wrong"))
	assert.False(t, (&User{}).CheckPassword(""))
}

func TestOAuthClientInfo(t *testing.T) {
	client := &OAuthClient{ID: "cli", UserID: 7}
	assert.Equal(t, "7", client.GetUserID())
	assert.False(t, client.IsPublic())
	assert.Equal(t, "", (&OAuthClient{}).GetUserID())
}

func TestOAuthTokenExpired(t *testing.T) {
	now := time.Now()
	assert.True(t, OAuthToken{ExpiresAt: now.Add(-time.Second)}.Expired(now))
	assert.True(t, OAuthToken{ExpiresAt: now}.Expired(now))
	assert.False(t, OAuthToken{ExpiresAt: now.Add(time.Hour)}.Expired(now))
}

func TestErrorConstructors(t *testing.T) {
	notFound := NewNotFoundError(ErrFoodNotFound, "Food")
	assert.Equal(t, ErrFoodNotFound, notFound.Code)
	assert.Equal(t, "Food not found", notFound.Message)
	assert.Nil(t, notFound.Details)

	invalid := NewValidationError(map[string]interface{}{"price": "price must be positive"})
	assert.Equal(t, ErrValidationFailed, invalid.Code)
	assert.Equal(t, "price must be positive", invalid.Details["price"])

	withDetails := NewAPIError(ErrBadRequest, "bad", map[string]interface{}{"error": "eof"})
	assert.Equal(t, "eof", withDetails.Details["error"])

	oauthErr := NewOAuth2Error(ErrInvalidToken, "expired")
	assert.Equal(t, "invalid_token", oauthErr.Error)
	assert.Equal(t, "expired", oauthErr.ErrorDescription)
}

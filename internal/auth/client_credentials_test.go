package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenRouter(o *OAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/oauth/token", o.HandleToken)
	return router
}

func postToken(router *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/oauth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestClientCredentialsFlow(t *testing.T) {
	db := setupTestDB(t)
	router := tokenRouter(NewOAuthService(db, testSecret))
	_, client := createClient(t, db, models.RoleAdmin, "test_secret")

	w := postToken(router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {client.ID},
		"client_secret": {"test_secret"},
		"scope":         {"read"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "Bearer", response["token_type"])

	accessToken, ok := response["access_token"].(string)
	require.True(t, ok)
	assert.Equal(t, 2, strings.Count(accessToken, "."))
}

func TestClientCredentialsInvalidSecret(t *testing.T) {
	db := setupTestDB(t)
	router := tokenRouter(NewOAuthService(db, testSecret))
	_, client := createClient(t, db, models.RoleAdmin, "correct_secret")

	w := postToken(router, url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {client.ID},
		"client_secret": {"wrong_secret"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.NotContains(t, w.Body.String(), "access_token")
}

func TestClientCredentialsRejectsOtherGrants(t *testing.T) {
	db := setupTestDB(t)
	router := tokenRouter(NewOAuthService(db, testSecret))
	_, client := createClient(t, db, models.RoleAdmin, "secret")

	w := postToken(router, url.Values{
		"grant_type":    {"password"},
		"client_id":     {client.ID},
		"client_secret": {"secret"},
		"username":      {"admin@bar.test"},
		"password":      {"x"},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response models.OAuth2Error
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, models.ErrUnsupportedGrantType, response.Error)
}

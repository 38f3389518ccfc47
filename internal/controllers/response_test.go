package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/franciscosanchezn/gin-bar-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "field errors", err: validation.Errors{"name": "name too short"}, status: http.StatusBadRequest, code: models.ErrValidationFailed},
		{name: "not found", err: fmt.Errorf("%w: gone", services.ErrNotFound), status: http.StatusNotFound, code: models.ErrFoodNotFound},
		{name: "conflict", err: services.ErrConflict, status: http.StatusConflict, code: models.ErrConflict},
		{name: "unexpected", err: errors.New("disk on fire"), status: http.StatusInternalServerError, code: models.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/adm/food/1", nil)

			respondError(ctx, tt.err, models.ErrFoodNotFound, foodEntity)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), tt.code)
		})
	}
}

func TestParseIDTreatsMalformedIDsAsMissing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, raw := range []string{"abc", "0", "-1", "99999999999"} {
		w := httptest.NewRecorder()
		ctx, _ := gin.CreateTestContext(w)
		ctx.Params = gin.Params{{Key: "id", Value: raw}}

		_, ok := parseID(ctx, models.ErrCocktailNotFound, cocktailEntity)
		assert.False(t, ok, raw)
		assert.Equal(t, http.StatusNotFound, w.Code, raw)
	}

	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Params = gin.Params{{Key: "id", Value: "42"}}
	id, ok := parseID(ctx, models.ErrCocktailNotFound, cocktailEntity)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestSafeNext(t *testing.T) {
	assert.Equal(t, "/adm/cocktails?page=2", safeNext("/adm/cocktails?page=2"))
	assert.Equal(t, defaultNext, safeNext(""))
	assert.Equal(t, defaultNext, safeNext("https://evil.example"))
	assert.Equal(t, defaultNext, safeNext("//evil.example"))
	assert.Equal(t, defaultNext, safeNext(`/\evil.example`))
	assert.Equal(t, defaultNext, safeNext("/\t/evil.example/"))
	assert.Equal(t, defaultNext, safeNext("/\n/evil.example/"))
	assert.Equal(t, defaultNext, safeNext("/\r\n/evil.example/"))
	assert.Equal(t, defaultNext, safeNext("/adm\x00"))
	assert.Equal(t, defaultNext, safeNext("adm/cocktails"))
}

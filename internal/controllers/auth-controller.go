package controllers

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"unicode"

	"github.com/franciscosanchezn/gin-bar-api/internal/auth"
	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	log "github.com/sirupsen/logrus"
)

// defaultNext is where a login without a usable next parameter lands
const defaultNext = "/adm"

type AuthController struct {
	userService services.UserService
	sessions    *auth.Sessions
}

func NewAuthController(userService services.UserService, sessions *auth.Sessions) *AuthController {
	return &AuthController{
		userService: userService,
		sessions:    sessions,
	}
}

type loginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
	Next     string `json:"next" form:"next"`
}

// LoginForm godoc
// @Summary Login form
// @Description Describes the login form and echoes the page to return to
// @Tags auth
// @Produce json
// @Param next query string false "Page to return to after login"
// @Success 200 {object} map[string]interface{}
// @Router /login [get]
func (ac *AuthController) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"action": "/login",
		"fields": []string{"email", "password", "next"},
		"next":   safeNext(c.Query("next")),
	})
}

// Login godoc
// @Summary Log in
// @Description Opens an administrator session. Form posts are redirected to next, JSON callers get the user.
// @Tags auth
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} map[string]interface{}
// @Success 303 "Redirect to next"
// @Failure 400 {object} models.APIError
// @Failure 401 {object} models.APIError
// @Router /login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Email and password are required",
			map[string]interface{}{"error": err.Error()}))
		return
	}
	if req.Next == "" {
		req.Next = c.Query("next")
	}

	user, err := ac.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if !errors.Is(err, services.ErrInvalidCredentials) {
			log.WithError(err).Error("Login lookup failed")
		}
		c.JSON(http.StatusUnauthorized, models.NewAPIError(models.ErrUnauthorized, "Invalid email or password"))
		return
	}

	if err := ac.sessions.Establish(c.Request.Context(), user); err != nil {
		log.WithError(err).WithField("user_id", user.ID).Error("Failed to establish session")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Login failed"))
		return
	}

	log.WithFields(log.Fields{"user_id": user.ID, "role": user.Role}).Info("User logged in")

	next := safeNext(req.Next)
	if c.ContentType() != binding.MIMEJSON {
		c.Redirect(http.StatusSeeOther, next)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "next": next})
}

// Logout godoc
// @Summary Log out
// @Tags auth
// @Success 204 "Session closed"
// @Router /logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	if err := ac.sessions.Destroy(c.Request.Context()); err != nil {
		log.WithError(err).Error("Failed to destroy session")
		c.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Logout failed"))
		return
	}
	c.Status(http.StatusNoContent)
}

// safeNext only allows local absolute paths, so the login cannot bounce a user to another host.
// Browsers drop tabs and newlines from a Location and read a backslash as a slash,
// so any of those makes the target unusable.
func safeNext(next string) string {
	next = strings.TrimSpace(next)
	if strings.ContainsFunc(next, unicode.IsControl) || strings.Contains(next, `\`) {
		return defaultNext
	}
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return defaultNext
	}
	target, err := url.Parse(next)
	if err != nil || target.Scheme != "" || target.Host != "" || target.User != nil {
		return defaultNext
	}
	return next
}

package middleware

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-bar-api/internal/auth"
	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	authTypeSession = "session"
	authTypeOAuth2  = "oauth2"
)

// AdminAuth identifies the caller of the administration surface. Requests
// carrying a Bearer token are validated as OAuth2 JWT access tokens and get a
// 401 when the token is bad. Everything else must hold a signed-in session;
// without one the caller is redirected to the login page with the original
// request URI as the next parameter.
func AdminAuth(sessions *auth.Sessions, jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			authenticateBearer(c, authHeader, jwtSecret)
			return
		}

		user, ok := sessions.Current(c.Request.Context())
		if !ok {
			log.WithFields(logrus.Fields{
				"path":   c.Request.URL.Path,
				"method": c.Request.Method,
			}).Debug("Unauthenticated admin request, redirecting to login")
			c.Redirect(http.StatusFound, LoginRedirect(c.Request.URL.RequestURI()))
			c.Abort()
			return
		}

		c.Set("userID", user.ID)
		c.Set("userRole", user.Role)
		c.Set("auth_type", authTypeSession)
		c.Next()
	}
}

// LoginRedirect builds the login URL that returns to next after signing in
func LoginRedirect(next string) string {
	return "/login?next=" + url.QueryEscape(next)
}

// authenticateBearer validates a Bearer JWT and stores its claims in the context
func authenticateBearer(c *gin.Context, authHeader string, jwtSecret []byte) {
	// RFC 6750: Validate Bearer scheme format
	if !strings.HasPrefix(authHeader, "Bearer ") {
		respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidRequest,
			"Authorization header must use Bearer scheme. Format: 'Bearer <token>'")
		return
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidToken, "Bearer token is empty")
		return
	}

	claims, err := parseAndValidateJWT(tokenString, jwtSecret)
	if err != nil {
		respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidToken, err.Error())
		return
	}

	if err := extractAndSetClaims(c, claims); err != nil {
		respondWithOAuth2Error(c, http.StatusUnauthorized, models.ErrInvalidToken, err.Error())
		return
	}

	c.Next()
}

// respondWithOAuth2Error responds with RFC 6750 compliant error format
func respondWithOAuth2Error(c *gin.Context, status int, errorCode, description string) {
	c.Header("WWW-Authenticate", `Bearer error="`+errorCode+`"`)
	c.AbortWithStatusJSON(status, models.NewOAuth2Error(errorCode, description))
}

// parseJWTToken checks the HMAC signature of a token issued by /oauth/token
func parseJWTToken(tokenString string, jwtSecret []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// only HMAC tokens are issued, any other alg header is rejected
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("token parsing failed: %w", err)
	}
	if !token.Valid {
		return nil, fmt.Errorf("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims format")
	}
	return claims, nil
}

// parseAndValidateJWT parses the token and checks its time claims against now
func parseAndValidateJWT(tokenString string, jwtSecret []byte) (jwt.MapClaims, error) {
	claims, err := parseJWTToken(tokenString, jwtSecret)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp != nil && exp.Before(now) {
		return nil, fmt.Errorf("token has expired")
	}

	nbf, err := claims.GetNotBefore()
	if err != nil {
		return nil, fmt.Errorf("invalid nbf claim: %w", err)
	}
	if nbf != nil && nbf.After(now) {
		return nil, fmt.Errorf("token not yet valid")
	}

	iat, err := claims.GetIssuedAt()
	if err != nil {
		return nil, fmt.Errorf("invalid iat claim: %w", err)
	}
	if iat != nil && iat.After(now) {
		return nil, fmt.Errorf("token issued in the future")
	}

	return claims, nil
}

// extractAndSetClaims copies the owner, client, role and scopes of a bearer
// token into the gin context, the same keys a session request gets.
func extractAndSetClaims(c *gin.Context, claims jwt.MapClaims) error {
	userID, err := extractUserID(claims)
	if err != nil {
		return err
	}
	if userID == 0 {
		return fmt.Errorf("uid claim cannot be zero")
	}
	c.Set("userID", userID)

	if aud, ok := claims["aud"].(string); ok && aud != "" {
		c.Set("clientID", aud)
	} else if audArray, ok := claims["aud"].([]interface{}); ok && len(audArray) > 0 {
		if firstAud, ok := audArray[0].(string); ok && firstAud != "" {
			c.Set("clientID", firstAud)
		}
	}

	// tokens without a role are refused rather than given a default one
	role, err := extractRole(claims)
	if err != nil {
		return err
	}
	c.Set("userRole", role)

	if scope, ok := claims["scope"].(string); ok && scope != "" {
		c.Set("scopes", scope)
	}

	c.Set("auth_type", authTypeOAuth2)
	return nil
}

// extractUserID reads the uid claim, written as a numeric string by the
// token generator. A JSON number is accepted as well.
func extractUserID(claims jwt.MapClaims) (uint, error) {
	switch uid := claims["uid"].(type) {
	case string:
		if uid == "" {
			break
		}
		parsedID, err := strconv.ParseUint(uid, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid uid claim %q", uid)
		}
		return uint(parsedID), nil
	case float64:
		if uid <= 0 {
			return 0, fmt.Errorf("invalid uid claim %v", uid)
		}
		return uint(uid), nil
	}
	return 0, fmt.Errorf("token has no uid claim")
}

// extractRole reads the role claim, which must be one of the known roles
func extractRole(claims jwt.MapClaims) (string, error) {
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", fmt.Errorf("token has no role claim")
	}
	if role != models.RoleAdmin && role != models.RoleUser {
		return "", fmt.Errorf("unknown role %q", role)
	}
	return role, nil
}

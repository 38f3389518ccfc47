package auth

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/go-oauth2/oauth2/v4"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

var errNoOwner = errors.New("client has no owner to issue a token for")

// AdminTokenGenerator signs the access tokens handed to admin API clients.
// A token speaks for the owner of the client: uid is the owner's id and role
// is the owner's role at the moment of issue, which AdminAuth checks later.
type AdminTokenGenerator struct {
	key    []byte
	method jwt.SigningMethod
	db     *gorm.DB
}

func NewAdminTokenGenerator(key []byte, method jwt.SigningMethod, db *gorm.DB) *AdminTokenGenerator {
	return &AdminTokenGenerator{key: key, method: method, db: db}
}

// Token implements oauth2.AccessGenerate. Client credentials tokens never
// carry a refresh token, so the refresh value is always empty.
func (g *AdminTokenGenerator) Token(ctx context.Context, data *oauth2.GenerateBasic, _ bool) (string, string, error) {
	owner := data.UserID
	if owner == "" {
		owner = data.Client.GetUserID()
	}
	if owner == "" {
		return "", "", fmt.Errorf("client %s: %w", data.Client.GetID(), errNoOwner)
	}

	// Looked up on every issue so a demoted owner stops getting admin tokens
	role, err := g.ownerRole(ctx, owner)
	if err != nil {
		return "", "", err
	}

	issuedAt := data.TokenInfo.GetAccessCreateAt()
	claims := jwt.MapClaims{
		"aud":  data.Client.GetID(),
		"iat":  issuedAt.Unix(),
		"exp":  issuedAt.Add(data.TokenInfo.GetAccessExpiresIn()).Unix(),
		"uid":  owner,
		"role": role,
	}
	if scope := data.TokenInfo.GetScope(); scope != "" {
		claims["scope"] = scope
	}

	access, err := jwt.NewWithClaims(g.method, claims).SignedString(g.key)
	if err != nil {
		return "", "", fmt.Errorf("sign access token: %w", err)
	}
	return access, "", nil
}

// ownerRole reads the role of the user owning a client, defaulting to RoleUser
func (g *AdminTokenGenerator) ownerRole(ctx context.Context, owner string) (string, error) {
	id, err := strconv.ParseUint(owner, 10, 32)
	if err != nil {
		return "", fmt.Errorf("invalid client owner %q: %w", owner, err)
	}

	var user models.User
	err = g.db.WithContext(ctx).Select("id", "role").Take(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", fmt.Errorf("client owner %d no longer exists", id)
	}
	if err != nil {
		return "", fmt.Errorf("look up client owner: %w", err)
	}

	if user.Role == "" {
		return models.RoleUser, nil
	}
	return user.Role, nil
}

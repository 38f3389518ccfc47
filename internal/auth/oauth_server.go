package auth

import (
	"time"

	"github.com/go-oauth2/oauth2/v4"
	"github.com/go-oauth2/oauth2/v4/manage"
	"github.com/go-oauth2/oauth2/v4/server"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AccessTokenTTL is how long a client credentials token stays valid
const AccessTokenTTL = 2 * time.Hour

type OAuthService struct {
	server *server.Server
	db     *gorm.DB
}

// NewOAuthService wires the go-oauth2 server to the gorm stores. Only the
// client credentials grant is enabled: admin API clients act on behalf of
// the user that owns them.
func NewOAuthService(db *gorm.DB, jwtSecret string) *OAuthService {
	manager := manage.NewDefaultManager()
	manager.SetClientTokenCfg(&manage.Config{AccessTokenExp: AccessTokenTTL})

	// Access tokens are JWTs carrying the owner's uid and role
	manager.MapAccessGenerate(NewAdminTokenGenerator([]byte(jwtSecret), jwt.SigningMethodHS512, db))

	// Configure token store
	manager.MustTokenStorage(NewGormTokenStore(db), nil)

	// Configure client store
	manager.MapClientStorage(NewGormClientStore(db))

	srv := server.NewDefaultServer(manager)
	srv.SetAllowedGrantType(oauth2.ClientCredentials)
	srv.SetClientInfoHandler(server.ClientFormHandler)

	return &OAuthService{
		server: srv,
		db:     db,
	}
}

func (o *OAuthService) GetServer() *server.Server {
	return o.server
}

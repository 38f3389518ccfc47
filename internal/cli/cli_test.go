package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/franciscosanchezn/gin-bar-api/internal/database"
	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useTempDatabase points the configuration at a fresh SQLite file
func useTempDatabase(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "bar.sqlite")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", path)
	t.Setenv("APP_ENV", "test")
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCreateAdminAndClient(t *testing.T) {
	path := useTempDatabase(t)

	out, err := run(t, "create-admin", "--email", "Boss@Bar.test", "--name", "Boss", "--password", "s3cret")
	require.NoError(t, err)
	assert.Contains(t, out, "boss@bar.test")

	_, err = run(t, "create-admin", "--email", "boss@bar.test", "--password", "other")
	assert.ErrorIs(t, err, services.ErrUserAlreadyExists)

	out, err = run(t, "create-client", "--owner", "boss@bar.test", "--name", "menu-sync")
	require.NoError(t, err)
	assert.Contains(t, out, "Client Secret:")

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: path})
	require.NoError(t, err)

	user, err := services.NewUserService(db).Authenticate(context.Background(), "boss@bar.test", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, user.Role)

	clients, err := services.NewClientService(db).GetClientsByUserID(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, "menu-sync", clients[0].Name)
}

func TestCreateAdminRequiresCredentials(t *testing.T) {
	useTempDatabase(t)
	_, err := run(t, "create-admin", "--email", "", "--password", "")
	assert.Error(t, err)
}

func TestSeedCommandAndSeedIfEmpty(t *testing.T) {
	path := useTempDatabase(t)

	out, err := run(t, "seed", "--file", "default")
	require.NoError(t, err)
	assert.Contains(t, out, "Seeded 4 categories")

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: path})
	require.NoError(t, err)

	// A populated database is left alone
	require.NoError(t, seedIfEmpty(context.Background(), db, defaultSeedFile))
	stats, err := services.NewStatsService(db).GetCatalogStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), stats.Cocktails)
}

func TestReadCatalogFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	content := strings.Join([]string{
		"categories:",
		"  - name: Classics",
		"ingredients: [Gin]",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	catalog, err := readCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog.Categories, 1)
	assert.Equal(t, []string{"Gin"}, catalog.Ingredients)

	_, err = readCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestPruneTokens(t *testing.T) {
	useTempDatabase(t)
	out, err := run(t, "prune-tokens")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed 0 expired tokens")
}

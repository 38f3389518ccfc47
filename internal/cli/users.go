package cli

import (
	"errors"
	"strings"

	"github.com/franciscosanchezn/gin-bar-api/internal/models"
	"github.com/franciscosanchezn/gin-bar-api/internal/services"
	"github.com/spf13/cobra"
)

var (
	adminEmail    string
	adminName     string
	adminPassword string

	clientOwner  string
	clientName   string
	clientDomain string
	clientScopes string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin",
	Short: "Create an administrator account",
	RunE: func(cmd *cobra.Command, args []string) error {
		if strings.TrimSpace(adminEmail) == "" || adminPassword == "" {
			return errors.New("--email and --password are required")
		}

		_, db, err := bootstrap()
		if err != nil {
			return err
		}

		user := &models.User{Email: adminEmail, Name: adminName, Role: models.RoleAdmin}
		if err := user.SetPassword(adminPassword); err != nil {
			return err
		}
		if err := services.NewUserService(db).CreateUser(cmd.Context(), user); err != nil {
			return err
		}
		cmd.Printf("Created administrator %s (id %d)\n", user.Email, user.ID)
		return nil
	},
}

var createClientCmd = &cobra.Command{
	Use:   "create-client",
	Short: "Issue client credentials owned by an existing user",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}

		owner, err := services.NewUserService(db).GetUserByEmail(cmd.Context(), clientOwner)
		if err != nil {
			return err
		}

		client, secret, err := services.NewClientService(db).RegisterClient(cmd.Context(), services.ClientRegistration{
			Name:   clientName,
			Domain: clientDomain,
			Scopes: clientScopes,
			UserID: owner.ID,
		})
		if err != nil {
			return err
		}

		cmd.Printf("Client ID:     %s\n", client.ID)
		cmd.Printf("Client Secret: %s\n", secret)
		cmd.Println("Store the secret now, it cannot be shown again.")
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "", "administrator email")
	createAdminCmd.Flags().StringVar(&adminName, "name", "", "display name")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "administrator password")

	createClientCmd.Flags().StringVar(&clientOwner, "owner", "", "email of the user the client acts for")
	createClientCmd.Flags().StringVar(&clientName, "name", "cli-client", "client name")
	createClientCmd.Flags().StringVar(&clientDomain, "domain", "http://localhost:8080", "client domain")
	createClientCmd.Flags().StringVar(&clientScopes, "scopes", "read write", "space-separated scopes")
	_ = createClientCmd.MarkFlagRequired("owner")

	rootCmd.AddCommand(createAdminCmd, createClientCmd)
}

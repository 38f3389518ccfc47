package cli

import (
	"time"

	"github.com/franciscosanchezn/gin-bar-api/internal/auth"
	"github.com/spf13/cobra"
)

var pruneTokensCmd = &cobra.Command{
	Use:   "prune-tokens",
	Short: "Delete expired OAuth access tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, db, err := bootstrap()
		if err != nil {
			return err
		}
		removed, err := auth.NewGormTokenStore(db).DeleteExpired(cmd.Context(), time.Now())
		if err != nil {
			return err
		}
		cmd.Printf("Removed %d expired tokens\n", removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pruneTokensCmd)
}

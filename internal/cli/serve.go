package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/franciscosanchezn/gin-bar-api/internal/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	Long:  "Migrates the database, seeds it when SEED_FILE is set and it is empty, then serves until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, db, err := bootstrap()
		if err != nil {
			return err
		}

		if cfg.SeedFile != "" {
			if err := seedIfEmpty(cmd.Context(), db, cfg.SeedFile); err != nil {
				return err
			}
		}

		srv, err := server.New(cfg, db)
		if err != nil {
			return err
		}

		errs := make(chan error, 1)
		go func() {
			errs <- srv.Start()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(stop)

		select {
		case err := <-errs:
			return err
		case sig := <-stop:
			log.WithField("signal", sig.String()).Info("Shutdown requested")
			return srv.Stop()
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

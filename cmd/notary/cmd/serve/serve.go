package serve

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"notary-api/internal/api/server"
	"notary-api/internal/app"
	"notary-api/internal/app/logger"
	"notary-api/internal/app/model"
	"notary-api/internal/app/repository"
	"notary-api/internal/app/repository/migrate"
	"notary-api/internal/app/repository/pg"
	"notary-api/internal/config"
)

var agentSeedFile string

func init() {
	Cmd.Flags().StringVarP(&agentSeedFile, "agents", "a", "",
		"optional YAML file of agent configurations to ensure at startup")
}

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the notary HTTP API",
	Long: `Run the notary HTTP API

- Connects to Postgres and applies schema migrations
- Optionally seeds agent configurations from a YAML file
- Serves the REST API until SIGINT or SIGTERM`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		zapLogger, err := logger.NewLogger(cfg.Environment != "production")
		if err != nil {
			return err
		}
		defer zapLogger.Sync()

		slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

		db, err := pg.NewConnection(cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		if err := migrate.Run(ctx, db); err != nil {
			return err
		}

		if err := seedAgents(ctx, pg.NewAgentDAO(db), agentSeedFile); err != nil {
			return err
		}

		container := app.InitializeServiceContainer(cfg, db, zapLogger)
		srv := server.NewServer(cfg, container, db, slogger)
		if err := srv.Start(); err != nil {
			return err
		}

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
		return nil
	},
}

// seedAgents ensures the agents from the seed file exist. Existing agents are
// left untouched so operator changes made through the API survive restarts,
// and a seeded default is only applied when no default exists yet.
func seedAgents(ctx context.Context, agents repository.AgentDAO, path string) error {
	seeds, err := config.LoadAgentSeeds(path)
	if err != nil {
		return err
	}

	for _, seed := range seeds {
		existing, err := agents.GetByName(ctx, seed.AgentName)
		if err != nil {
			return err
		}
		if existing == nil {
			existing = &model.AgentConfiguration{
				AgentName:        seed.AgentName,
				Provider:         seed.Provider,
				ModelName:        seed.ModelName,
				APIBaseURL:       seed.APIBaseURL,
				APIKeySecretName: seed.APIKeySecretName,
				ConfigJSON:       seed.Config,
				IsActive:         seed.IsActive,
			}
			if err := agents.Create(ctx, existing); err != nil {
				return err
			}
		}

		if seed.IsDefault && seed.IsActive {
			current, err := agents.GetDefault(ctx)
			if err != nil {
				return err
			}
			if current == nil {
				if err := agents.SetDefault(ctx, existing.AgentID); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os/signal"
	"strconv"
	"syscall"

	"civicflow/backend/config"
	"civicflow/backend/db"
	"civicflow/backend/directory"
	"civicflow/backend/metrics"
	"civicflow/backend/rabbitmq"
	"civicflow/backend/scoring"
	"civicflow/backend/server"
	"civicflow/backend/service"
	"civicflow/common"

	"github.com/apex/log"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var port int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Prepare the database and serve the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			common.SetupLogging(cfg.LogLevel, cfg.LogFormat)
			if port == 0 {
				p, err := strconv.Atoi(cfg.Port)
				if err != nil {
					return fmt.Errorf("invalid PORT configuration: %w", err)
				}
				port = p
			}
			return serve(cmd.Context(), cfg, port)
		},
	}
	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (overrides PORT)")
	return cmd
}

func newInitDBCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-db",
		Short: "Create the tables and seed the service directory, then exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			common.SetupLogging(cfg.LogLevel, cfg.LogFormat)

			sqlDB, err := common.DBConnect(cfg)
			if err != nil {
				return err
			}
			defer sqlDB.Close()
			return prepareDB(cmd.Context(), sqlDB, cfg)
		},
	}
}

func newScoreCmd() *cobra.Command {
	var in struct {
		location    string
		issue       string
		description string
		sentiment   float64
	}
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Print the priority breakdown for a report without storing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res := scoring.Evaluate(in.location, in.issue, in.description, in.sentiment)
			printBreakdown(cmd.OutOrStdout(), res)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&in.location, "location", "", "report location (zone name)")
	flags.StringVar(&in.issue, "issue", "", "short issue summary")
	flags.StringVar(&in.description, "description", "", "issue details")
	flags.Float64Var(&in.sentiment, "sentiment", 0, "caller sentiment score")
	return cmd
}

func printBreakdown(w io.Writer, res scoring.Result) {
	fmt.Fprintf(w, "%-10s %+5d  running %4d\n", "base", scoring.BaseScore, scoring.BaseScore)
	for _, adj := range res.Adjustments {
		fmt.Fprintf(w, "%-10s %+5d  running %4d  %s\n", adj.Layer, adj.Delta, adj.Running, adj.Reason)
	}
	critical := ""
	if scoring.IsCritical(res.Score) {
		critical = " CRITICAL"
	}
	fmt.Fprintf(w, "priority %d (raw %d)%s\n", res.Score, res.Raw, critical)
}

// prepareDB creates the schema and seeds the directory. Both steps are safe to repeat.
func prepareDB(ctx context.Context, sqlDB *sql.DB, cfg *config.Config) error {
	if err := db.InitSchema(ctx, sqlDB); err != nil {
		return err
	}
	services, err := directory.Load(cfg.ServicesSeedFile)
	if err != nil {
		return err
	}
	_, err = db.SeedServices(ctx, sqlDB, services)
	return err
}

func serve(ctx context.Context, cfg *config.Config, port int) error {
	log.Info("Starting the civicflow service...")
	metrics.Register()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sqlDB, err := common.DBConnect(cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer sqlDB.Close()

	if err := prepareDB(ctx, sqlDB, cfg); err != nil {
		return fmt.Errorf("failed to prepare database: %w", err)
	}

	store := db.NewStore(sqlDB)

	var publisher service.ReportPublisher
	if cfg.AMQPURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPRoutingKey)
		if err != nil {
			log.Errorf("Failed to create RabbitMQ publisher, report feed disabled: %v", err)
		} else {
			defer p.Close()
			publisher = p
			log.Infof("Publishing reports to exchange %q", cfg.AMQPExchange)
		}
	}

	srv := server.New(
		service.NewIntakeService(store, publisher, nil),
		service.NewQueryService(store),
		service.NewDirectoryService(store),
		store,
	)
	return srv.Run(ctx, port)
}

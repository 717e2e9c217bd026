package main

import (
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/supplysight/backend/internal/config"
	"github.com/supplysight/backend/internal/engine"
	"github.com/supplysight/backend/internal/report"
	"github.com/supplysight/backend/internal/repository/postgres"
	"github.com/supplysight/backend/internal/service"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Database connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func openDB(c *cli.Context) (*postgres.DB, error) {
	db, err := postgres.NewDBFromURL(c.String("db-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

func runMigrate(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.Migrate(c.Context); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	fmt.Println("schema up to date")
	return nil
}

func runRestockReport(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	params := config.Load().Restock.EngineParams()
	if days := c.Int("lookback-days"); days > 0 {
		params.VelocityLookbackDays = days
	}

	svc := service.NewRestockService(postgres.NewMetricsRepository(db), params)
	r, err := svc.Report(c.Context, engine.Params{})
	if err != nil {
		return fmt.Errorf("failed to generate restock report: %w", err)
	}

	fmt.Print(report.RenderRestockReport(r))
	return nil
}

func runInsightsReport(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := postgres.NewMetricsRepository(db)
	svc := service.NewAnalyticsService(repo, nil)
	insights, err := svc.Insights(c.Context)
	if err != nil {
		return fmt.Errorf("failed to generate insights report: %w", err)
	}

	fmt.Print(report.RenderInsightsReport(insights))
	return nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "restock",
		Usage: "Restocking recommendations and supply-chain reports",
		Commands: []*cli.Command{
			{
				Name:   "migrate",
				Usage:  "Create the database schema",
				Flags:  []cli.Flag{newDBURLFlag()},
				Action: runMigrate,
			},
			{
				Name:  "report",
				Usage: "Generate reports",
				Subcommands: []*cli.Command{
					{
						Name:  "restock",
						Usage: "Print the restocking recommendations report",
						Flags: []cli.Flag{
							newDBURLFlag(),
							&cli.IntFlag{
								Name:  "lookback-days",
								Usage: "Sales velocity lookback window in days",
							},
						},
						Action: runRestockReport,
					},
					{
						Name:   "insights",
						Usage:  "Print the supply-chain insights report",
						Flags:  []cli.Flag{newDBURLFlag()},
						Action: runInsightsReport,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// Command matchengine matches chemical-supply requests against candidate
// inventories, serves the match API, and manages the supplier registry.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/supplyai/matchengine/infrastructure/extract"
	"github.com/supplyai/matchengine/infrastructure/ingest"
	appmetrics "github.com/supplyai/matchengine/infrastructure/middleware"
	"github.com/supplyai/matchengine/infrastructure/report"
	"github.com/supplyai/matchengine/infrastructure/storage"
	"github.com/supplyai/matchengine/internal/application"
	"github.com/supplyai/matchengine/internal/config"
	"github.com/supplyai/matchengine/internal/domain"
	"github.com/supplyai/matchengine/internal/ports"
	serverhttp "github.com/supplyai/matchengine/server/http"
)

func main() {
	app := &cli.App{
		Name:  "matchengine",
		Usage: "Match chemical-supply requests against candidate offers",
		Commands: []*cli.Command{
			matchCmd,
			rfqCmd,
			serveCmd,
			supplierCmd,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var matchCmd = &cli.Command{
	Name:  "match",
	Usage: "Rank an inventory file against a structured request",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "inventory", Required: true, Usage: "inventory file (.json, .csv or .xlsx)"},
		&cli.StringFlag{Name: "request", Required: true, Usage: "request JSON file"},
		&cli.StringFlag{Name: "format", Value: "json", Usage: "output format: json, markdown or text"},
		&cli.StringFlag{Name: "output", Usage: "directory to save the rendered report into"},
	},
	Action: func(c *cli.Context) error {
		cfg := config.Load()
		logger := config.SetupLogger(cfg)

		engine, err := buildEngine(cfg, logger)
		if err != nil {
			return err
		}

		inventory, err := ingest.LoadFile(c.String("inventory"))
		if err != nil {
			return err
		}
		reqFile, err := os.Open(c.String("request"))
		if err != nil {
			return fmt.Errorf("open request %s: %w", c.String("request"), err)
		}
		defer reqFile.Close()
		request, err := ingest.ReadRequestJSON(reqFile)
		if err != nil {
			return err
		}

		supervisor := application.NewSupervisor(engine, nil, logger)
		analysis := supervisor.ProcessStructured(c.Context, request, inventory)
		return emitAnalyses(c, cfg, []domain.OrderAnalysis{analysis})
	},
}

var rfqCmd = &cli.Command{
	Name:  "rfq",
	Usage: "Extract orders from free-text RFQs and rank the inventory against each",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "inventory", Required: true, Usage: "inventory file (.json, .csv or .xlsx)"},
		&cli.StringFlag{Name: "orders", Required: true, Usage: "free-text orders file"},
		&cli.StringFlag{Name: "format", Value: "markdown", Usage: "output format: json, markdown or text"},
		&cli.StringFlag{Name: "output", Usage: "directory to save the rendered reports into"},
	},
	Action: func(c *cli.Context) error {
		cfg := config.Load()
		logger := config.SetupLogger(cfg)

		engine, err := buildEngine(cfg, logger)
		if err != nil {
			return err
		}
		extractor, err := buildExtractor(cfg, logger)
		if err != nil {
			return err
		}

		inventory, err := ingest.LoadFile(c.String("inventory"))
		if err != nil {
			return err
		}
		ordersText, err := os.ReadFile(c.String("orders"))
		if err != nil {
			return fmt.Errorf("read orders %s: %w", c.String("orders"), err)
		}

		supervisor := application.NewSupervisor(engine, extractor, logger)
		analyses := supervisor.ProcessOrders(c.Context, string(ordersText), inventory)
		return emitAnalyses(c, cfg, analyses)
	},
}

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Run the HTTP match service",
	Action: func(c *cli.Context) error {
		cfg := config.Load()
		logger := config.SetupLogger(cfg)

		metrics := appmetrics.NewPrometheusMetrics(prometheus.DefaultRegisterer)
		engine, err := buildEngineWithMetrics(cfg, logger, metrics)
		if err != nil {
			return err
		}

		var supervisor *application.Supervisor
		if extractor, err := buildExtractor(cfg, logger); err == nil {
			supervisor = application.NewSupervisor(engine, extractor, logger)
		} else {
			logger.Warn().Err(err).Msg("rfq extraction disabled")
			supervisor = application.NewSupervisor(engine, nil, logger)
		}

		srv := &http.Server{
			Addr:    cfg.Addr(),
			Handler: serverhttp.NewRouter(cfg, logger, engine, supervisor),
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info().Str("addr", cfg.Addr()).Msg("server starting")
			errCh <- srv.ListenAndServe()
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			if err != nil && err != http.ErrServerClosed {
				return err
			}
		case <-quit:
			logger.Info().Msg("server shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}
		logger.Info().Msg("bye")
		return nil
	},
}

var supplierCmd = &cli.Command{
	Name:  "supplier",
	Usage: "Manage the supplier registry",
	Subcommands: []*cli.Command{
		{
			Name:  "add",
			Usage: "Register a new supplier",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "name", Required: true},
				&cli.StringFlag{Name: "material", Required: true},
				&cli.Float64Flag{Name: "purity", Required: true, Usage: "purity percentage (0-100)"},
				&cli.Float64Flag{Name: "rating", Value: 5, Usage: "delivery rating (0-10)"},
				&cli.Float64Flag{Name: "min-order", Usage: "minimum order in kg/month"},
			},
			Action: func(c *cli.Context) error {
				cfg := config.Load()
				logger := config.SetupLogger(cfg)

				store, err := openStore(c.Context, cfg, logger)
				if err != nil {
					return err
				}
				defer store.Close()

				id, err := store.Add(c.Context, domain.Supplier{
					Name:           c.String("name"),
					Material:       c.String("material"),
					Purity:         c.Float64("purity"),
					DeliveryRating: c.Float64("rating"),
					MinOrder:       c.Float64("min-order"),
				})
				if err != nil {
					return err
				}
				fmt.Printf("Supplier added with ID %d\n", id)
				return nil
			},
		},
		{
			Name:  "find",
			Usage: "List suppliers for a material, optionally ranked against a request",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "material", Required: true},
				&cli.StringFlag{Name: "request", Usage: "request JSON file to rank the suppliers against"},
			},
			Action: func(c *cli.Context) error {
				cfg := config.Load()
				logger := config.SetupLogger(cfg)

				store, err := openStore(c.Context, cfg, logger)
				if err != nil {
					return err
				}
				defer store.Close()

				if path := c.String("request"); path != "" {
					f, err := os.Open(path)
					if err != nil {
						return fmt.Errorf("open request %s: %w", path, err)
					}
					defer f.Close()
					request, err := ingest.ReadRequestJSON(f)
					if err != nil {
						return err
					}
					candidates, err := store.Candidates(c.Context, c.String("material"))
					if err != nil {
						return err
					}
					engine, err := buildEngine(cfg, logger)
					if err != nil {
						return err
					}
					results, err := engine.Rank(c.Context, candidates, request)
					if err != nil {
						return err
					}
					return printJSON(results)
				}

				suppliers, err := store.FindByMaterial(c.Context, c.String("material"))
				if err != nil {
					return err
				}
				return printJSON(suppliers)
			},
		},
	},
}

func buildEngine(cfg config.Config, logger zerolog.Logger) (*application.Engine, error) {
	return buildEngineWithMetrics(cfg, logger, nil)
}

func buildEngineWithMetrics(cfg config.Config, logger zerolog.Logger, metrics ports.MetricsCollector) (*application.Engine, error) {
	engineCfg := application.DefaultConfig()
	if cfg.RubricPath != "" {
		loaded, err := application.LoadConfig(cfg.RubricPath)
		if err != nil {
			return nil, err
		}
		engineCfg = loaded
	}
	return application.NewEngine(engineCfg, logger, metrics)
}

func buildExtractor(cfg config.Config, logger zerolog.Logger) (ports.SpecExtractor, error) {
	if cfg.LLMAPIKey == "" {
		return nil, fmt.Errorf("LLM_API_KEY is not set")
	}
	client, err := extract.NewClient(cfg.LLMProvider, cfg.LLMAPIKey, cfg.LLMModel)
	if err != nil {
		return nil, err
	}
	return extract.NewExtractor(client, logger, extract.WithRateLimit(1, 2))
}

func openStore(ctx context.Context, cfg config.Config, logger zerolog.Logger) (*storage.SupplierStore, error) {
	if cfg.DBPath != ":memory:" {
		_ = os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755)
	}
	store, err := storage.Open(cfg.DBPath, logger)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}

// emitAnalyses renders the analyses in the requested format, printing to
// stdout and optionally saving a combined report file.
func emitAnalyses(c *cli.Context, cfg config.Config, analyses []domain.OrderAnalysis) error {
	format := c.String("format")

	if format == "json" {
		if err := printJSON(analyses); err != nil {
			return err
		}
		return nil
	}

	var renderer ports.Renderer
	var ext string
	switch format {
	case "markdown":
		renderer = &report.MarkdownRenderer{}
		ext = "md"
	case "text":
		renderer = &report.TextRenderer{}
		ext = "txt"
	default:
		return fmt.Errorf("unknown format %q (expected json, markdown or text)", format)
	}

	rendered := make([]string, len(analyses))
	for i, analysis := range analyses {
		rendered[i] = renderer.Render(analysis)
		fmt.Println(rendered[i])
	}

	outDir := c.String("output")
	if outDir == "" {
		outDir = cfg.ReportDir
	}
	if outDir != "" {
		path, err := report.Save(outDir, rendered, ext)
		if err != nil {
			return err
		}
		fmt.Printf("\nResults have been saved to: %s\n", path)
	}
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

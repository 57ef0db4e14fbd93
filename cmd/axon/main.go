package main

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/xaenox/axon/internal/classifier"
	"github.com/xaenox/axon/internal/engine"
	"github.com/xaenox/axon/internal/storage"
	"github.com/xaenox/axon/pkg/config"
)

const usage = `usage: axon <command> [args]

commands:
  add <text>          capture and classify a thought
  classify <text>     classify without storing
  list [search]       list thoughts (priority order)
  complete <id>       toggle completion
  archive <id>        archive a thought
  delete <id>         soft-delete a thought
  restore <id>        restore a soft-deleted thought
  purge <id>          permanently delete a thought
  stats               analytics snapshot
  next                next-action recommendation
  similar             near-duplicate report
  export              CSV export to stdout
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err), zap.String("path", "config.yaml"))
	}

	// Initialize storage
	var store storage.Storage
	switch cfg.Storage.Backend {
	case "memory":
		logger.Info("Using in-memory storage")
		store = storage.NewMemoryStorage()
	case "postgres":
		logger.Info("Using PostgreSQL storage")
		store, err = storage.NewPostgresStorage(storage.DatabaseConfig{
			Host:     cfg.Storage.Database.Host,
			Port:     cfg.Storage.Database.Port,
			User:     cfg.Storage.Database.User,
			Password: cfg.Storage.Database.Password,
			DBName:   cfg.Storage.Database.DBName,
			SSLMode:  cfg.Storage.Database.SSLMode,
		})
		if err != nil {
			logger.Fatal("Failed to initialize storage", zap.Error(err))
		}
	default:
		logger.Info("Using file storage", zap.String("path", cfg.Storage.FilePath))
		store = storage.NewFileStorage(cfg.Storage.FilePath)
	}
	defer store.Close()

	// Initialize classifier
	scorer := classifier.NewScoringStrategy(cfg.Classifier.Strategy)
	var clf classifier.Classifier = classifier.NewLexiconClassifier(scorer)
	if cfg.OpenAI.Enabled {
		clf = classifier.NewGPTClassifier(
			cfg.OpenAI.APIKey,
			cfg.OpenAI.Model,
			cfg.OpenAI.MaxTokens,
			cfg.OpenAI.Temperature,
			scorer,
			logger,
		)
	}

	mgr := engine.New(store, clf, logger,
		engine.WithBlockingThreshold(cfg.Classifier.BlockingThreshold),
		engine.WithReportThreshold(cfg.Classifier.ReportingThreshold),
	)

	if err := run(mgr, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(mgr *engine.Manager, command string, args []string) error {
	switch command {
	case "add":
		thought, err := mgr.Create(strings.Join(args, " "), nil, nil)
		if err != nil {
			return err
		}
		fmt.Printf("created %s [%s/%s] confidence=%.2f intensity=%d\n",
			thought.ID, thought.Category, thought.Priority, thought.Confidence, thought.Intensity)

	case "classify":
		result, err := mgr.Classify(strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Printf("%s/%s confidence=%.2f intensity=%d\n%s\n",
			result.Category, result.Priority, result.Confidence, result.Intensity, result.Reasoning)
		for _, alt := range result.Alternatives {
			fmt.Printf("  alternative: %s (%.2f)\n", alt.Category, alt.Confidence)
		}

	case "list":
		filter := engine.Filter{}
		if len(args) > 0 {
			filter.Search = strings.Join(args, " ")
		}
		thoughts, err := mgr.Query(filter, engine.SortPriorityDate)
		if err != nil {
			return err
		}
		for _, t := range thoughts {
			fmt.Printf("%s  [%s/%s/%s]  %s\n", t.ID, t.Category, t.Priority, t.Status, t.Text)
		}

	case "complete":
		return oneID(args, func(id string) error {
			thought, err := mgr.ToggleComplete(id)
			if err != nil {
				return err
			}
			fmt.Printf("marked %s\n", thought.Status)
			return nil
		})

	case "archive":
		return oneID(args, func(id string) error {
			_, err := mgr.Archive(id)
			return err
		})

	case "delete":
		return oneID(args, mgr.SoftDelete)

	case "restore":
		return oneID(args, mgr.Restore)

	case "purge":
		return oneID(args, mgr.HardDelete)

	case "stats":
		analytics, err := mgr.Aggregate()
		if err != nil {
			return err
		}
		fmt.Printf("total=%d active=%d completed=%d archived=%d rate=%.1f%%\n",
			analytics.TotalThoughts, analytics.ActiveThoughts,
			analytics.CompletedThoughts, analytics.ArchivedThoughts, analytics.CompletionRate)
		for cat, n := range analytics.ByCategory {
			fmt.Printf("  %s: %d\n", cat, n)
		}
		fmt.Printf("trend (oldest to today): %v\n", analytics.WeeklyTrend)
		for _, kw := range analytics.TopKeywords {
			fmt.Printf("  keyword %q x%d\n", kw.Keyword, kw.Count)
		}

	case "next":
		rec, err := mgr.NextAction()
		if err != nil {
			return err
		}
		if rec == nil {
			fmt.Println("no recommendation")
			return nil
		}
		fmt.Printf("next (%.2f): %s\n", rec.Score, rec.Thought.Text)

	case "similar":
		pairs, err := mgr.SimilarPairs()
		if err != nil {
			return err
		}
		for _, p := range pairs {
			fmt.Printf("%.3f  %q ~ %q\n", p.Similarity, p.FirstText, p.SecondText)
		}

	case "export":
		out, err := mgr.ExportCSV()
		if err != nil {
			return err
		}
		fmt.Print(out)

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	return nil
}

func oneID(args []string, fn func(string) error) error {
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one id")
	}
	return fn(args[0])
}

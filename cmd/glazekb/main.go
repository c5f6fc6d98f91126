package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/japaniel/glazekb/pkg/catalog"
	"github.com/japaniel/glazekb/pkg/config"
	"github.com/japaniel/glazekb/pkg/dataset"
	"github.com/japaniel/glazekb/pkg/logger"
	"github.com/japaniel/glazekb/pkg/metrics"
	flag "github.com/spf13/pflag"
)

const usage = `usage: glazekb [flags] <command>

commands:
  list <kind>               list every record of a kind
  search <kind> <query>     case-insensitive search within a kind
  show <kind> <id>          print one record and its related entries
  theme [system|light|dark] print or set the saved theme
  export                    write a snapshot of the catalog to the database
  stats                     load the catalog and print load metrics

kinds: materials colorants glaze-types firing-types surface-effects
       safety-info glossary-terms recipes

flags:
`

func main() {
	// Setup context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// app is the state shared by every command.
type app struct {
	cfg      config.Config
	log      *logger.Logger
	recorder *metrics.Recorder
	cat      *catalog.Catalog
	out      io.Writer
}

// errUsage marks errors caused by a malformed command line.
var errUsage = errors.New("usage")

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("glazekb", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	dataDir := fs.String("data-dir", "", "read datasets from this directory instead of the bundled copy")
	dbPath := fs.String("db", "", "path to the SQLite database")
	logMode := fs.String("log-mode", "", "log output: dev or prod")
	workers := fs.Int("workers", 0, "datasets decoded in parallel")
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "glazekb: %v\n", err)
		return 1
	}
	if fs.Changed("data-dir") {
		cfg.DataDir = *dataDir
	}
	if fs.Changed("db") {
		cfg.Database = *dbPath
	}
	if fs.Changed("log-mode") {
		cfg.LogMode = *logMode
	}
	if fs.Changed("workers") {
		cfg.LoadWorkers = *workers
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(stderr, "glazekb: %v\n", err)
		return 1
	}
	defer log.Sync()

	bundle := dataset.Bundled()
	if cfg.DataDir != "" {
		bundle = dataset.DirBundle(cfg.DataDir)
	}
	a := &app{
		cfg:      cfg,
		log:      log,
		recorder: metrics.NewRecorder(),
		cat:      catalog.New(bundle),
		out:      stdout,
	}
	a.cat.Logger = log
	a.cat.Observer = a.recorder
	if cfg.LoadWorkers > 0 {
		a.cat.Workers = cfg.LoadWorkers
	}

	if err := a.dispatch(ctx, fs.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintf(stderr, "glazekb: %v\n", err)
			fs.Usage()
			return 2
		}
		log.Error("command failed", "error", err)
		fmt.Fprintf(stderr, "glazekb: %v\n", err)
		return 1
	}
	return 0
}

func (a *app) dispatch(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: missing command", errUsage)
	}
	cmd, rest := args[0], args[1:]
	switch cmd {
	case "list":
		if len(rest) != 1 {
			return fmt.Errorf("%w: list takes a kind", errUsage)
		}
		return a.list(ctx, rest[0], "", false)
	case "search":
		if len(rest) != 2 {
			return fmt.Errorf("%w: search takes a kind and a query", errUsage)
		}
		return a.list(ctx, rest[0], rest[1], true)
	case "show":
		if len(rest) != 2 {
			return fmt.Errorf("%w: show takes a kind and an id", errUsage)
		}
		return a.show(ctx, rest[0], rest[1])
	case "theme":
		if len(rest) > 1 {
			return fmt.Errorf("%w: theme takes at most one mode", errUsage)
		}
		return a.theme(rest)
	case "export":
		return a.export(ctx)
	case "stats":
		return a.stats(ctx)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

// load populates the catalog. Dataset failures are logged by the catalog and
// leave that kind empty; only a cancelled context stops the command.
func (a *app) load(ctx context.Context) (catalog.LoadReport, error) {
	report, err := a.cat.LoadAll(ctx)
	if err != nil {
		return report, err
	}
	if err := ctx.Err(); err != nil {
		return report, err
	}
	return report, nil
}

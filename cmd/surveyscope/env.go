package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/surveyscope/surveyscope/internal/logging"
	"github.com/surveyscope/surveyscope/internal/results"
	"github.com/surveyscope/surveyscope/internal/storage"
	"github.com/surveyscope/surveyscope/pkg/config"
	"github.com/surveyscope/surveyscope/pkg/respondent"
	"github.com/surveyscope/surveyscope/pkg/scoring"
	"github.com/surveyscope/surveyscope/pkg/surface"
	"github.com/surveyscope/surveyscope/pkg/survey"
)

// env is what every subcommand needs: resolved config and a logger.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func setup(configPath string) (*env, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}

	logger := logging.New(cfg.Log, os.Stderr)
	slog.SetDefault(logger)
	return &env{cfg: cfg, logger: logger}, nil
}

// loadConfig reads an explicit config file, or the nearest
// .surveyscope/config.yaml above the working directory.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file: %w", err)
		}
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.DefaultConfig(), nil
	}
	cfgFile := config.FindConfigFile(wd)
	if cfgFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		return config.DefaultConfig(), nil
	}
	return cfg, nil
}

func (e *env) loadSurvey(flagPath string) (*survey.Survey, error) {
	path := firstNonEmpty(flagPath, e.cfg.Survey.Path)
	s, err := survey.LoadFile(path)
	if err != nil {
		return nil, err
	}
	e.logger.Debug("survey loaded", "path", path, "id", s.ID(), "questions", s.NumQuestions(), "span", s.Span().String())
	return s, nil
}

// finish scores sub, renders the outcome to stdout and, when asked,
// persists the submission and records the outcome.
func (e *env) finish(ctx context.Context, sub *respondent.Submission, format string, save bool) error {
	outcome, err := scoring.NewEngine().Score(sub)
	if err != nil {
		return err
	}
	e.logger.Info("submission scored", "submission", sub.ID, "score", outcome.TotalScore, "band", outcome.Band.Msg)

	r, err := surface.ForFormat(firstNonEmpty(format, e.cfg.Output.Format))
	if err != nil {
		return err
	}
	if err := r.Render(os.Stdout, outcome); err != nil {
		return fmt.Errorf("rendering outcome: %w", err)
	}

	if !save {
		return nil
	}
	if err := e.store(ctx, sub); err != nil {
		return err
	}
	return e.record(ctx, outcome)
}

func (e *env) store(ctx context.Context, sub *respondent.Submission) error {
	client, err := storage.New(ctx, e.cfg.Storage, config.SubmissionDir(e.cfg))
	if err != nil {
		return err
	}
	if client == nil {
		e.logger.Debug("storage disabled, submission not stored", "submission", sub.ID)
		return nil
	}
	if err := storage.SaveSubmission(ctx, client, sub); err != nil {
		return fmt.Errorf("storing submission: %w", err)
	}
	e.logger.Info("submission stored", "backend", firstNonEmpty(e.cfg.Storage.Backend, "local"), "survey", sub.Survey.ID(), "submission", sub.ID)
	return nil
}

func (e *env) record(ctx context.Context, outcome *scoring.Outcome) error {
	svc, closeDB, err := e.openResults(ctx)
	if err != nil || svc == nil {
		return err
	}
	defer closeDB()
	if err := svc.Record(ctx, outcome); err != nil {
		return err
	}
	e.logger.Info("outcome recorded", "driver", e.cfg.Results.Driver, "submission", outcome.SubmissionID)
	return nil
}

// openResults returns a nil service when the results database is disabled.
func (e *env) openResults(ctx context.Context) (*results.Service, func(), error) {
	driver := e.cfg.Results.Driver
	if driver == "" || driver == "none" {
		return nil, func() {}, nil
	}
	dsn := config.ResultsDSN(e.cfg)
	if driver == results.DriverSQLite && e.cfg.Results.DSN == "" {
		if err := os.MkdirAll(config.CacheDir(), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create cache directory: %w", err)
		}
	}
	db, err := results.Open(ctx, driver, dsn)
	if err != nil {
		return nil, nil, err
	}
	return results.NewService(db), func() { db.Close() }, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// parseAnswers parses a comma separated list of 0-based response indices.
func parseAnswers(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid answer %q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}

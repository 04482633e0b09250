package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/domlens/domlens/internal/common"
	"github.com/domlens/domlens/models"
	"github.com/domlens/domlens/pkg/analyzer"
	"github.com/domlens/domlens/pkg/db"
	"github.com/domlens/domlens/pkg/fetcher"
	"github.com/domlens/domlens/pkg/identity"
	"github.com/domlens/domlens/pkg/interpret"
)

// Output is the full payload printed after one analysis run.
type Output struct {
	Record          models.AnalysisRecord   `json:"record" yaml:"record"`
	Interpretations []models.Interpretation `json:"interpretations" yaml:"interpretations"`
}

func AnalyzeAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	config, err := models.LoadConfig(c.String("config"))
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(2)
	}
	if c.IsSet("fetches") {
		config.FetchCount = c.Int("fetches")
	}
	if c.IsSet("timeout") {
		timeout, err := time.ParseDuration(c.String("timeout"))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid timeout duration: %v\n", err)
			os.Exit(1)
		}
		config.TimeoutSeconds = int(timeout.Seconds())
	}
	if config.FetchCount < 1 {
		fmt.Fprintln(os.Stderr, "Error: --fetches must be at least 1")
		os.Exit(1)
	}

	rawURL := c.String("url")
	if rawURL == "" {
		fmt.Fprintln(os.Stderr, "Error: No URL provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  domlens analyze --url "https://example.com"`)
		fmt.Fprintln(os.Stderr, `  domlens analyze --url "https://example.com" --fetches 5 --format yaml`)
		os.Exit(1)
	}

	target, err := common.ValidateTarget(rawURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Note: URLs are auto-cleaned (whitespace trimmed, trailing punctuation removed, markdown links extracted)")
		fmt.Fprintln(os.Stderr, "      Private and local hosts are never fetched.")
		os.Exit(1)
	}

	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	f := fetcher.NewFetcher(timeout, config.RetryMax, config.UserAgent, config.MaxBodyBytes)

	logger.Info("Starting fetch phase", "url", target, "fetches", config.FetchCount, "timeout", timeout)
	ctx, cancel := context.WithTimeout(context.Background(), timeout*time.Duration(config.FetchCount+1))
	defer cancel()

	samples, err := f.FetchSamples(ctx, target, config.FetchCount)
	if err != nil {
		var fetchErr *fetcher.FetchError
		if errors.As(err, &fetchErr) {
			logger.Error("fetch failed", "url", target, "kind", string(fetchErr.Kind), "error", err)
		} else {
			logger.Error("fetch failed", "url", target, "error", err)
		}
		os.Exit(2)
	}
	logger.Info("Fetch phase complete", "samples", len(samples))

	result := analyzer.Analyze(samples, target)
	pageIdentity := identity.NewExtractor().Extract(samples[0], target)
	interpretations := interpret.Interpret(result.Structure, result.Semantics, config.FetchCount)

	record := models.AnalysisRecord{
		AnalyzedAt: time.Now().UTC(),
		FetchCount: config.FetchCount,
		Identity:   pageIdentity,
		Result:     result,
	}

	if !c.Bool("no-save") {
		database, err := db.Open(config.DatabasePath)
		if err != nil {
			logger.Warn("failed to open history database, result not saved", "error", err)
		} else {
			defer database.Close()
			id, err := database.SaveAnalysis(record)
			if err != nil {
				logger.Warn("failed to save analysis to history", "error", err)
			} else {
				record.ID = id
				logger.Info("Saved analysis to history", "analysis_id", id)
			}
		}
	}

	output := Output{Record: record, Interpretations: interpretations}

	var outputData []byte
	var marshalErr error
	switch strings.ToLower(c.String("format")) {
	case "yaml":
		outputData, marshalErr = yaml.Marshal(output)
	default:
		outputData, marshalErr = json.MarshalIndent(output, "", "  ")
	}
	if marshalErr != nil {
		logger.Error("failed to marshal output", "error", marshalErr)
		os.Exit(2)
	}
	fmt.Println(string(outputData))

	return nil
}

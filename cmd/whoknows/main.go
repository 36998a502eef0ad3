// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/whoknows"
	"github.com/poiesic/whoknows/ai"
	"github.com/poiesic/whoknows/directory"
	"github.com/poiesic/whoknows/internal/config"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "whoknows",
		Usage: "Find the right colleague for a question",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a TOML config file (default: ~/" + config.DefaultFileName + ")",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Search the directory for matching colleagues",
				ArgsUsage: "<query...>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "source",
						Aliases: []string{"s"},
						Usage:   "Path to the directory CSV file",
					},
					&cli.StringFlag{
						Name:    "department",
						Aliases: []string{"d"},
						Usage:   "Restrict results to one department",
					},
					&cli.StringFlag{
						Name:  "ai-host",
						Usage: "Chat service host URL for AI re-ranking",
					},
					&cli.StringFlag{
						Name:  "ai-model",
						Usage: "Chat model name for AI re-ranking",
					},
					&cli.StringFlag{
						Name:    "api-key",
						Usage:   "API credential for the chat service",
						EnvVars: []string{"WHOKNOWS_API_KEY"},
					},
				},
			},
			{
				Name:   "departments",
				Usage:  "List the departments present in the directory",
				Action: departmentsCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "source",
						Aliases: []string{"s"},
						Usage:   "Path to the directory CSV file",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if path := c.String("config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	if source := c.String("source"); source != "" {
		cfg.Source = source
	}
	if dept := c.String("department"); dept != "" {
		cfg.Department = dept
	}
	if host := c.String("ai-host"); host != "" {
		cfg.AI.Host = host
	}
	if model := c.String("ai-model"); model != "" {
		cfg.AI.Model = model
	}
	return cfg, nil
}

func openFinder(c *cli.Context, cfg *config.Config) (*whoknows.Finder, error) {
	opts := []whoknows.FinderOption{}

	// Re-ranking is opt-in: without a host or credential the pipeline is
	// keyword-match only, matching the tool's no-key behavior.
	apiKey := c.String("api-key")
	if cfg.AI.Host != "" || apiKey != "" {
		aiOpts := []ai.ConfigOption{ai.WithToken(apiKey)}
		if cfg.AI.Host != "" {
			aiOpts = append(aiOpts, ai.WithHost(cfg.AI.Host))
		}
		if cfg.AI.Model != "" {
			aiOpts = append(aiOpts, ai.WithModel(cfg.AI.Model))
		}
		opts = append(opts, whoknows.WithAIConfig(ai.NewConfig(aiOpts...)))
	}

	finder, err := whoknows.Open(cfg.Source, opts...)
	if errors.Is(err, directory.ErrSourceNotFound) {
		return nil, fmt.Errorf("no directory data available at %s", cfg.Source)
	}
	return finder, err
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("usage: whoknows search <query...>")
	}
	query := strings.Join(c.Args().Slice(), " ")

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	finder, err := openFinder(c, cfg)
	if err != nil {
		return err
	}

	searcher, err := finder.NewSearcher()
	if err != nil {
		return err
	}
	defer searcher.Release()

	department := cfg.Department
	if department == "" {
		department = directory.AllDepartments
	}

	outcome := searcher.Search(c.Context, query, department)
	if len(outcome.IDs) == 0 {
		if outcome.Message != "" {
			fmt.Println(outcome.Message)
		} else {
			fmt.Println("No results found.")
		}
		return nil
	}

	if outcome.Message != "" {
		fmt.Println(outcome.Message)
	}
	for _, id := range outcome.IDs {
		record, ok := finder.Directory().Record(id)
		if !ok {
			continue
		}
		fmt.Printf("%s (%s)\n", record.Name, record.JobTitle)
		if record.Bio != "" {
			fmt.Printf("  %s\n", record.Bio)
		}
		if record.Email != "" {
			fmt.Printf("  %s\n", record.Email)
		}
	}
	return nil
}

func departmentsCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	finder, err := openFinder(c, cfg)
	if err != nil {
		return err
	}

	for _, dept := range finder.Directory().Departments() {
		fmt.Println(dept)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}

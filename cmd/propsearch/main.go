package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"propsearch/internal/app"
	"propsearch/internal/config"
	"propsearch/internal/logger"
	"propsearch/internal/model"
	"propsearch/internal/service"

	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "propsearch",
		Usage: "Search property listings with plain-language queries",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Path to the listings dataset (.csv or .xlsx); overrides DATASET_PATH",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Run a query and print matching properties; reads queries from stdin when none is given",
				ArgsUsage: "QUERY...",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "limit",
						Aliases: []string{"n"},
						Usage:   "Maximum number of cards to print (0 uses SEARCH_DEFAULT_LIMIT)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Print the raw search response as JSON",
					},
				},
			},
			{
				Name:      "parse",
				Usage:     "Print the filters extracted from a query",
				ArgsUsage: "QUERY...",
				Action:    parseCommand,
			},
		},
	}
}

// setup loads configuration, applies the global flag overrides and builds
// the search pipeline
func setup(c *cli.Context) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	applyOverrides(c, cfg)

	zl, err := logger.New(cfg.Logging)
	if err != nil {
		return nil, err
	}
	for _, w := range cfg.Warnings {
		zl.Warn(w)
	}
	return app.New(cfg, zl)
}

// applyOverrides lets explicit flags win over the environment. LOG_LEVEL is
// honoured when set; otherwise the CLI stays at the quiet flag default.
func applyOverrides(c *cli.Context, cfg *config.Config) {
	if path := c.String("data"); path != "" {
		cfg.Dataset.Path = path
	}
	if c.IsSet("log-level") || os.Getenv("LOG_LEVEL") == "" {
		cfg.Logging.Level = c.String("log-level")
	}
	cfg.Logging.Format = "console"
}

func searchCommand(c *cli.Context) error {
	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.Close()

	out := c.App.Writer
	run := func(query string) error {
		req := &model.SearchRequest{Query: query}
		if limit := c.Int("limit"); limit > 0 {
			req.Options = &model.SearchOptions{Limit: limit}
		}
		resp, err := a.Search.Search(c.Context, req)
		if err != nil {
			return err
		}
		if c.Bool("json") {
			return writeJSON(out, resp)
		}
		fmt.Fprintf(out, "Filters: %s\n\n", describeCriteria(resp.Criteria))
		return service.RenderText(out, resp)
	}

	if query := strings.Join(c.Args().Slice(), " "); strings.TrimSpace(query) != "" {
		return run(query)
	}
	return interactive(c.Context, c.App.Reader, out, run)
}

// interactive reads one query per line until EOF, "exit" or "quit"
func interactive(ctx context.Context, in io.Reader, out io.Writer, run func(string) error) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Search> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		query := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(query) {
		case "":
			continue
		case "exit", "quit":
			return nil
		}
		if err := run(query); err != nil {
			if errors.Is(err, context.Canceled) || ctx.Err() != nil {
				return err
			}
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
}

func parseCommand(c *cli.Context) error {
	query := strings.Join(c.Args().Slice(), " ")
	if strings.TrimSpace(query) == "" {
		return errors.New("a query is required")
	}

	a, err := setup(c)
	if err != nil {
		return err
	}
	defer a.Close()

	return writeJSON(c.App.Writer, model.ParseResponse{Query: query, Criteria: a.Search.Parse(query)})
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// describeCriteria renders the present filters on one line
func describeCriteria(c *model.QueryCriteria) string {
	if c.IsEmpty() {
		return "none"
	}
	var parts []string
	if c.BHK != nil {
		parts = append(parts, fmt.Sprintf("BHK=%d", *c.BHK))
	}
	if c.MaxPrice != nil {
		parts = append(parts, "max price="+service.FormatPrice(*c.MaxPrice))
	}
	if c.City != nil {
		parts = append(parts, "city="+*c.City)
	}
	if c.Locality != nil {
		parts = append(parts, "locality="+*c.Locality)
	}
	if c.Status != nil {
		parts = append(parts, "status="+string(*c.Status))
	}
	if c.PropertyType != nil {
		parts = append(parts, "type="+string(*c.PropertyType))
	}
	if c.Furnishing != nil {
		parts = append(parts, "furnishing="+string(*c.Furnishing))
	}
	return strings.Join(parts, ", ")
}

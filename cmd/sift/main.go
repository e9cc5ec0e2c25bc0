// Command sift searches YAML record files with the sift query language,
// either one-shot or as an interactive prompt.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/sift-go/sift"
	"github.com/sift-go/sift/query"
)

// record is one searchable entry of a YAML record file:
//
//	- id: dog
//	  tags: [animal, pet]
//	  icon: paw
type record struct {
	ID   string   `yaml:"id"`
	Tags []string `yaml:"tags"`
	Icon string   `yaml:"icon"`
}

func main() {
	cmd := &cli.Command{
		Name:      "sift",
		Usage:     "incremental multi-criteria search over record files",
		ArgsUsage: "[query]",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "records",
				Aliases:  []string{"r"},
				Usage:    "YAML record `FILE` (repeatable)",
				Required: true,
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "enable debug logging",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "sift:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger := sift.NoopLogger()
	if cmd.Bool("verbose") {
		logger = sift.NewTextLogger(slog.LevelDebug)
	}

	records, err := loadRecords(ctx, cmd.StringSlice("records"))
	if err != nil {
		return err
	}

	s := sift.New[record]().
		Column("id", func(r record) []string { return []string{r.ID} }).
		Column("tag", func(r record) []string { return r.Tags }).
		Column("icon", func(r record) []string { return []string{r.Icon} }).
		SelectAll().
		TieBreak(func(a, b record) bool { return a.ID < b.ID }).
		Logger(logger).
		MustBuild()
	s.Index(records)

	if line := strings.TrimSpace(strings.Join(cmd.Args().Slice(), " ")); line != "" {
		results, err := s.Query(line)
		if err != nil {
			return err
		}
		printResults(os.Stdout, results)
		return nil
	}
	return prompt(s, os.Stdin, os.Stdout)
}

// loadRecords reads and parses every record file concurrently.
func loadRecords(ctx context.Context, paths []string) ([]record, error) {
	g, _ := errgroup.WithContext(ctx)
	perFile := make([][]record, len(paths))
	for i, path := range paths {
		g.Go(func() error {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}
			var recs []record
			if err := yaml.Unmarshal(data, &recs); err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			perFile[i] = recs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	var all []record
	for _, recs := range perFile {
		all = append(all, recs...)
	}
	return all, nil
}

// prompt runs the interactive loop. Bad queries are reported with a caret at
// the offending offset; the previous result set stays on screen.
func prompt(s *sift.Sift[record], in io.Reader, out io.Writer) error {
	fmt.Fprint(out, "> ")
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "exit" || line == "quit" {
			return nil
		}
		results, err := s.Query(line)
		switch {
		case err != nil:
			var se *query.SyntaxError
			if errors.As(err, &se) {
				fmt.Fprintf(out, "  %s\n", line)
				fmt.Fprintf(out, "  %s^ %v\n", strings.Repeat(" ", se.Offset), err)
			} else {
				fmt.Fprintln(out, err)
			}
		default:
			printResults(out, results)
		}
		fmt.Fprint(out, "> ")
	}
	return sc.Err()
}

func printResults(out io.Writer, results []record) {
	if len(results) == 0 {
		fmt.Fprintln(out, "no matches")
		return
	}
	for _, r := range results {
		fmt.Fprintf(out, "%-20s %-12s %s\n", r.ID, r.Icon, strings.Join(r.Tags, ", "))
	}
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	jsonapi "github.com/reoring/jsonapi"
	"github.com/reoring/jsonapi/internal/doccheck"
)

var (
	checkFormat  string
	checkVerbose bool
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Structurally check a JSON:API document",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFormat, "format", "auto", "input format: json, yaml, auto (by extension)")
	checkCmd.Flags().BoolVarP(&checkVerbose, "verbose", "v", false, "log per-entry decode diagnostics")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	doc, err := loadDocument(args[0], checkFormat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jsonapi: %v\n", err)
		return err
	}

	logger := zerolog.Nop()
	if checkVerbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}

	rep := doccheck.Check(doc, logger)
	fmt.Printf("primary: %d  included: %d  decoded: %d\n", rep.Primary, rep.Included, rep.Decoded)
	for _, p := range rep.Problems {
		fmt.Println(p.String())
	}
	if !rep.OK() {
		return fmt.Errorf("%d problem(s) found", len(rep.Problems))
	}
	return nil
}

// loadDocument parses the file into the generic tree, choosing the codec by
// flag or file extension. YAML documents decode to the same map[string]any /
// []any shapes the JSON path produces.
func loadDocument(path, format string) (any, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if format == "auto" {
		switch filepath.Ext(path) {
		case ".yaml", ".yml":
			format = "yaml"
		default:
			format = "json"
		}
	}
	switch format {
	case "yaml":
		var v any
		if err := yaml.Unmarshal(b, &v); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return v, nil
	case "json":
		v, err := jsonapi.ParseBytes(b)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

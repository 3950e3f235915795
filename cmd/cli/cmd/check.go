// Package cmd - check command
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tariff-restrictions/core/input"
	"tariff-restrictions/core/output"
	"tariff-restrictions/core/restriction"
	"tariff-restrictions/internal/config"
	"tariff-restrictions/internal/logging"
)

var (
	checkFormat  string
	checkNoColor bool
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <request-file>",
	Short: "Evaluate charge periods against a tariff restriction",
	Long: `Normalize an OCPI tariff restriction descriptor and evaluate every
charge period in the request against it.

The request file holds the descriptor and the period snapshots:

  {
    "restriction": {"start_time": "08:00", "day_of_week": ["MONDAY"]},
    "periods": [
      {"label": "rush hour", "start_date": "2024-06-03", "start_time": "08:30"}
    ]
  }

Examples:
  tariff-restrictions check request.json
  tariff-restrictions check --format json request.json`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", "", "output format (cli, json), defaults to the configured format")
	checkCmd.Flags().BoolVar(&checkNoColor, "no-color", false, "disable colored output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	req, err := input.Decode(data)
	if err != nil {
		return err
	}
	logging.Debug("decoded check request",
		zap.String("file", path),
		zap.Int("periods", len(req.Periods)))

	restrictions, err := restriction.Collect(req.Restriction)
	if err != nil {
		var fieldErr *restriction.FieldError
		if errors.As(err, &fieldErr) {
			logging.Error("rejected restriction descriptor",
				zap.String("field", fieldErr.Field),
				zap.String("value", fieldErr.Value))
		}
		return fmt.Errorf("invalid restriction: %w", err)
	}

	periods := make([]output.CheckedPeriod, len(req.Periods))
	for i, p := range req.Periods {
		periods[i] = output.CheckedPeriod{
			Label:  p.DisplayLabel(i),
			Period: p.Period(),
		}
	}
	report := output.BuildReport(restrictions, periods)

	cfg := config.Get()
	format := output.Format(checkFormat)
	if checkFormat == "" {
		format = output.Format(cfg.Output.DefaultFormat)
	}
	formatter, err := output.NewFormatter(format, checkNoColor || cfg.Output.NoColor)
	if err != nil {
		return err
	}
	return formatter.Render(os.Stdout, report)
}

// Package cmd - inspect command
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tariff-restrictions/core/ocpi"
	"tariff-restrictions/core/restriction"
	"tariff-restrictions/core/ui"
	"tariff-restrictions/internal/config"
	"tariff-restrictions/internal/logging"
)

var inspectNoColor bool

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect <restriction-file>",
	Short: "Show the normalized form of an OCPI restriction descriptor",
	Long: `Parse an OCPI tariff restriction descriptor and print the ordered
list of atomic predicates it normalizes to, without evaluating anything.

The file holds a single descriptor:

  {"start_time": "22:00", "end_time": "06:00", "min_kwh": 10.5}

Examples:
  tariff-restrictions inspect restriction.json`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectNoColor, "no-color", false, "disable colored output")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read restriction file: %w", err)
	}

	var descriptor ocpi.TariffRestriction
	if err := json.Unmarshal(data, &descriptor); err != nil {
		return fmt.Errorf("invalid restriction descriptor: %w", err)
	}

	restrictions, err := restriction.Collect(descriptor)
	if err != nil {
		var fieldErr *restriction.FieldError
		if errors.As(err, &fieldErr) {
			logging.Error("rejected restriction descriptor",
				zap.String("field", fieldErr.Field),
				zap.String("value", fieldErr.Value))
		}
		return fmt.Errorf("invalid restriction: %w", err)
	}
	logging.Debug("normalized restriction descriptor",
		zap.String("file", path),
		zap.Int("restrictions", len(restrictions)))

	writer := ui.NewWriter(os.Stdout, inspectNoColor || config.Get().Output.NoColor)
	writer.Header("Restrictions")
	if len(restrictions) == 0 {
		writer.Println("none: the tariff element always applies")
		return nil
	}

	table := writer.NewTable("KIND", "PREDICATE")
	for _, r := range restrictions {
		table.AddRow(string(r.Kind()), r.String())
	}
	table.Render()
	writer.Println("")
	writer.Success("%d restrictions", len(restrictions))
	return nil
}

package output

import (
	"io"

	"tariff-restrictions/core/ui"
)

// cliFormatter renders a report as human-readable terminal output.
type cliFormatter struct {
	noColor bool
}

func (f *cliFormatter) Format() Format {
	return FormatCLI
}

func (f *cliFormatter) Render(w io.Writer, report *Report) error {
	writer := ui.NewWriter(w, f.noColor)

	writer.Header("Restrictions")
	if len(report.Restrictions) == 0 {
		writer.Println("none: the tariff element always applies")
	} else {
		table := writer.NewTable("KIND", "PREDICATE")
		for _, r := range report.Restrictions {
			table.AddRow(r.Kind, r.Predicate)
		}
		table.Render()
	}

	for _, p := range report.Periods {
		writer.Header(p.Label + " (" + p.Start + ")")
		if len(p.Outcomes) > 0 {
			table := writer.NewTable("KIND", "OUTCOME")
			for _, o := range p.Outcomes {
				table.AddRow(o.Kind, o.Outcome)
			}
			table.Render()
			writer.Println("")
		}
		if p.Counts.Matched > 0 {
			writer.Success("%d matched", p.Counts.Matched)
		}
		if p.Counts.NotMatched > 0 {
			writer.Error("%d not matched", p.Counts.NotMatched)
		}
		if p.Counts.Indeterminate > 0 {
			writer.Warning("%d indeterminate", p.Counts.Indeterminate)
		}
	}

	return nil
}

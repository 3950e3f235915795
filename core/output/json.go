package output

import (
	"encoding/json"
	"io"
)

// jsonFormatter renders a report as indented JSON for machine consumers.
type jsonFormatter struct{}

func (f *jsonFormatter) Format() Format {
	return FormatJSON
}

func (f *jsonFormatter) Render(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

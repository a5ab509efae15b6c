package mailfleet

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSV renders the outcome log as a table, one row per recipient, in
// run order. Columns: company, email, status, message.
func (r Results) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"company", "email", "status", "message"}); err != nil {
		return fmt.Errorf("writing results header: %w", err)
	}
	for _, o := range r {
		if err := cw.Write([]string{o.Label, o.Address, string(o.Status), o.Detail}); err != nil {
			return fmt.Errorf("writing result row for %s: %w", o.Address, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

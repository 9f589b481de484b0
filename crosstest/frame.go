package crosstest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// csvHeader is the fixed column order of Frame.WriteCSV.
var csvHeader = []string{"spec", "env", "group", "r", "p_value", "permutations"}

// WriteCSV renders the frame as header-first CSV in row order. Statistics
// round-trip via strconv 'g' formatting.
func (f Frame) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, r := range f.Rows {
		rec := []string{
			r.Spec,
			r.Env,
			r.Group,
			strconv.FormatFloat(r.Statistic, 'g', -1, 64),
			strconv.FormatFloat(r.PValue, 'g', -1, 64),
			strconv.Itoa(r.Permutations),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Len reports the number of tidy rows.
func (f Frame) Len() int { return len(f.Rows) }

// Package report prints human-readable summaries of what the record store
// currently holds.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/Lumos-Labs-HQ/seedling/internal/store"
)

// Counts writes one line per record type with its current row count, grouped
// by module, followed by overall totals. Singles and types whose backing
// table is missing are reported but never counted as errors.
func Counts(st store.Store, modules []string, w io.Writer) error {
	metas, err := st.RecordTypes(modules)
	if err != nil {
		return fmt.Errorf("listing record types: %w", err)
	}

	bold := color.New(color.Bold)
	dim := color.New(color.Faint)

	total := 0
	populated := 0
	module := ""
	for _, meta := range metas {
		if meta.Module != module {
			module = meta.Module
			fmt.Fprintf(w, "\n%s\n", bold.Sprint(module))
		}

		label := fmt.Sprintf("  %-40s", meta.Name)
		if meta.IsSingle {
			dim.Fprintf(w, "%s (single)\n", label)
			continue
		}

		count, err := st.Count(meta.Name, nil)
		if err != nil {
			if errors.Is(err, store.ErrTableMissing) {
				dim.Fprintf(w, "%s (no table)\n", label)
				continue
			}
			return fmt.Errorf("counting %s: %w", meta.Name, err)
		}
		fmt.Fprintf(w, "%s %d\n", label, count)
		total += count
		if count > 0 {
			populated++
		}
	}

	fmt.Fprintf(w, "\nTotal: %d records across %d populated types\n", total, populated)
	return nil
}

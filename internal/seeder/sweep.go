package seeder

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// SweepPolicy decides which record types a batch sweep seeds based on their
// current row count.
type SweepPolicy int

const (
	// SeedEmpty seeds a record type only when it has no rows at all.
	SeedEmpty SweepPolicy = iota
	// SeedSparse seeds record types with zero or one row.
	SeedSparse
)

func (p SweepPolicy) String() string {
	if p == SeedSparse {
		return "sparse"
	}
	return "empty"
}

// ParsePolicy maps a policy name from the CLI to its SweepPolicy.
func ParsePolicy(name string) (SweepPolicy, error) {
	switch name {
	case "empty":
		return SeedEmpty, nil
	case "sparse":
		return SeedSparse, nil
	}
	return SeedEmpty, fmt.Errorf("unknown seed policy %q (want empty or sparse)", name)
}

func (p SweepPolicy) wants(count int) bool {
	if p == SeedSparse {
		return count <= 1
	}
	return count == 0
}

// SweepSummary tallies one batch sweep.
type SweepSummary struct {
	Created int
	Skipped int
	Errors  int
}

// Sweep walks every record type of the given modules and seeds one record
// via the autofill engine wherever the policy's count condition holds. Child
// tables and singles are skipped; a count failure or a failed insert is
// reported on its own line and never halts the sweep. One status line per
// record type is written to w, grouped by module.
func (s *Seeder) Sweep(policy SweepPolicy, modules []string, w io.Writer) (*SweepSummary, error) {
	metas, err := s.store.RecordTypes(modules)
	if err != nil {
		return nil, fmt.Errorf("listing record types: %w", err)
	}

	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)
	red := color.New(color.FgRed)

	sum := &SweepSummary{}
	module := ""
	for _, meta := range metas {
		if meta.Module != module {
			module = meta.Module
			fmt.Fprintf(w, "\n%s\n", color.New(color.Bold).Sprint(module))
		}

		label := fmt.Sprintf("  %-40s", meta.Name)
		switch {
		case meta.IsChildTable:
			sum.Skipped++
			yellow.Fprintf(w, "%s skipped (child table)\n", label)
			continue
		case meta.IsSingle:
			sum.Skipped++
			yellow.Fprintf(w, "%s skipped (single)\n", label)
			continue
		}

		count, err := s.store.Count(meta.Name, nil)
		if err != nil {
			s.store.Rollback()
			sum.Errors++
			red.Fprintf(w, "%s COUNT ERROR: %v\n", label, err)
			continue
		}
		if !policy.wants(count) {
			sum.Skipped++
			yellow.Fprintf(w, "%s skipped (%d records)\n", label, count)
			continue
		}

		res := s.SeedOne(meta.Name)
		switch res.Status {
		case SeedCreated:
			sum.Created++
			green.Fprintf(w, "%s created %s\n", label, res.Name)
		case SeedSkipped:
			sum.Skipped++
			yellow.Fprintf(w, "%s skipped (%s)\n", label, res.Reason)
		default:
			sum.Errors++
			red.Fprintf(w, "%s %s\n", label, res.Reason)
		}
	}

	fmt.Fprintf(w, "\nDone (%s): %d created, %d skipped, %d errors\n",
		policy, sum.Created, sum.Skipped, sum.Errors)
	return sum, nil
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/hostcmd/cmdgen/internal/codegen/scanner"
)

type Sets struct {
	Sets string `help:"Directory holding the published command-set definitions" default:"pkg/commandsets" env:"CMDGEN_SETS"`
}

// Run lists the discovered command sets with their identifiers and value
// counts.
func (c *Sets) Run(logger *slog.Logger) error {
	sets, err := scanner.ScanCommandSets(c.Sets)
	if err != nil {
		return err
	}
	logger.Debug("Scanned command sets", "dir", c.Sets, "sets", len(sets))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SET\tID\tVALUES")
	for _, s := range sets {
		fmt.Fprintf(w, "%s\t%s\t%d\n", s.Name, s.ID, len(s.Values))
	}
	return w.Flush()
}

// Package resolver fills record names from the host's live command table.
package resolver

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/hostcmd/cmdgen/internal/codegen/meta"
	"github.com/hostcmd/cmdgen/internal/codegen/registry"
)

// Stats summarizes one resolution pass.
type Stats struct {
	Resolved  int // live entries whose name was written to a record
	Unnamed   int // live entries skipped for having no display name
	Unmatched int // live entries with no published enumeration value
}

// Resolve walks the live command table and names the matching records.
// Entries without a display name are skipped; entries matching no known
// record are counted and otherwise ignored, since not every live command has
// a published enumeration. A malformed owner identifier aborts the run.
// uuid.Parse accepts every conventional rendering of the owner text, so case
// and punctuation differences never cause a miss.
func Resolve(table *meta.Table, cmds []registry.Command) (Stats, error) {
	var stats Stats
	for _, cmd := range cmds {
		if cmd.Name == "" {
			stats.Unnamed++
			continue
		}
		owner, err := uuid.Parse(cmd.Owner)
		if err != nil {
			return stats, fmt.Errorf("command %q: bad owner identifier %q: %w", cmd.Name, cmd.Owner, err)
		}
		rec, ok := table.Lookup(meta.Key{Set: owner, Value: cmd.ID})
		if !ok {
			stats.Unmatched++
			continue
		}
		// Last write wins if the host ever reports the same key twice.
		rec.Name = cmd.Name
		stats.Resolved++
	}
	return stats, nil
}

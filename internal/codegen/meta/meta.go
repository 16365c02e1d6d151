// Package meta holds the record table shared between the collector, the
// resolver and the language generators, plus the deterministic ordering and
// deduplication rules every generated file follows.
package meta

import (
	"sort"

	"github.com/google/uuid"

	"github.com/hostcmd/cmdgen/internal/codegen/common"
	"github.com/hostcmd/cmdgen/internal/codegen/scanner"
)

// Key identifies one command definition: the owning set plus the integer id.
// Command ids are only unique within their set.
type Key struct {
	Set   uuid.UUID
	Value int64
}

// Record is one candidate command identifier. Name stays empty until the
// resolver finds a live command at the same key; unnamed records never reach
// the generated output.
type Record struct {
	SetID   uuid.UUID
	SetName string
	Value   int64
	Name    string
}

// Table maps keys to records. Built once from the scanned sets, names filled
// in by the resolver, then read-only during emission. At most one record
// exists per key.
type Table struct {
	records map[Key]*Record
}

func NewTable() *Table {
	return &Table{records: make(map[Key]*Record)}
}

// FromSets builds the record table for every (set, value) pair.
func FromSets(sets []scanner.CommandSet) *Table {
	t := NewTable()
	for _, s := range sets {
		for _, v := range s.Values {
			t.Put(&Record{SetID: s.ID, SetName: s.Name, Value: v})
		}
	}
	return t
}

func (t *Table) Put(r *Record) {
	t.records[Key{Set: r.SetID, Value: r.Value}] = r
}

func (t *Table) Lookup(k Key) (*Record, bool) {
	r, ok := t.records[k]
	return r, ok
}

func (t *Table) Len() int { return len(t.records) }

// Owner is one command set that contributed at least one named record. Name
// doubles as the generated constant identifier.
type Owner struct {
	Name string
	ID   uuid.UUID
}

// Accessor is one generated command binding.
type Accessor struct {
	Doc   string // resolved display name, verbatim
	Ident string // display name with '.' replaced by '_'
	Owner string // owner constant identifier
	Value int64
}

// Emission is the fully ordered, deduplicated model the language generators
// render. Computing it once per run keeps the duplicate-drop reporting to a
// single pass regardless of how many languages emit.
type Emission struct {
	Owners    []Owner
	Accessors []Accessor
}

// Emit derives the emission model. The second return lists the accessors
// dropped for duplicate identifiers, for the caller to report.
func (t *Table) Emit() (Emission, []Accessor) {
	accessors, dropped := t.Accessors()
	return Emission{Owners: t.Owners(), Accessors: accessors}, dropped
}

// Owners returns one entry per distinct set with at least one named record,
// ordered by set name ascending.
func (t *Table) Owners() []Owner {
	seen := make(map[uuid.UUID]bool)
	var owners []Owner
	for _, r := range t.records {
		if r.Name == "" || seen[r.SetID] {
			continue
		}
		seen[r.SetID] = true
		owners = append(owners, Owner{Name: r.SetName, ID: r.SetID})
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i].Name < owners[j].Name })
	return owners
}

// Accessors returns the bindings to emit, ordered by (name, value) ascending
// with exactly one entry per sanitized identifier: the first record in that
// order wins. The second slice lists the records dropped because an earlier
// one claimed the same identifier, so callers can surface the collision.
func (t *Table) Accessors() (accessors, dropped []Accessor) {
	named := make([]*Record, 0, len(t.records))
	for _, r := range t.records {
		if r.Name != "" {
			named = append(named, r)
		}
	}
	sort.Slice(named, func(i, j int) bool {
		if named[i].Name != named[j].Name {
			return named[i].Name < named[j].Name
		}
		return named[i].Value < named[j].Value
	})

	used := make(map[string]bool)
	for _, r := range named {
		a := Accessor{
			Doc:   r.Name,
			Ident: common.SanitizeName(r.Name),
			Owner: r.SetName,
			Value: r.Value,
		}
		if used[a.Ident] {
			dropped = append(dropped, a)
			continue
		}
		used[a.Ident] = true
		accessors = append(accessors, a)
	}
	return accessors, dropped
}

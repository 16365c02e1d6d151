package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanPublishedCommandSets(t *testing.T) {
	// Relative path from scanner package to the shipped definitions
	setsPath := filepath.Join("..", "..", "..", "pkg", "commandsets")

	sets, err := ScanCommandSets(setsPath)
	if err != nil {
		t.Fatalf("Failed to scan command sets: %v", err)
	}

	if len(sets) != 3 {
		t.Fatalf("Expected 3 command sets, got %d", len(sets))
	}

	// Sorted by name: Debug, Editor, Standard
	if sets[0].Name != "DebugCmdID" || sets[1].Name != "EditorCmdID" || sets[2].Name != "StandardCmdID" {
		t.Errorf("Unexpected set order: %s, %s, %s", sets[0].Name, sets[1].Name, sets[2].Name)
	}

	standard := sets[2]
	if len(standard.Values) != 11 {
		t.Errorf("Expected 11 standard values, got %d", len(standard.Values))
	}

	// Base-offset values must reduce to integers: debugBase(0x100) + 1 = 257
	debug := sets[0]
	if debug.Values[0] != 257 {
		t.Errorf("Expected first debug value 257, got %d", debug.Values[0])
	}

	t.Logf("Found %d sets with %d, %d, %d values",
		len(sets), len(sets[0].Values), len(sets[1].Values), len(sets[2].Values))
}

func writeFixture(t *testing.T, name, src string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(src), 0o644))
	return dir
}

func TestScanAnnotationForms(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want string
	}{
		{"canonical", "11111111-2222-3333-4444-555555555555", "11111111-2222-3333-4444-555555555555"},
		{"uppercase", "AAAAAAAA-BBBB-CCCC-DDDD-EEEEEEEEEEEE", "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"},
		{"braces", "{11111111-2222-3333-4444-555555555555}", "11111111-2222-3333-4444-555555555555"},
		{"hyphenless", "11111111222233334444555555555555", "11111111-2222-3333-4444-555555555555"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeFixture(t, "sets.go", `package fixture

// cmdgen:set `+tt.tag+`
type FixtureCmdID int

const FixtureOne FixtureCmdID = 1
`)
			sets, err := ScanCommandSets(dir)
			require.NoError(t, err)
			require.Len(t, sets, 1)
			assert.Equal(t, uuid.MustParse(tt.want), sets[0].ID)
			assert.Equal(t, []int64{1}, sets[0].Values)
		})
	}
}

func TestScanMissingAnnotation(t *testing.T) {
	dir := writeFixture(t, "sets.go", `package fixture

type OrphanCmdID int

const OrphanOne OrphanCmdID = 1
`)
	_, err := ScanCommandSets(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing cmdgen:set annotation")
}

func TestScanBadSetIdentifier(t *testing.T) {
	dir := writeFixture(t, "sets.go", `package fixture

// cmdgen:set not-a-uuid
type BrokenCmdID int
`)
	_, err := ScanCommandSets(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad set identifier")
}

func TestScanNoSetsFound(t *testing.T) {
	dir := writeFixture(t, "other.go", `package fixture

const Unrelated = 42
`)
	_, err := ScanCommandSets(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no *CmdID command-set types found")
}

func TestScanValueExpressions(t *testing.T) {
	dir := writeFixture(t, "sets.go", `package fixture

// cmdgen:set 99999999-8888-7777-6666-555555555555
type ExprCmdID int

const exprBase = 1 << 8

const (
	ExprA ExprCmdID = exprBase + 1
	ExprB ExprCmdID = exprBase | 0x10
	ExprC ExprCmdID = ExprCmdID(12)
	ExprD ExprCmdID = -3
)
`)
	sets, err := ScanCommandSets(dir)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, []int64{-3, 12, 257, 272}, sets[0].Values)
}

func TestScanIotaRun(t *testing.T) {
	dir := writeFixture(t, "sets.go", `package fixture

// cmdgen:set 99999999-8888-7777-6666-555555555555
type IotaCmdID int

const (
	IotaA IotaCmdID = iota
	IotaB
	IotaC
)
`)
	sets, err := ScanCommandSets(dir)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, []int64{0, 1, 2}, sets[0].Values)
}

func TestScanIotaExpressions(t *testing.T) {
	// Offset and shifted iota runs, plus a second block to confirm the iota
	// index resets per const block.
	dir := writeFixture(t, "sets.go", `package fixture

// cmdgen:set 99999999-8888-7777-6666-555555555555
type IotaCmdID int

const (
	IotaOffsetA IotaCmdID = iota + 100
	IotaOffsetB
	IotaOffsetC
)

const (
	IotaFlagA IotaCmdID = 1 << iota
	IotaFlagB
	IotaFlagC
)
`)
	sets, err := ScanCommandSets(dir)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, []int64{1, 2, 4, 100, 101, 102}, sets[0].Values)
}

func TestScanIotaInEnvironment(t *testing.T) {
	// Untyped iota constants must be usable as bases for set values.
	dir := writeFixture(t, "sets.go", `package fixture

const (
	groupShell = iota * 100
	groupTools
)

// cmdgen:set 99999999-8888-7777-6666-555555555555
type EnvCmdID int

const (
	EnvShellExit  EnvCmdID = groupShell + 1
	EnvToolsBuild EnvCmdID = groupTools + 1
)
`)
	sets, err := ScanCommandSets(dir)
	require.NoError(t, err)
	require.Len(t, sets, 1)
	assert.Equal(t, []int64{1, 101}, sets[0].Values)
}

func TestScanDuplicateValuesCollapse(t *testing.T) {
	dir := writeFixture(t, "sets.go", `package fixture

// cmdgen:set 99999999-8888-7777-6666-555555555555
type DupCmdID int

const (
	DupA     DupCmdID = 7
	DupAlias DupCmdID = 7
)
`)
	sets, err := ScanCommandSets(dir)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, sets[0].Values)
}

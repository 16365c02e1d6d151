// Package scanner discovers the host's published command-set enumerations in
// Go source. A command set is an integer type whose name ends in SetSuffix,
// carrying a cmdgen:set annotation with the set's 128-bit identifier. Every
// constant declared with the set's type is one published command value.
package scanner

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// SetSuffix is the naming convention for command-set enumeration types.
const SetSuffix = "CmdID"

// setTagPattern matches: cmdgen:set <uuid>
var setTagPattern = regexp.MustCompile(`cmdgen:set\s+(\S+)`)

// CommandSet is one published enumeration: its type name, its owning
// identifier and every declared value, sorted ascending.
type CommandSet struct {
	Name   string
	ID     uuid.UUID
	Values []int64
}

// ScanCommandSets parses every Go file in dir and returns the command sets
// found, sorted by name. Zero discovered sets means the host integration is
// missing and is reported as an error.
func ScanCommandSets(dir string) ([]CommandSet, error) {
	files, err := parseDir(dir)
	if err != nil {
		return nil, err
	}

	sets, err := collectSetTypes(files)
	if err != nil {
		return nil, err
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("no *%s command-set types found in %s", SetSuffix, dir)
	}

	env := collectIntConstants(files)
	if err := collectSetValues(files, sets, env); err != nil {
		return nil, err
	}

	result := make([]CommandSet, 0, len(sets))
	for _, s := range sets {
		sort.Slice(s.Values, func(i, j int) bool { return s.Values[i] < s.Values[j] })
		s.Values = dedupeValues(s.Values)
		result = append(result, *s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func parseDir(dir string) ([]*ast.File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read command-set directory %s: %w", dir, err)
	}

	fset := token.NewFileSet()
	var files []*ast.File
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
			continue
		}
		path := filepath.Join(dir, name)
		file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		files = append(files, file)
	}
	return files, nil
}

func collectSetTypes(files []*ast.File) (map[string]*CommandSet, error) {
	sets := make(map[string]*CommandSet)
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.TYPE {
				continue
			}
			for _, spec := range genDecl.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || !strings.HasSuffix(ts.Name.Name, SetSuffix) {
					continue
				}
				id, err := setTag(ts.Doc, genDecl.Doc)
				if err != nil {
					return nil, fmt.Errorf("command set %s: %w", ts.Name.Name, err)
				}
				sets[ts.Name.Name] = &CommandSet{Name: ts.Name.Name, ID: id}
			}
		}
	}
	return sets, nil
}

// setTag extracts the set identifier from a cmdgen:set doc comment. Any
// textual rendering uuid.Parse accepts is fine (braces, hyphenless, case).
func setTag(docs ...*ast.CommentGroup) (uuid.UUID, error) {
	for _, doc := range docs {
		if doc == nil {
			continue
		}
		for _, c := range doc.List {
			m := setTagPattern.FindStringSubmatch(c.Text)
			if m == nil {
				continue
			}
			id, err := uuid.Parse(m[1])
			if err != nil {
				return uuid.Nil, fmt.Errorf("bad set identifier %q: %w", m[1], err)
			}
			return id, nil
		}
	}
	return uuid.Nil, errors.New("missing cmdgen:set annotation")
}

// collectIntConstants builds a name -> value environment from every constant
// whose value reduces to an integer, so set values may reference shared base
// offsets. Runs to a fixed point to tolerate declaration order across files.
// The iota index is tracked per const block, and a spec without expressions
// repeats the previous spec's list, matching Go const semantics.
func collectIntConstants(files []*ast.File) map[string]int64 {
	env := make(map[string]int64)
	for {
		added := false
		for _, file := range files {
			for _, decl := range file.Decls {
				genDecl, ok := decl.(*ast.GenDecl)
				if !ok || genDecl.Tok != token.CONST {
					continue
				}
				var carried []ast.Expr
				iotaVal := int64(0)
				for _, spec := range genDecl.Specs {
					vs, ok := spec.(*ast.ValueSpec)
					if !ok {
						continue
					}
					if len(vs.Values) > 0 {
						carried = vs.Values
					}
					exprs := vs.Values
					if len(exprs) == 0 {
						exprs = carried
					}
					for i, name := range vs.Names {
						if i >= len(exprs) {
							continue
						}
						if _, done := env[name.Name]; done {
							continue
						}
						if v, ok := evalInt(exprs[i], env, iotaVal); ok {
							env[name.Name] = v
							added = true
						}
					}
					iotaVal++
				}
			}
		}
		if !added {
			return env
		}
	}
}

func collectSetValues(files []*ast.File, sets map[string]*CommandSet, env map[string]int64) error {
	for _, file := range files {
		for _, decl := range file.Decls {
			genDecl, ok := decl.(*ast.GenDecl)
			if !ok || genDecl.Tok != token.CONST {
				continue
			}
			var curType string
			var carried []ast.Expr
			iotaVal := int64(0)
			for _, spec := range genDecl.Specs {
				vs, ok := spec.(*ast.ValueSpec)
				if !ok {
					continue
				}
				if vs.Type != nil {
					curType = ""
					if ident, ok := vs.Type.(*ast.Ident); ok {
						curType = ident.Name
					}
					carried = vs.Values
				} else if len(vs.Values) > 0 {
					// Untyped value resets the carried const-block type.
					curType = ""
					carried = vs.Values
				}
				// A spec without expressions repeats the previous spec's
				// list with the current iota, per Go const semantics.
				exprs := vs.Values
				if len(exprs) == 0 {
					exprs = carried
				}
				set, ok := sets[curType]
				if !ok {
					iotaVal++
					continue
				}
				for i, name := range vs.Names {
					if i >= len(exprs) {
						return fmt.Errorf("command %s: missing value expression", name.Name)
					}
					v, ok := evalInt(exprs[i], env, iotaVal)
					if !ok {
						return fmt.Errorf("command %s: value does not reduce to an integer", name.Name)
					}
					set.Values = append(set.Values, v)
				}
				iotaVal++
			}
		}
	}
	return nil
}

// evalInt reduces a constant expression to an integer. iotaVal is the iota
// index of the enclosing ValueSpec within its const block.
func evalInt(expr ast.Expr, env map[string]int64, iotaVal int64) (int64, bool) {
	switch e := expr.(type) {
	case *ast.BasicLit:
		if e.Kind != token.INT {
			return 0, false
		}
		v, err := strconv.ParseInt(e.Value, 0, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	case *ast.Ident:
		if e.Name == "iota" {
			return iotaVal, true
		}
		v, ok := env[e.Name]
		return v, ok
	case *ast.ParenExpr:
		return evalInt(e.X, env, iotaVal)
	case *ast.CallExpr:
		// Conversions like StandardCmdID(221).
		if len(e.Args) == 1 {
			return evalInt(e.Args[0], env, iotaVal)
		}
		return 0, false
	case *ast.UnaryExpr:
		v, ok := evalInt(e.X, env, iotaVal)
		if !ok {
			return 0, false
		}
		switch e.Op {
		case token.SUB:
			return -v, true
		case token.ADD:
			return v, true
		}
		return 0, false
	case *ast.BinaryExpr:
		x, okx := evalInt(e.X, env, iotaVal)
		y, oky := evalInt(e.Y, env, iotaVal)
		if !okx || !oky {
			return 0, false
		}
		switch e.Op {
		case token.ADD:
			return x + y, true
		case token.SUB:
			return x - y, true
		case token.MUL:
			return x * y, true
		case token.OR:
			return x | y, true
		case token.AND:
			return x & y, true
		case token.XOR:
			return x ^ y, true
		case token.SHL:
			if y >= 0 && y < 64 {
				return x << uint(y), true
			}
		case token.SHR:
			if y >= 0 && y < 64 {
				return x >> uint(y), true
			}
		}
		return 0, false
	}
	return 0, false
}

func dedupeValues(values []int64) []int64 {
	out := values[:0]
	for i, v := range values {
		if i > 0 && v == values[i-1] {
			continue
		}
		out = append(out, v)
	}
	return out
}

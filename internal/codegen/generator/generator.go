package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/hostcmd/cmdgen/internal/codegen/generator/csharp"
	"github.com/hostcmd/cmdgen/internal/codegen/generator/typescript"
	"github.com/hostcmd/cmdgen/internal/codegen/meta"
	"github.com/hostcmd/cmdgen/internal/codegen/registry"
	"github.com/hostcmd/cmdgen/internal/codegen/resolver"
	"github.com/hostcmd/cmdgen/internal/codegen/scanner"
)

// Config carries the inputs of one generation run.
type Config struct {
	SetsDir   string // directory holding the published command-set definitions
	Registry  string // host command export file
	OutputDir string
	Namespace string // namespace for C# bindings
}

// Generator orchestrates binding generation for all target languages.
type Generator struct {
	cfg    Config
	logger *slog.Logger
}

// LanguageGenerator emits bindings for one language into outputDir.
type LanguageGenerator func(logger *slog.Logger, outputDir, namespace string, em meta.Emission) error

var generators = map[string]LanguageGenerator{
	"csharp":     csharp.Generate,
	"typescript": typescript.Generate,
}

func New(cfg Config, logger *slog.Logger) *Generator {
	return &Generator{cfg: cfg, logger: logger}
}

// GenAll collects once and emits bindings for every supported language in a
// fixed order.
func (g *Generator) GenAll() error {
	table, err := g.Collect()
	if err != nil {
		return err
	}
	em := g.emission(table)
	langs := make([]string, 0, len(generators))
	for lang := range generators {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		if err := g.generate(lang, em); err != nil {
			return err
		}
	}
	return nil
}

// GenerateLang runs the binding generator for the provided language key.
func (g *Generator) GenerateLang(lang string) error {
	if _, ok := generators[lang]; !ok {
		var supported []string
		for k := range generators {
			supported = append(supported, k)
		}
		sort.Strings(supported)
		return fmt.Errorf("unsupported language '%s' (supported: %v)", lang, supported)
	}
	table, err := g.Collect()
	if err != nil {
		return err
	}
	return g.generate(lang, g.emission(table))
}

// Collect scans the published command sets, loads the live command export
// and resolves display names. The returned table is ready for emission.
func (g *Generator) Collect() (*meta.Table, error) {
	g.logger.Debug("Scanning command-set definitions", "dir", g.cfg.SetsDir)
	sets, err := scanner.ScanCommandSets(g.cfg.SetsDir)
	if err != nil {
		return nil, fmt.Errorf("collect command sets: %w", err)
	}
	table := meta.FromSets(sets)
	g.logger.Info("Collected command sets", "sets", len(sets), "values", table.Len())

	cmds, err := registry.Load(g.cfg.Registry)
	if err != nil {
		return nil, fmt.Errorf("load live command table: %w", err)
	}
	g.logger.Info("Loaded live command table", "commands", len(cmds))

	stats, err := resolver.Resolve(table, cmds)
	if err != nil {
		return nil, err
	}
	g.logger.Info("Resolved command names",
		"resolved", stats.Resolved,
		"unnamed", stats.Unnamed,
		"unmatched", stats.Unmatched)
	return table, nil
}

// emission derives the shared emission model and reports each duplicate-name
// drop exactly once per run, however many languages emit afterwards.
func (g *Generator) emission(table *meta.Table) meta.Emission {
	em, dropped := table.Emit()
	for _, d := range dropped {
		g.logger.Warn("Dropping duplicate command name",
			"name", d.Doc, "owner", d.Owner, "value", d.Value)
	}
	return em
}

func (g *Generator) generate(lang string, em meta.Emission) error {
	g.logger.Info("Generating command bindings", "language", lang)

	outputPath := filepath.Join(g.cfg.OutputDir, lang)
	if err := os.MkdirAll(outputPath, 0o755); err != nil {
		return fmt.Errorf("create %s output directory: %w", lang, err)
	}

	if err := generators[lang](g.logger, outputPath, g.cfg.Namespace, em); err != nil {
		return fmt.Errorf("generate %s bindings: %w", lang, err)
	}

	g.logger.Info("Binding generation complete", "language", lang, "output", outputPath)
	return nil
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/hostcmd/cmdgen/internal/codegen/generator"
)

type Generate struct {
	Registry  string `arg:"" help:"Host command export (.json, .yaml or .toml)" type:"existingfile"`
	Sets      string `help:"Directory holding the published command-set definitions" default:"pkg/commandsets" env:"CMDGEN_SETS"`
	Output    string `help:"Output directory for generated bindings" default:"./bindings" env:"CMDGEN_OUTPUT"`
	Lang      string `help:"Target language: csharp, typescript, or 'all'" default:"all" enum:"csharp,typescript,all" env:"CMDGEN_LANG"`
	Namespace string `help:"Namespace for C# bindings" default:"Host.Client.Commands" env:"CMDGEN_NAMESPACE"`
}

// Run is called by kong when the generate command is executed.
func (c *Generate) Run(logger *slog.Logger) error {
	logger.Info("Starting command binding generation",
		"registry", c.Registry, "lang", c.Lang, "output", c.Output)

	gen := generator.New(generator.Config{
		SetsDir:   c.Sets,
		Registry:  c.Registry,
		OutputDir: c.Output,
		Namespace: c.Namespace,
	}, logger)

	var err error
	if c.Lang == "all" {
		err = gen.GenAll()
	} else {
		err = gen.GenerateLang(c.Lang)
	}
	if err != nil {
		return err
	}

	// Interactive runs get a plain pointer to the result; piped output stays
	// machine-readable log lines only.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Printf("generated %s bindings in %s\n", c.Lang, c.Output)
	}
	return nil
}

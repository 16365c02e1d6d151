package csharp

import (
	"io"
	"log/slog"
	"path/filepath"
	"text/template"

	"github.com/hostcmd/cmdgen/internal/codegen/common"
	"github.com/hostcmd/cmdgen/internal/codegen/meta"
)

const (
	bindingsFile = "CommandIds.g.cs"
	typeFile     = "CommandId.g.cs"
)

// Generate writes the C# command binding files: the CommandId value type and
// one static class binding every resolved command. Output is byte-identical
// for identical host state.
func Generate(logger *slog.Logger, outputDir, namespace string, em meta.Emission) error {
	data := struct {
		Namespace string
		Owners    []meta.Owner
		Accessors []meta.Accessor
	}{
		Namespace: namespace,
		Owners:    em.Owners,
		Accessors: em.Accessors,
	}

	funcMap := template.FuncMap{"fileHeader": writeFileHeader}

	typePath := filepath.Join(outputDir, typeFile)
	tmpl := template.Must(template.New("commandId").Funcs(funcMap).Parse(commandIDTemplate))
	if err := common.WriteFileAtomic(typePath, func(w io.Writer) error {
		return tmpl.Execute(w, data)
	}); err != nil {
		return err
	}

	bindingsPath := filepath.Join(outputDir, bindingsFile)
	tmpl = template.Must(template.New("bindings").Funcs(funcMap).Parse(bindingsTemplate))
	if err := common.WriteFileAtomic(bindingsPath, func(w io.Writer) error {
		return tmpl.Execute(w, data)
	}); err != nil {
		return err
	}

	logger.Info("Generated command bindings",
		"path", bindingsPath, "owners", len(data.Owners), "commands", len(data.Accessors))
	return nil
}

func writeFileHeader() string { return common.FileHeader("//") }

const commandIDTemplate = `{{fileHeader}}using System;

namespace {{.Namespace}};

/// <summary>
/// A command identifier: the owning command set plus the integer id.
/// Ids are only unique within their set.
/// </summary>
public readonly struct CommandId
{
    public CommandId(Guid set, long id)
    {
        Set = set;
        Id = id;
    }

    public Guid Set { get; }

    public long Id { get; }

    public override string ToString() => $"{Set:B}:{Id}";
}
`

const bindingsTemplate = `{{fileHeader}}using System;

namespace {{.Namespace}};

/// <summary>
/// Command identifiers resolved against the host command table.
/// </summary>
public static class CommandIds
{
{{range .Owners}}    public static readonly Guid {{.Name}} = new Guid("{{.ID}}");
{{end}}{{range .Accessors}}
    /// <summary>{{.Doc}}</summary>
    public static CommandId {{.Ident}} => new CommandId({{.Owner}}, {{.Value}});
{{end}}}
`

package typescript

import (
	"io"
	"log/slog"
	"path/filepath"
	"text/template"

	"github.com/hostcmd/cmdgen/internal/codegen/common"
	"github.com/hostcmd/cmdgen/internal/codegen/meta"
)

const bindingsFileTS = "CommandIds.ts"

// Generate writes the TypeScript command bindings. The namespace argument is
// unused here; TypeScript scoping comes from the module itself.
func Generate(logger *slog.Logger, outputDir, _ string, em meta.Emission) error {
	data := struct {
		Owners    []meta.Owner
		Accessors []meta.Accessor
	}{
		Owners:    em.Owners,
		Accessors: em.Accessors,
	}

	funcMap := template.FuncMap{"fileHeaderTS": writeFileHeaderTS}
	tmpl := template.Must(template.New("bindings").Funcs(funcMap).Parse(bindingsTemplateTS))

	path := filepath.Join(outputDir, bindingsFileTS)
	if err := common.WriteFileAtomic(path, func(w io.Writer) error {
		return tmpl.Execute(w, data)
	}); err != nil {
		return err
	}

	logger.Info("Generated command bindings",
		"path", path, "owners", len(data.Owners), "commands", len(data.Accessors))
	return nil
}

func writeFileHeaderTS() string { return common.FileHeader("//") }

const bindingsTemplateTS = `{{fileHeaderTS}}
/** A command identifier: the owning command set plus the integer id. */
export interface CommandId {
  readonly set: string;
  readonly id: number;
}

{{range .Owners}}export const {{.Name}}: string = "{{.ID}}";
{{end}}{{range .Accessors}}
/** {{.Doc}} */
export const {{.Ident}}: CommandId = { set: {{.Owner}}, id: {{.Value}} };
{{end}}`

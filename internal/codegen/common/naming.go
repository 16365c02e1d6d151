package common

import "strings"

// SanitizeName turns a command display name into a generated identifier by
// replacing every '.' with '_'. No other character is rewritten; the host's
// display names only use dotted segments of identifier characters.
func SanitizeName(name string) string {
	return strings.ReplaceAll(name, ".", "_")
}

// FileHeader returns the generated-file banner, one line per entry prefixed
// with the target language's line comment marker.
func FileHeader(linePrefix string) string {
	lines := []string{
		"<auto-generated>",
		"    Command identifier bindings generated by cmdgen.",
		"    Regenerate with 'cmdgen generate'; manual edits will be lost.",
		"</auto-generated>",
	}

	var b strings.Builder
	for _, line := range lines {
		b.WriteString(linePrefix)
		b.WriteString(" ")
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

package common

import "strings"

// version is set via ldflags at build time:
// -ldflags "-X github.com/hostcmd/cmdgen/internal/codegen/common.version=x.y.z"
var version = ""

// Version returns the build version, or a dev placeholder when built without
// ldflags.
func Version() string {
	if version == "" {
		return "0.0.1-dev"
	}
	return strings.TrimPrefix(version, "v")
}

// Package cmd defines the kong command structure for the cmdgen CLI.
package cmd

import "github.com/alecthomas/kong"

// CLI is the root command structure parsed by kong.
type CLI struct {
	Config  string           `help:"Path to a configuration file" type:"path"`
	Log     LogOptions       `embed:"" prefix:"log."`
	Version kong.VersionFlag `help:"Print version and exit"`

	Generate  Generate      `cmd:"" help:"Generate command identifier bindings from the host command table"`
	Sets      Sets          `cmd:"" help:"List the published command sets"`
	ConfigCmd ConfigCommand `cmd:"" name:"config" help:"Configuration utilities"`
}

type LogOptions struct {
	Level string `help:"Log level: debug, info, warn, error" default:"info" env:"CMDGEN_LOG_LEVEL"`
	File  string `help:"Optional log file path" env:"CMDGEN_LOG_FILE"`
}

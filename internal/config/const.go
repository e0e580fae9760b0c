// Package config implements the configuration of enumgen.
package config

// Global constants for the application.
const (
	Application = "enumgen"
	Description = "Generate description lookups for Go enums and lint their stringification"
	WebSite     = "https://github.com/origadmin/enumgen"
	UI          = "enumgen"

	// DirectivePrefix starts every enumgen directive comment.
	DirectivePrefix = "//enumgen:"
	// FileName is the configuration file looked up in the source directory.
	FileName = ".enumgen.yaml"
	// DefaultOutputSuffix is appended to the lower-cased type name.
	DefaultOutputSuffix = "_enumgen.go"
)

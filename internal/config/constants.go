package config

const SourceFileExt = ".veldt"

// SourceFileExtensions are all recognized source file extensions.
var SourceFileExtensions = []string{".veldt", ".vd"}

// ConfigFileName is the per-project pipeline configuration file.
const ConfigFileName = "veldt.yaml"

// Unsized numeric type aliases and the sizes they widen to.
const (
	IntAliasName     = "Int"
	IntAliasTarget   = "Int32"
	FloatAliasName   = "Float"
	FloatAliasTarget = "Float64"
)

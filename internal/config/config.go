package config

// Config holds all application configuration, grouped by concern.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	Ontology  OntologyConfig  `mapstructure:"ontology"  validate:"required"`
	Reasoner  ReasonerConfig  `mapstructure:"reasoner"  validate:"required"`
	Assistant AssistantConfig `mapstructure:"assistant"`
}

// ServerConfig contains the HTTP server settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// OntologyConfig selects the ontology storage backend and the seed paths
// validated at startup. Seed content is not parsed; only path existence
// and type are checked.
type OntologyConfig struct {
	Backend string   `mapstructure:"backend" validate:"required,oneof=memory"`
	Seeds   []string `mapstructure:"seeds"`
}

// ReasonerConfig selects the reasoning backend and its inference toggles.
type ReasonerConfig struct {
	Backend   string          `mapstructure:"backend"   validate:"required,oneof=native"`
	Inference InferenceConfig `mapstructure:"inference"`
}

// InferenceConfig gates the reasoning queries independently. A disabled
// toggle makes the gated queries return empty results, not errors.
type InferenceConfig struct {
	// ClassHierarchy gates AncestorsOf and DescendantsOf.
	ClassHierarchy bool `mapstructure:"class_hierarchy"`
	// PropertyAssertions gates RelatedIndividuals.
	PropertyAssertions bool `mapstructure:"property_assertions"`
	// PropertyPaths gates ShortestPath.
	PropertyPaths bool `mapstructure:"property_paths"`
}

// AssistantConfig selects the knowledge assistant backend. An empty
// backend leaves the assistant unconfigured and the knowledge endpoint
// disabled.
type AssistantConfig struct {
	Backend string `mapstructure:"backend" validate:"omitempty,oneof=template"`
}

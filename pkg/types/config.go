// Config for the hoard CLI walkthrough.
package types

import "errors"

// Config holds the settings the hoard CLI loads from config.yaml.
type Config struct {
	Sections []string `json:"sections" yaml:"sections" mapstructure:"sections"`
	Hasher   string   `json:"hasher" yaml:"hasher" mapstructure:"hasher"`
	Output   string   `json:"output" yaml:"output" mapstructure:"output"`
	LogLevel string   `json:"log_level" yaml:"log_level" mapstructure:"log_level"`
}

// Walkthrough section names, in run order.
const (
	SectionSequence = "sequence"
	SectionMap      = "map"
	SectionText     = "text"
)

// Hasher policy names.
const (
	HasherSeeded = "seeded"
	HasherXXHash = "xxhash"
)

// Output modes.
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultSections lists every section in run order.
var DefaultSections = []string{SectionSequence, SectionMap, SectionText}

// Config validation errors.
var (
	ErrSectionUnknown  = errors.New("unknown section")
	ErrHasherUnknown   = errors.New("unknown hasher")
	ErrOutputUnknown   = errors.New("unknown output mode")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

var knownSections = map[string]bool{
	SectionSequence: true,
	SectionMap:      true,
	SectionText:     true,
}

var knownHashers = map[string]bool{
	HasherSeeded: true,
	HasherXXHash: true,
}

var knownOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
}

var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// DefaultConfig returns the configuration used when config.yaml is absent.
func DefaultConfig() Config {
	return Config{
		Sections: append([]string(nil), DefaultSections...),
		Hasher:   HasherSeeded,
		Output:   OutputText,
		LogLevel: "warn",
	}
}

// Validate checks that the Config is well-formed. Empty fields are allowed
// and mean "use the default". It returns a sentinel error from this package
// on failure.
func (c Config) Validate() error {
	for _, s := range c.Sections {
		if !knownSections[s] {
			return ErrSectionUnknown
		}
	}
	if c.Hasher != "" && !knownHashers[c.Hasher] {
		return ErrHasherUnknown
	}
	if c.Output != "" && !knownOutputs[c.Output] {
		return ErrOutputUnknown
	}
	if c.LogLevel != "" && !knownLogLevels[c.LogLevel] {
		return ErrLogLevelUnknown
	}
	return nil
}

package idl

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// PartialAttributePolicy decides what happens to extended attributes
// declared on partial definitions.
type PartialAttributePolicy string

const (
	// MergePartialAttributes appends them to the base definition's list.
	MergePartialAttributes PartialAttributePolicy = "merge"
	// RejectPartialAttributes fails with IllegalExtendedAttributeError.
	RejectPartialAttributes PartialAttributePolicy = "reject"
)

// Config controls validation.
type Config struct {
	// Attributes is the table of recognized extended attributes.
	Attributes        AttributeTable         `yaml:"attributes"`
	PartialAttributes PartialAttributePolicy `yaml:"partial_attributes"`
}

// DefaultConfig returns the default attribute table and the merge policy.
func DefaultConfig() Config {
	return Config{
		Attributes:        DefaultAttributes(),
		PartialAttributes: MergePartialAttributes,
	}
}

// LoadConfig reads a YAML configuration on top of DefaultConfig. Attribute
// entries in the input add to or replace the default ones.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, errors.Wrap(err, "reading config")
	}
	// Strict decoding rejects keys already present in a map, so the input is
	// decoded on its own and laid over the defaults afterwards.
	var in Config
	if err := yaml.UnmarshalStrict(data, &in); err != nil {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	cfg := DefaultConfig()
	for name, rule := range in.Attributes {
		cfg.Attributes[name] = rule
	}
	if in.PartialAttributes != "" {
		cfg.PartialAttributes = in.PartialAttributes
	}
	if err := cfg.check(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) check() error {
	switch c.PartialAttributes {
	case MergePartialAttributes, RejectPartialAttributes:
	default:
		return errors.Errorf("unknown partial_attributes policy %q", c.PartialAttributes)
	}
	for name, rule := range c.Attributes {
		if rule.Targets == 0 || rule.Shapes == 0 {
			return errors.Errorf("extended attribute %s needs at least one target and one shape", name)
		}
	}
	return nil
}

// WriteYAML writes the configuration in the form LoadConfig reads.
func (c Config) WriteYAML(w io.Writer) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	_, err = w.Write(data)
	return err
}

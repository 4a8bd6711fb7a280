package idl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, MergePartialAttributes, cfg.PartialAttributes)
	require.NoError(t, cfg.check())
	for _, name := range []string{"Constructor", "ArrayClass", "TreatNullAs", "Exposed", "Clamp"} {
		require.Contains(t, cfg.Attributes, name)
	}
	names := cfg.Attributes.Names()
	require.True(t, len(names) > 10)
	for i := 1; i < len(names); i++ {
		require.True(t, names[i-1] < names[i], "%s before %s", names[i-1], names[i])
	}
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(`
partial_attributes: reject
attributes:
  ChromeConstructor:
    targets: [interface, callback-interface]
    shapes: [none, args]
    doc: privileged constructor
  Clamp:
    targets: [argument]
    shapes: [none]
`))
	require.NoError(t, err)
	require.Equal(t, RejectPartialAttributes, cfg.PartialAttributes)
	require.Equal(t, AttributeRule{
		Targets: TargetInterface | TargetCallbackInterface,
		Shapes:  ShapeNone | ShapeArgList,
		Doc:     "privileged constructor",
	}, cfg.Attributes["ChromeConstructor"])
	require.Equal(t, TargetArgument, cfg.Attributes["Clamp"].Targets)
	// Entries not named in the input keep their defaults.
	require.Equal(t, DefaultAttributes()["Constructor"], cfg.Attributes["Constructor"])
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader("attributes:\n  Clamp:\n    targets: [argument]\n    shapes: [none]\n"))
	require.NoError(t, err)
	require.Equal(t, AttributeRule{Targets: TargetArgument, Shapes: ShapeNone}, cfg.Attributes["Clamp"])
	require.Equal(t, MergePartialAttributes, cfg.PartialAttributes)
	require.Len(t, cfg.Attributes, len(DefaultAttributes()))

	cfg, err = LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("empty config differs from the default (-want +got):\n%s", diff)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	for name, src := range map[string]string{
		"unknown policy": `partial_attributes: ignore`,
		"unknown target": "attributes:\n  A:\n    targets: [module]\n    shapes: [none]\n",
		"unknown shape":  "attributes:\n  A:\n    targets: [interface]\n    shapes: [list]\n",
		"no targets":     "attributes:\n  A:\n    targets: []\n    shapes: [none]\n",
		"unknown field":  `verbose: true`,
		"bad yaml":       `attributes: [`,
	} {
		src := src
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(strings.NewReader(src))
			require.Error(t, err)
		})
	}
}

func TestConfigRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DefaultConfig().WriteYAML(&buf))
	require.Contains(t, buf.String(), "partial_attributes: merge")

	cfg, err := LoadConfig(&buf)
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("config changed after round trip (-want +got):\n%s", diff)
	}
}

func TestTargetNames(t *testing.T) {
	require.Equal(t, "interface|attribute", (TargetInterface | TargetAttribute).String())
	require.Equal(t, []string{"none", "named-args"}, (ShapeNone | ShapeNamedArgList).Names())
	require.Empty(t, Target(0).Names())
}

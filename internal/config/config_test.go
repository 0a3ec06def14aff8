package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const sample = `
defaults:
  dialect: geojson
  indent: "  "
server:
  port: 9000
jobs:
  - name: boxes
    input: testdata/boxes.json
    output: out/boxes.yaml
    format: yaml
  - name: inline
    kind: circle
    command: $center
    document:
      center: {x: 1, y: 2}
      radius: 3
`

func TestParseAppliesDefaults(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Equal(t, "geojson", cfg.Defaults.Dialect)
	require.Equal(t, DefaultFormat, cfg.Defaults.Format)
	require.Equal(t, DefaultConcurrency, cfg.Defaults.Concurrency)
	require.Equal(t, DefaultAddr, cfg.Server.Addr)
	require.Equal(t, 9000, cfg.Server.Port)
	require.EqualValues(t, DefaultMaxBody, cfg.Server.MaxBody)

	require.Len(t, cfg.Jobs, 2)
	require.Equal(t, "auto", cfg.Jobs[0].Kind)
	require.Equal(t, "geojson", cfg.Jobs[0].Dialect)
	require.Equal(t, "yaml", cfg.Jobs[0].Format)

	inline := cfg.Jobs[1]
	require.Equal(t, "circle", inline.Kind)
	require.Equal(t, "json", inline.Format)
	require.NotNil(t, inline.Document)
	require.Equal(t, yaml.MappingNode, inline.Document.Kind)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown dialect": "defaults: {dialect: wkt}",
		"unknown format":  "jobs: [{name: a, input: x, format: xml}]",
		"unknown kind":    "jobs: [{name: a, input: x, kind: triangle}]",
		"missing name":    "jobs: [{input: x}]",
		"missing input":   "jobs: [{name: a}]",
		"duplicate name":  "jobs: [{name: a, input: x}, {name: a, input: y}]",
		"bad port":        "server: {port: 70000}",
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Jobs, 2)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestSelect(t *testing.T) {
	cfg := &Config{Jobs: []Job{{Name: "a"}, {Name: "b"}, {Name: "c"}}}

	jobs, missing := cfg.Select(nil)
	require.Len(t, jobs, 3)
	require.Empty(t, missing)

	jobs, missing = cfg.Select([]string{"c", "x", "a", "c"})
	require.Equal(t, []Job{{Name: "c"}, {Name: "a"}}, jobs)
	require.Equal(t, []string{"x"}, missing)
}

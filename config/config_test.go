package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SimranYelave/Car-Rental-System/core/model"
)

const sampleYAML = `
metrics:
  prometheus_enabled: true
catalog:
  vehicles:
    - id: E001
      brand: Toyota
      model: Corolla
      class: economy
      base_price_per_day: 45
      fuel_efficiency_kml: 18.5
    - id: L001
      brand: BMW
      model: X5
      class: luxury
      base_price_per_day: 120
      gps: true
      sunroof: true
      leather_seats: true
`

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestLoadYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, "cfg.yaml", sampleYAML))
	require.NoError(t, err)
	require.True(t, cfg.Metrics.PrometheusEnabled)
	require.Equal(t, ":2112", cfg.Metrics.PrometheusAddr)
	require.Len(t, cfg.Catalog.Vehicles, 2)

	v := cfg.Catalog.Vehicles[1].Vehicle()
	require.Equal(t, model.ClassLuxury, v.Class)
	require.True(t, v.GPS && v.Sunroof && v.LeatherSeats)
}

func TestLoadJSON(t *testing.T) {
	data := `{"catalog":{"vehicles":[{"id":"S001","brand":"Ford","model":"Explorer","class":"suv","base_price_per_day":85,"seats":7,"four_wheel_drive":true}]}}`
	cfg, err := Load(writeConfig(t, "cfg.json", data))
	require.NoError(t, err)
	v := cfg.Catalog.Vehicles[0].Vehicle()
	require.Equal(t, model.ClassSUV, v.Class)
	require.True(t, v.FourWheelDrive)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	_, err := Load(writeConfig(t, "cfg.toml", "x = 1"))
	require.Error(t, err)
}

func TestCatalogValidation(t *testing.T) {
	cases := map[string]string{
		"unknown class": `
catalog:
  vehicles:
    - id: X001
      class: hovercraft
      base_price_per_day: 10
`,
		"missing id": `
catalog:
  vehicles:
    - class: economy
      base_price_per_day: 10
`,
		"non-positive price": `
catalog:
  vehicles:
    - id: E001
      class: economy
      base_price_per_day: 0
`,
		"duplicate id": `
catalog:
  vehicles:
    - id: E001
      class: economy
      base_price_per_day: 10
    - id: E001
      class: suv
      base_price_per_day: 20
`,
	}
	for name, data := range cases {
		if _, err := Load(writeConfig(t, "cfg.yaml", data)); err == nil {
			t.Fatalf("%s: expected validation error", name)
		}
	}
}

func TestEnvOverride(t *testing.T) {
	require.NoError(t, os.Setenv("CRS_METRICS__PROMETHEUS_ADDR", ":9999"))
	defer func() { require.NoError(t, os.Unsetenv("CRS_METRICS__PROMETHEUS_ADDR")) }()
	cfg, err := Load(writeConfig(t, "cfg.yaml", sampleYAML))
	require.NoError(t, err)
	require.Equal(t, ":9999", cfg.Metrics.PrometheusAddr)
}

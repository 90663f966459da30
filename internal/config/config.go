package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/analysis"
	"github.com/pmgoulart-lgtm/flip-house-evaluator/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	// DataFile is the reference dataset path. Relative paths are resolved
	// against the config file's directory when that resolves to an existing
	// file, falling back to the working directory.
	DataFile string       `yaml:"data_file"`
	Rates    RatesConfig  `yaml:"rates"`
	Alerts   AlertsConfig `yaml:"alerts"`
}

// RatesConfig overrides the built-in default rates. Fields are pointers so a
// legitimate zero or negative value (sale prudence is normally negative) is
// distinguishable from "not set".
type RatesConfig struct {
	Acquisition           *float64 `yaml:"acquisition"`
	Sale                  *float64 `yaml:"sale"`
	Holding               *float64 `yaml:"holding"`
	RenovationContingency *float64 `yaml:"renovation_contingency"`
	SalePrudence          *float64 `yaml:"sale_prudence"`
	TargetNetMargin       *float64 `yaml:"target_net_margin"`
}

// AlertsConfig overrides the alert thresholds.
type AlertsConfig struct {
	RenovationShareMax  *float64 `yaml:"renovation_share_max"`
	AbsorptionMonthsMax *float64 `yaml:"absorption_months_max"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads the config without validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	if c.DataFile != "" && !filepath.IsAbs(c.DataFile) {
		// Prefer interpreting relative paths as relative to the config file
		// directory, but fall back to the provided path (relative to cwd) if
		// that doesn't exist.
		cand := filepath.Join(filepath.Dir(path), c.DataFile)
		if _, err := os.Stat(cand); err == nil {
			c.DataFile = cand
		}
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.DataFile == "" {
		return errors.New("data_file is required")
	}
	r := c.ResolvedRates()
	if r.Sale >= 1.0 {
		return fmt.Errorf("rates.sale must be < 1.0, got %v", r.Sale)
	}
	th := c.ResolvedThresholds()
	if th.RenovationShareMax <= 0 || th.AbsorptionMonthsMax <= 0 {
		return errors.New("alert thresholds must be > 0")
	}
	return nil
}

// ResolvedRates overlays the set config fields onto the built-in defaults.
func (c *Config) ResolvedRates() model.Rates {
	r := model.DefaultRates()
	if c == nil {
		return r
	}
	applyOverride(&r.Acquisition, c.Rates.Acquisition)
	applyOverride(&r.Sale, c.Rates.Sale)
	applyOverride(&r.Holding, c.Rates.Holding)
	applyOverride(&r.RenovationContingency, c.Rates.RenovationContingency)
	applyOverride(&r.SalePrudence, c.Rates.SalePrudence)
	applyOverride(&r.TargetNetMargin, c.Rates.TargetNetMargin)
	return r
}

// ResolvedThresholds overlays the set alert fields onto the defaults.
func (c *Config) ResolvedThresholds() analysis.Thresholds {
	th := analysis.DefaultThresholds()
	if c == nil {
		return th
	}
	applyOverride(&th.RenovationShareMax, c.Alerts.RenovationShareMax)
	applyOverride(&th.AbsorptionMonthsMax, c.Alerts.AbsorptionMonthsMax)
	return th
}

func applyOverride(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

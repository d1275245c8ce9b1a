package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/timeuse/model"
)

// Config mirrors the YAML parameter file. Pointer fields distinguish "not in
// the file" from an explicit zero, so the file can override any subset of
// the built-in defaults.
type Config struct {
	Variant     string    `yaml:"variant"`
	Rho         *float64  `yaml:"rho"`
	Nu          *float64  `yaml:"nu"`
	Eta         *float64  `yaml:"eta"`
	Epsilon     *float64  `yaml:"epsilon"`
	Omega       *float64  `yaml:"omega"`
	Alpha       *float64  `yaml:"alpha"`
	Sigma       *float64  `yaml:"sigma"`
	WM          *float64  `yaml:"wM"`
	WF          *float64  `yaml:"wF"`
	WFGrid      []float64 `yaml:"wF_grid"`
	Beta0Target *float64  `yaml:"beta0_target"`
	Beta1Target *float64  `yaml:"beta1_target"`
}

// loadConfig reads and parses the YAML file at path. An empty path means
// "no file": the zero Config overrides nothing.
func loadConfig(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// apply lays the file's overrides on top of p and returns the result.
func (c Config) apply(p model.Params) model.Params {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}

	set(&p.Rho, c.Rho)
	set(&p.Nu, c.Nu)
	set(&p.Eta, c.Eta)
	set(&p.Epsilon, c.Epsilon)
	set(&p.Omega, c.Omega)
	set(&p.Alpha, c.Alpha)
	set(&p.Sigma, c.Sigma)
	set(&p.WM, c.WM)
	set(&p.WF, c.WF)
	set(&p.Beta0Target, c.Beta0Target)
	set(&p.Beta1Target, c.Beta1Target)
	if len(c.WFGrid) > 0 {
		p.WFGrid = append([]float64(nil), c.WFGrid...)
	}

	return p
}

// parseVariant maps a flag or file value onto the Variant enum, accepting
// exactly the names Variant.String produces.
func parseVariant(name string) (model.Variant, error) {
	switch name {
	case "shared":
		return model.SharedDisutility, nil
	case "separate":
		return model.SeparateDisutility, nil
	default:
		return 0, fmt.Errorf(`variant %q: want "shared" or "separate"`, name)
	}
}

// buildParams resolves the run's Params: defaults for the variant, file
// overrides on top, validated before anything solves. An explicit --variant
// flag beats the file's variant key.
func buildParams(cmd *cobra.Command) (model.Params, error) {
	cfg, err := loadConfig(cfgPath)
	if err != nil {
		return model.Params{}, err
	}

	name := variantName
	if !cmd.Flags().Changed("variant") && cfg.Variant != "" {
		name = cfg.Variant
	}
	v, err := parseVariant(name)
	if err != nil {
		return model.Params{}, err
	}

	p := cfg.apply(model.DefaultParams(v))
	if err := model.Validate(p); err != nil {
		return model.Params{}, err
	}

	return p, nil
}

package model_test

import (
	"testing"

	"github.com/katalvlaran/timeuse/model"
	"github.com/stretchr/testify/assert"
)

// TestValidate_Defaults confirms both default parameter sets pass validation.
func TestValidate_Defaults(t *testing.T) {
	assert.NoError(t, model.Validate(model.DefaultParams(model.SharedDisutility)))
	assert.NoError(t, model.Validate(model.DefaultParams(model.SeparateDisutility)))
}

// TestValidate_Sentinels walks every contract breach to its sentinel.
func TestValidate_Sentinels(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.Params)
		want   error
	}{
		{"unit rho", func(p *model.Params) { p.Rho = 1 }, model.ErrUnitRho},
		{"zero epsilon", func(p *model.Params) { p.Epsilon = 0 }, model.ErrBadElasticity},
		{"negative epsilon", func(p *model.Params) { p.Epsilon = -2 }, model.ErrBadElasticity},
		{"omega at zero", func(p *model.Params) { p.Omega = 0 }, model.ErrBadOmega},
		{"omega at one", func(p *model.Params) { p.Omega = 1 }, model.ErrBadOmega},
		{"negative nu", func(p *model.Params) { p.Nu = -0.001 }, model.ErrBadScale},
		{"negative sigma", func(p *model.Params) { p.Sigma = -0.5 }, model.ErrBadSigma},
		{"zero male wage", func(p *model.Params) { p.WM = 0 }, model.ErrBadWage},
		{"negative female wage", func(p *model.Params) { p.WF = -1 }, model.ErrBadWage},
		{"empty wage grid", func(p *model.Params) { p.WFGrid = nil }, model.ErrBadWageGrid},
		{"non-positive grid entry", func(p *model.Params) { p.WFGrid = []float64{0, 1} }, model.ErrBadWageGrid},
		{"descending grid", func(p *model.Params) { p.WFGrid = []float64{1.2, 0.8} }, model.ErrBadWageGrid},
		{"duplicate grid entry", func(p *model.Params) { p.WFGrid = []float64{1, 1} }, model.ErrBadWageGrid},
		{"unknown variant", func(p *model.Params) { p.Variant = model.Variant(42) }, model.ErrBadVariant},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := model.DefaultParams(model.SharedDisutility)
			tc.mutate(&p)
			assert.ErrorIs(t, model.Validate(p), tc.want, "case %q", tc.name)
		})
	}
}

// TestValidate_EtaOnlyReadWhenSeparate verifies a negative Eta is rejected
// only by the variant that reads it.
func TestValidate_EtaOnlyReadWhenSeparate(t *testing.T) {
	shared := model.DefaultParams(model.SharedDisutility)
	shared.Eta = -1
	assert.NoError(t, model.Validate(shared), "shared variant never reads Eta")

	sep := model.DefaultParams(model.SeparateDisutility)
	sep.Eta = -1
	assert.ErrorIs(t, model.Validate(sep), model.ErrBadScale, "separate variant must reject negative Eta")
}

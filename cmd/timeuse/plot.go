package main

import (
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/timeuse/estimate"
)

var plotOut string

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Render the specialization regression as a PNG",
	Long: `Run the continuous wage sweep, fit the specialization regression and
render the observed log-ratio points together with the fitted line. The
output format follows the file extension (png, pdf, svg, ...).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := buildParams(cmd)
		if err != nil {
			return err
		}

		start := time.Now()
		sr, err := estimate.Sweep(p, estimate.NewOptions(p.Variant))
		if err != nil {
			return err
		}
		fit, err := estimate.Regress(p, sr)
		if err != nil {
			return err
		}
		if math.IsNaN(fit.Beta0) || math.IsNaN(fit.Beta1) {
			return fmt.Errorf("plot: the sweep degenerated, nothing to draw")
		}

		pts := make(plotter.XYs, sr.Len())
		for i := 0; i < sr.Len(); i++ {
			pts[i].X = math.Log(sr.WF[i] / p.WM)
			pts[i].Y = math.Log(sr.HF[i] / sr.HM[i])
		}
		scatter, err := plotter.NewScatter(pts)
		if err != nil {
			return fmt.Errorf("plot: %w", err)
		}

		line := plotter.NewFunction(func(x float64) float64 {
			return fit.Beta0 + fit.Beta1*x
		})

		pl := plot.New()
		pl.Title.Text = fmt.Sprintf("Specialization, %s variant", p.Variant)
		pl.X.Label.Text = "log(wF/wM)"
		pl.Y.Label.Text = "log(HF/HM)"
		pl.Add(scatter, line)
		pl.Legend.Add("observed", scatter)
		pl.Legend.Add(fmt.Sprintf("fit: %.3f %+.3f·x", fit.Beta0, fit.Beta1), line)

		if err := pl.Save(6*vg.Inch, 4*vg.Inch, plotOut); err != nil {
			return fmt.Errorf("plot: %w", err)
		}
		logger.Debug("plot written",
			zap.String("file", plotOut),
			zap.Float64("r2", fit.RSquared),
			zap.Duration("elapsed", time.Since(start)),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (beta0 = %.4f, beta1 = %.4f, R2 = %.4f)\n",
			plotOut, fit.Beta0, fit.Beta1, fit.RSquared)

		return nil
	},
}

func init() {
	plotCmd.Flags().StringVar(&plotOut, "out", "specialization.png", "output image path")
}

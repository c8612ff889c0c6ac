package scenario_test

import (
	"context"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bplp"
	"github.com/katalvlaran/bplp/lpsolve"
	"github.com/katalvlaran/bplp/problem"
	"github.com/katalvlaran/bplp/scenario"
)

func TestLoadFile_SolvesConcave(t *testing.T) {
	sc, err := scenario.LoadFile(filepath.Join("testdata", "concave.yaml"))
	require.NoError(t, err)

	spec, err := sc.Spec()
	require.NoError(t, err)
	require.Equal(t, "concave-uniform", spec.Name)
	require.Equal(t, 5, spec.GridSize)

	mode, err := sc.Mode()
	require.NoError(t, err)
	require.Equal(t, lpsolve.Obedience, mode)

	opts, err := sc.Options()
	require.NoError(t, err)
	res, err := bplp.Solve(context.Background(), spec, opts...)
	require.NoError(t, err)
	require.InDelta(t, math.Sqrt(0.5), res.Value, 1e-9)
	require.Equal(t, lpsolve.Obedience, res.Mode)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := scenario.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_EmptyDocumentIsReference(t *testing.T) {
	_, err := scenario.Parse(nil)
	require.ErrorIs(t, err, scenario.ErrInvalid)

	sc, err := scenario.Parse([]byte("{}"))
	require.NoError(t, err)
	spec, err := sc.Spec()
	require.NoError(t, err)
	require.Equal(t, "reference", spec.Name)
	require.Equal(t, problem.DefaultGridSize, spec.GridSize)
	require.Equal(t, problem.UnitInterval, spec.Domain)
}

func TestParse_Preset(t *testing.T) {
	sc, err := scenario.Parse([]byte("preset: convex\ngrid_size: 4\n"))
	require.NoError(t, err)
	spec, err := sc.Spec()
	require.NoError(t, err)
	require.Equal(t, "convex", spec.Name)
	require.Equal(t, 4, spec.GridSize)

	sc, err = scenario.Parse([]byte("preset: quartic\n"))
	require.NoError(t, err)
	_, err = sc.Spec()
	require.ErrorIs(t, err, problem.ErrUnknownPreset)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name   string
		doc    string
		target error
	}{
		{"unknown key", "grid: 4\n", scenario.ErrInvalid},
		{"unknown param", "prior_density: {family: normal, sigma: 2}\n", scenario.ErrInvalid},
		{"bad yaml", "grid_size: [\n", scenario.ErrInvalid},
		{"bad type", "grid_size: many\n", scenario.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scenario.Parse([]byte(tc.doc))
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestSpec_Errors(t *testing.T) {
	cases := []struct {
		name   string
		doc    string
		target error
	}{
		{"grid size one", "grid_size: 1\n", problem.ErrConfiguration},
		{"inverted domain", "domain: [1, 0]\n", problem.ErrConfiguration},
		{"short domain", "domain: [1]\n", scenario.ErrInvalid},
		{"prior family in sender slot", "sender_utility: {family: normal}\n", scenario.ErrUnknownFamily},
		{"sender family in prior slot", "prior_density: {family: sqrt}\n", scenario.ErrUnknownFamily},
		{"misspelt family", "receiver_utility: {family: diference}\n", scenario.ErrUnknownFamily},
		{"zero stddev", "prior_density: {family: normal, stddev: 0}\n", scenario.ErrInvalid},
		{"flat uniform", "prior_density: {family: uniform, lower: 1, upper: 1}\n", scenario.ErrInvalid},
		{"negative beta", "prior_density: {family: beta, alpha: -1}\n", scenario.ErrInvalid},
		{"nan exponent", "sender_utility: {family: power, exponent: .nan}\n", scenario.ErrInvalid},
		{"inf constant", "signal_density: {family: constant, value: .inf}\n", scenario.ErrInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc, err := scenario.Parse([]byte(tc.doc))
			require.NoError(t, err)
			_, err = sc.Spec()
			require.ErrorIs(t, err, tc.target)
		})
	}
}

func TestFamilies_Defaults(t *testing.T) {
	sc, err := scenario.Parse([]byte(`
receiver_utility: {family: difference}
signal_density: {family: constant}
prior_density: {family: beta, alpha: 2, beta: 2}
sender_utility: {family: linear, slope: 2, intercept: 1}
`))
	require.NoError(t, err)
	spec, err := sc.Spec()
	require.NoError(t, err)
	require.Equal(t, 1.0, spec.SignalDensity(0.3, 0.7))
	require.InDelta(t, 1.5, spec.PriorDensity(0.5), 1e-12) // 6·x·(1−x)
	require.Equal(t, 2.0, spec.SenderUtility(0, 0.5))
	require.Equal(t, 0.25, spec.ReceiverUtility(0.75, 0.5))
}

func TestModeAndQuadrature(t *testing.T) {
	sc := &scenario.Scenario{ICMode: "strict"}
	_, err := sc.Mode()
	require.ErrorIs(t, err, scenario.ErrInvalid)
	_, err = sc.Options()
	require.ErrorIs(t, err, scenario.ErrInvalid)

	sc = &scenario.Scenario{Quadrature: &scenario.Quadrature{Rule: "gauss"}}
	_, err = sc.DiscretizeOptions()
	require.ErrorIs(t, err, scenario.ErrInvalid)

	sc = &scenario.Scenario{Quadrature: &scenario.Quadrature{Subintervals: -2}}
	_, err = sc.DiscretizeOptions()
	require.ErrorIs(t, err, scenario.ErrInvalid)

	sc = &scenario.Scenario{Quadrature: &scenario.Quadrature{Rule: "trapezoid", Subintervals: 3}}
	opts, err := sc.DiscretizeOptions()
	require.NoError(t, err)
	require.Len(t, opts, 2)

	opts, err = (&scenario.Scenario{}).DiscretizeOptions()
	require.NoError(t, err)
	require.Empty(t, opts)
}

func TestMarshal_RoundTrip(t *testing.T) {
	sc, err := scenario.LoadFile(filepath.Join("testdata", "concave.yaml"))
	require.NoError(t, err)

	data, err := sc.Marshal()
	require.NoError(t, err)
	back, err := scenario.Parse(data)
	require.NoError(t, err)
	require.Equal(t, sc, back)

	spec, err := back.Spec()
	require.NoError(t, err)
	res, err := bplp.Solve(context.Background(), spec)
	require.NoError(t, err)
	require.NoError(t, res.Verify(lpsolve.DefaultVerifyTolerance))
}

func TestOverrides(t *testing.T) {
	t.Setenv("BPLP_GRID_SIZE", "7")
	t.Setenv("BPLP_IC_MODE", "obedience")
	t.Setenv("BPLP_QUADRATURE_RULE", "trapezoid")
	t.Setenv("BPLP_QUADRATURE_SUBINTERVALS", "2")
	t.Setenv("BPLP_LOG_LEVEL", "debug")

	o, err := scenario.LoadOverrides()
	require.NoError(t, err)
	require.Equal(t, scenario.Overrides{
		GridSize:     7,
		ICMode:       "obedience",
		Rule:         "trapezoid",
		Subintervals: 2,
		LogLevel:     "debug",
	}, o)

	lvl, err := o.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)

	base := &scenario.Scenario{Preset: "linear", Quadrature: &scenario.Quadrature{Rule: "simpson"}}
	sc := base.Apply(o)
	require.Equal(t, 7, sc.GridSize)
	require.Equal(t, "obedience", sc.ICMode)
	require.Equal(t, &scenario.Quadrature{Rule: "trapezoid", Subintervals: 2}, sc.Quadrature)
	require.Equal(t, "simpson", base.Quadrature.Rule, "Apply must not mutate its receiver")
	require.Zero(t, base.GridSize)

	spec, err := sc.Spec()
	require.NoError(t, err)
	require.Equal(t, 7, spec.GridSize)
}

func TestOverrides_Invalid(t *testing.T) {
	t.Setenv("BPLP_GRID_SIZE", "seven")
	_, err := scenario.LoadOverrides()
	require.ErrorIs(t, err, scenario.ErrInvalid)

	_, err = scenario.Overrides{LogLevel: "loud"}.Level()
	require.ErrorIs(t, err, scenario.ErrInvalid)

	lvl, err := scenario.Overrides{}.Level()
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, lvl)
}

func TestOverrides_Defaults(t *testing.T) {
	o, err := scenario.LoadOverrides()
	require.NoError(t, err)
	require.Equal(t, "info", o.LogLevel)
	require.Zero(t, o.GridSize)

	sc := (&scenario.Scenario{}).Apply(o)
	require.Nil(t, sc.Quadrature)
}

// TestExamples solves every scenario shipped under examples/.
func TestExamples(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "examples", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			sc, err := scenario.LoadFile(path)
			require.NoError(t, err)
			spec, err := sc.Spec()
			require.NoError(t, err)
			opts, err := sc.Options()
			require.NoError(t, err)

			res, err := bplp.Solve(context.Background(), spec, opts...)
			require.NoError(t, err)
			require.NoError(t, res.Verify(lpsolve.DefaultVerifyTolerance))
		})
	}
}

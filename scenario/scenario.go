// SPDX-License-Identifier: MIT

package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bplp"
	"github.com/katalvlaran/bplp/discretize"
	"github.com/katalvlaran/bplp/lpsolve"
	"github.com/katalvlaran/bplp/problem"
)

// Scenario is one YAML document. The zero value describes the reference
// instance at the default resolution.
type Scenario struct {
	Name            string      `yaml:"name,omitempty"`
	Preset          string      `yaml:"preset,omitempty"`
	GridSize        int         `yaml:"grid_size,omitempty"`
	Domain          []float64   `yaml:"domain,omitempty,flow"`
	ReceiverUtility *Func       `yaml:"receiver_utility,omitempty"`
	SignalDensity   *Func       `yaml:"signal_density,omitempty"`
	PriorDensity    *Func       `yaml:"prior_density,omitempty"`
	SenderUtility   *Func       `yaml:"sender_utility,omitempty"`
	ICMode          string      `yaml:"ic_mode,omitempty"`
	Quadrature      *Quadrature `yaml:"quadrature,omitempty"`
}

// Quadrature selects the IC cell-averaging rule; zero values mean default.
type Quadrature struct {
	Rule         string `yaml:"rule,omitempty"`
	Subintervals int    `yaml:"subintervals,omitempty"`
}

// Parse decodes a single YAML document, rejecting unknown keys.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var s Scenario
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalid)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return &s, nil
}

// LoadFile reads and parses the scenario at path.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scenario: reading file: %w", err)
	}

	return Parse(data)
}

// Marshal encodes s back to YAML.
func (s *Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}

// Spec resolves the document into a validated problem.Spec.
//
// Stages:
//  1. Base: the named preset, or the reference instance.
//  2. Overlay grid size, name, domain and every function block present.
//  3. Validate.
func (s *Scenario) Spec() (problem.Spec, error) {
	n := problem.DefaultGridSize
	if s.GridSize != 0 {
		n = s.GridSize
	}

	base := problem.Reference(n)
	if s.Preset != "" {
		var err error
		if base, err = problem.Preset(s.Preset, n); err != nil {
			return problem.Spec{}, err
		}
	}
	if s.Name != "" {
		base.Name = s.Name
	}

	switch len(s.Domain) {
	case 0:
	case 2:
		base.Domain = problem.Interval{Lower: s.Domain[0], Upper: s.Domain[1]}
	default:
		return problem.Spec{}, fmt.Errorf("%w: domain needs [lower, upper], got %d values", ErrInvalid, len(s.Domain))
	}

	var err error
	if s.ReceiverUtility != nil {
		if base.ReceiverUtility, err = s.ReceiverUtility.Bivariate("receiver_utility"); err != nil {
			return problem.Spec{}, err
		}
	}
	if s.SignalDensity != nil {
		if base.SignalDensity, err = s.SignalDensity.Bivariate("signal_density"); err != nil {
			return problem.Spec{}, err
		}
	}
	if s.PriorDensity != nil {
		if base.PriorDensity, err = s.PriorDensity.Univariate("prior_density"); err != nil {
			return problem.Spec{}, err
		}
	}
	if s.SenderUtility != nil {
		if base.SenderUtility, err = s.SenderUtility.Bivariate("sender_utility"); err != nil {
			return problem.Spec{}, err
		}
	}

	if err = base.Validate(); err != nil {
		return problem.Spec{}, err
	}

	return base, nil
}

// Mode parses ic_mode; empty means Indifference.
func (s *Scenario) Mode() (lpsolve.ICMode, error) {
	if s.ICMode == "" {
		return lpsolve.Indifference, nil
	}
	m, err := lpsolve.ParseICMode(s.ICMode)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return m, nil
}

// DiscretizeOptions translates the quadrature block.
func (s *Scenario) DiscretizeOptions() ([]discretize.Option, error) {
	if s.Quadrature == nil {
		return nil, nil
	}
	var opts []discretize.Option
	if s.Quadrature.Rule != "" {
		r, err := discretize.ParseRule(s.Quadrature.Rule)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
		}
		opts = append(opts, discretize.WithRule(r))
	}
	switch k := s.Quadrature.Subintervals; {
	case k < 0:
		return nil, fmt.Errorf("%w: quadrature.subintervals must be >= 1, got %d", ErrInvalid, k)
	case k > 0:
		opts = append(opts, discretize.WithSubintervals(k))
	}

	return opts, nil
}

// Options returns the pipeline options encoded in the document.
func (s *Scenario) Options() ([]bplp.Option, error) {
	mode, err := s.Mode()
	if err != nil {
		return nil, err
	}
	dopts, err := s.DiscretizeOptions()
	if err != nil {
		return nil, err
	}

	return []bplp.Option{
		bplp.WithDiscretize(dopts...),
		bplp.WithSolver(lpsolve.WithICMode(mode)),
	}, nil
}

// Apply returns a copy of s with every non-zero override applied.
func (s *Scenario) Apply(o Overrides) *Scenario {
	out := *s
	if o.GridSize != 0 {
		out.GridSize = o.GridSize
	}
	if o.ICMode != "" {
		out.ICMode = o.ICMode
	}
	if o.Rule != "" || o.Subintervals != 0 {
		q := Quadrature{}
		if s.Quadrature != nil {
			q = *s.Quadrature
		}
		if o.Rule != "" {
			q.Rule = o.Rule
		}
		if o.Subintervals != 0 {
			q.Subintervals = o.Subintervals
		}
		out.Quadrature = &q
	}

	return &out
}

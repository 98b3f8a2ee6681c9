package grading

import (
	"sort"

	"gradecli/internal/config"
	"gradecli/internal/errors"
)

// Score is a resolved numeric score or an explicit absent marker.
type Score struct {
	Value  float64
	Absent bool
}

// Present creates a present score.
func Present(v float64) Score { return Score{Value: v} }

// AbsentScore is the canonical absent score.
var AbsentScore = Score{Absent: true}

// Input carries the values a scheme aggregates: an ordered value sequence
// plus the names aligned with it. Positional schemes use Values alone;
// name-keyed weighted schemes look values up through Names.
type Input struct {
	Names  []string
	Values []float64
}

// valueOf returns the value aligned with a name.
func (in Input) valueOf(name string) (float64, bool) {
	for i, n := range in.Names {
		if n == name {
			return in.Values[i], true
		}
	}
	return 0, false
}

// SchemeKind identifies a grading scheme variant.
type SchemeKind int

const (
	// SchemeMean is the arithmetic mean of all values.
	SchemeMean SchemeKind = iota
	// SchemeDrop is the mean of the values after removing the k lowest.
	SchemeDrop
	// SchemeWeightedList is the weighted average with positional weights.
	SchemeWeightedList
	// SchemeWeightedMap is the weighted average with name-keyed weights.
	SchemeWeightedMap
	// SchemeCustom delegates to a caller-supplied function.
	SchemeCustom
)

// String returns the scheme kind name used in configuration and messages.
func (k SchemeKind) String() string {
	switch k {
	case SchemeMean:
		return "mean"
	case SchemeDrop:
		return "drop"
	case SchemeWeightedList, SchemeWeightedMap:
		return "weights"
	case SchemeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Scheme is one averaging policy over a collection of scores. A Scheme is
// a closed tagged variant; the Custom kind is the escape hatch for
// arbitrary caller-supplied policies.
type Scheme struct {
	kind      SchemeKind
	drop      int
	weights   []float64
	weightMap map[string]float64
	fn        func(Input) (float64, error)
}

// Kind returns the scheme variant.
func (s Scheme) Kind() SchemeKind { return s.kind }

// Mean returns the arithmetic-mean scheme. Callers substitute or filter
// absences beforehand; the mean itself ignores nothing.
func Mean() Scheme {
	return Scheme{kind: SchemeMean}
}

// Drop returns the drop-lowest-k scheme: the sum of the (count-k) largest
// values divided by (count-k). Ties among the k smallest break arbitrarily.
func Drop(k int) Scheme {
	return Scheme{kind: SchemeDrop, drop: k}
}

// WeightedList returns the positionally weighted average scheme. The input
// must align with the weights one to one.
func WeightedList(weights ...float64) Scheme {
	return Scheme{kind: SchemeWeightedList, weights: append([]float64(nil), weights...)}
}

// WeightedMap returns the name-keyed weighted average scheme. Every weight
// key must be present in the input.
func WeightedMap(weights map[string]float64) Scheme {
	m := make(map[string]float64, len(weights))
	for k, v := range weights {
		m[k] = v
	}
	return Scheme{kind: SchemeWeightedMap, weightMap: m}
}

// Custom returns a scheme that delegates entirely to fn.
func Custom(fn func(Input) (float64, error)) Scheme {
	return Scheme{kind: SchemeCustom, fn: fn}
}

// Apply computes the scheme's aggregate over the input.
func (s Scheme) Apply(in Input) (float64, error) {
	switch s.kind {
	case SchemeMean:
		if len(in.Values) == 0 {
			return 0, errors.ConfigError("mean scheme applied to no values")
		}
		var sum float64
		for _, v := range in.Values {
			sum += v
		}
		return sum / float64(len(in.Values)), nil

	case SchemeDrop:
		kept := len(in.Values) - s.drop
		if kept <= 0 {
			return 0, errors.ConfigError("drop scheme removes %d of %d values", s.drop, len(in.Values))
		}
		sorted := append([]float64(nil), in.Values...)
		sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
		var sum float64
		for _, v := range sorted[:kept] {
			sum += v
		}
		return sum / float64(kept), nil

	case SchemeWeightedList:
		if len(s.weights) != len(in.Values) {
			return 0, errors.ConfigError("weighted scheme has %d weights for %d values", len(s.weights), len(in.Values))
		}
		var sum, total float64
		for i, v := range in.Values {
			sum += v * s.weights[i]
			total += s.weights[i]
		}
		if total == 0 {
			return 0, errors.ConfigError("weighted scheme weights sum to zero")
		}
		return sum / total, nil

	case SchemeWeightedMap:
		var sum, total float64
		for key, w := range s.weightMap {
			v, ok := in.valueOf(key)
			if !ok {
				return 0, errors.LookupError("weighted scheme references missing key %q", key)
			}
			sum += v * w
			total += w
		}
		if total == 0 {
			return 0, errors.ConfigError("weighted scheme weights sum to zero")
		}
		return sum / total, nil

	case SchemeCustom:
		return s.fn(in)

	default:
		return 0, errors.ConfigError("unknown scheme kind %d", int(s.kind))
	}
}

// validateForCount checks scheme parameters against a known input size at
// construction time, so misconfiguration fails before any computation.
func (s Scheme) validateForCount(count int, names []string) error {
	switch s.kind {
	case SchemeDrop:
		if s.drop >= count {
			return errors.ConfigError("drop scheme removes %d of %d values", s.drop, count)
		}
	case SchemeWeightedList:
		if len(s.weights) != count {
			return errors.ConfigError("weighted scheme has %d weights for %d values", len(s.weights), count)
		}
	case SchemeWeightedMap:
		known := make(map[string]struct{}, len(names))
		for _, n := range names {
			known[n] = struct{}{}
		}
		for key := range s.weightMap {
			if _, ok := known[key]; !ok {
				return errors.LookupError("weighted scheme references missing key %q", key)
			}
		}
	}
	return nil
}

// MaxOf applies every scheme to the input and returns the maximum result.
// This models "best of several alternative policies". An empty scheme list
// defaults to the mean.
func MaxOf(schemes []Scheme, in Input) (float64, error) {
	if len(schemes) == 0 {
		schemes = []Scheme{Mean()}
	}
	best := 0.0
	for i, s := range schemes {
		v, err := s.Apply(in)
		if err != nil {
			return 0, err
		}
		if i == 0 || v > best {
			best = v
		}
	}
	return best, nil
}

// BuildScheme converts a declarative scheme configuration to a Scheme.
func BuildScheme(cfg config.SchemeConfig) (Scheme, error) {
	switch cfg.Kind {
	case "", "mean":
		return Mean(), nil
	case "drop":
		if cfg.Drop <= 0 {
			return Scheme{}, errors.ConfigError("drop scheme needs a positive drop count, got %d", cfg.Drop)
		}
		return Drop(cfg.Drop), nil
	case "weights":
		switch {
		case len(cfg.WeightMap) > 0:
			return WeightedMap(cfg.WeightMap), nil
		case len(cfg.Weights) > 0:
			return WeightedList(cfg.Weights...), nil
		default:
			return Scheme{}, errors.ConfigError("weights scheme needs a weights list or a weight_map")
		}
	default:
		return Scheme{}, errors.ConfigError("unknown scheme kind %q", cfg.Kind)
	}
}

// BuildSchemes converts a list of scheme configurations. An empty list
// yields a single mean scheme.
func BuildSchemes(cfgs []config.SchemeConfig) ([]Scheme, error) {
	if len(cfgs) == 0 {
		return []Scheme{Mean()}, nil
	}
	schemes := make([]Scheme, 0, len(cfgs))
	for i, c := range cfgs {
		s, err := BuildScheme(c)
		if err != nil {
			return nil, errors.ConfigError("scheme %d: %v", i, err)
		}
		schemes = append(schemes, s)
	}
	return schemes, nil
}

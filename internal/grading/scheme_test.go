package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gradecli/internal/config"
	"gradecli/internal/errors"
)

func TestMeanScheme(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{
			name:     "single value",
			values:   []float64{42},
			expected: 42,
		},
		{
			name:     "even spread",
			values:   []float64{10, 20, 30, 40},
			expected: 25,
		},
		{
			name:     "zeros count",
			values:   []float64{0, 100},
			expected: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mean().Apply(Input{Values: tt.values})
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-9)
		})
	}
}

func TestMeanSchemeEmptyInput(t *testing.T) {
	_, err := Mean().Apply(Input{})
	assert.Error(t, err)
}

func TestDropScheme(t *testing.T) {
	got, err := Drop(1).Apply(Input{Values: []float64{10, 20, 30, 40}})
	require.NoError(t, err)
	assert.InDelta(t, 30.0, got, 1e-9)
}

func TestDropSchemeUnsortedInput(t *testing.T) {
	// The k lowest values are dropped regardless of input order.
	got, err := Drop(2).Apply(Input{Values: []float64{30, 10, 40, 20}})
	require.NoError(t, err)
	assert.InDelta(t, 35.0, got, 1e-9)
}

func TestDropSchemeTooFewValues(t *testing.T) {
	_, err := Drop(4).Apply(Input{Values: []float64{10, 20, 30, 40}})
	require.Error(t, err)
	assert.True(t, errors.IsConfig(err))
}

func TestWeightedListScheme(t *testing.T) {
	got, err := WeightedList(1, 3).Apply(Input{Values: []float64{80, 90}})
	require.NoError(t, err)
	assert.InDelta(t, 87.5, got, 1e-9)
}

func TestWeightedListSchemeLengthMismatch(t *testing.T) {
	_, err := WeightedList(1, 3).Apply(Input{Values: []float64{80}})
	assert.Error(t, err)
}

func TestWeightedMapScheme(t *testing.T) {
	in := Input{
		Names:  []string{"a", "b"},
		Values: []float64{80, 90},
	}
	got, err := WeightedMap(map[string]float64{"a": 1, "b": 3}).Apply(in)
	require.NoError(t, err)
	assert.InDelta(t, 87.5, got, 1e-9)
}

func TestWeightedMapSchemeMissingKey(t *testing.T) {
	in := Input{
		Names:  []string{"a"},
		Values: []float64{80},
	}
	_, err := WeightedMap(map[string]float64{"a": 1, "b": 3}).Apply(in)
	require.Error(t, err)
	assert.True(t, errors.IsLookup(err))
	assert.Contains(t, err.Error(), "b")
}

func TestCustomScheme(t *testing.T) {
	minOf := Custom(func(in Input) (float64, error) {
		min := in.Values[0]
		for _, v := range in.Values[1:] {
			if v < min {
				min = v
			}
		}
		return min, nil
	})

	got, err := minOf.Apply(Input{Values: []float64{30, 10, 20}})
	require.NoError(t, err)
	assert.InDelta(t, 10.0, got, 1e-9)
}

func TestMaxOf(t *testing.T) {
	in := Input{Values: []float64{10, 20, 30, 40}}

	// mean = 25, drop(1) = 30; the best policy wins.
	got, err := MaxOf([]Scheme{Mean(), Drop(1)}, in)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, got, 1e-9)
}

func TestMaxOfEmptyDefaultsToMean(t *testing.T) {
	got, err := MaxOf(nil, Input{Values: []float64{10, 30}})
	require.NoError(t, err)
	assert.InDelta(t, 20.0, got, 1e-9)
}

func TestBuildScheme(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.SchemeConfig
		expected SchemeKind
		wantErr  bool
	}{
		{
			name:     "empty kind defaults to mean",
			cfg:      config.SchemeConfig{},
			expected: SchemeMean,
		},
		{
			name:     "drop",
			cfg:      config.SchemeConfig{Kind: "drop", Drop: 2},
			expected: SchemeDrop,
		},
		{
			name:    "drop without count",
			cfg:     config.SchemeConfig{Kind: "drop"},
			wantErr: true,
		},
		{
			name:     "positional weights",
			cfg:      config.SchemeConfig{Kind: "weights", Weights: []float64{1, 3}},
			expected: SchemeWeightedList,
		},
		{
			name:     "named weights",
			cfg:      config.SchemeConfig{Kind: "weights", WeightMap: map[string]float64{"HW": 1}},
			expected: SchemeWeightedMap,
		},
		{
			name:    "weights without parameters",
			cfg:     config.SchemeConfig{Kind: "weights"},
			wantErr: true,
		},
		{
			name:    "unknown kind",
			cfg:     config.SchemeConfig{Kind: "median"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := BuildScheme(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, s.Kind())
		})
	}
}

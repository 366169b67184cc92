package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultExclusions(t *testing.T) {
	rules := DefaultExclusions()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{
			name:    "exact literal is excluded",
			content: "Exploring system dynamics and adaptation patterns",
			want:    true,
		},
		{
			name:    "literal embedded in longer content is kept",
			content: "Note: Exploring system dynamics and adaptation patterns here",
			want:    false,
		},
		{
			name:    "plan_ prefix is excluded",
			content: "plan_12345",
			want:    true,
		},
		{
			name:    "plan_ anywhere inside is excluded",
			content: "see plan_7 for details",
			want:    true,
		},
		{
			name:    "plain plan without underscore is kept",
			content: "the plan looks solid",
			want:    false,
		},
		{
			name:    "ordinary content is kept",
			content: "hello",
			want:    false,
		},
		{
			name:    "empty content is kept",
			content: "",
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Excludes(tt.content))
		})
	}
}

func TestExclusionRules_Extras(t *testing.T) {
	rules := ExclusionRules{
		Exact:      []string{"drop me"},
		Substrings: []string{"noise"},
	}

	assert.True(t, rules.Excludes("drop me"))
	assert.False(t, rules.Excludes("drop me please"))
	assert.True(t, rules.Excludes("some noise here"))
	assert.False(t, rules.Excludes("quiet"))
}

func TestSettings_Exclusions_MergesExtras(t *testing.T) {
	s := DefaultSettings()
	s.Collect.ExtraExactExclusions = []string{"boilerplate"}
	s.Collect.ExtraSubstringExclusions = []string{"tmp_"}

	rules := s.Exclusions()

	assert.True(t, rules.Excludes(CondensedExclusion))
	assert.True(t, rules.Excludes("contains plan_ marker"))
	assert.True(t, rules.Excludes("boilerplate"))
	assert.True(t, rules.Excludes("a tmp_file entry"))
	assert.False(t, rules.Excludes("regular observation"))
}

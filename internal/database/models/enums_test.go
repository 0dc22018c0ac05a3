package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrganizationSizeIsValid(t *testing.T) {
	assert.True(t, OrganizationSizeSmall.IsValid())
	assert.True(t, OrganizationSizeEnterprise.IsValid())
	assert.False(t, OrganizationSize("gigantic").IsValid())
	assert.False(t, OrganizationSize("").IsValid())
}

func TestMaturityLevelIsValid(t *testing.T) {
	assert.True(t, MaturityLevelNone.IsValid())
	assert.True(t, MaturityLevelScaling.IsValid())
	assert.False(t, MaturityLevel("expert").IsValid())
}

func TestParsePriority(t *testing.T) {
	cases := []struct {
		input string
		want  Priority
		ok    bool
	}{
		{"high", PriorityHigh, true},
		{"High", PriorityHigh, true},
		{"MEDIUM", PriorityMedium, true},
		{" low ", PriorityLow, true},
		{"urgent", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, ok := ParsePriority(tc.input)
		assert.Equal(t, tc.ok, ok, "input %q", tc.input)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.input)
		}
	}
}

package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeLabel(t *testing.T) {
	assert.Equal(t, "PW_Aug_21_2026", SafeLabel("PW Aug 21, 2026"))
	assert.Equal(t, "issue-34.2", SafeLabel("issue-34.2"))
	assert.Equal(t, "pilot", SafeLabel("(pilot)"))
}

func TestSafeRegion(t *testing.T) {
	assert.Equal(t, "West_Coast_Canada", SafeRegion("West Coast Canada"))
	assert.Equal(t, "Ireland_Hungary", SafeRegion("Ireland/Hungary"))
	assert.Equal(t, "All", SafeRegion(""))
}

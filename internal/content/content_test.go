package content

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentCounts(t *testing.T) {
	assert.Len(t, Features, 5)
	assert.Len(t, Steps, 3)
	assert.Len(t, Testimonials, 3)
	assert.Len(t, Benefits, 4)
	assert.Len(t, DoctorPoints, 3)
	assert.Len(t, PatientPoints, 3)
}

func TestStatTargets(t *testing.T) {
	assert.Equal(t, []int{2500, 99, 150, 98}, StatTargets())
}

func TestTestimonialsHaveFullRating(t *testing.T) {
	for _, tm := range Testimonials {
		assert.Equal(t, 5, tm.Rating, tm.Author)
		assert.NotEmpty(t, tm.Quote)
		assert.NotEmpty(t, tm.Image)
	}
}

func TestStepDelaysIncrease(t *testing.T) {
	for i := 1; i < len(Steps); i++ {
		assert.Greater(t, Steps[i].Delay, Steps[i-1].Delay)
	}
}

func TestRevealTargets(t *testing.T) {
	targets := RevealTargets()
	require.Len(t, targets, len(Features)+len(Steps)+8)

	ident := regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	seen := make(map[string]bool)
	for _, id := range targets {
		assert.Regexp(t, ident, id)
		assert.False(t, seen[id], "duplicate reveal id %q", id)
		seen[id] = true
	}
	assert.True(t, seen[FeatureRevealID(4)])
	assert.True(t, seen[StepRevealID(2)])
}

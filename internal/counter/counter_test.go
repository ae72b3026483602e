package counter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var heroTargets = []int{2500, 99, 150, 98}

func TestFrame(t *testing.T) {
	tests := []struct {
		name string
		step int
		want []int
	}{
		{"before start", 0, []int{0, 0, 0, 0}},
		{"first step", 1, []int{41, 1, 2, 1}},
		{"half way", 30, []int{1250, 49, 75, 49}},
		{"second to last", 59, []int{2458, 97, 147, 96}},
		{"last step snaps to targets", 60, []int{2500, 99, 150, 98}},
		{"past the end", 61, []int{2500, 99, 150, 98}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Frame(heroTargets, tt.step, DefaultSteps))
		})
	}
}

func TestFrame_BoundedAndMonotonic(t *testing.T) {
	prev := Frame(heroTargets, 0, DefaultSteps)
	for step := 1; step <= DefaultSteps; step++ {
		cur := Frame(heroTargets, step, DefaultSteps)
		for i, v := range cur {
			assert.LessOrEqual(t, v, heroTargets[i], "step %d counter %d exceeds target", step, i)
			assert.GreaterOrEqual(t, v, prev[i], "step %d counter %d decreased", step, i)
		}
		prev = cur
	}
	assert.Equal(t, heroTargets, prev)
}

func TestFrame_DoesNotAliasTargets(t *testing.T) {
	targets := []int{10, 20}
	values := Frame(targets, 5, 5)
	values[0] = 99
	assert.Equal(t, []int{10, 20}, targets)
}

func TestNew_Defaults(t *testing.T) {
	a := New(heroTargets)
	assert.Equal(t, 500*time.Millisecond, a.Delay)
	assert.Equal(t, 2*time.Second, a.Duration)
	assert.Equal(t, 60, a.Steps)
	assert.Equal(t, 33333333*time.Nanosecond, a.StepInterval())
}

func TestAnimator_Run(t *testing.T) {
	a := &Animator{Targets: heroTargets, Delay: time.Millisecond, Duration: 60 * time.Millisecond, Steps: 60}

	var frames [][]int
	var steps []int
	err := a.Run(context.Background(), func(step int, values []int) {
		steps = append(steps, step)
		frames = append(frames, values)
	})
	require.NoError(t, err)

	require.Len(t, frames, 60)
	assert.Equal(t, 1, steps[0])
	assert.Equal(t, 60, steps[len(steps)-1])
	assert.Equal(t, heroTargets, frames[len(frames)-1])
}

func TestAnimator_CancelledBeforeDelay(t *testing.T) {
	a := &Animator{Targets: heroTargets, Delay: 50 * time.Millisecond, Duration: time.Millisecond, Steps: 2}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	require.NoError(t, a.Run(ctx, func(int, []int) { called = true }))
	assert.False(t, called)
}

func TestAnimator_NoFramesAfterCancel(t *testing.T) {
	a := &Animator{Targets: heroTargets, Delay: 0, Duration: 600 * time.Millisecond, Steps: 60}
	ctx, cancel := context.WithCancel(context.Background())

	var mu sync.Mutex
	count := 0
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = a.Run(ctx, func(int, []int) {
			mu.Lock()
			count++
			mu.Unlock()
		})
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	mu.Lock()
	after := count
	mu.Unlock()
	assert.Less(t, after, 60)

	time.Sleep(30 * time.Millisecond)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, after, count, "no frame may arrive after Run returns")
}

func TestAnimator_InvalidSteps(t *testing.T) {
	a := &Animator{Targets: heroTargets, Steps: 0}
	assert.ErrorIs(t, a.Run(context.Background(), func(int, []int) {}), ErrInvalidSteps)
}

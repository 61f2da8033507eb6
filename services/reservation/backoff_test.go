package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoffDelayDoubles(t *testing.T) {
	noJitter := func() time.Duration { return 0 }

	assert.Equal(t, 300*time.Millisecond, backoffDelay(0, 0, noJitter))
	assert.Equal(t, 600*time.Millisecond, backoffDelay(1, 0, noJitter))
	assert.Equal(t, 1200*time.Millisecond, backoffDelay(2, 0, noJitter))
}

func TestBackoffDelayAppliesJitter(t *testing.T) {
	plus := func() time.Duration { return 150 * time.Millisecond }
	minus := func() time.Duration { return -150 * time.Millisecond }

	assert.Equal(t, 450*time.Millisecond, backoffDelay(0, 0, plus))
	assert.Equal(t, 150*time.Millisecond, backoffDelay(0, 0, minus))
}

func TestBackoffDelayNeverNegative(t *testing.T) {
	hugeNegative := func() time.Duration { return -time.Second }
	assert.Equal(t, time.Duration(0), backoffDelay(0, 0, hugeNegative))
}

func TestBackoffDelayHonorsRetryAfter(t *testing.T) {
	noJitter := func() time.Duration { return 0 }
	assert.Equal(t, 7*time.Second, backoffDelay(0, 7, noJitter))
	assert.Equal(t, 7*time.Second, backoffDelay(2, 7, noJitter), "Retry-After overrides the computed backoff")
}

func TestDefaultJitterStaysInRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		j := defaultJitter()
		assert.GreaterOrEqual(t, j, -200*time.Millisecond)
		assert.Less(t, j, 200*time.Millisecond)
	}
}

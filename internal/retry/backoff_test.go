package retry

import (
	"testing"
	"time"
)

func TestExponentialBackoff_NextDelay_WithoutJitter(t *testing.T) {
	strategy := NewExponentialBackoff(5,
		WithInitialDelay(100*time.Millisecond),
		WithMultiplier(2.0),
		WithJitter(0), // Disable jitter for deterministic testing
	)

	tests := []struct {
		attempt       int
		expectedDelay time.Duration
	}{
		{attempt: 0, expectedDelay: 100 * time.Millisecond},  // 100 * 2^0
		{attempt: 1, expectedDelay: 200 * time.Millisecond},  // 100 * 2^1
		{attempt: 2, expectedDelay: 400 * time.Millisecond},  // 100 * 2^2
		{attempt: 3, expectedDelay: 800 * time.Millisecond},  // 100 * 2^3
		{attempt: 4, expectedDelay: 1600 * time.Millisecond}, // 100 * 2^4
	}

	for _, tt := range tests {
		delay := strategy.NextDelay(tt.attempt)
		if delay != tt.expectedDelay {
			t.Errorf("NextDelay(%d) = %v, want %v", tt.attempt, delay, tt.expectedDelay)
		}
	}
}

func TestExponentialBackoff_NextDelay_MaxDelayCap(t *testing.T) {
	strategy := NewExponentialBackoff(10,
		WithInitialDelay(100*time.Millisecond),
		WithMultiplier(2.0),
		WithMaxDelay(1*time.Second),
		WithJitter(0),
	)

	// Attempt 10: 100ms * 2^10 = 102.4s, capped at 1s
	if delay := strategy.NextDelay(10); delay != 1*time.Second {
		t.Errorf("NextDelay(10) = %v, want %v (should be capped at MaxDelay)", delay, 1*time.Second)
	}
}

func TestExponentialBackoff_NextDelay_JitterNeverExceedsMaxDelay(t *testing.T) {
	strategy := NewExponentialBackoff(10,
		WithInitialDelay(100*time.Millisecond),
		WithMultiplier(2.0),
		WithMaxDelay(1*time.Second),
		WithJitter(0.5),
		// Worst case: jitter always lands at the upper bound
		WithJitterFunc(func() float64 { return 1.0 }),
	)

	for attempt := 0; attempt <= 10; attempt++ {
		if delay := strategy.NextDelay(attempt); delay > 1*time.Second {
			t.Errorf("NextDelay(%d) = %v, exceeds MaxDelay", attempt, delay)
		}
	}
}

func TestExponentialBackoff_NextDelay_WithDeterministicJitter(t *testing.T) {
	base := 100 * time.Millisecond

	tests := []struct {
		name     string
		random   float64
		expected time.Duration
	}{
		// offset = (random - 0.5) * 2, delay = base * (1 + 0.1*offset)
		{"random at lower bound", 0.0, 90 * time.Millisecond},
		{"random at midpoint", 0.5, 100 * time.Millisecond},
		{"random near upper bound", 1.0, 110 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy := NewExponentialBackoff(3,
				WithInitialDelay(base),
				WithMultiplier(2.0),
				WithJitter(0.1),
				WithJitterFunc(func() float64 { return tt.random }),
			)

			if delay := strategy.NextDelay(0); delay != tt.expected {
				t.Errorf("NextDelay(0) = %v, want %v", delay, tt.expected)
			}
		})
	}
}

func TestExponentialBackoff_Defaults(t *testing.T) {
	strategy := NewExponentialBackoff(5)

	if strategy.MaxAttempts() != 5 {
		t.Errorf("MaxAttempts() = %d, want 5", strategy.MaxAttempts())
	}

	// Default jitter is 0.1, so the first retry delay must stay within
	// +/- 10% of the 500ms default initial delay.
	delay := strategy.NextDelay(0)
	if delay < 450*time.Millisecond || delay > 550*time.Millisecond {
		t.Errorf("NextDelay(0) = %v, want within [450ms, 550ms]", delay)
	}
}

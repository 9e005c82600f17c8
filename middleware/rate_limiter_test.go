package middleware

import "testing"

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(1, 3)

	for i := 0; i < 3; i++ {
		if !rl.Allow("10.0.0.1") {
			t.Fatalf("request %d denied within burst", i+1)
		}
	}
	if rl.Allow("10.0.0.1") {
		t.Error("request allowed after burst exhausted")
	}

	// other clients have their own bucket
	if !rl.Allow("10.0.0.2") {
		t.Error("fresh client denied")
	}
}

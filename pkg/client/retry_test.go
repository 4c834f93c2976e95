package client

import (
	"testing"
	"time"
)

func TestRetryPolicyDelay(t *testing.T) {
	p := DefaultRetryPolicy()

	if d := p.Delay(1); d != 0 {
		t.Fatalf("first attempt must not wait, got %v", d)
	}
	if d := p.Delay(2); d != time.Second {
		t.Fatalf("expected 1s before attempt 2, got %v", d)
	}
	if d := p.Delay(3); d != 2*time.Second {
		t.Fatalf("expected 2s before attempt 3, got %v", d)
	}
	if d := p.Delay(4); d != 4*time.Second {
		t.Fatalf("expected 4s before attempt 4, got %v", d)
	}
	if d := p.Delay(6); d != 8*time.Second {
		t.Fatalf("backoff must cap at 8s, got %v", d)
	}
}

func TestRetryPolicyRetryable(t *testing.T) {
	p := DefaultRetryPolicy()

	for _, status := range []int{429, 500, 502, 503} {
		if !p.Retryable(status) {
			t.Fatalf("status %d should be retryable", status)
		}
	}
	for _, status := range []int{400, 401, 403, 404, 422} {
		if p.Retryable(status) {
			t.Fatalf("status %d must be definitive", status)
		}
	}
}

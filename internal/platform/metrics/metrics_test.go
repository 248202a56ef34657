package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestCollectorSnapshot(t *testing.T) {
	c := New()
	c.Record(200, 10*time.Millisecond)
	c.Record(400, 20*time.Millisecond)
	c.Record(429, 0)
	c.Record(500, 30*time.Millisecond)

	snap := c.Snapshot()
	if snap["requestsTotal"] != uint64(4) {
		t.Fatalf("expected 4 requests, got %v", snap["requestsTotal"])
	}
	if snap["errorsTotal"] != uint64(1) {
		t.Fatalf("expected 1 error, got %v", snap["errorsTotal"])
	}
	if snap["rejectedTotal"] != uint64(1) {
		t.Fatalf("expected 1 rejected, got %v", snap["rejectedTotal"])
	}
	if snap["rateLimitedTotal"] != uint64(1) {
		t.Fatalf("expected 1 rate limited, got %v", snap["rateLimitedTotal"])
	}
	if snap["avgDurationMs"] != float64(15) {
		t.Fatalf("expected 15ms average, got %v", snap["avgDurationMs"])
	}
}

func TestRecordCalculationConcurrent(t *testing.T) {
	c := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.RecordCalculation("mortgage")
		}()
	}
	wg.Wait()
	c.RecordCalculation("tax")

	calcs := c.Snapshot()["calculations"].(map[string]uint64)
	if calcs["mortgage"] != 50 || calcs["tax"] != 1 {
		t.Fatalf("unexpected calculation counts: %v", calcs)
	}
}

func TestNilCollectorIgnoresCalculations(t *testing.T) {
	var c *Collector
	c.RecordCalculation("tax")
}

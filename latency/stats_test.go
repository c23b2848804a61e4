package latency

import "testing"

func TestAnalyzeReference(t *testing.T) {
	// sorted = [1 3 5 7 9]; median index 2, p99/p999 clamp to index 4
	stats, ok := Analyze([]uint64{5, 1, 9, 3, 7})
	if !ok {
		t.Fatal("Analyze returned no data")
	}
	if stats.Count != 5 {
		t.Errorf("Count = %d, want 5", stats.Count)
	}
	if stats.Min != 1 {
		t.Errorf("Min = %d, want 1", stats.Min)
	}
	if stats.Max != 9 {
		t.Errorf("Max = %d, want 9", stats.Max)
	}
	if stats.Mean != 5.0 {
		t.Errorf("Mean = %v, want 5.0", stats.Mean)
	}
	if stats.Median != 5 {
		t.Errorf("Median = %d, want 5", stats.Median)
	}
	if stats.P99 != 9 {
		t.Errorf("P99 = %d, want 9", stats.P99)
	}
	if stats.P999 != 9 {
		t.Errorf("P999 = %d, want 9", stats.P999)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	if _, ok := Analyze(nil); ok {
		t.Error("Analyze(nil) reported data")
	}
	if _, ok := Analyze([]uint64{}); ok {
		t.Error("Analyze(empty) reported data")
	}
}

func TestAnalyzeSingleSample(t *testing.T) {
	// all ranks clamp onto the only sample
	stats, ok := Analyze([]uint64{42})
	if !ok {
		t.Fatal("Analyze returned no data")
	}
	if stats.Min != 42 || stats.Median != 42 || stats.P99 != 42 || stats.P999 != 42 || stats.Max != 42 {
		t.Errorf("single-sample stats = %+v", stats)
	}
	if stats.Mean != 42.0 {
		t.Errorf("Mean = %v, want 42.0", stats.Mean)
	}
}

func TestAnalyzeUpperMedianOnEvenCount(t *testing.T) {
	stats, _ := Analyze([]uint64{1, 2, 3, 4})
	if stats.Median != 3 {
		t.Errorf("Median = %d, want upper median 3", stats.Median)
	}
}

func TestAnalyzeNearestRankIndexes(t *testing.T) {
	// 1000 samples 1..1000: p99 index 990 → value 991, p999 index 999 → 1000
	samples := make([]uint64, 1000)
	for i := range samples {
		samples[i] = uint64(i + 1)
	}
	stats, _ := Analyze(samples)
	if stats.P99 != 991 {
		t.Errorf("P99 = %d, want 991", stats.P99)
	}
	if stats.P999 != 1000 {
		t.Errorf("P999 = %d, want 1000", stats.P999)
	}
	if stats.Median != 501 {
		t.Errorf("Median = %d, want 501", stats.Median)
	}
}

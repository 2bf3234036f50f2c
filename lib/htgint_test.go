package lib

import "fmt"
import "reflect"
import "strings"
import "testing"

var _ = fmt.Sprintf("dummy")

func TestHistogramInt(t *testing.T) {
	h := NewhistorgramInt64(3, 97, 3)
	for i := 1; i <= 100; i++ {
		h.Add(int64(i))
	}

	if x, y := int64(1), h.Min(); x != y {
		t.Errorf("Min() expected %v, got %v", x, y)
	} else if x, y := int64(100), h.Max(); x != y {
		t.Errorf("Max() expected %v, got %v", x, y)
	} else if x, y := int64(100), h.Samples(); x != y {
		t.Errorf("Samples() expected %v, got %v", x, y)
	} else if x, y := int64(100*101)/2, h.Sum(); x != y {
		t.Errorf("Sum() expected %v, got %v", x, y)
	} else if x, y := h.Sum()/h.Samples(), h.Mean(); x != y {
		t.Errorf("Mean() expected %v, got %v", x, y)
	} else if x, y := 883.5, h.Variance(); x != y {
		t.Errorf("Variance() expected %v, got %v", x, y)
	} else if x, y := 29.723727895403698, h.SD(); x != y {
		t.Errorf("SD() expected %v, got %v", x, y)
	}

	// check histogram buckets
	samples := []int64{0, 1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 14, 15, 16, 17}

	ref := map[string]int64{"-": 6, "6": 2, "9": 3, "12": 3, "+": 3}
	h = NewhistorgramInt64(6, 15, 3)
	for _, sample := range samples {
		h.Add(sample)
	}
	if data := h.Buckets(); reflect.DeepEqual(ref, data) == false {
		t.Errorf("expected %v, got %v", ref, data)
	}

	ref = map[string]int64{"-": 3, "3": 3, "6": 2, "9": 3, "12": 3, "+": 3}
	h = NewhistorgramInt64(3, 16, 3)
	for _, sample := range samples {
		h.Add(sample)
	}
	if data := h.Buckets(); reflect.DeepEqual(ref, data) == false {
		t.Errorf("expected %v, got %v", ref, data)
	}

	ref = map[string]int64{"0": 3, "3": 3, "6": 2, "9": 3, "+": 6}
	h = NewhistorgramInt64(2, 14, 3)
	for _, sample := range samples {
		h.Add(sample)
	}
	if data := h.Buckets(); !reflect.DeepEqual(ref, data) {
		t.Errorf("expected %v, got %v", ref, data)
	}

	// full stats and log string
	stats := h.Fullstats()
	if x, y := int64(17), stats["samples"].(int64); x != y {
		t.Errorf("expected %v, got %v", x, y)
	} else if _, ok := stats["histogram"]; ok == false {
		t.Errorf("expected histogram in full stats")
	}
	logstr := h.Logstring()
	if strings.HasPrefix(logstr, "{") == false {
		t.Errorf("unexpected log string %v", logstr)
	} else if strings.Contains(logstr, `"histogram"`) == false {
		t.Errorf("unexpected log string %v", logstr)
	}
}

func BenchmarkHtgintAdd(b *testing.B) {
	htg := NewhistorgramInt64(1, int64(b.N), 5)
	for i := 0; i <= b.N; i++ {
		htg.Add(int64(i))
	}
}

func BenchmarkHtgintBuckets(b *testing.B) {
	htg := NewhistorgramInt64(1, 1000, 5)
	for i := 0; i <= 10000; i++ {
		htg.Add(int64(i % 1200))
	}
	b.ResetTimer()
	for i := 0; i <= b.N; i++ {
		htg.Buckets()
	}
}

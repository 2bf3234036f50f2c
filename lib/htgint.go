package lib

import "fmt"
import "sort"
import "strconv"
import "strings"

// HistogramInt64 statistical histogram of int64 samples, banded
// into fixed width buckets between from and till. Samples outside
// the range land in the first and last bucket.
type HistogramInt64 struct {
	AverageInt64
	histogram []int64
	// setup
	from  int64
	till  int64
	width int64
}

// NewhistorgramInt64 return a new histogram object.
func NewhistorgramInt64(from, till, width int64) *HistogramInt64 {
	from = (from / width) * width
	till = (till / width) * width
	h := &HistogramInt64{from: from, till: till, width: width}
	h.histogram = make([]int64, 1+((till-from)/width)+1)
	return h
}

// Add a sample to this histogram.
func (h *HistogramInt64) Add(sample int64) {
	h.AverageInt64.Add(sample)
	if sample < h.from {
		h.histogram[0]++
	} else if sample >= h.till {
		h.histogram[len(h.histogram)-1]++
	} else {
		h.histogram[((sample-h.from)/h.width)+1]++
	}
}

// Buckets return a map of bucket lower-bound to number of samples
// in that bucket, empty buckets are omitted. Samples below from are
// keyed "-", samples beyond till are keyed "+".
func (h *HistogramInt64) Buckets() map[string]int64 {
	m := make(map[string]int64)
	for i, v := range h.histogram {
		if v == 0 {
			continue
		}
		switch i {
		case 0:
			m["-"] = v
		case len(h.histogram) - 1:
			m["+"] = v
		default:
			key := strconv.Itoa(int(h.from + (int64(i-1) * h.width)))
			m[key] = v
		}
	}
	return m
}

// Fullstats include mean, variance, stddeviance along with buckets.
func (h *HistogramInt64) Fullstats() map[string]interface{} {
	stats := h.AverageInt64.Stats()
	stats["histogram"] = h.Buckets()
	return stats
}

// Logstring return Fullstats as loggable string.
func (h *HistogramInt64) Logstring() string {
	stats := h.Fullstats()
	keys := []string{}
	for k := range stats {
		if k == "histogram" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ss := []string{}
	for _, key := range keys {
		ss = append(ss, fmt.Sprintf(`"%v": %v`, key, stats[key]))
	}
	hkeys := []int{}
	buckets := stats["histogram"].(map[string]int64)
	for k := range buckets {
		if k == "-" || k == "+" {
			continue
		}
		n, _ := strconv.Atoi(k)
		hkeys = append(hkeys, n)
	}
	sort.Ints(hkeys)
	hs := []string{}
	if v, ok := buckets["-"]; ok {
		hs = append(hs, fmt.Sprintf(`"-": %v`, v))
	}
	for _, k := range hkeys {
		ks := strconv.Itoa(k)
		hs = append(hs, fmt.Sprintf(`"%v": %v`, ks, buckets[ks]))
	}
	if v, ok := buckets["+"]; ok {
		hs = append(hs, fmt.Sprintf(`"+": %v`, v))
	}
	ss = append(ss, fmt.Sprintf(`"histogram": {%v}`, strings.Join(hs, ",")))
	return "{" + strings.Join(ss, ",") + "}"
}

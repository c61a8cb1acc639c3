package main

import "math"

// Metric accumulates wait times of matching records.
type Metric struct {
	Count int
	Sum   int64
}

func (m *Metric) Add(v int) {
	m.Count++
	m.Sum += int64(v)
}

// Avg is the mean rounded half up, or NoData when nothing was added.
func (m *Metric) Avg() int {
	if m.Count == 0 {
		return NoData
	}
	return int(math.Floor(float64(m.Sum)/float64(m.Count) + 0.5))
}

package analysis

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/ballsim/internal/physics"
)

// Speeds returns the speed of every ball.
func Speeds(balls []physics.Ball) []float64 {
	out := make([]float64, len(balls))
	for i := range balls {
		out[i] = balls[i].Speed()
	}
	return out
}

// Histogram bins values over [Min, Max].
type Histogram struct {
	Min, Max float64
	Counts   []int
}

// NewHistogram bins values into n equal bins. The last bin is closed so the
// maximum lands in it.
func NewHistogram(values []float64, n int) *Histogram {
	if n < 1 {
		n = 1
	}
	h := &Histogram{Counts: make([]int, n)}
	if len(values) == 0 {
		return h
	}

	h.Min, h.Max = values[0], values[0]
	for _, v := range values {
		h.Min = math.Min(h.Min, v)
		h.Max = math.Max(h.Max, v)
	}

	width := (h.Max - h.Min) / float64(n)
	for _, v := range values {
		bin := 0
		if width > 0 {
			bin = int((v - h.Min) / width)
		}
		if bin >= n {
			bin = n - 1
		}
		h.Counts[bin]++
	}
	return h
}

func (h *Histogram) Total() int {
	t := 0
	for _, c := range h.Counts {
		t += c
	}
	return t
}

// MeanStd returns the mean and population standard deviation.
func MeanStd(values []float64) (mean, std float64) {
	if len(values) == 0 {
		return 0, 0
	}
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	for _, v := range values {
		std += (v - mean) * (v - mean)
	}
	return mean, math.Sqrt(std / float64(len(values)))
}

// ASCII renders the histogram as horizontal bars at most width wide.
func (h *Histogram) ASCII(width int) string {
	peak := 0
	for _, c := range h.Counts {
		if c > peak {
			peak = c
		}
	}

	var sb strings.Builder
	binWidth := (h.Max - h.Min) / float64(len(h.Counts))
	for i, c := range h.Counts {
		lo := h.Min + float64(i)*binWidth
		bar := 0
		if peak > 0 {
			bar = c * width / peak
		}
		fmt.Fprintf(&sb, "%8.1f | %s %d\n", lo, strings.Repeat("█", bar), c)
	}
	return sb.String()
}

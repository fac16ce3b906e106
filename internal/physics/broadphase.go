package physics

import (
	"runtime"
	"sync"

	"github.com/san-kum/ballsim/internal/geom"
)

// parallelThreshold is the ball count from which the broad phase is split
// across goroutines.
const parallelThreshold = 256

// Pair is an unordered pair of ball indices with I < J.
type Pair struct {
	I, J int
}

// BroadPhase returns every overlapping pair (i < j) in lexicographic order.
// It only reads positions.
func BroadPhase(balls []Ball) []Pair {
	n := len(balls)
	if n < parallelThreshold {
		return appendOverlaps(nil, balls, 0, n)
	}

	chunks := make([][]Pair, n)
	ParallelFor(n, 32, func(start, end int) {
		for i := start; i < end; i++ {
			chunks[i] = appendOverlaps(nil, balls, i, i+1)
		}
	})

	total := 0
	for _, c := range chunks {
		total += len(c)
	}
	pairs := make([]Pair, 0, total)
	for _, c := range chunks {
		pairs = append(pairs, c...)
	}
	return pairs
}

func appendOverlaps(dst []Pair, balls []Ball, from, to int) []Pair {
	for i := from; i < to; i++ {
		a := &balls[i]
		for j := i + 1; j < len(balls); j++ {
			b := &balls[j]
			if geom.CirclesOverlap(a.Position, a.Radius, b.Position, b.Radius) {
				dst = append(dst, Pair{I: i, J: j})
			}
		}
	}
	return dst
}

// ParallelFor executes fn over [0, n) split into contiguous chunks.
func ParallelFor(n, minChunk int, fn func(start, end int)) {
	numWorkers := runtime.GOMAXPROCS(0)
	if n <= minChunk || numWorkers <= 1 {
		fn(0, n)
		return
	}

	workers := numWorkers
	if n/minChunk < workers {
		workers = n / minChunk
	}
	if workers < 1 {
		workers = 1
	}

	chunkSize := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for start := 0; start < n; start += chunkSize {
		end := start + chunkSize
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			fn(s, e)
		}(start, end)
	}

	wg.Wait()
}

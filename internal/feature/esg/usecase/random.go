package usecase

import (
	"math/rand/v2"
	"sync"
)

// RandomSource は一様な整数乱数の供給元です。
// math/rand/v2 の *rand.Rand はこのインターフェースをそのまま満たします。
type RandomSource interface {
	// IntN は [0, n) の一様乱数を返します。
	IntN(n int) int
}

// globalSource はプロセス共通の乱数源を使います。goroutine安全です。
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// lockedSource はシード付きの *rand.Rand をミューテックスで保護します。
type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewSeededSource は固定シードから再現可能な乱数源を生成します。
// 複数のリクエストから同時に呼び出しても安全です。
func NewSeededSource(seed uint64) RandomSource {
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed))}
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

// between は [lo, hi] の一様乱数を返します（両端を含む）。
func between(r RandomSource, lo, hi int) int {
	return lo + r.IntN(hi-lo+1)
}

// Package ratelimiter は外部API呼び出しの頻度を制限します。
package ratelimiter

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// RateLimiterInterface は、API呼び出しなどの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	WaitIfNeeded(ctx context.Context) error
}

// RateLimiter は固定ウィンドウ方式で操作の頻度を制限します。
// 複数のgoroutineから同時に呼び出せます。
type RateLimiter struct {
	mu          sync.Mutex
	limit       int           // ウィンドウあたりの上限
	interval    time.Duration // ウィンドウの長さ
	count       int
	windowStart time.Time // 上限超過時は未来のウィンドウを指す

	now  func() time.Time
	wait func(ctx context.Context, d time.Duration) error
}

// NewRateLimiter は新しいRateLimiterのインスタンスを生成します。
// limitが0以下の場合は制限しません。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:       limit,
		interval:    interval,
		windowStart: time.Now(),
		now:         time.Now,
		wait:        waitContext,
	}
}

// WaitIfNeeded はウィンドウ内の上限に達している場合、枠を確保した次のウィンドウまで待機します。
// ロックは枠の確保にだけ使い、待機中は保持しません。
// ctxがキャンセルされた場合はctx.Err()を返します。
func (rl *RateLimiter) WaitIfNeeded(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if rl.limit <= 0 {
		return nil
	}

	d := rl.reserve()
	if d <= 0 {
		return nil
	}
	slog.Warn("rate limit reached, waiting", "limit", rl.limit, "wait", d)
	return rl.wait(ctx, d)
}

// reserve は呼び出し1回分の枠を確保し、その枠のウィンドウが始まるまでの時間を返します。
func (rl *RateLimiter) reserve() time.Duration {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.windowStart) >= rl.interval {
		rl.count = 0
		rl.windowStart = now
	}
	if rl.count >= rl.limit {
		rl.count = 0
		rl.windowStart = rl.windowStart.Add(rl.interval)
	}
	rl.count++
	return rl.windowStart.Sub(now)
}

func waitContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Noop は何も制限しないRateLimiterInterfaceの実装です。
type Noop struct{}

// WaitIfNeeded は即座に戻ります。
func (Noop) WaitIfNeeded(context.Context) error { return nil }

package usecase

import (
	"context"
	"time"
)

// DefaultAnalysisDelay は分析結果を返す前の演出用の待機時間です。
const DefaultAnalysisDelay = 2 * time.Second

// DelayFunc は指定時間だけ待機します。ctxがキャンセルされた場合はctx.Err()を返します。
type DelayFunc func(ctx context.Context, d time.Duration) error

// SleepContext はタイマーとctx.Done()で待機するDelayFuncの実装です。
// 待機中もgoroutineをブロックするだけなので、他のリクエストには影響しません。
func SleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoDelay は待機しないDelayFuncです。
func NoDelay(context.Context, time.Duration) error { return nil }

package http

import (
	"net"
	"net/http"
	"time"
)

// ClientOptions は外部API（Geminiなど）向けHTTPクライアントの設定です。
// ゼロ値の項目は既定値になります。
type ClientOptions struct {
	// Timeout はリクエスト全体のタイムアウトです。0の場合はDefaultTimeout。
	Timeout             time.Duration
	DialTimeout         time.Duration
	TLSHandshakeTimeout time.Duration
	MaxIdleConns        int
}

// 既定値
const (
	DefaultTimeout             = 30 * time.Second
	DefaultDialTimeout         = 5 * time.Second
	DefaultTLSHandshakeTimeout = 5 * time.Second
	DefaultMaxIdleConns        = 20
)

func (o ClientOptions) withDefaults() ClientOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	if o.DialTimeout <= 0 {
		o.DialTimeout = DefaultDialTimeout
	}
	if o.TLSHandshakeTimeout <= 0 {
		o.TLSHandshakeTimeout = DefaultTLSHandshakeTimeout
	}
	if o.MaxIdleConns <= 0 {
		o.MaxIdleConns = DefaultMaxIdleConns
	}
	return o
}

// NewHTTPClient は外部API呼び出し用のHTTPクライアントを作成します。
// http.DefaultClientはタイムアウトを持たないため使いません。
// プロキシは環境変数（HTTP_PROXYなど）に従います。
func NewHTTPClient(opts ClientOptions) *http.Client {
	opts = opts.withDefaults()
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   opts.DialTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        opts.MaxIdleConns,
		MaxIdleConnsPerHost: opts.MaxIdleConns,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: opts.TLSHandshakeTimeout,
	}
	return &http.Client{Timeout: opts.Timeout, Transport: t}
}

// Package valkey はValkeyクライアントの共通機能を提供する。
package valkey

import (
	"net"
	"strconv"
	"time"
)

// Options はValkeyクライアントの接続オプション。
type Options struct {
	Addr            string        // 接続先アドレス（host:port形式）
	Password        string        // 認証パスワード
	DB              int           // データベース番号
	ConnectTimeout  time.Duration // 接続タイムアウト
	CommandTimeout  time.Duration // 読み書きタイムアウト
	PoolSize        int           // コネクションプールサイズ
	MinIdleConns    int           // 最小アイドルコネクション数
	MaxRetries      int           // コマンドリトライ回数
	MinRetryBackoff time.Duration // リトライ間隔の下限
	MaxRetryBackoff time.Duration // リトライ間隔の上限
}

// DefaultOptions はサーバーアプリケーション向けのOptionsを返す。
// タイムアウト: 接続3秒、コマンド2秒 / プール: サイズ20、最小アイドル2 / リトライ3回
func DefaultOptions() *Options {
	return &Options{
		Addr:            "localhost:6379",
		ConnectTimeout:  3 * time.Second,
		CommandTimeout:  2 * time.Second,
		PoolSize:        20,
		MinIdleConns:    2,
		MaxRetries:      3,
		MinRetryBackoff: 100 * time.Millisecond,
		MaxRetryBackoff: time.Second,
	}
}

// TUIOptions はTUIアプリケーション向けのOptionsを返す。
// 対話操作のため長めのタイムアウトと小さなプールを使う。
func TUIOptions() *Options {
	return &Options{
		Addr:           "localhost:6379",
		ConnectTimeout: 5 * time.Second,
		CommandTimeout: 5 * time.Second,
		PoolSize:       5,
		MinIdleConns:   1,
	}
}

// WithAddr はアドレスを設定する。
func (o *Options) WithAddr(addr string) *Options {
	o.Addr = addr
	return o
}

// WithPassword はパスワードを設定する。
func (o *Options) WithPassword(password string) *Options {
	o.Password = password
	return o
}

// WithTimeouts はタイムアウトを設定する。
func (o *Options) WithTimeouts(connect, command time.Duration) *Options {
	o.ConnectTimeout = connect
	o.CommandTimeout = command
	return o
}

// BuildAddr はホストとポートからアドレス文字列を生成する。
func BuildAddr(host string, port int) string {
	return net.JoinHostPort(host, strconv.Itoa(port))
}

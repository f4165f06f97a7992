package scrape

import (
	"context"
)

// ----------------------------------------------------------------------
// 依存性の定義 (DIP)
// ----------------------------------------------------------------------

// Fetcher は、HTMLドキュメントの生バイト配列を取得する機能のインターフェースを定義します。
// Crawler は、この抽象に依存します。*httpkit.Client がそのままこの実装になります。
type Fetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}

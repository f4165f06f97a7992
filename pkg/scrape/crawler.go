package scrape

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/shouni/go-legis-roster/pkg/roster"
)

const (
	// DefaultDetailDelay は、詳細ページのフェッチ成功後に挟む固定の待機時間です。
	// 取得先サイトへのリクエストレートを抑えるためだけに存在し、正しさには関与しません。
	DefaultDetailDelay = 200 * time.Millisecond
)

// Crawler は、一覧ページと議員ごとの詳細ページを順次フェッチし、ロースターを構築します。
// 並列フェッチは行わず、一覧テーブルの行順に一件ずつ同期的に処理します。
type Crawler struct {
	fetcher Fetcher
	delay   time.Duration
	chamber string // 空でない場合、この議院の行のみを処理対象とする
}

// Option は Crawler の設定を行うための関数型です。
type Option func(*Crawler)

// WithDetailDelay は、詳細フェッチ成功後の待機時間を設定します。0 で待機なしになります。
func WithDetailDelay(delay time.Duration) Option {
	return func(c *Crawler) {
		c.delay = delay
	}
}

// WithChamberFilter は、処理対象を指定した議院 (Senate / House) に限定します。
// 空文字列はフィルタなしを意味します。
func WithChamberFilter(chamber string) Option {
	return func(c *Crawler) {
		c.chamber = chamber
	}
}

// NewCrawler は、新しい Crawler のインスタンスを生成します。依存性として Fetcher を受け取ります。
func NewCrawler(fetcher Fetcher, options ...Option) (*Crawler, error) {
	if fetcher == nil {
		return nil, fmt.Errorf("scrape.NewCrawler: Fetcher cannot be nil")
	}
	c := &Crawler{
		fetcher: fetcher,
		delay:   DefaultDetailDelay,
	}
	for _, opt := range options {
		opt(c)
	}
	return c, nil
}

// Crawl は、一覧ページをフェッチし、全議員のレコードを詳細情報込みで構築します。
// 一覧ページのフェッチ失敗・テーブル欠落はクロール全体の失敗であり、空の結果とエラーを返します。
// 個々の詳細ページの失敗はログに記録した上でそのレコードを（補完なしで）保持し、クロールを継続します。
func (c *Crawler) Crawl(ctx context.Context, listingURL string) ([]roster.Legislator, error) {
	// 1. 一覧ページのフェッチと解析
	doc, err := c.fetchDocument(ctx, listingURL)
	if err != nil {
		return nil, fmt.Errorf("一覧ページの取得に失敗しました (URL: %s): %w", listingURL, err)
	}

	legislators, err := ExtractListing(doc)
	if err != nil {
		return nil, err
	}

	// 2. 議院フィルタの適用。詳細フェッチの前に行い、対象外の行にリクエストを発生させない
	if c.chamber != "" {
		filtered := legislators[:0]
		for _, leg := range legislators {
			if leg.Chamber == c.chamber {
				filtered = append(filtered, leg)
			}
		}
		legislators = filtered
	}

	// 3. 行順に詳細ページをフェッチし、委員会所属と担当郡を補完する
	for i := range legislators {
		leg := &legislators[i]
		if leg.Link == "" {
			// 解決可能な詳細リンクを持たない行は補完もレート制御もスキップ
			continue
		}

		detailDoc, err := c.fetchDocument(ctx, leg.Link)
		if err != nil {
			// 詳細ページ一件の失敗はクロール全体を中断させない
			log.Printf("詳細ページの取得に失敗しました (議員: %s): %v", leg.Name, err)
			continue
		}

		leg.Committees, leg.Counties = ExtractDetail(detailDoc)

		// 4. フェッチ成功後の固定待機 (レートリミット)
		if err := c.pause(ctx); err != nil {
			return legislators, err
		}
	}

	return legislators, nil
}

// fetchDocument は、URLからHTMLを取得し goquery.Document として返します。
func (c *Crawler) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	htmlBytes, err := c.fetcher.FetchBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return nil, fmt.Errorf("HTML解析に失敗しました: %w", err)
	}
	return doc, nil
}

// pause は、コンテキストのキャンセルを尊重しながら固定時間待機します。
func (c *Crawler) pause(ctx context.Context) error {
	if c.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(c.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/shouni/go-legis-roster/pkg/roster"
	"github.com/shouni/go-legis-roster/pkg/scrape"
)

// コマンドラインフラグ変数を定義
var (
	listingURL    string // --url クロール対象の一覧ページURL
	outputPath    string // --output 収集結果の保存先JSONファイル
	detailDelayMs int    // --delay 詳細フェッチ成功後の待機時間 (ミリ秒)
	chamberFilter string // --chamber 議院フィルタ (Senate / House / 空で両院)
)

const (
	defaultListingURL = "https://leg.colorado.gov/legislators"
	defaultOutputPath = "legislators.json"
)

// runCrawlPipeline は、クロールの実行から永続化・リードバック検証までのメインロジックです。
// クロール自体の失敗は診断メッセージの表示で完結させ、エラーとしては伝播させません
// （結果が空である理由を必ず出力した上で正常終了します）。
func runCrawlPipeline(ctx context.Context, crawler *scrape.Crawler) error {
	log.Printf("議員データのフェッチを開始します (URL: %s)", listingURL)

	// 1. クロールの実行
	legislators, err := crawler.Crawl(ctx, listingURL)
	if err != nil {
		fmt.Printf("クロールに失敗しました: %v\n", err)
		fmt.Println("データを取得できませんでした。対象サイトを確認して再実行してください。")
		return nil
	}
	if len(legislators) == 0 {
		fmt.Println("データを取得できませんでした。対象サイトを確認して再実行してください。")
		return nil
	}
	fmt.Printf("%d 名分の議員データを取得しました\n", len(legislators))

	// 2. サマリーテーブルの表示 (Markdown形式)
	fmt.Println("\nLegislator Summary:")
	fmt.Println(renderSummaryTable(legislators))

	// 3. JSONアーティファクトの書き出し (実行のたびに全件を置き換え)
	if err := roster.Save(outputPath, legislators); err != nil {
		return err
	}
	fmt.Printf("\nデータを %s に保存しました\n", outputPath)

	// 4. 書き出したファイルを読み直し、件数を確認する
	reloaded, err := roster.Load(outputPath)
	if err != nil {
		return fmt.Errorf("書き出し結果のリードバック検証に失敗しました: %w", err)
	}
	fmt.Printf("検証完了: %d 件のレコードをファイルに書き込みました\n", len(reloaded))

	return nil
}

// renderSummaryTable は、ロースターの概要をMarkdownテーブルとして整形します。
func renderSummaryTable(legislators []roster.Legislator) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"District", "Chamber", "Name", "Party", "Committees", "Counties"})
	for _, leg := range legislators {
		t.AppendRow(table.Row{
			leg.District,
			leg.Chamber,
			leg.Name,
			leg.Party,
			len(leg.Committees),
			len(leg.Counties),
		})
	}
	return t.RenderMarkdown()
}

var crawlCmd = &cobra.Command{
	Use:   "crawl",
	Short: "議会サイトから議員ロースターを収集し、JSONとして保存します",
	Long: `議員一覧ページと議員ごとの詳細ページを順次クロールし、
選挙区・議院・氏名・政党・個人ページリンク・委員会所属・担当郡を収集して
legislators.json に保存します。保存後にファイルを読み直して件数を検証します。`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {

		// 1. 議院フィルタの妥当性チェック
		if chamberFilter != "" && chamberFilter != roster.ChamberSenate && chamberFilter != roster.ChamberHouse {
			return fmt.Errorf("無効な議院フィルタです。%s または %s を指定してください: %s",
				roster.ChamberSenate, roster.ChamberHouse, chamberFilter)
		}

		// 2. 依存性の初期化 (Fetcher -> Crawler)
		fetcher := GetGlobalFetcher()
		if fetcher == nil {
			return fmt.Errorf("HTTPクライアントの取得に失敗しました")
		}
		crawler, err := scrape.NewCrawler(
			fetcher,
			scrape.WithDetailDelay(time.Duration(detailDelayMs)*time.Millisecond),
			scrape.WithChamberFilter(chamberFilter),
		)
		if err != nil {
			return fmt.Errorf("Crawlerの初期化エラー: %w", err)
		}

		// 3. メインロジックの実行
		// クロール全体の所要時間は行数に比例するため全体タイムアウトは設けず、
		// リクエスト単位のタイムアウトはHTTPクライアント側の --timeout 設定に委ねます。
		return runCrawlPipeline(context.Background(), crawler)
	},
}

func init() {
	crawlCmd.Flags().StringVarP(&listingURL, "url", "u", defaultListingURL, "クロール対象の議員一覧ページURL")
	crawlCmd.Flags().StringVarP(&outputPath, "output", "o", defaultOutputPath, "収集結果の保存先JSONファイル")
	crawlCmd.Flags().IntVar(&detailDelayMs, "delay", 200, "詳細ページのフェッチ成功後に挟む待機時間 (ミリ秒)")
	crawlCmd.Flags().StringVar(&chamberFilter, "chamber", "", "収集対象の議院 (Senate / House)。未指定で両院")
}

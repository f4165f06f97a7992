package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shouni/go-legis-roster/pkg/roster"
	"github.com/shouni/go-legis-roster/pkg/validate"
)

// コマンドラインフラグ変数を定義
var inputPath string // --input 検証対象のJSONファイル

// runValidatePipeline は、永続化されたロースターの読み込み・検査・レポート表示を実行します。
// ファイル不在とJSONパース失敗は区別して報告し、いずれも診断メッセージの表示で完結させます。
func runValidatePipeline(path string) error {
	fmt.Printf("%s を検証しています...\n", path)

	findings, total, err := validate.File(path)
	if err != nil {
		if errors.Is(err, roster.ErrDataNotFound) {
			fmt.Printf("エラー: %s が見つかりません。先に crawl を実行してデータを生成してください。\n", path)
			return nil
		}
		fmt.Printf("エラー: %s を正しいJSONとして読み込めませんでした: %v\n", path, err)
		return nil
	}

	// 空のロースターは「全件通過」と区別して報告する
	if total == 0 {
		fmt.Println("検証対象のレコードがありません (空のロースター)")
		return nil
	}

	if len(findings) == 0 {
		fmt.Println("✅ すべての議員レコードが検証を通過しました。")
		fmt.Printf("検証したレコード数: %d\n", total)
		return nil
	}

	fmt.Printf("\n検証エラーが見つかりました (%d 名の議員に問題あり):\n", len(findings))
	fmt.Println(strings.Repeat("=", 60))
	for _, f := range findings {
		fmt.Printf("Legislator #%d (%s):\n", f.Index+1, f.Name)
		for _, violation := range f.Violations {
			fmt.Printf("  - %s\n", violation)
		}
		fmt.Println()
	}

	return nil
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "保存済みの legislators.json をフィールド契約に照らして検証します",
	Long: `crawl が保存した legislators.json を読み込み、各レコードの
選挙区・議院・氏名・政党・リンク・委員会所属・担当郡をフィールド契約に照らして検査し、
違反のあったレコードごとの一覧を表示します。`,
	Args: cobra.NoArgs,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidatePipeline(inputPath)
	},
}

func init() {
	validateCmd.Flags().StringVarP(&inputPath, "input", "i", defaultOutputPath, "検証対象のJSONファイル")
}

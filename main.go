package main

import (
	"github.com/shouni/go-legis-roster/cmd"
)

// main 関数は、CLIのエントリポイントです。
// コマンドの定義・フラグ処理・実行は cmd パッケージに委譲します。
func main() {
	cmd.Execute()
}

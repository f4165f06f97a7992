package validate

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/shouni/go-legis-roster/pkg/roster"
)

// ----------------------------------------------------------------------
// 検査結果の型と判定用パターン
// ----------------------------------------------------------------------

// Finding は、違反が一件以上見つかったレコードの検査結果です。
// 違反ゼロのレコードは結果に含まれません。
type Finding struct {
	Index      int      // 入力列の中での位置 (0始まり)
	Name       string   // レポート表示用の氏名。Nameキー自体が無い場合は "Unknown"
	Violations []string // 見つかったすべての違反メッセージ
}

var (
	asciiRe = regexp.MustCompile(`^[\x00-\x7F]+$`)
	urlRe   = regexp.MustCompile(`^https?://`)
)

// ----------------------------------------------------------------------
// 入力ソースごとの薄いラッパー
// ----------------------------------------------------------------------

// File は、永続化された legislators.json を読み込んで検査します。
// 戻り値の2番目は検査対象となったレコード総数です。
// ファイル不在 (roster.ErrDataNotFound) とJSONパース失敗は、空の結果と
// 区別可能なエラーとして返し、報告の仕方は呼び出し元に委ねます。
func File(path string) ([]Finding, int, error) {
	records, err := roster.LoadRaw(path)
	if err != nil {
		return nil, 0, err
	}
	return Raw(records), len(records), nil
}

// Records は、メモリ上の型付きロースターを検査します。
// 永続化後の再読込と同一の判定になるよう、一度JSONへ往復させてから共通の検査を通します。
func Records(legislators []roster.Legislator) ([]Finding, error) {
	data, err := json.Marshal(legislators)
	if err != nil {
		return nil, fmt.Errorf("ロースターのJSONシリアライズに失敗しました: %w", err)
	}
	var records []any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("ロースターの再デコードに失敗しました: %w", err)
	}
	return Raw(records), nil
}

// ----------------------------------------------------------------------
// 検査本体
// ----------------------------------------------------------------------

// Raw は、デコード済みのレコード列を一件ずつ検査し、違反のあったレコードだけを返します。
// 状態を持たない一回きりのパスであり、違反が何件見つかっても最後まで走り切ります。
func Raw(records []any) []Finding {
	var findings []Finding
	for i, record := range records {
		violations := checkRecord(record)
		if len(violations) > 0 {
			findings = append(findings, Finding{
				Index:      i,
				Name:       reportName(record),
				Violations: violations,
			})
		}
	}
	return findings
}

// checkRecord は、一件のレコードに対してすべてのフィールド契約を検査します。
// 各フィールドの検査は互いに独立しており、先に見つかった違反が後続の検査を止めることはありません。
// ただし同一フィールド内の分岐 (空判定とASCII判定、リスト型判定と要素判定) は排他的です。
func checkRecord(record any) []string {
	rec, _ := record.(map[string]any)

	var violations []string

	// District: 空でなく、すべてが数字であること
	if d := stringField(rec, "District"); d == "" || !isDigits(d) {
		violations = append(violations, "District is blank or not numeric")
	}

	// Chamber: Senate / House のいずれかであること
	if c := stringField(rec, "Chamber"); c != roster.ChamberSenate && c != roster.ChamberHouse {
		violations = append(violations, fmt.Sprintf("Chamber is invalid: %s", c))
	}

	// Name: 空でないこと。ASCII判定は空でない場合のみ実行する
	if name := stringField(rec, "Name"); name == "" {
		violations = append(violations, "Name is blank")
	} else if !asciiRe.MatchString(name) {
		violations = append(violations, "Name is not ASCII")
	}

	// Party: 空でないこと
	if stringField(rec, "Party") == "" {
		violations = append(violations, "Party is blank")
	}

	// Link: 空でなく、http / https スキームで始まること
	if link := stringField(rec, "Link"); link == "" || !urlRe.MatchString(link) {
		violations = append(violations, "Link is blank or not a valid URL")
	}

	// Committees: リストであること。リストでなければ要素の検査は意味を持たないため行わない。
	// キー自体が存在しない場合は空リスト扱いで通過します。
	if raw, ok := rec["Committees"]; ok {
		if committees, isList := raw.([]any); isList {
			for _, entry := range committees {
				m, isMap := entry.(map[string]any)
				if !isMap || stringField(m, "name") == "" {
					violations = append(violations, "Committee entry missing name or not a dict")
				}
			}
		} else {
			violations = append(violations, "Committees is not a list")
		}
	}

	// Counties: 空でないリストであること。リストであれば各要素を検査する
	if counties, isList := rec["Counties"].([]any); isList && len(counties) > 0 {
		for _, entry := range counties {
			county, _ := entry.(string)
			if county == "" || !asciiRe.MatchString(county) {
				violations = append(violations, fmt.Sprintf("County name not ASCII or blank: %s", county))
			}
		}
	} else {
		violations = append(violations, "Counties is not a non-empty list")
	}

	return violations
}

// ----------------------------------------------------------------------
// ヘルパー関数
// ----------------------------------------------------------------------

// stringField は、マップの値が文字列の場合にその値を返し、それ以外は空文字列を返します。
func stringField(rec map[string]any, key string) string {
	s, _ := rec[key].(string)
	return s
}

// isDigits は、文字列がASCII数字のみで構成されているかを判定します。
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// reportName は、レポート表示用のレコード名を返します。
func reportName(record any) string {
	rec, _ := record.(map[string]any)
	v, ok := rec["Name"]
	if !ok {
		return "Unknown"
	}
	s, _ := v.(string)
	return s
}

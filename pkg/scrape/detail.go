package scrape

import (
	"github.com/PuerkitoBio/goquery"
	textUtils "github.com/shouni/go-utils/text"

	"github.com/shouni/go-legis-roster/pkg/roster"
)

// ----------------------------------------------------------------------
// 定数定義 (詳細ページの構造)
// ----------------------------------------------------------------------
const (
	committeeBlockSelector = ".committee-assignment"
	committeeNameSelector  = ".committee-link a"
	committeeRoleSelector  = ".committee-role span"
	countyItemSelector     = ".field-name-field-counties .field-item"
)

// ExtractDetail は、議員詳細ページのドキュメントから委員会所属と担当郡を抽出します。
// 対象セクションが存在しないことはエラーではなく、空のスライスを返します。
// 詳細ページのフェッチ・解析そのものの失敗は、呼び出し元 (Crawler) が処理します。
func ExtractDetail(doc *goquery.Document) ([]roster.CommitteeAssignment, []string) {
	committees := []roster.CommitteeAssignment{}
	counties := []string{}

	// 委員会所属ブロック: 名前ノードが空のブロックはスキップします。
	// 役職ノードの欠落はエラーではなく、空文字列の役職として扱います。
	doc.Find(committeeBlockSelector).Each(func(i int, block *goquery.Selection) {
		name := textUtils.NormalizeText(block.Find(committeeNameSelector).First().Text())
		if name == "" {
			return
		}
		role := textUtils.NormalizeText(block.Find(committeeRoleSelector).First().Text())
		committees = append(committees, roster.CommitteeAssignment{Name: name, Role: role})
	})

	// 担当郡: テキストが空のノードはスキップ
	doc.Find(countyItemSelector).Each(func(i int, item *goquery.Selection) {
		if county := textUtils.NormalizeText(item.Text()); county != "" {
			counties = append(counties, county)
		}
	})

	return committees, counties
}

package scrape

import (
	"errors"
	"strings"

	"github.com/PuerkitoBio/goquery"
	textUtils "github.com/shouni/go-utils/text"

	"github.com/shouni/go-legis-roster/pkg/roster"
)

// ----------------------------------------------------------------------
// 定数定義 (一覧ページの構造)
// ----------------------------------------------------------------------
const (
	// BaseURL は、一覧ページで見つかった相対リンクを絶対URLへ解決するための固定の基点です。
	BaseURL = "https://leg.colorado.gov"

	// listingTableSelector は、議員一覧テーブルを特定するセレクターです。
	listingTableSelector = "table#legislators-overview-table"

	// contentNodeSelector は、選挙区・政党セル内のコンテンツノードを指します。
	contentNodeSelector = "div.field-content"

	// senatorMarker が1列目のテキストに含まれる行は上院 (Senate)、それ以外は下院 (House) です。
	senatorMarker = "Senator"

	// minListingCells は、一行を処理対象とするために必要な最小セル数です。
	minListingCells = 4
)

// ErrTableNotFound は、一覧ページに議員テーブルが存在しないことを示します。
// 一覧ページの構造的な失敗であり、Crawler はこれを受けてクロール全体を中断します。
var ErrTableNotFound = errors.New("議員一覧テーブル (id: legislators-overview-table) が見つかりませんでした")

// ExtractListing は、一覧ページのドキュメントから議員の概要レコードを一行ずつ抽出します。
// 戻り値のレコードに committees / counties は含まれず、Crawler が詳細ページで補完します。
// 出力の順序は、一覧テーブルの行順と一致します。
func ExtractListing(doc *goquery.Document) ([]roster.Legislator, error) {
	table := doc.Find(listingTableSelector).First()
	if table.Length() == 0 {
		return nil, ErrTableNotFound
	}

	var legislators []roster.Legislator

	// tbody 配下の行のみを処理します（ヘッダー行を除外）
	table.Find("tbody tr").Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")

		// セル数が不足している行は黙ってスキップ
		if cells.Length() < minListingCells {
			return
		}

		// 1. 議院の分類: 1列目のテキストに "Senator" が含まれるかどうか
		chamber := roster.ChamberHouse
		if strings.Contains(cells.Eq(0).Text(), senatorMarker) {
			chamber = roster.ChamberSenate
		}

		// 2. 氏名とリンク: 2列目のアンカーから取得します。アンカーが無い場合は空のままとし、
		//    欠損の検出はバリデーターに委ねます（抽出側で番兵値は使いません）。
		var name, link string
		if anchor := cells.Eq(1).Find("a").First(); anchor.Length() > 0 {
			name = textUtils.NormalizeText(anchor.Text())
			if href, ok := anchor.Attr("href"); ok {
				link = resolveLink(href)
			}
		}

		// 3. 選挙区と政党: 3列目・4列目のコンテンツノードから取得。ノードが無ければ空
		district := textUtils.NormalizeText(cells.Eq(2).Find(contentNodeSelector).First().Text())
		party := textUtils.NormalizeText(cells.Eq(3).Find(contentNodeSelector).First().Text())

		legislators = append(legislators, roster.Legislator{
			District:   district,
			Chamber:    chamber,
			Name:       name,
			Party:      party,
			Link:       link,
			Committees: []roster.CommitteeAssignment{},
			Counties:   []string{},
		})
	})

	return legislators, nil
}

// resolveLink は、相対リンクを固定の基点 (BaseURL) に対して絶対URLへ解決します。
// すでに http / https で始まるリンクはそのまま返します。
func resolveLink(href string) string {
	if href == "" {
		return ""
	}
	if strings.HasPrefix(href, "http") {
		return href
	}
	return BaseURL + href
}

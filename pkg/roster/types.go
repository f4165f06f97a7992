package roster

// ----------------------------------------------------------------------
// 議院の列挙値
// ----------------------------------------------------------------------

// 一覧ページの行テキストに "Senator" が含まれる行は Senate、それ以外は House に分類されます。
const (
	ChamberSenate = "Senate"
	ChamberHouse  = "House"
)

// ----------------------------------------------------------------------
// データモデル
// ----------------------------------------------------------------------

// CommitteeAssignment は、議員一人分の委員会所属（委員会名と役職）を表します。
// 役職ノードが存在しない委員会では Role は空文字列になります。
type CommitteeAssignment struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// Legislator は、議席一つ分のレコードを表します。
// JSONタグ（大文字始まりのフィールド名）は legislators.json の受け渡し契約そのものであり、
// クローラーとバリデーターはこの一つの型を通じて同じ形を共有します。
// フィールド名のずれ（改名や大文字小文字の変更）はビルド時に検出されます。
type Legislator struct {
	District   string                `json:"District"`
	Chamber    string                `json:"Chamber"`
	Name       string                `json:"Name"`
	Party      string                `json:"Party"`
	Link       string                `json:"Link"`
	Committees []CommitteeAssignment `json:"Committees"`
	Counties   []string              `json:"Counties"`
}

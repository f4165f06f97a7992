package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrDataNotFound は、永続化されたロースターのファイルが存在しないことを示します。
// 呼び出し側は errors.Is でJSONパース失敗と区別できます。
var ErrDataNotFound = errors.New("ロースターのデータファイルが見つかりません")

// Save は、ロースター全体を単一のJSON配列としてファイルへ書き出します。
// 実行のたびに全件を置き換えます（差分更新や既存データとのマージは行いません）。
func Save(path string, legislators []Legislator) error {
	data, err := json.Marshal(legislators)
	if err != nil {
		return fmt.Errorf("ロースターのJSONシリアライズに失敗しました: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("ロースターの書き込みに失敗しました (パス: %s): %w", path, err)
	}
	return nil
}

// Load は、永続化されたJSON配列を読み込み、型付きレコードの列として返します。
// ファイルが存在しない場合は ErrDataNotFound を、JSONが不正な場合はパースエラーを返します。
func Load(path string) ([]Legislator, error) {
	data, err := readArtifact(path)
	if err != nil {
		return nil, err
	}
	var legislators []Legislator
	if err := json.Unmarshal(data, &legislators); err != nil {
		return nil, fmt.Errorf("ロースターのJSONパースに失敗しました (パス: %s): %w", path, err)
	}
	return legislators, nil
}

// LoadRaw は、ファイルの内容を型に当てはめず、JSONのデコード結果そのままの形で返します。
// 永続化の往復では型が保証されないため、バリデーターはこちらを入力とします。
func LoadRaw(path string) ([]any, error) {
	data, err := readArtifact(path)
	if err != nil {
		return nil, err
	}
	var records []any
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("ロースターのJSONパースに失敗しました (パス: %s): %w", path, err)
	}
	return records, nil
}

// readArtifact は、ファイルを読み込み、不在のみ ErrDataNotFound へ変換します。
func readArtifact(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w (パス: %s)", ErrDataNotFound, path)
		}
		return nil, fmt.Errorf("ロースターの読み込みに失敗しました (パス: %s): %w", path, err)
	}
	return data, nil
}

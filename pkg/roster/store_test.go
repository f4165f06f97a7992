package roster_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shouni/go-legis-roster/pkg/roster"
)

func sampleRoster() []roster.Legislator {
	return []roster.Legislator{
		{
			District: "14",
			Chamber:  roster.ChamberSenate,
			Name:     "Jane Doe",
			Party:    "Democrat",
			Link:     "https://leg.colorado.gov/legislators/jane-doe",
			Committees: []roster.CommitteeAssignment{
				{Name: "Finance", Role: "Chair"},
				{Name: "Education", Role: ""},
			},
			Counties: []string{"Denver", "Boulder"},
		},
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legislators.json")
	original := sampleRoster()

	assert.NoError(t, roster.Save(path, original))

	reloaded, err := roster.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, original, reloaded, "保存と再読込でレコードが変化してはなりません")
}

// TestSave_ArtifactShape は、受け渡し契約であるJSONのフィールド名
// (大文字始まり、Committees配下のみ小文字) がそのまま書き出されることを確認します。
func TestSave_ArtifactShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legislators.json")
	assert.NoError(t, roster.Save(path, sampleRoster()))

	records, err := roster.LoadRaw(path)
	assert.NoError(t, err)
	assert.Len(t, records, 1)

	rec, ok := records[0].(map[string]any)
	assert.True(t, ok)
	for _, key := range []string{"District", "Chamber", "Name", "Party", "Link", "Committees", "Counties"} {
		assert.Contains(t, rec, key)
	}

	committees, ok := rec["Committees"].([]any)
	assert.True(t, ok)
	entry, ok := committees[0].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "Finance", entry["name"])
	assert.Equal(t, "Chair", entry["role"])
}

func TestLoad_DataNotFound(t *testing.T) {
	_, err := roster.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, roster.ErrDataNotFound)

	_, err = roster.LoadRaw(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, roster.ErrDataNotFound)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legislators.json")
	assert.NoError(t, os.WriteFile(path, []byte("[{"), 0o644))

	_, err := roster.Load(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, roster.ErrDataNotFound)

	_, err = roster.LoadRaw(path)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, roster.ErrDataNotFound)
}

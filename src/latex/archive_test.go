package latex

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack(t *testing.T) {
	docs := Render(testCompilation("Quiz"), []RenderItem{
		{ID: 1, Position: 1, Statement: "A", Solution: "sol A", IncludeSolution: true},
	})

	archive, err := Pack(docs)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)

	var names []string
	contents := make(map[string]string)
	for _, f := range zr.File {
		names = append(names, f.Name)
		r, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(r)
		require.NoError(t, err)
		r.Close()
		contents[f.Name] = string(data)
	}

	assert.Equal(t, []string{"main.tex", "macros.tex", "items.tex", "solutions.tex", "metadata.json"}, names)
	assert.Equal(t, docs.Main, contents["main.tex"])
	assert.Equal(t, docs.Items, contents["items.tex"])

	var manifest Manifest
	require.NoError(t, json.Unmarshal([]byte(contents["metadata.json"]), &manifest))
	assert.Equal(t, docs.Manifest, manifest)
}

func TestPackEmptyCompilation(t *testing.T) {
	archive, err := Pack(Render(testCompilation("Empty"), nil))
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)
	assert.Len(t, zr.File, 5)
}

func TestPackManifestDeterministic(t *testing.T) {
	docs := Render(testCompilation("Quiz"), []RenderItem{
		{ID: 1, Position: 1, Statement: "A", IncludeSolution: true},
	})

	first, err := json.Marshal(docs.Manifest)
	require.NoError(t, err)
	second, err := json.Marshal(docs.Manifest)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

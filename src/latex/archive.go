package latex

import (
	"archive/zip"
	"bytes"
	"encoding/json"

	"github.com/Tnecniv1/mathbank-sub001/src/oops"
)

// Pack bundles a rendered document tree into a zip archive with a
// fixed set of five entries. Any write failure aborts the whole pack;
// there is never a partial archive.
func Pack(docs Documents) ([]byte, error) {
	manifestJSON, err := json.MarshalIndent(docs.Manifest, "", "  ")
	if err != nil {
		return nil, oops.New(err, "failed to serialize manifest")
	}

	entries := []struct {
		name    string
		content []byte
	}{
		{"main.tex", []byte(docs.Main)},
		{"macros.tex", []byte(docs.Macros)},
		{"items.tex", []byte(docs.Items)},
		{"solutions.tex", []byte(docs.Solutions)},
		{"metadata.json", manifestJSON},
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, entry := range entries {
		w, err := zw.Create(entry.name)
		if err != nil {
			return nil, oops.New(err, "failed to create archive entry %s", entry.name)
		}
		_, err = w.Write(entry.content)
		if err != nil {
			return nil, oops.New(err, "failed to write archive entry %s", entry.name)
		}
	}
	err = zw.Close()
	if err != nil {
		return nil, oops.New(err, "failed to finish archive")
	}

	return buf.Bytes(), nil
}

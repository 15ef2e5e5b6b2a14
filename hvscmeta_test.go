package hvscmeta_test

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/simonhull/hvscmeta"
)

// createSID returns a version 2 PSID file with a header load address and a
// three byte program.
func createSID(name, author string) []byte {
	buf := make([]byte, hvscmeta.ExtendedHeaderSize)
	copy(buf, "PSID")
	binary.BigEndian.PutUint16(buf[0x04:], 2)
	binary.BigEndian.PutUint16(buf[0x06:], hvscmeta.ExtendedHeaderSize)
	binary.BigEndian.PutUint16(buf[0x08:], 0x1000)
	binary.BigEndian.PutUint16(buf[0x0A:], 0x1000)
	binary.BigEndian.PutUint16(buf[0x0C:], 0x1003)
	binary.BigEndian.PutUint16(buf[0x0E:], 2)
	binary.BigEndian.PutUint16(buf[0x10:], 1)
	copy(buf[0x16:0x36], name)
	copy(buf[0x36:0x56], author)
	copy(buf[0x56:0x76], "1985 Elite")
	binary.BigEndian.PutUint16(buf[0x76:], 0x0014)
	return append(buf, 0xA9, 0x00, 0x60)
}

// testCollection lays out a small HVSC tree and returns its root and the
// paths of its SID files.
func testCollection(t *testing.T) (string, []string) {
	t.Helper()
	root := t.TempDir()

	files := map[string][]byte{
		"MUSICIANS/H/Hubbard_Rob/Commando.sid": createSID("Commando", "Rob Hubbard"),
		"MUSICIANS/H/Hubbard_Rob/Delta.sid":    createSID("Delta", "Rob Hubbard"),
		"GAMES/S-Z/Zoids.sid":                  createSID("Zoids", "Rob Hubbard"),
	}

	var paths []string
	var lengths strings.Builder
	lengths.WriteString("[Database]\n")
	for i, rel := range []string{
		"MUSICIANS/H/Hubbard_Rob/Commando.sid",
		"MUSICIANS/H/Hubbard_Rob/Delta.sid",
		"GAMES/S-Z/Zoids.sid",
	} {
		path := filepath.Join(root, filepath.FromSlash(rel))
		writeFile(t, path, files[rel])
		paths = append(paths, path)

		file, err := hvscmeta.NewFile(files[rel], path)
		if err != nil {
			t.Fatal(err)
		}
		// Zoids has no song lengths
		if i < 2 {
			fmt.Fprintf(&lengths, "; /%s\n%s=%d:30 0:05.500\n", rel, file.Fingerprint, i+1)
		}
	}

	writeFile(t, filepath.Join(root, "DOCUMENTS", "Songlengths.md5"), []byte(lengths.String()))
	writeFile(t, filepath.Join(root, "DOCUMENTS", "STIL.txt"), []byte(`### STIL

/MUSICIANS/H/Hubbard_Rob/Commando.sid
COMMENT: Also used in the arcade
         conversion.
(#1)
  TITLE: Commando (0:00-1:12)
(#2)
   NAME: High score

/MUSICIANS/H/Hubbard_Rob/Delta.sid
 ARTIST: Rob Hubbard
`))
	writeFile(t, filepath.Join(root, "DOCUMENTS", "BUGlist.txt"), []byte(`/GAMES/S-Z/Zoids.sid
    BUG: Plays too fast on NTSC.
`))

	return root, paths
}

func writeFile(t testing.TB, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

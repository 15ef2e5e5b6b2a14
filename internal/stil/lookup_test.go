package stil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/simonhull/hvscmeta/internal/charset"
	"github.com/simonhull/hvscmeta/internal/types"
)

const buglist = `/GAMES/S-Z/Zoids.sid
    BUG: Tune 2 plays too fast on NTSC machines.
         Needs a fixed player.

/GAMES/A-F/Commando.sid
(#3)
    BUG: Wrong song length.
`

func TestLookup(t *testing.T) {
	entry, err := Lookup(newCatalogReader(catalog), "/MUSICIANS/A/Able/First.sid")
	require.NoError(t, err)

	require.Len(t, entry.Blocks, 1)
	field := entry.Blocks[0].Fields[0]
	assert.Equal(t, "Popcorn", field.Text)
	assert.Equal(t, 30, field.Timestamp.From)
}

func TestLookupDecodesLatin1(t *testing.T) {
	content := "/MUSICIANS/H/Hubbard_Rob/Commando.sid\n" +
		"COMMENT: Converted by J\xf6rg.\n" +
		" AUTHOR: J\xf6rg Sch\xfctz\n"

	entry, err := Lookup(newCatalogReader(content), "/MUSICIANS/H/Hubbard_Rob/Commando.sid")
	require.NoError(t, err)

	assert.Equal(t, "Converted by Jörg.", entry.Comment)
	field := entry.Blocks[0].Fields[0]
	assert.Equal(t, "Jörg Schütz", field.Text)
	assert.True(t, utf8.ValidString(field.Text))
}

func TestLookupWithDecoder(t *testing.T) {
	content := "/MUSICIANS/H/Hubbard_Rob/Commando.sid\n   NAME: Jörg\n"
	utf, err := charset.Lookup(charset.UTF8)
	require.NoError(t, err)

	entry, err := Lookup(newCatalogReader(content), "/MUSICIANS/H/Hubbard_Rob/Commando.sid", WithDecoder(utf))
	require.NoError(t, err)
	assert.Equal(t, "Jörg", entry.Blocks[0].Fields[0].Text)
}

func TestLookupBug(t *testing.T) {
	r := newCatalogReader(buglist)

	entry, err := LookupBug(r, "/GAMES/S-Z/Zoids.sid")
	require.NoError(t, err)
	require.Len(t, entry.Blocks, 1)

	field := entry.Blocks[0].Fields[0]
	assert.Equal(t, types.FieldBug, field.Kind)
	assert.Equal(t, "Tune 2 plays too fast on NTSC machines. Needs a fixed player.", field.Text)

	entry, err = LookupBug(r, "/GAMES/A-F/Commando.sid")
	require.NoError(t, err)
	block, ok := entry.Tune(3)
	require.True(t, ok)
	assert.Equal(t, "Wrong song length.", block.Fields[0].Text)
}

func TestLookupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "STIL.txt")
	require.NoError(t, os.WriteFile(path, []byte(catalog), 0o644))

	entry, err := LookupFile(path, "/MUSICIANS/C/Charlie/Third.sid")
	require.NoError(t, err)
	assert.Equal(t, "Last one", entry.Blocks[0].Fields[0].Text)

	_, err = LookupFile(path, "/nope.sid")
	assert.True(t, errors.Is(err, types.ErrNotFound))

	_, err = LookupFile(filepath.Join(t.TempDir(), "missing.txt"), "/x.sid")
	var ioErr *types.IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestLookupBugFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "BUGlist.txt")
	require.NoError(t, os.WriteFile(path, []byte(buglist), 0o644))

	entry, err := LookupBugFile(path, "/GAMES/A-F/Commando.sid")
	require.NoError(t, err)
	block, ok := entry.Tune(3)
	require.True(t, ok)
	assert.Equal(t, types.FieldBug, block.Fields[0].Kind)

	_, err = LookupBugFile(path, "/GAMES/A-F/Missing.sid")
	assert.True(t, errors.Is(err, types.ErrNotFound))
	assert.Contains(t, err.Error(), "buglist lookup")
}

package links

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPath(t *testing.T) {
	got := Path(filepath.Join("/opt", "plugin", "Plugin", "Block"))
	assert.Equal(t, filepath.Join("/opt", "plugin", FileName), got)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()

	assert.False(t, Exists(filepath.Join(dir, FileName)))

	p := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(p, []byte("a,b,c\n"), 0o600))
	assert.True(t, Exists(p))

	// A regular file used as a parent directory fails stat with ENOTDIR.
	assert.False(t, Exists(filepath.Join(p, FileName)))
}

func TestParse(t *testing.T) {
	in := strings.Join([]string{
		`Shop,shop-link,https://example.com/shop`,
		`"Shoes, Boots",shoes,https://example.com/shoes`,
		``,
		`Broken,"unterminated,http://a.b`,
		`Only,two`,
		`Help,help,http://help.example.org` + "\r",
		`12" Pizza,pizza,https://example.com/p`,
	}, "\n") + "\n"

	rows, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 7)

	assert.Equal(t, Row{"Shop", "shop-link", "https://example.com/shop"}, rows[0])
	assert.Equal(t, Row{"Shoes, Boots", "shoes", "https://example.com/shoes"}, rows[1])
	assert.Equal(t, Row{""}, rows[2])
	require.Len(t, rows[3], 2)
	assert.Equal(t, "Broken", rows[3][0])
	assert.True(t, strings.HasPrefix(rows[3][1], "unterminated,http://a.b"))
	assert.Equal(t, Row{"Only", "two"}, rows[4])
	assert.Equal(t, Row{"Help", "help", "http://help.example.org"}, rows[5])
	assert.Equal(t, Row{`12" Pizza`, "pizza", "https://example.com/p"}, rows[6])
}

func TestParseLongLine(t *testing.T) {
	long := strings.Repeat("x", 2<<20)
	in := "Shop,shop,https://example.com\n" + long + "\nBlog,blog,http://b.c"

	rows, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, Row{"Shop", "shop", "https://example.com"}, rows[0])
	assert.Equal(t, Row{long}, rows[1])
	assert.Equal(t, Row{"Blog", "blog", "http://b.c"}, rows[2])
}

func TestParseEmpty(t *testing.T) {
	rows, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRead(t *testing.T) {
	p := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(p, []byte("A,a,http://a.b\nB,b,http://b.c"), 0o600))

	rows, err := Read(p)
	require.NoError(t, err)
	assert.Equal(t, []Row{{"A", "a", "http://a.b"}, {"B", "b", "http://b.c"}}, rows)
}

func TestReadDirectory(t *testing.T) {
	_, err := Read(t.TempDir())
	assert.Error(t, err)
}

func TestRowField(t *testing.T) {
	r := Row{"a"}
	assert.Equal(t, "a", r.Field(0))
	assert.Equal(t, "", r.Field(1))
	assert.Equal(t, "", r.Field(-1))
}

func TestRowString(t *testing.T) {
	assert.Equal(t, `"Shoes, Boots",shoes,http://a.b`, Row{"Shoes, Boots", "shoes", "http://a.b"}.String())
	assert.Equal(t, ",bad id,notaurl", Row{"", "bad id", "notaurl"}.String())
	assert.Equal(t, `12" Pizza,pizza`, Row{`12" Pizza,pizza`}.String())
}

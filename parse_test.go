package xdgentries

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFixtures(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.desktop"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, path := range files {
		file, err := Load(path)
		require.NoError(t, err, "file %s", path)
		require.NotNil(t, file.DesktopEntry(), "file %s", path)
	}
}

func TestParseAlacritty(t *testing.T) {
	file, err := Load(filepath.Join("testdata", "Alacritty.desktop"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Desktop Entry", "Desktop Action New"}, file.Groups())

	entry := file.DesktopEntry()
	require.NotNil(t, entry)

	v, err := entry.Value("Type")
	require.NoError(t, err)
	assert.Equal(t, KindString, v.Kind)
	assert.Equal(t, "Application", v.Str)

	v, err = entry.Value("Terminal")
	require.NoError(t, err)
	assert.Equal(t, KindBool, v.Kind)
	assert.False(t, v.Bool)

	v, err = entry.Value("Icon")
	require.NoError(t, err)
	assert.Equal(t, KindIconString, v.Kind)

	v, err = entry.Value("Categories")
	require.NoError(t, err)
	require.Equal(t, KindList, v.Kind)
	require.Len(t, v.Items, 2)
	assert.Equal(t, "System", v.Items[0].Str)
	assert.Equal(t, "TerminalEmulator", v.Items[1].Str)

	action := file.Group("Desktop Action New")
	require.NotNil(t, action)
	v, err = action.Value("Name")
	require.NoError(t, err)
	assert.Equal(t, "New Terminal", v.Str)

	_, err = entry.Value("NoSuchKey")
	assert.Error(t, err)
	assert.False(t, entry.Has("NoSuchKey"))
}

func TestParseLocalizedKeys(t *testing.T) {
	file, err := Load(filepath.Join("testdata", "htop.desktop"))
	require.NoError(t, err)

	entry := file.DesktopEntry()
	require.NotNil(t, entry)

	// localized variants stay separate keys, typed by their base name
	for _, key := range []string{"Comment", "Comment[de]", "Comment[fr]"} {
		v, err := entry.Value(key)
		require.NoError(t, err, "key %s", key)
		assert.Equal(t, KindLocaleString, v.Kind, "key %s", key)
	}

	v, err := entry.Value("Comment[de]")
	require.NoError(t, err)
	assert.Equal(t, "Systemprozesse anzeigen", v.Str)

	v, err = entry.Value("Keywords")
	require.NoError(t, err)
	require.Equal(t, KindList, v.Kind)
	assert.Len(t, v.Items, 3)
}

func TestParseRendered(t *testing.T) {
	input := strings.Join([]string{
		"# launcher entry",
		"",
		"[Desktop Entry]",
		"Type=Application",
		"Name=Zathura",
		"Terminal=false",
		"MimeType=application/pdf;application/epub+zip;",
		"X-Priority=3",
	}, "\n")

	file, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	got := make(map[string]string)
	entry := file.DesktopEntry()
	require.NotNil(t, entry)
	for _, key := range entry.Keys() {
		v, err := entry.Value(key)
		require.NoError(t, err)
		got[key] = v.String()
	}

	want := map[string]string{
		"Type":       "Application",
		"Name":       "Zathura",
		"Terminal":   "false",
		"MimeType":   "application/pdf;application/epub+zip;",
		"X-Priority": "3",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rendered values mismatch (-want +got):\n%s", diff)
	}
}

func TestParseNoGroupHeader(t *testing.T) {
	_, err := Parse(strings.NewReader("Type=Application\n"))
	require.ErrorIs(t, err, ErrNoGroupHeader)
}

func TestParseCommentsAndBlankLines(t *testing.T) {
	input := strings.Join([]string{
		"# top comment",
		"",
		"[Desktop Entry]",
		"# comment between keys",
		"Name=htop",
		"",
		"Exec=htop",
	}, "\n")

	file, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	entry := file.DesktopEntry()
	require.NotNil(t, entry)
	assert.Equal(t, []string{"Name", "Exec"}, entry.Keys())
}

func TestParseMissingDelimiter(t *testing.T) {
	input := strings.Join([]string{
		"[Desktop Entry]",
		"Name=htop",
		"NotAKeyValueLine",
	}, "\n")

	// a line without '=' fails the whole file at the INI layer
	_, err := Parse(strings.NewReader(input))
	require.Error(t, err)
}

func TestParsePerKeyError(t *testing.T) {
	input := strings.Join([]string{
		"[Desktop Entry]",
		"Name=htop",
		"Terminal=maybe",
	}, "\n")

	file, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	entry := file.DesktopEntry()
	require.NotNil(t, entry)

	// the bad value does not discard the rest of the group
	v, err := entry.Value("Name")
	require.NoError(t, err)
	assert.Equal(t, "htop", v.Str)

	assert.True(t, entry.Has("Terminal"))
	_, err = entry.Value("Terminal")
	assert.Error(t, err)
}

func TestParseInvalidEncoding(t *testing.T) {
	data := []byte("[Desktop Entry]\nName=\xff\xfe\n")

	file, err := Decoder{}.ParseBytes(data)
	require.NoError(t, err)

	entry := file.DesktopEntry()
	require.NotNil(t, entry)

	_, err = entry.Value("Name")
	var encErr *EncodingError
	require.ErrorAs(t, err, &encErr)
	assert.Equal(t, 0, encErr.Offset)
}

func TestParseStrictASCII(t *testing.T) {
	input := strings.Join([]string{
		"[Desktop Entry]",
		"Exec=caf\xc3\xa9-launcher",
		"Name=Café",
	}, "\n")

	file, err := Decoder{StrictASCII: true}.Parse(strings.NewReader(input))
	require.NoError(t, err)

	entry := file.DesktopEntry()
	require.NotNil(t, entry)

	// Exec is a plain string key, Name is a localestring key
	_, err = entry.Value("Exec")
	var asciiErr *ASCIIError
	require.ErrorAs(t, err, &asciiErr)

	v, err := entry.Value("Name")
	require.NoError(t, err)
	assert.Equal(t, "Café", v.Str)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.desktop"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

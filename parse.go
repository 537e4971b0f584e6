package xdgentries

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/ini.v1"
)

// Inline comment splitting would eat ';' list values, so it is
// disabled; quotes have no meaning in desktop entries either.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment:     true,
	KeyValueDelimiters:      "=",
	PreserveSurroundedQuote: true,
}

// Parse reads a desktop entry file with a zero-value (permissive)
// Decoder.
func Parse(r io.Reader) (*DesktopFile, error) {
	return Decoder{}.Parse(r)
}

// Load parses the desktop entry file at path with a zero-value
// Decoder.
func Load(path string) (*DesktopFile, error) {
	return Decoder{}.Load(path)
}

// Load parses the desktop entry file at path.
func (d Decoder) Load(path string) (*DesktopFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return d.Parse(f)
}

// Parse reads a desktop entry file from r.
func (d Decoder) Parse(r io.Reader) (*DesktopFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading desktop entry: %v", err)
	}
	return d.ParseBytes(data)
}

// ParseBytes parses a desktop entry file held in memory.
//
// The line structure (groups, '#' comments, blank lines, '=' key/value
// split) comes from the INI layer; each raw value is then decoded by
// the key's declared type. Per-key decode failures are recorded on the
// group instead of failing the whole file.
func (d Decoder) ParseBytes(data []byte) (*DesktopFile, error) {
	src, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("error reading desktop entry: %v", err)
	}

	out := &DesktopFile{groups: make(map[string]*Group)}
	for _, section := range src.Sections() {
		if section.Name() == ini.DefaultSection {
			if len(section.Keys()) > 0 {
				return nil, ErrNoGroupHeader
			}
			continue
		}

		group := &Group{
			Name:   section.Name(),
			values: make(map[string]Value),
			errs:   make(map[string]error),
		}
		for _, key := range section.Keys() {
			group.order = append(group.order, key.Name())
			v, err := d.DecodeKeyValue(key.Name(), key.Value())
			if err != nil {
				group.errs[key.Name()] = err
				continue
			}
			group.values[key.Name()] = v
		}

		out.groups[group.Name] = group
		out.order = append(out.order, group.Name)
	}

	return out, nil
}

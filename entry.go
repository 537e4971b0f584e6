package xdgentries

import "fmt"

// DesktopFile is a parsed desktop entry file: an ordered set of named
// groups, each holding typed key/value pairs.
type DesktopFile struct {
	groups map[string]*Group
	order  []string
}

// Groups returns the group names in file order.
func (f *DesktopFile) Groups() []string {
	return f.order
}

// Group returns the named group, or nil if the file has no such group.
func (f *DesktopFile) Group(name string) *Group {
	return f.groups[name]
}

// DesktopEntry returns the main "Desktop Entry" group, or nil if the
// file has none.
func (f *DesktopFile) DesktopEntry() *Group {
	return f.Group("Desktop Entry")
}

// Group is one [Name] section of a desktop entry file.
//
// Keys whose values failed to decode are kept with their error, so one
// malformed value does not discard the rest of the file.
type Group struct {
	// Name of the group, without brackets.
	Name string

	order  []string
	values map[string]Value
	errs   map[string]error
}

// Keys returns the key names in file order. Locale-suffixed keys keep
// their suffix, e.g. "Name[es]".
func (g *Group) Keys() []string {
	return g.order
}

// Has reports whether the group contains the key, decodable or not.
func (g *Group) Has(key string) bool {
	if _, ok := g.values[key]; ok {
		return true
	}
	_, ok := g.errs[key]
	return ok
}

// Value returns the decoded value for key, the decode error the key's
// raw value produced, or an error if the group has no such key.
func (g *Group) Value(key string) (Value, error) {
	if v, ok := g.values[key]; ok {
		return v, nil
	}
	if err, ok := g.errs[key]; ok {
		return Value{}, err
	}
	return Value{}, fmt.Errorf("key %q not found", key)
}

package xdgentries

import "regexp"

// localeSuffix matches the [lang_COUNTRY@MODIFIER] suffix of localized
// keys, e.g. Name[es], Name[es_CL], Name[sr@Latn].
var localeSuffix = regexp.MustCompile(`\[[a-z]{2}(_[A-Z]{2})?(@\w+)?\]`)

// stripLocale returns the key name without its locale suffix, so that
// Name[es_CL] resolves the same declared type as Name.
func stripLocale(key string) string {
	return localeSuffix.ReplaceAllString(key, "")
}

type keySchema struct {
	kind ValueKind
	list bool
}

// keyKinds declares the value types of the standard desktop entry
// keys. Keys not listed here get their type probed.
var keyKinds = map[string]keySchema{
	"Type":           {kind: KindString},
	"Version":        {kind: KindString},
	"Exec":           {kind: KindString},
	"TryExec":        {kind: KindString},
	"Path":           {kind: KindString},
	"StartupWMClass": {kind: KindString},
	"URL":            {kind: KindString},

	"Name":        {kind: KindLocaleString},
	"GenericName": {kind: KindLocaleString},
	"Comment":     {kind: KindLocaleString},

	"NoDisplay":            {kind: KindBool},
	"Hidden":               {kind: KindBool},
	"Terminal":             {kind: KindBool},
	"StartupNotify":        {kind: KindBool},
	"PrefersNonDefaultGPU": {kind: KindBool},
	"DBusActivatable":      {kind: KindBool},

	"Icon": {kind: KindIconString},

	"Keywords": {kind: KindLocaleString, list: true},

	"OnlyShowIn": {kind: KindString, list: true},
	"NotShowIn":  {kind: KindString, list: true},
	"Actions":    {kind: KindString, list: true},
	"MimeType":   {kind: KindString, list: true},
	"Categories": {kind: KindString, list: true},
	"Implements": {kind: KindString, list: true},
}

// DecodeKeyValue decodes the raw right-hand side of a key/value line
// using the declared type of the key. Locale suffixes on the key name
// are ignored for the schema lookup, and unknown keys have their type
// probed.
func (d Decoder) DecodeKeyValue(key, raw string) (Value, error) {
	schema, ok := keyKinds[stripLocale(key)]
	if !ok {
		return d.tryTypes(raw)
	}
	elem := d.parserFor(schema.kind)
	if schema.list {
		return d.parseList(raw, elem)
	}
	return elem(raw)
}

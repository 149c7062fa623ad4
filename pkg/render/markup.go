package render

import (
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/samber/lo"
)

func escape(s string) string {
	return templ.EscapeString(s)
}

// writeAttrs writes attrs in sorted key order, each as ` key="value"`.
func writeAttrs(b *strings.Builder, attrs map[string]string) {
	keys := lo.Keys(attrs)
	slices.Sort(keys)
	for _, k := range keys {
		b.WriteByte(' ')
		b.WriteString(escape(k))
		b.WriteString(`="`)
		b.WriteString(escape(attrs[k]))
		b.WriteByte('"')
	}
}

// fieldAttrs merges the view attributes with the fixed ones. Fixed
// attributes win.
func fieldAttrs(v FieldView, fixed map[string]string) map[string]string {
	out := make(map[string]string, len(v.Attributes)+len(fixed)+3)
	for k, val := range v.Attributes {
		out[k] = val
	}
	if v.ID != "" {
		out["id"] = v.ID
	}
	if v.Name != "" {
		out["name"] = v.Name
	}
	for k, val := range fixed {
		out[k] = val
	}
	return out
}

func writeTag(b *strings.Builder, tag string, attrs map[string]string, selfClosing bool) {
	b.WriteByte('<')
	b.WriteString(tag)
	writeAttrs(b, attrs)
	if selfClosing {
		b.WriteString(" />")
		return
	}
	b.WriteByte('>')
}

func flag(on bool, name string, attrs map[string]string) {
	if on {
		attrs[name] = name
	}
}

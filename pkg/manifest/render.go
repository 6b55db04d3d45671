package manifest

import (
	"strconv"
	"strings"

	"github.com/vango-dev/routegen/pkg/route"
)

// Render serializes the module to JavaScript source. The output is
// deterministic and ends with a newline.
func (m *Module) Render() []byte {
	var b strings.Builder

	b.WriteString(Header)
	b.WriteString("\n")

	for _, imp := range m.Imports {
		writeImport(&b, imp)
	}
	if len(m.Imports) > 0 {
		b.WriteString("\n")
	}

	if len(m.Entries) == 0 {
		b.WriteString("export const routes = [];\n")
	} else {
		b.WriteString("export const routes = [\n")
		for i, e := range m.Entries {
			b.WriteString("\t")
			writeEntry(&b, e)
			if i < len(m.Entries)-1 {
				b.WriteString(",")
			}
			b.WriteString("\n")
		}
		b.WriteString("];\n")
	}

	if m.Bootstrap != nil {
		b.WriteString("\n")
		writeBootstrap(&b, m.Bootstrap)
	}

	return []byte(b.String())
}

func writeImport(b *strings.Builder, imp Import) {
	b.WriteString("import ")
	if imp.Namespace {
		b.WriteString("* as ")
	}
	b.WriteString(imp.Binding)
	b.WriteString(" from ")
	b.WriteString(quote(imp.Path))
	b.WriteString(";\n")
}

// writeEntry writes an object literal. Fields appear in a fixed order and
// only when set.
func writeEntry(b *strings.Builder, e Entry) {
	var fields []string

	if e.IsError() {
		fields = append(fields, "error: "+quote(e.Error))
	} else {
		if e.ID != "" {
			fields = append(fields, "id: "+quote(e.ID))
		}
		if e.Type != "" {
			fields = append(fields, "type: "+quote(string(e.Type)))
		}
		fields = append(fields, "pattern: "+e.Pattern)
		if e.Params != nil {
			fields = append(fields, "params: "+renderParams(*e.Params))
		}
	}

	if e.Load != nil {
		fields = append(fields, "load: "+renderLoader(*e.Load))
	}
	if e.Module != "" {
		fields = append(fields, "module: "+e.Module)
	}

	b.WriteString("{ ")
	b.WriteString(strings.Join(fields, ", "))
	b.WriteString(" }")
}

// renderParams writes the extractor: a zero-argument function for static
// routes, otherwise a function of the match result.
func renderParams(p Params) string {
	if len(p.Names) == 0 {
		return "() => ({})"
	}

	parts := make([]string, len(p.Names))
	for i, name := range p.Names {
		parts[i] = propertyKey(name) + ": match[" + strconv.Itoa(i+1) + "]"
	}
	return "match => ({ " + strings.Join(parts, ", ") + " })"
}

func renderLoader(l Loader) string {
	return "() => import(/* webpackChunkName: " + chunkName(l.Chunk) + " */ " + quote(l.Path) + ")"
}

func writeBootstrap(b *strings.Builder, bs *Bootstrap) {
	b.WriteString("if (" + bs.Guard + ") {\n")
	b.WriteString("\timport(" + quote(bs.Client) + ").then(client => {\n")
	b.WriteString("\t\tclient.connect(" + strconv.Itoa(bs.Port) + ");\n")
	b.WriteString("\t});\n")
	b.WriteString("}\n")
}

// quote returns s as a single-quoted string literal.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\u2028':
			b.WriteString(`\u2028`)
		case '\u2029':
			b.WriteString(`\u2029`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// chunkName quotes a chunk name for use inside a block comment.
func chunkName(name string) string {
	return strings.ReplaceAll(strconv.Quote(name), "*/", `*\/`)
}

func propertyKey(name string) string {
	if route.IsIdentifier(name) {
		return name
	}
	return quote(name)
}

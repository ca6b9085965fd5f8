package vb6

import (
	"os"
	"strings"

	"github.com/dhamidi/vbsix/vb6/parser"
)

// ClassFile is a parsed .cls file: the header with its MultiUse-style
// properties, and the body with the class members.
type ClassFile struct {
	Path       string
	Name       string
	Version    string
	Properties map[string]string
	Header     *parser.Header
	Body       *parser.Tree
}

// Text reassembles the original source from header and body.
func (c *ClassFile) Text() string {
	return c.Header.Tree.Text() + c.Body.Text()
}

// ParseClassFile parses .cls source in two phases: the header first, then
// the body on the remainder of the same token stream.
func ParseClassFile(file, src string) parser.Result[*ClassFile] {
	headerResult, rest := parser.ParseHeader(file, src)
	header := headerResult.MustValue()
	bodyResult := parser.ParseTokens(file, rest, parser.BodyOnly())

	class := &ClassFile{
		Path:       file,
		Version:    header.Version,
		Properties: headerProperties(header.Tree.Root),
		Header:     header,
		Body:       bodyResult.MustValue(),
	}
	out := parser.OK(class, headerResult.Failures()...)
	out.AppendFailures(bodyResult.Failures())

	name, failures := attributeValue(class.Body.Root, "VB_Name")
	class.Name = name
	out.AppendFailures(failures)
	return out
}

// ReadClassFile is ParseClassFile over a file on disk.
func ReadClassFile(path string) (parser.Result[*ClassFile], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return parser.Result[*ClassFile]{}, err
	}
	return ParseClassFile(path, string(data)), nil
}

// headerProperties flattens every Key = Value line under root into a map.
// Nested groups contribute their lines too; later keys win.
func headerProperties(root *parser.Node) map[string]string {
	props := make(map[string]string)
	for _, prop := range root.FindAll(parser.KindProperty) {
		key := strings.TrimSpace(tokenText(prop.FirstChildByKind(parser.KindPropertyKey)))
		if key == "" {
			continue
		}
		props[key] = propertyValueText(prop)
	}
	return props
}

// propertyValueText extracts the value of one header property line,
// dropping a trailing comment like the 'True after MultiUse = -1.
func propertyValueText(prop *parser.Node) string {
	value := prop.FirstChildByKind(parser.KindPropertyValue)
	if value == nil {
		return ""
	}
	var sb strings.Builder
	for _, leaf := range value.Children {
		if leaf.IsComment() {
			continue
		}
		sb.WriteString(leaf.Text())
	}
	return strings.TrimSpace(sb.String())
}

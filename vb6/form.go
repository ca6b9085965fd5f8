package vb6

import (
	"os"
	"strings"

	"github.com/dhamidi/vbsix/vb6/parser"
)

// Control is one Begin ... End block from a form header: the control's
// type and name, its property lines, and any nested controls.
type Control struct {
	Type       string
	Name       string
	Properties map[string]string
	Children   []*Control
}

// FindControl looks up a child control by name, depth first.
func (c *Control) FindControl(name string) *Control {
	for _, child := range c.Children {
		if strings.EqualFold(child.Name, name) {
			return child
		}
		if found := child.FindControl(name); found != nil {
			return found
		}
	}
	return nil
}

// FormFile is a parsed .frm file: the designer header as a control tree
// plus the code-behind body.
type FormFile struct {
	Path    string
	Name    string
	Version string
	Form    *Control
	Header  *parser.Header
	Body    *parser.Tree
}

// Text reassembles the original source from header and body.
func (f *FormFile) Text() string {
	return f.Header.Tree.Text() + f.Body.Text()
}

// ParseFormFile parses .frm source. The header's outermost Begin block
// becomes the root control; a file without one still parses, with Form
// left nil.
func ParseFormFile(file, src string) parser.Result[*FormFile] {
	headerResult, rest := parser.ParseHeader(file, src)
	header := headerResult.MustValue()
	bodyResult := parser.ParseTokens(file, rest, parser.BodyOnly())

	form := &FormFile{
		Path:    file,
		Version: header.Version,
		Header:  header,
		Body:    bodyResult.MustValue(),
	}
	if block := header.Tree.Find(parser.KindPropertiesBlock); block != nil {
		form.Form = controlFromBlock(block)
	}
	out := parser.OK(form, headerResult.Failures()...)
	out.AppendFailures(bodyResult.Failures())

	name, failures := attributeValue(form.Body.Root, "VB_Name")
	form.Name = name
	if form.Name == "" && form.Form != nil {
		form.Name = form.Form.Name
	}
	out.AppendFailures(failures)
	return out
}

// ReadFormFile is ParseFormFile over a file on disk.
func ReadFormFile(path string) (parser.Result[*FormFile], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return parser.Result[*FormFile]{}, err
	}
	return ParseFormFile(path, string(data)), nil
}

// controlFromBlock converts one PropertiesBlock node into a Control. The
// line after Begin carries "Type Name"; direct Property children become
// the property map and nested blocks recurse into child controls.
func controlFromBlock(block *parser.Node) *Control {
	ctrl := &Control{Properties: make(map[string]string)}
	ctrl.Type, ctrl.Name = controlSignature(block)
	for _, child := range block.Children {
		switch child.Kind {
		case parser.KindProperty:
			key := strings.TrimSpace(tokenText(child.FirstChildByKind(parser.KindPropertyKey)))
			if key == "" {
				continue
			}
			ctrl.Properties[key] = propertyValueText(child)
		case parser.KindPropertiesBlock:
			ctrl.Children = append(ctrl.Children, controlFromBlock(child))
		}
	}
	return ctrl
}

// controlSignature reads the leaf tokens between Begin and the first
// newline: "Begin VB.Form Form1" yields ("VB.Form", "Form1").
func controlSignature(block *parser.Node) (typ, name string) {
	var sb strings.Builder
	for _, child := range block.Children {
		if child.Token == nil {
			break
		}
		if child.Token.Kind == parser.TokenNewline {
			break
		}
		sb.WriteString(child.Token.Text)
	}
	fields := strings.Fields(sb.String())
	// fields[0] is the Begin keyword itself
	if len(fields) > 1 {
		typ = fields[1]
	}
	if len(fields) > 2 {
		name = fields[2]
	}
	return typ, name
}

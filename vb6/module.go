// Package vb6 reads the three Visual Basic 6 source file formats: basic
// modules (.bas), class modules (.cls) and forms (.frm). Each reader is
// tolerant: a malformed file still yields a value, with every defect
// recorded as a failure next to it.
package vb6

import (
	"os"
	"strings"

	"github.com/dhamidi/vbsix/vb6/parser"
)

const (
	FailMissingName   parser.FailureKind = "missing VB_Name attribute"
	FailMissingEquals parser.FailureKind = "attribute has no ="
	FailMissingValue  parser.FailureKind = "attribute has no value"
)

// ModuleFile is a parsed .bas file.
type ModuleFile struct {
	Path string
	Name string
	Tree *parser.Tree
}

// ParseModuleFile parses .bas source. The name comes from the VB_Name
// attribute; when the attribute is damaged each missing piece becomes its
// own failure and whatever could be read stays in the result.
func ParseModuleFile(file, src string) parser.Result[*ModuleFile] {
	treeResult := parser.Parse(file, src)
	tree := treeResult.MustValue()
	mod := &ModuleFile{Path: file, Tree: tree}
	out := parser.OK(mod, treeResult.Failures()...)

	name, failures := attributeValue(tree.Root, "VB_Name")
	mod.Name = name
	out.AppendFailures(failures)
	return out
}

// ReadModuleFile is ParseModuleFile over a file on disk.
func ReadModuleFile(path string) (parser.Result[*ModuleFile], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return parser.Result[*ModuleFile]{}, err
	}
	return ParseModuleFile(path, string(data)), nil
}

// attributeValue finds `Attribute <key> = "<value>"` under root and returns
// the unquoted value. Every piece the statement is missing produces a
// failure, and the scan still returns as much as it found.
func attributeValue(root *parser.Node, key string) (string, []parser.Failure) {
	var failures []parser.Failure
	for _, attr := range root.FindAll(parser.KindAttributeStatement) {
		toks := attr.SignificantChildren()
		if len(toks) < 2 || !strings.EqualFold(tokenText(toks[1]), key) {
			continue
		}
		if len(toks) < 3 || tokenText(toks[2]) != "=" {
			failures = append(failures, attrFailure(FailMissingEquals, attr, key))
			return "", failures
		}
		if len(toks) < 4 {
			failures = append(failures, attrFailure(FailMissingValue, attr, key))
			return "", failures
		}
		return unquote(tokenText(toks[3])), failures
	}
	failures = append(failures, parser.Failure{
		Kind:   FailMissingName,
		Detail: key,
	})
	return "", failures
}

func tokenText(n *parser.Node) string {
	if n == nil {
		return ""
	}
	return n.Text()
}

func attrFailure(kind parser.FailureKind, attr *parser.Node, key string) parser.Failure {
	f := parser.Failure{Kind: kind, Detail: key}
	if leaf := attr.FirstChild(); leaf != nil && leaf.Token != nil {
		f.Offset = leaf.Token.Offset
		f.LineStart = leaf.Token.Line
		f.LineEnd = leaf.Token.Line
	}
	return f
}

// unquote strips the surrounding double quotes from a string literal and
// collapses doubled quotes. Unquoted text comes back unchanged.
func unquote(text string) string {
	if len(text) < 2 || text[0] != '"' {
		return text
	}
	inner := text[1:]
	if inner[len(inner)-1] == '"' {
		inner = inner[:len(inner)-1]
	}
	return strings.ReplaceAll(inner, `""`, `"`)
}

// Package codebase tracks the parsed state of every VB6 file in a
// workspace and serves it over LSP.
package codebase

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/dhamidi/vbsix/project"
	"github.com/dhamidi/vbsix/vb6"
	"github.com/dhamidi/vbsix/vb6/parser"
)

type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
}

// FileInfo is the parsed state of one file. Tree covers the whole file
// for modules and the body for classes and forms, whose designer header
// lives in Header.
type FileInfo struct {
	Path     string
	Content  []byte
	Name     string
	Tree     *parser.Tree
	Header   *parser.Header
	Failures []parser.Failure
}

func New(rootDir string) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// ScanAll parses every VB6 source file under the root directory.
func (c *Codebase) ScanAll() error {
	paths, err := project.Scan(c.rootDir)
	if err != nil {
		return err
	}
	for _, path := range paths {
		if strings.EqualFold(filepath.Ext(path), ".vbp") {
			continue
		}
		c.ScanFile(path)
	}
	return nil
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return c.UpdateFile(path, content)
}

// UpdateFile reparses content and replaces the file's entry.
func (c *Codebase) UpdateFile(path string, content []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.updateFileLocked(path, content)
}

func (c *Codebase) updateFileLocked(path string, content []byte) error {
	info := &FileInfo{Path: path, Content: content}
	src := string(content)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".cls":
		class, _, failures := vb6.ParseClassFile(path, src).Unpack()
		info.Name = class.Name
		info.Tree = class.Body
		info.Header = class.Header
		info.Failures = failures
	case ".frm", ".ctl":
		form, _, failures := vb6.ParseFormFile(path, src).Unpack()
		info.Name = form.Name
		info.Tree = form.Body
		info.Header = form.Header
		info.Failures = failures
	default:
		mod, _, failures := vb6.ParseModuleFile(path, src).Unpack()
		info.Name = mod.Name
		info.Tree = mod.Tree
		info.Failures = failures
	}

	c.files[path] = info
	return nil
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

func (c *Codebase) Files() []*FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	files := make([]*FileInfo, 0, len(c.files))
	for _, f := range c.files {
		files = append(files, f)
	}
	return files
}

// Symbol is one named procedure in a file.
type Symbol struct {
	Name string
	Kind parser.Kind
	Line int // 1-based
}

// Symbols lists the procedures of one file in source order.
func (c *Codebase) Symbols(path string) []Symbol {
	file := c.GetFile(path)
	if file == nil || file.Tree == nil {
		return nil
	}

	var symbols []Symbol
	procedures := file.Tree.Root.FindAllIf(func(n *parser.Node) bool {
		switch n.Kind {
		case parser.KindSubStatement, parser.KindFunctionStatement, parser.KindPropertyStatement:
			return true
		}
		return false
	})
	for _, proc := range procedures {
		name, line := procedureName(proc)
		if name == "" {
			continue
		}
		symbols = append(symbols, Symbol{Name: name, Kind: proc.Kind, Line: line})
	}
	return symbols
}

// procedureName finds the name leaf of a procedure node: the first
// identifier among the direct children, after modifiers and keywords.
func procedureName(proc *parser.Node) (string, int) {
	for _, child := range proc.Children {
		if child.Token == nil {
			continue
		}
		if child.Kind == parser.KindForToken(parser.TokenIdent) {
			return child.Token.Text, child.Token.Line
		}
	}
	return "", 0
}

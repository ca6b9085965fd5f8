// Package project reads VB6 project files (.vbp) and locates the source
// files they reference.
package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileKind classifies a source file referenced by a project.
type FileKind int

const (
	FileKindModule FileKind = iota
	FileKindClass
	FileKindForm
	FileKindUserControl
)

var fileKindNames = map[FileKind]string{
	FileKindModule:      "Module",
	FileKindClass:       "Class",
	FileKindForm:        "Form",
	FileKindUserControl: "UserControl",
}

func (k FileKind) String() string {
	if name, ok := fileKindNames[k]; ok {
		return name
	}
	return "Module"
}

// SourceFile is one source entry from a .vbp file. Name is the component
// name the project records; Form entries only carry a path.
type SourceFile struct {
	Kind FileKind
	Name string
	Path string // relative to the project directory
}

// Project represents one parsed .vbp file.
type Project struct {
	Path       string // the .vbp file itself
	RootDir    string
	Name       string
	Title      string
	ExeName    string
	Startup    string
	Sources    []SourceFile
	References []string
	Objects    []string
	Settings   map[string]string // every other Key=Value line
}

// SourcePaths resolves every source entry against the project directory.
func (p *Project) SourcePaths() []string {
	paths := make([]string, len(p.Sources))
	for i, src := range p.Sources {
		paths[i] = filepath.Join(p.RootDir, filepath.FromSlash(strings.ReplaceAll(src.Path, `\`, "/")))
	}
	return paths
}

// Load reads and parses the .vbp file at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project file: %w", err)
	}
	return Parse(path, string(data)), nil
}

// LoadFrom scans rootDir for a .vbp file and loads the first one found.
func LoadFrom(rootDir string) (*Project, error) {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return nil, fmt.Errorf("read project directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".vbp") {
			return Load(filepath.Join(rootDir, entry.Name()))
		}
	}
	return nil, fmt.Errorf("could not detect project: no .vbp file in %s", rootDir)
}

// Parse reads the Key=Value lines of a .vbp file. Lines that fit no rule
// are skipped; a .vbp is a hand-editable INI and parsing never fails.
func Parse(path, src string) *Project {
	proj := &Project{
		Path:     path,
		RootDir:  filepath.Dir(path),
		Settings: make(map[string]string),
	}
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimRight(line, "\r")
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "[") || strings.HasPrefix(line, ";") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		proj.apply(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return proj
}

func (p *Project) apply(key, value string) {
	switch {
	case strings.EqualFold(key, "Module"):
		name, path := splitNamedEntry(value)
		p.Sources = append(p.Sources, SourceFile{Kind: FileKindModule, Name: name, Path: path})
	case strings.EqualFold(key, "Class"):
		name, path := splitNamedEntry(value)
		p.Sources = append(p.Sources, SourceFile{Kind: FileKindClass, Name: name, Path: path})
	case strings.EqualFold(key, "Form"):
		p.Sources = append(p.Sources, SourceFile{Kind: FileKindForm, Path: value})
	case strings.EqualFold(key, "UserControl"):
		p.Sources = append(p.Sources, SourceFile{Kind: FileKindUserControl, Path: value})
	case strings.EqualFold(key, "Reference"):
		p.References = append(p.References, value)
	case strings.EqualFold(key, "Object"):
		p.Objects = append(p.Objects, value)
	case strings.EqualFold(key, "Name"):
		p.Name = trimQuotes(value)
	case strings.EqualFold(key, "Title"):
		p.Title = trimQuotes(value)
	case strings.EqualFold(key, "ExeName32"):
		p.ExeName = trimQuotes(value)
	case strings.EqualFold(key, "Startup"):
		p.Startup = trimQuotes(value)
	default:
		p.Settings[key] = value
	}
}

// splitNamedEntry splits "Module1; Module1.bas" into name and path.
func splitNamedEntry(value string) (name, path string) {
	name, path, ok := strings.Cut(value, ";")
	if !ok {
		return "", strings.TrimSpace(value)
	}
	return strings.TrimSpace(name), strings.TrimSpace(path)
}

func trimQuotes(value string) string {
	return strings.Trim(value, `"`)
}

var sourceExtensions = map[string]bool{
	".bas": true,
	".cls": true,
	".frm": true,
	".ctl": true,
	".vbp": true,
}

// Scan walks dir for VB6 source and project files and returns their
// paths sorted. Used when no .vbp is available or when checking a whole
// tree.
func Scan(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if sourceExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", dir, err)
	}
	sort.Strings(paths)
	return paths, nil
}

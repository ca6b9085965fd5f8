package codebase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhamidi/vbsix/vb6/parser"
)

const moduleSource = `Attribute VB_Name = "Module1"
Option Explicit

Public Sub Main()
    Beep
End Sub

Private Function Total(a As Long, b As Long) As Long
    Total = a + b
End Function
`

const classSource = `VERSION 1.0 CLASS
BEGIN
  MultiUse = -1  'True
END
Attribute VB_Name = "Account"

Public Property Get Balance() As Currency
End Property
`

func TestCodebaseUpdateFile(t *testing.T) {
	c := New(".")
	require.NoError(t, c.UpdateFile("Module1.bas", []byte(moduleSource)))

	file := c.GetFile("Module1.bas")
	require.NotNil(t, file)
	assert.Equal(t, "Module1", file.Name)
	assert.Empty(t, file.Failures)
	assert.Nil(t, file.Header)
	assert.Equal(t, moduleSource, file.Tree.Text())
}

func TestCodebaseUpdateFileClass(t *testing.T) {
	c := New(".")
	require.NoError(t, c.UpdateFile("Account.cls", []byte(classSource)))

	file := c.GetFile("Account.cls")
	require.NotNil(t, file)
	assert.Equal(t, "Account", file.Name)
	require.NotNil(t, file.Header)
	assert.Equal(t, parser.HeaderKindClass, file.Header.Kind)
}

func TestCodebaseReparseReplacesFailures(t *testing.T) {
	c := New(".")
	require.NoError(t, c.UpdateFile("bad.bas", []byte("Attribute VB_Name = \"B\"\n?\n")))
	require.NotEmpty(t, c.GetFile("bad.bas").Failures)

	require.NoError(t, c.UpdateFile("bad.bas", []byte("Attribute VB_Name = \"B\"\nBeep\n")))
	assert.Empty(t, c.GetFile("bad.bas").Failures, "a clean reparse must clear old failures")
}

func TestCodebaseScanAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Module1.bas"), []byte(moduleSource), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Account.cls"), []byte(classSource), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip me"), 0o644))

	c := New(dir)
	require.NoError(t, c.ScanAll())
	assert.Len(t, c.Files(), 2)
}

func TestCodebaseSymbols(t *testing.T) {
	c := New(".")
	require.NoError(t, c.UpdateFile("Module1.bas", []byte(moduleSource)))

	symbols := c.Symbols("Module1.bas")
	require.Len(t, symbols, 2)
	assert.Equal(t, "Main", symbols[0].Name)
	assert.Equal(t, parser.KindSubStatement, symbols[0].Kind)
	assert.Equal(t, 4, symbols[0].Line)
	assert.Equal(t, "Total", symbols[1].Name)
	assert.Equal(t, parser.KindFunctionStatement, symbols[1].Kind)
}

func TestFailureToDiagnostic(t *testing.T) {
	d := failureToDiagnostic(parser.Failure{
		Kind:      parser.FailUnknownToken,
		LineStart: 2,
		LineEnd:   2,
		Detail:    "?",
	})
	assert.Equal(t, uint32(1), uint32(d.Range.Start.Line))
	assert.Equal(t, "unknown token: ?", d.Message)
}

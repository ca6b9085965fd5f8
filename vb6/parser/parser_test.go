package parser

import (
	"strings"
	"testing"
)

func parseTree(t *testing.T, src string) *Tree {
	t.Helper()
	tree, ok, _ := Parse("test.bas", src).Unpack()
	if !ok {
		t.Fatal("Parse returned no tree")
	}
	return tree
}

func TestParseLossless(t *testing.T) {
	sources := []string{
		"",
		"Dim x As Long\n",
		"VERSION 1.0 CLASS\nBEGIN\n  MultiUse = -1\nEND\nOption Explicit\n",
		"Sub Main()\n  If x = 5 Then\n    Beep\n  End If\nEnd Sub\n",
		"Private Sub Form_Load()\r\n  Call Setup(1, 2)\r\nEnd Sub\r\n",
		"x = 1: y = 2 ' two on one line\n",
		"total = a + _\n        b\n",
		"For i = 1 To 10 Step 2\n  Print i\nNext i\n",
		"junk ?? more \x01 junk\n",
		"Select Case n\nCase 1, 2\n  Beep\nCase Else\n  Stop\nEnd Select\n",
	}

	for _, src := range sources {
		tree := parseTree(t, src)
		if tree.Text() != src {
			t.Errorf("tree text mismatch:\n got %q\nwant %q", tree.Text(), src)
		}
	}
}

func TestParseIfBinaryCondition(t *testing.T) {
	tree := parseTree(t, "If x = 5 Then\n  Beep\nEnd If\n")

	ifNode := tree.Find(KindIfStatement)
	if ifNode == nil {
		t.Fatal("no IfStatement node")
	}
	cond := ifNode.Find(KindBinaryExpression)
	if cond == nil {
		t.Fatalf("no BinaryExpression under If:\n%s", tree.DebugString())
	}
	left := cond.Find(KindIdentifierExpression)
	if left == nil || left.Text() != "x" {
		t.Errorf("left side = %v, want identifier x", left)
	}
	if cond.FirstChildByKind(KindForToken(TokenEq)) == nil {
		t.Error("no = operator leaf in the condition")
	}
	right := cond.Find(KindLiteralExpression)
	if right == nil || right.Text() != "5" {
		t.Errorf("right side = %v, want literal 5", right)
	}
	if ifNode.Find(KindBeepStatement) == nil {
		t.Error("no BeepStatement inside the If body")
	}
}

func TestParseSingleLineIf(t *testing.T) {
	tree := parseTree(t, "If ok Then x = 1 Else y = 2\n")

	ifNode := tree.Find(KindIfStatement)
	if ifNode == nil {
		t.Fatal("no IfStatement node")
	}
	elseClause := ifNode.Find(KindElseClause)
	if elseClause == nil {
		t.Fatalf("no ElseClause on the single-line If:\n%s", tree.DebugString())
	}
	assigns := ifNode.FindAll(KindAssignmentStatement)
	if len(assigns) != 2 {
		t.Fatalf("assignment count = %d, want 2", len(assigns))
	}
	if elseClause.Find(KindAssignmentStatement) == nil {
		t.Error("else-branch assignment missing")
	}
}

func TestParseIfElseIfChain(t *testing.T) {
	src := "If a Then\n  Beep\nElseIf b Then\n  Stop\nElse\n  Beep\nEnd If\n"
	tree := parseTree(t, src)

	ifNode := tree.Find(KindIfStatement)
	if ifNode == nil {
		t.Fatal("no IfStatement node")
	}
	if ifNode.FirstChildByKind(KindElseIfClause) == nil {
		t.Error("no ElseIfClause")
	}
	if ifNode.FirstChildByKind(KindElseClause) == nil {
		t.Error("no ElseClause")
	}
	if tree.Text() != src {
		t.Errorf("tree text mismatch: %q", tree.Text())
	}
}

func TestParseNestedIfBlocks(t *testing.T) {
	src := "If a Then\n" +
		"  If b Then\n" +
		"    If c Then\n" +
		"      Beep\n" +
		"    End If\n" +
		"  ElseIf d Then\n" +
		"    Stop\n" +
		"  Else\n" +
		"    Beep\n" +
		"  End If\n" +
		"End If\n"
	tree := parseTree(t, src)

	ifs := tree.FindAll(KindIfStatement)
	if len(ifs) != 3 {
		t.Fatalf("IfStatement count = %d, want 3:\n%s", len(ifs), tree.DebugString())
	}
	outer, middle, inner := ifs[0], ifs[1], ifs[2]
	if outer.Find(KindIfStatement) != middle {
		t.Error("middle If is not nested inside the outer If")
	}
	if middle.Find(KindIfStatement) != inner {
		t.Error("inner If is not nested inside the middle If")
	}
	// the ElseIf and Else belong to the middle If, not the outer one
	if middle.FirstChildByKind(KindElseIfClause) == nil {
		t.Error("no ElseIfClause on the middle If")
	}
	if middle.FirstChildByKind(KindElseClause) == nil {
		t.Error("no ElseClause on the middle If")
	}
	if outer.FirstChildByKind(KindElseIfClause) != nil {
		t.Error("ElseIfClause leaked onto the outer If")
	}
	if inner.Find(KindBeepStatement) == nil {
		t.Error("innermost body statement missing")
	}
	if tree.Text() != src {
		t.Errorf("text mismatch:\n got %q\nwant %q", tree.Text(), src)
	}
}

func TestParseUnknownTokenRecovery(t *testing.T) {
	result := Parse("test.bas", "Beep\n?\nBeep\n")
	tree := result.MustValue()

	if len(tree.FindAll(KindBeepStatement)) != 2 {
		t.Errorf("statements around the bad token should still parse:\n%s", tree.DebugString())
	}
	unknown := tree.FindAll(KindUnknown)
	if len(unknown) != 1 {
		t.Fatalf("len(unknown) = %d, want exactly 1", len(unknown))
	}
	if unknown[0].Text() != "?" {
		t.Errorf("unknown text = %q, want ?", unknown[0].Text())
	}
	if !result.HasFailures() {
		t.Error("recovery must record a failure")
	}
}

func TestParseHeaderLatch(t *testing.T) {
	t.Run("header Begin is a properties block", func(t *testing.T) {
		tree := parseTree(t, "VERSION 1.0 CLASS\nBEGIN\n  MultiUse = -1\nEND\nOption Explicit\n")
		if tree.Find(KindVersionStatement) == nil {
			t.Error("no VersionStatement")
		}
		block := tree.Find(KindPropertiesBlock)
		if block == nil {
			t.Fatal("no PropertiesBlock")
		}
		prop := block.Find(KindProperty)
		if prop == nil {
			t.Fatal("no Property inside the block")
		}
		if key := prop.Find(KindPropertyKey); key == nil || key.Text() != "MultiUse" {
			t.Errorf("property key = %v, want MultiUse", key)
		}
		if value := prop.Find(KindPropertyValue); value == nil || value.Text() != "-1" {
			t.Errorf("property value = %v, want -1", value)
		}
	})

	t.Run("body Begin is not a properties block", func(t *testing.T) {
		tree := parseTree(t, "Beep\nBegin\nEnd\n")
		if tree.Find(KindPropertiesBlock) != nil {
			t.Errorf("Begin after a body statement parsed as header:\n%s", tree.DebugString())
		}
	})

	t.Run("body Begin can label a line", func(t *testing.T) {
		tree := parseTree(t, "Beep\nBegin:\nBeep\n")
		label := tree.Find(KindLabelStatement)
		if label == nil || label.Text() != "Begin:" {
			t.Errorf("label = %v, want Begin:", label)
		}
	})
}

func TestParseTwoPhaseEquivalence(t *testing.T) {
	src := "VERSION 1.0 CLASS\nBEGIN\n  MultiUse = -1\nEND\nAttribute VB_Name = \"Thing\"\nOption Explicit\n\nSub Go()\n  Beep\nEnd Sub\n"

	headerResult, rest := ParseHeader("test.cls", src)
	header := headerResult.MustValue()
	if header.Kind != HeaderKindClass {
		t.Errorf("header kind = %v, want Class", header.Kind)
	}
	if header.Version != "1.0" {
		t.Errorf("version = %q, want 1.0", header.Version)
	}

	body := ParseTokens("test.cls", rest.Clone(), BodyOnly()).MustValue()
	if got := header.Tree.Text() + body.Text(); got != src {
		t.Errorf("two-phase text mismatch:\n got %q\nwant %q", got, src)
	}

	full := parseTree(t, src)
	if full.Text() != src {
		t.Errorf("full parse text mismatch: %q", full.Text())
	}
	// the body phase may not re-enter header parsing
	if body.Find(KindPropertiesBlock) != nil {
		t.Error("body parse produced a PropertiesBlock")
	}
	if body.Find(KindSubStatement) == nil {
		t.Error("body parse lost the Sub")
	}
}

func TestParseHeaderKinds(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind HeaderKind
	}{
		{"class", "VERSION 1.0 CLASS\nBEGIN\nEND\n", HeaderKindClass},
		{"form", "VERSION 5.00\nBegin VB.Form Form1\nEnd\n", HeaderKindForm},
		{"module", "VERSION 5.00\nOption Explicit\n", HeaderKindModule},
		{"none", "Option Explicit\n", HeaderKindNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, _ := ParseHeader("test", tt.src)
			if got := result.MustValue().Kind; got != tt.kind {
				t.Errorf("Kind = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestParseDim(t *testing.T) {
	tree := parseTree(t, "Dim count As Long, name As String * 10\n")

	dim := tree.Find(KindDimStatement)
	if dim == nil {
		t.Fatal("no DimStatement")
	}
	if want := "Dim count As Long, name As String * 10"; dim.Text() != want {
		t.Errorf("dim text = %q, want %q", dim.Text(), want)
	}
}

func TestParseDeclarations(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind Kind
	}{
		{"dim", "Dim x\n", KindDimStatement},
		{"private", "Private mCount As Long\n", KindDimStatement},
		{"public withevents", "Public WithEvents conn As Connection\n", KindDimStatement},
		{"const", "Const MAX = 100\n", KindConstStatement},
		{"private const", "Private Const NAME As String = \"x\"\n", KindConstStatement},
		{"array", "Dim grid(1 To 5, 0 To 9) As Integer\n", KindDimStatement},
		{"new", "Dim doc As New Document\n", KindDimStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseTree(t, tt.src)
			if tree.Find(tt.kind) == nil {
				t.Errorf("no %v node:\n%s", tt.kind, tree.DebugString())
			}
			if tree.Text() != tt.src {
				t.Errorf("text mismatch: %q", tree.Text())
			}
		})
	}
}

func TestParseConstInitializerExpression(t *testing.T) {
	tree := parseTree(t, "Const MAX = 10 + 5 * 2\n")

	expr := tree.Find(KindBinaryExpression)
	if expr == nil {
		t.Fatalf("no BinaryExpression in the initializer:\n%s", tree.DebugString())
	}
	// * binds tighter than +, so the nested expression is 5 * 2
	inner := expr.Find(KindBinaryExpression)
	if inner == nil || inner.Text() != "5 * 2" {
		t.Errorf("inner expression = %v, want 5 * 2", inner)
	}
}

func TestParseTruncatedExpression(t *testing.T) {
	src := "x = 5 + \nBeep\nDim y As Long\n"
	result := Parse("test.bas", src)
	tree := result.MustValue()

	failures := result.Failures()
	if len(failures) == 0 {
		t.Fatal("truncated operand must record a failure")
	}
	if failures[0].Kind != FailMissingExpression {
		t.Errorf("failures[0].Kind = %v, want %v", failures[0].Kind, FailMissingExpression)
	}
	if failures[0].LineStart != 1 {
		t.Errorf("failures[0].LineStart = %d, want 1", failures[0].LineStart)
	}
	if tree.Find(KindBeepStatement) == nil {
		t.Error("statement after the truncated line lost")
	}
	if tree.Find(KindDimStatement) == nil {
		t.Error("declaration after the truncated line lost")
	}
	if tree.Text() != src {
		t.Errorf("text mismatch: %q", tree.Text())
	}
}

func TestParseMissingRightHandSide(t *testing.T) {
	sources := []string{
		"x = \n",
		"Set conn = \n",
		"Let x = \n",
		"y = Not \n",
	}
	for _, src := range sources {
		tree, _, failures := Parse("test.bas", src).Unpack()
		found := false
		for _, f := range failures {
			if f.Kind == FailMissingExpression {
				found = true
			}
		}
		if !found {
			t.Errorf("%q: no missing-expression failure, got %v", src, failures)
		}
		if tree.Text() != src {
			t.Errorf("%q: text mismatch: %q", src, tree.Text())
		}
	}
}

func TestParseDollarFunctions(t *testing.T) {
	tree := parseTree(t, "s = Mid$(t, 2, 3)\n")

	merged := tree.Root.FindIf(func(n *Node) bool {
		return n.IsToken() && n.Token.Text == "Mid$"
	})
	if merged == nil {
		t.Fatalf("Mid$ not merged into one leaf:\n%s", tree.DebugString())
	}
	if kind, _ := merged.Kind.TokenKind(); kind != TokenIdent {
		t.Errorf("merged leaf kind = %v, want Identifier", merged.Kind)
	}
	call := tree.Find(KindCallExpression)
	if call == nil {
		t.Fatal("no CallExpression for the Mid$ call")
	}
	args := call.Find(KindArgumentList)
	if args == nil {
		t.Fatal("no ArgumentList")
	}
	if got := len(args.ChildrenByKind(KindArgument)); got != 3 {
		t.Errorf("argument count = %d, want 3", got)
	}
}

func TestParseProcedures(t *testing.T) {
	src := "Private Sub Form_Load(ByVal Index As Integer, Optional Name As String)\n  Beep\nEnd Sub\n"
	tree := parseTree(t, src)

	sub := tree.Find(KindSubStatement)
	if sub == nil {
		t.Fatal("no SubStatement")
	}
	params := sub.Find(KindParameterList)
	if params == nil {
		t.Fatal("no ParameterList")
	}
	if got := len(params.ChildrenByKind(KindParameter)); got != 2 {
		t.Errorf("parameter count = %d, want 2", got)
	}
	if sub.Find(KindBeepStatement) == nil {
		t.Error("body statement missing")
	}
	if tree.Text() != src {
		t.Errorf("text mismatch: %q", tree.Text())
	}
}

func TestParseFunctionReturnType(t *testing.T) {
	src := "Public Function Total(a As Long) As Long\n  Total = a\nEnd Function\n"
	tree := parseTree(t, src)

	fn := tree.Find(KindFunctionStatement)
	if fn == nil {
		t.Fatal("no FunctionStatement")
	}
	if fn.Find(KindAssignmentStatement) == nil {
		t.Error("body assignment missing")
	}
}

func TestParsePropertyAccessors(t *testing.T) {
	src := "Public Property Get Count() As Long\n  Count = mCount\nEnd Property\n" +
		"Public Property Let Count(value As Long)\n  mCount = value\nEnd Property\n"
	tree := parseTree(t, src)

	if got := len(tree.FindAll(KindPropertyStatement)); got != 2 {
		t.Errorf("property count = %d, want 2:\n%s", got, tree.DebugString())
	}
}

func TestParseControlFlow(t *testing.T) {
	tests := []struct {
		name string
		src  string
		kind Kind
	}{
		{"do while", "Do While x < 10\n  x = x + 1\nLoop\n", KindDoStatement},
		{"do loop until", "Do\n  Beep\nLoop Until done\n", KindDoStatement},
		{"while wend", "While x > 0\n  x = x - 1\nWend\n", KindWhileStatement},
		{"for", "For i = 1 To 10\n  Beep\nNext i\n", KindForStatement},
		{"for each", "For Each item In list\n  Beep\nNext\n", KindForEachStatement},
		{"with", "With frm\n  .Caption = \"hi\"\nEnd With\n", KindWithStatement},
		{"goto", "GoTo done\n", KindGotoStatement},
		{"gosub", "GoSub sweep\n", KindGoSubStatement},
		{"on error", "On Error Resume Next\n", KindOnErrorStatement},
		{"on goto", "On n GoTo first, second\n", KindOnGotoStatement},
		{"on gosub", "On n GoSub first, second\n", KindOnGoSubStatement},
		{"exit", "Exit Sub\n", KindExitStatement},
		{"resume", "Resume Next\n", KindResumeStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := parseTree(t, tt.src)
			if tree.Find(tt.kind) == nil {
				t.Errorf("no %v node:\n%s", tt.kind, tree.DebugString())
			}
			if tree.Text() != tt.src {
				t.Errorf("text mismatch: %q", tree.Text())
			}
		})
	}
}

func TestParseSelectCase(t *testing.T) {
	src := "Select Case n\nCase 1, 2\n  Beep\nCase Else\n  Stop\nEnd Select\n"
	tree := parseTree(t, src)

	sel := tree.Find(KindSelectCaseStatement)
	if sel == nil {
		t.Fatal("no SelectCaseStatement")
	}
	if len(sel.ChildrenByKind(KindCaseClause)) != 1 {
		t.Errorf("case clause count = %d, want 1", len(sel.ChildrenByKind(KindCaseClause)))
	}
	if len(sel.ChildrenByKind(KindCaseElseClause)) != 1 {
		t.Errorf("case else count = %d, want 1", len(sel.ChildrenByKind(KindCaseElseClause)))
	}
}

func TestParseWithBodyAssignment(t *testing.T) {
	tree := parseTree(t, "With frm\n  .Caption = title\nEnd With\n")

	with := tree.Find(KindWithStatement)
	if with == nil {
		t.Fatal("no WithStatement")
	}
	if with.Find(KindAssignmentStatement) == nil {
		t.Errorf("leading-dot assignment missing:\n%s", tree.DebugString())
	}
}

func TestParseLabelsAndJumps(t *testing.T) {
	src := "Sub T()\nOn Error GoTo handler\nExit Sub\nhandler:\nResume Next\nEnd Sub\n"
	tree := parseTree(t, src)

	label := tree.Find(KindLabelStatement)
	if label == nil || label.Text() != "handler:" {
		t.Errorf("label = %v, want handler:", label)
	}
	if tree.Find(KindOnErrorStatement) == nil {
		t.Error("no OnErrorStatement")
	}
	if tree.Find(KindResumeStatement) == nil {
		t.Error("no ResumeStatement")
	}
}

func TestParseLineContinuation(t *testing.T) {
	src := "total = first + _\n        second\n"
	tree := parseTree(t, src)

	assign := tree.Find(KindAssignmentStatement)
	if assign == nil {
		t.Fatal("no AssignmentStatement")
	}
	if !strings.Contains(assign.Text(), "_\n") {
		t.Errorf("continuation not kept inside the statement: %q", assign.Text())
	}
	if tree.Find(KindBinaryExpression) == nil {
		t.Error("continued expression did not parse as one expression")
	}
	if tree.Text() != src {
		t.Errorf("text mismatch: %q", tree.Text())
	}
}

func TestParseSetAndCall(t *testing.T) {
	src := "Set conn = New Connection\nCall Setup(1, 2)\nRaiseEvent Changed(3)\n"
	tree := parseTree(t, src)

	set := tree.Find(KindSetStatement)
	if set == nil {
		t.Fatal("no SetStatement")
	}
	if set.Find(KindNewExpression) == nil {
		t.Error("no NewExpression on the Set right side")
	}
	if tree.Find(KindCallStatement) == nil {
		t.Error("no CallStatement")
	}
	if tree.Find(KindRaiseEventStatement) == nil {
		t.Error("no RaiseEventStatement")
	}
}

func TestParseImplicitCall(t *testing.T) {
	tests := []struct {
		name string
		src  string
		args int
	}{
		{"two arguments", "Setup 1, 2\n", 2},
		{"string argument", "MsgBox \"hello\"\n", 1},
		{"member call", "frm.Show vbModal\n", 1},
		{"no arguments", "Refresh\n", 0},
		{"dollar name", "Command$\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Parse("test.bas", tt.src)
			tree := result.MustValue()
			call := tree.Find(KindCallStatement)
			if call == nil {
				t.Fatalf("no CallStatement:\n%s", tree.DebugString())
			}
			got := 0
			if args := call.Find(KindArgumentList); args != nil {
				got = len(args.ChildrenByKind(KindArgument))
			}
			if got != tt.args {
				t.Errorf("argument count = %d, want %d", got, tt.args)
			}
			if result.HasFailures() {
				t.Errorf("unexpected failures: %v", result.Failures())
			}
			if tree.Text() != tt.src {
				t.Errorf("text mismatch: %q", tree.Text())
			}
		})
	}
}

func TestParseImplicitCallInBlock(t *testing.T) {
	src := "Sub T()\n  MsgBox \"hi\", vbOKOnly\nEnd Sub\n"
	result := Parse("test.bas", src)
	tree := result.MustValue()

	sub := tree.Find(KindSubStatement)
	if sub == nil {
		t.Fatal("no SubStatement")
	}
	call := sub.Find(KindCallStatement)
	if call == nil {
		t.Fatalf("no CallStatement in the body:\n%s", tree.DebugString())
	}
	args := call.Find(KindArgumentList)
	if args == nil || len(args.ChildrenByKind(KindArgument)) != 2 {
		t.Errorf("argument list = %v, want 2 arguments", args)
	}
	if result.HasFailures() {
		t.Errorf("unexpected failures: %v", result.Failures())
	}
}

func TestParseTypeAndEnumBlocks(t *testing.T) {
	src := "Private Type Point\n  X As Long\n  Y As Long\nEnd Type\n" +
		"Public Enum Color\n  Red = 1\n  Green\nEnd Enum\n"
	tree := parseTree(t, src)

	typ := tree.Find(KindTypeStatement)
	if typ == nil {
		t.Fatal("no TypeStatement")
	}
	if !strings.HasSuffix(typ.Text(), "End Type") {
		t.Errorf("type block text = %q", typ.Text())
	}
	if tree.Find(KindEnumStatement) == nil {
		t.Error("no EnumStatement")
	}
}

func TestParseDeclareAndEvent(t *testing.T) {
	src := "Private Declare Function GetTickCount Lib \"kernel32\" () As Long\n" +
		"Public Event Progress(ByVal Percent As Long)\n"
	tree := parseTree(t, src)

	if tree.Find(KindDeclareStatement) == nil {
		t.Error("no DeclareStatement")
	}
	if tree.Find(KindEventStatement) == nil {
		t.Error("no EventStatement")
	}
}

func TestParseMemberAccessChain(t *testing.T) {
	tree := parseTree(t, "v = a.b(1).c\n")

	access := tree.Find(KindMemberAccessExpression)
	if access == nil {
		t.Fatalf("no MemberAccessExpression:\n%s", tree.DebugString())
	}
	if access.Text() != "a.b(1).c" {
		t.Errorf("chain text = %q, want a.b(1).c", access.Text())
	}
	if access.Find(KindCallExpression) == nil {
		t.Error("call segment missing from the chain")
	}
}

func TestParseBuiltinStatements(t *testing.T) {
	tests := []struct {
		src  string
		kind Kind
	}{
		{"Open \"file.txt\" For Input As #1\n", KindOpenStatement},
		{"Close #1\n", KindCloseStatement},
		{"Print #1, \"hello\"\n", KindPrintStatement},
		{"Line Input #1, row\n", KindLineInputStatement},
		{"Kill \"temp.dat\"\n", KindKillStatement},
		{"MkDir \"out\"\n", KindMkDirStatement},
		{"Unload Me\n", KindUnloadStatement},
		{"SendKeys \"{ENTER}\"\n", KindSendKeysStatement},
		{"Randomize\n", KindRandomizeStatement},
	}

	for _, tt := range tests {
		t.Run(strings.Fields(tt.src)[0], func(t *testing.T) {
			tree := parseTree(t, tt.src)
			if tree.Find(tt.kind) == nil {
				t.Errorf("no %v node:\n%s", tt.kind, tree.DebugString())
			}
		})
	}
}

func TestParseAttributeAndOption(t *testing.T) {
	src := "Attribute VB_Name = \"Helpers\"\nOption Explicit\nOption Base 1\n"
	tree := parseTree(t, src)

	if tree.Find(KindAttributeStatement) == nil {
		t.Error("no AttributeStatement")
	}
	if got := len(tree.FindAll(KindOptionStatement)); got != 2 {
		t.Errorf("option count = %d, want 2", got)
	}

	filtered := tree.WithoutKinds(KindAttributeStatement)
	if filtered.Find(KindAttributeStatement) != nil {
		t.Error("WithoutKinds kept an AttributeStatement")
	}
	if len(filtered.FindAll(KindOptionStatement)) != 2 {
		t.Error("WithoutKinds dropped unrelated nodes")
	}
}

func TestParseNeverPanicsOnGarbage(t *testing.T) {
	sources := []string{
		"End\n",
		"Else\n",
		"Next\n",
		"Loop While\n",
		"Sub\n",
		"If Then\n",
		"((((((\n",
		"Dim , , ,\n",
		"Case 1\n",
		")\n" + strings.Repeat("\"", 7),
	}
	for _, src := range sources {
		tree, ok, _ := Parse("garbage.bas", src).Unpack()
		if !ok {
			t.Fatalf("no tree for %q", src)
		}
		if tree.Text() != src {
			t.Errorf("lossless violated for %q: got %q", src, tree.Text())
		}
	}
}

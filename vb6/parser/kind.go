package parser

// Kind tags a tree node with its grammar role. Token leaves get a kind
// derived from their TokenKind (see KindForToken) so searches can target
// tokens and interior nodes uniformly.
type Kind int

const (
	KindError Kind = iota
	KindUnknown
	KindRoot

	// Statements
	KindModuleStatement
	KindClassStatement
	KindSubStatement
	KindFunctionStatement
	KindPropertyStatement
	KindDeclareStatement
	KindEventStatement
	KindImplementsStatement
	KindDefTypeStatement
	KindDimStatement
	KindReDimStatement
	KindEraseStatement
	KindConstStatement
	KindTypeStatement
	KindEnumStatement
	KindIfStatement
	KindElseIfClause
	KindElseClause
	KindForStatement
	KindForEachStatement
	KindWhileStatement
	KindDoStatement
	KindSelectCaseStatement
	KindCaseClause
	KindCaseElseClause
	KindWithStatement
	KindCallStatement
	KindRaiseEventStatement
	KindSetStatement
	KindLetStatement
	KindAssignmentStatement
	KindGotoStatement
	KindGoSubStatement
	KindReturnStatement
	KindResumeStatement
	KindExitStatement
	KindOnErrorStatement
	KindOnGotoStatement
	KindOnGoSubStatement
	KindAppActivateStatement
	KindBeepStatement
	KindChDirStatement
	KindChDriveStatement
	KindCloseStatement
	KindDateStatement
	KindDeleteSettingStatement
	KindResetStatement
	KindSavePictureStatement
	KindSaveSettingStatement
	KindSeekStatement
	KindSendKeysStatement
	KindSetAttrStatement
	KindStopStatement
	KindTimeStatement
	KindRandomizeStatement
	KindErrorStatement
	KindFileCopyStatement
	KindGetStatement
	KindPutStatement
	KindInputStatement
	KindLineInputStatement
	KindKillStatement
	KindLoadStatement
	KindUnloadStatement
	KindLockStatement
	KindUnlockStatement
	KindLSetStatement
	KindRSetStatement
	KindMidStatement
	KindMidBStatement
	KindMkDirStatement
	KindRmDirStatement
	KindNameStatement
	KindOpenStatement
	KindPrintStatement
	KindWidthStatement
	KindWriteStatement
	KindLabelStatement
	KindAttributeStatement
	KindOptionStatement
	KindObjectStatement

	// File header
	KindVersionStatement
	KindPropertiesBlock
	KindProperty
	KindPropertyKey
	KindPropertyValue
	KindPropertyGroup
	KindPropertyGroupName

	// Expressions
	KindBinaryExpression
	KindUnaryExpression
	KindLiteralExpression
	KindIdentifierExpression
	KindMemberAccessExpression
	KindCallExpression
	KindParenthesizedExpression
	KindAddressOfExpression
	KindTypeOfExpression
	KindNewExpression

	// Containers
	KindArgumentList
	KindArgument
	KindParameterList
	KindParameter
	KindStatementList
)

var kindNames = map[Kind]string{
	KindError:                   "Error",
	KindUnknown:                 "Unknown",
	KindRoot:                    "Root",
	KindModuleStatement:         "ModuleStatement",
	KindClassStatement:          "ClassStatement",
	KindSubStatement:            "SubStatement",
	KindFunctionStatement:       "FunctionStatement",
	KindPropertyStatement:       "PropertyStatement",
	KindDeclareStatement:        "DeclareStatement",
	KindEventStatement:          "EventStatement",
	KindImplementsStatement:     "ImplementsStatement",
	KindDefTypeStatement:        "DefTypeStatement",
	KindDimStatement:            "DimStatement",
	KindReDimStatement:          "ReDimStatement",
	KindEraseStatement:          "EraseStatement",
	KindConstStatement:          "ConstStatement",
	KindTypeStatement:           "TypeStatement",
	KindEnumStatement:           "EnumStatement",
	KindIfStatement:             "IfStatement",
	KindElseIfClause:            "ElseIfClause",
	KindElseClause:              "ElseClause",
	KindForStatement:            "ForStatement",
	KindForEachStatement:        "ForEachStatement",
	KindWhileStatement:          "WhileStatement",
	KindDoStatement:             "DoStatement",
	KindSelectCaseStatement:     "SelectCaseStatement",
	KindCaseClause:              "CaseClause",
	KindCaseElseClause:          "CaseElseClause",
	KindWithStatement:           "WithStatement",
	KindCallStatement:           "CallStatement",
	KindRaiseEventStatement:     "RaiseEventStatement",
	KindSetStatement:            "SetStatement",
	KindLetStatement:            "LetStatement",
	KindAssignmentStatement:     "AssignmentStatement",
	KindGotoStatement:           "GotoStatement",
	KindGoSubStatement:          "GoSubStatement",
	KindReturnStatement:         "ReturnStatement",
	KindResumeStatement:         "ResumeStatement",
	KindExitStatement:           "ExitStatement",
	KindOnErrorStatement:        "OnErrorStatement",
	KindOnGotoStatement:         "OnGotoStatement",
	KindOnGoSubStatement:        "OnGoSubStatement",
	KindAppActivateStatement:    "AppActivateStatement",
	KindBeepStatement:           "BeepStatement",
	KindChDirStatement:          "ChDirStatement",
	KindChDriveStatement:        "ChDriveStatement",
	KindCloseStatement:          "CloseStatement",
	KindDateStatement:           "DateStatement",
	KindDeleteSettingStatement:  "DeleteSettingStatement",
	KindResetStatement:          "ResetStatement",
	KindSavePictureStatement:    "SavePictureStatement",
	KindSaveSettingStatement:    "SaveSettingStatement",
	KindSeekStatement:           "SeekStatement",
	KindSendKeysStatement:       "SendKeysStatement",
	KindSetAttrStatement:        "SetAttrStatement",
	KindStopStatement:           "StopStatement",
	KindTimeStatement:           "TimeStatement",
	KindRandomizeStatement:      "RandomizeStatement",
	KindErrorStatement:          "ErrorStatement",
	KindFileCopyStatement:       "FileCopyStatement",
	KindGetStatement:            "GetStatement",
	KindPutStatement:            "PutStatement",
	KindInputStatement:          "InputStatement",
	KindLineInputStatement:      "LineInputStatement",
	KindKillStatement:           "KillStatement",
	KindLoadStatement:           "LoadStatement",
	KindUnloadStatement:         "UnloadStatement",
	KindLockStatement:           "LockStatement",
	KindUnlockStatement:         "UnlockStatement",
	KindLSetStatement:           "LSetStatement",
	KindRSetStatement:           "RSetStatement",
	KindMidStatement:            "MidStatement",
	KindMidBStatement:           "MidBStatement",
	KindMkDirStatement:          "MkDirStatement",
	KindRmDirStatement:          "RmDirStatement",
	KindNameStatement:           "NameStatement",
	KindOpenStatement:           "OpenStatement",
	KindPrintStatement:          "PrintStatement",
	KindWidthStatement:          "WidthStatement",
	KindWriteStatement:          "WriteStatement",
	KindLabelStatement:          "LabelStatement",
	KindAttributeStatement:      "AttributeStatement",
	KindOptionStatement:         "OptionStatement",
	KindObjectStatement:         "ObjectStatement",
	KindVersionStatement:        "VersionStatement",
	KindPropertiesBlock:         "PropertiesBlock",
	KindProperty:                "Property",
	KindPropertyKey:             "PropertyKey",
	KindPropertyValue:           "PropertyValue",
	KindPropertyGroup:           "PropertyGroup",
	KindPropertyGroupName:       "PropertyGroupName",
	KindBinaryExpression:        "BinaryExpression",
	KindUnaryExpression:         "UnaryExpression",
	KindLiteralExpression:       "LiteralExpression",
	KindIdentifierExpression:    "IdentifierExpression",
	KindMemberAccessExpression:  "MemberAccessExpression",
	KindCallExpression:          "CallExpression",
	KindParenthesizedExpression: "ParenthesizedExpression",
	KindAddressOfExpression:     "AddressOfExpression",
	KindTypeOfExpression:        "TypeOfExpression",
	KindNewExpression:           "NewExpression",
	KindArgumentList:            "ArgumentList",
	KindArgument:                "Argument",
	KindParameterList:           "ParameterList",
	KindParameter:               "Parameter",
	KindStatementList:           "StatementList",
}

// Token leaves live in their own region of the Kind space so a leaf's
// kind round-trips to its TokenKind.
const tokenKindBase Kind = 1000

func KindForToken(k TokenKind) Kind {
	return tokenKindBase + Kind(k)
}

func (k Kind) TokenKind() (TokenKind, bool) {
	if k >= tokenKindBase {
		return TokenKind(k - tokenKindBase), true
	}
	return 0, false
}

func (k Kind) IsToken() bool {
	return k >= tokenKindBase
}

func (k Kind) String() string {
	if tk, ok := k.TokenKind(); ok {
		return tk.String()
	}
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

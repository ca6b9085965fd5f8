package parser

import "strings"

type TokenKind int

const (
	TokenUnknown TokenKind = iota

	// Trivia
	TokenWhitespace
	TokenNewline
	TokenComment
	TokenRemComment

	// Literals
	TokenIdent
	TokenIntegerLiteral
	TokenLongLiteral
	TokenSingleLiteral
	TokenDoubleLiteral
	TokenDecimalLiteral
	TokenStringLiteral
	TokenDateTimeLiteral

	// Keywords
	TokenAccess
	TokenAddressOf
	TokenAlias
	TokenAnd
	TokenAppActivate
	TokenAppend
	TokenAs
	TokenAttribute
	TokenBase
	TokenBeep
	TokenBegin
	TokenBinary
	TokenBoolean
	TokenByRef
	TokenByte
	TokenByVal
	TokenCall
	TokenCase
	TokenChDir
	TokenChDrive
	TokenClass
	TokenClose
	TokenCompare
	TokenConst
	TokenCurrency
	TokenDatabase
	TokenDate
	TokenDecimal
	TokenDeclare
	TokenDefBool
	TokenDefByte
	TokenDefCur
	TokenDefDate
	TokenDefDbl
	TokenDefDec
	TokenDefInt
	TokenDefLng
	TokenDefObj
	TokenDefSng
	TokenDefStr
	TokenDefVar
	TokenDeleteSetting
	TokenDim
	TokenDo
	TokenDouble
	TokenEach
	TokenElse
	TokenElseIf
	TokenEmpty
	TokenEnd
	TokenEnum
	TokenEqv
	TokenErase
	TokenError
	TokenEvent
	TokenExit
	TokenExplicit
	TokenFalse
	TokenFileCopy
	TokenFor
	TokenFriend
	TokenFunction
	TokenGet
	TokenGoSub
	TokenGoto
	TokenIf
	TokenImp
	TokenImplements
	TokenIn
	TokenInput
	TokenInteger
	TokenIs
	TokenKill
	TokenLen
	TokenLet
	TokenLib
	TokenLine
	TokenLoad
	TokenLock
	TokenLong
	TokenLoop
	TokenLSet
	TokenMe
	TokenMid
	TokenMidB
	TokenMkDir
	TokenMod
	TokenModule
	TokenName
	TokenNew
	TokenNext
	TokenNot
	TokenNull
	TokenObject
	TokenOn
	TokenOpen
	TokenOption
	TokenOptional
	TokenOr
	TokenOutput
	TokenParamArray
	TokenPreserve
	TokenPrint
	TokenPrivate
	TokenProperty
	TokenPublic
	TokenPut
	TokenRaiseEvent
	TokenRandom
	TokenRandomize
	TokenRead
	TokenReDim
	TokenReset
	TokenResume
	TokenReturn
	TokenRmDir
	TokenRSet
	TokenSavePicture
	TokenSaveSetting
	TokenSeek
	TokenSelect
	TokenSendKeys
	TokenSet
	TokenSetAttr
	TokenSingle
	TokenStatic
	TokenStep
	TokenStop
	TokenString
	TokenSub
	TokenText
	TokenThen
	TokenTime
	TokenTo
	TokenTrue
	TokenType
	TokenUnload
	TokenUnlock
	TokenUntil
	TokenVariant
	TokenVersion
	TokenWend
	TokenWhile
	TokenWidth
	TokenWith
	TokenWithEvents
	TokenWrite
	TokenXor

	// Operators and punctuation
	TokenNE
	TokenLE
	TokenGE
	TokenEq
	TokenLT
	TokenGT
	TokenLParen
	TokenRParen
	TokenLBrace
	TokenRBrace
	TokenLBracket
	TokenRBracket
	TokenComma
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenBackslash
	TokenCaret
	TokenDot
	TokenColon
	TokenSemicolon
	TokenAmpersand
	TokenDollar
	TokenPercent
	TokenHash
	TokenBang
	TokenAt
	TokenUnderscore
)

var tokenKindNames = map[TokenKind]string{
	TokenUnknown:         "Unknown",
	TokenWhitespace:      "Whitespace",
	TokenNewline:         "Newline",
	TokenComment:         "Comment",
	TokenRemComment:      "RemComment",
	TokenIdent:           "Identifier",
	TokenIntegerLiteral:  "IntegerLiteral",
	TokenLongLiteral:     "LongLiteral",
	TokenSingleLiteral:   "SingleLiteral",
	TokenDoubleLiteral:   "DoubleLiteral",
	TokenDecimalLiteral:  "DecimalLiteral",
	TokenStringLiteral:   "StringLiteral",
	TokenDateTimeLiteral: "DateTimeLiteral",
	TokenAccess:          "Access",
	TokenAddressOf:       "AddressOf",
	TokenAlias:           "Alias",
	TokenAnd:             "And",
	TokenAppActivate:     "AppActivate",
	TokenAppend:          "Append",
	TokenAs:              "As",
	TokenAttribute:       "Attribute",
	TokenBase:            "Base",
	TokenBeep:            "Beep",
	TokenBegin:           "Begin",
	TokenBinary:          "Binary",
	TokenBoolean:         "Boolean",
	TokenByRef:           "ByRef",
	TokenByte:            "Byte",
	TokenByVal:           "ByVal",
	TokenCall:            "Call",
	TokenCase:            "Case",
	TokenChDir:           "ChDir",
	TokenChDrive:         "ChDrive",
	TokenClass:           "Class",
	TokenClose:           "Close",
	TokenCompare:         "Compare",
	TokenConst:           "Const",
	TokenCurrency:        "Currency",
	TokenDatabase:        "Database",
	TokenDate:            "Date",
	TokenDecimal:         "Decimal",
	TokenDeclare:         "Declare",
	TokenDefBool:         "DefBool",
	TokenDefByte:         "DefByte",
	TokenDefCur:          "DefCur",
	TokenDefDate:         "DefDate",
	TokenDefDbl:          "DefDbl",
	TokenDefDec:          "DefDec",
	TokenDefInt:          "DefInt",
	TokenDefLng:          "DefLng",
	TokenDefObj:          "DefObj",
	TokenDefSng:          "DefSng",
	TokenDefStr:          "DefStr",
	TokenDefVar:          "DefVar",
	TokenDeleteSetting:   "DeleteSetting",
	TokenDim:             "Dim",
	TokenDo:              "Do",
	TokenDouble:          "Double",
	TokenEach:            "Each",
	TokenElse:            "Else",
	TokenElseIf:          "ElseIf",
	TokenEmpty:           "Empty",
	TokenEnd:             "End",
	TokenEnum:            "Enum",
	TokenEqv:             "Eqv",
	TokenErase:           "Erase",
	TokenError:           "Error",
	TokenEvent:           "Event",
	TokenExit:            "Exit",
	TokenExplicit:        "Explicit",
	TokenFalse:           "False",
	TokenFileCopy:        "FileCopy",
	TokenFor:             "For",
	TokenFriend:          "Friend",
	TokenFunction:        "Function",
	TokenGet:             "Get",
	TokenGoSub:           "GoSub",
	TokenGoto:            "GoTo",
	TokenIf:              "If",
	TokenImp:             "Imp",
	TokenImplements:      "Implements",
	TokenIn:              "In",
	TokenInput:           "Input",
	TokenInteger:         "Integer",
	TokenIs:              "Is",
	TokenKill:            "Kill",
	TokenLen:             "Len",
	TokenLet:             "Let",
	TokenLib:             "Lib",
	TokenLine:            "Line",
	TokenLoad:            "Load",
	TokenLock:            "Lock",
	TokenLong:            "Long",
	TokenLoop:            "Loop",
	TokenLSet:            "LSet",
	TokenMe:              "Me",
	TokenMid:             "Mid",
	TokenMidB:            "MidB",
	TokenMkDir:           "MkDir",
	TokenMod:             "Mod",
	TokenModule:          "Module",
	TokenName:            "Name",
	TokenNew:             "New",
	TokenNext:            "Next",
	TokenNot:             "Not",
	TokenNull:            "Null",
	TokenObject:          "Object",
	TokenOn:              "On",
	TokenOpen:            "Open",
	TokenOption:          "Option",
	TokenOptional:        "Optional",
	TokenOr:              "Or",
	TokenOutput:          "Output",
	TokenParamArray:      "ParamArray",
	TokenPreserve:        "Preserve",
	TokenPrint:           "Print",
	TokenPrivate:         "Private",
	TokenProperty:        "Property",
	TokenPublic:          "Public",
	TokenPut:             "Put",
	TokenRaiseEvent:      "RaiseEvent",
	TokenRandom:          "Random",
	TokenRandomize:       "Randomize",
	TokenRead:            "Read",
	TokenReDim:           "ReDim",
	TokenReset:           "Reset",
	TokenResume:          "Resume",
	TokenReturn:          "Return",
	TokenRmDir:           "RmDir",
	TokenRSet:            "RSet",
	TokenSavePicture:     "SavePicture",
	TokenSaveSetting:     "SaveSetting",
	TokenSeek:            "Seek",
	TokenSelect:          "Select",
	TokenSendKeys:        "SendKeys",
	TokenSet:             "Set",
	TokenSetAttr:         "SetAttr",
	TokenSingle:          "Single",
	TokenStatic:          "Static",
	TokenStep:            "Step",
	TokenStop:            "Stop",
	TokenString:          "String",
	TokenSub:             "Sub",
	TokenText:            "Text",
	TokenThen:            "Then",
	TokenTime:            "Time",
	TokenTo:              "To",
	TokenTrue:            "True",
	TokenType:            "Type",
	TokenUnload:          "Unload",
	TokenUnlock:          "Unlock",
	TokenUntil:           "Until",
	TokenVariant:         "Variant",
	TokenVersion:         "Version",
	TokenWend:            "Wend",
	TokenWhile:           "While",
	TokenWidth:           "Width",
	TokenWith:            "With",
	TokenWithEvents:      "WithEvents",
	TokenWrite:           "Write",
	TokenXor:             "Xor",
	TokenNE:              "<>",
	TokenLE:              "<=",
	TokenGE:              ">=",
	TokenEq:              "=",
	TokenLT:              "<",
	TokenGT:              ">",
	TokenLParen:          "(",
	TokenRParen:          ")",
	TokenLBrace:          "{",
	TokenRBrace:          "}",
	TokenLBracket:        "[",
	TokenRBracket:        "]",
	TokenComma:           ",",
	TokenPlus:            "+",
	TokenMinus:           "-",
	TokenStar:            "*",
	TokenSlash:           "/",
	TokenBackslash:       "\\",
	TokenCaret:           "^",
	TokenDot:             ".",
	TokenColon:           ":",
	TokenSemicolon:       ";",
	TokenAmpersand:       "&",
	TokenDollar:          "$",
	TokenPercent:         "%",
	TokenHash:            "#",
	TokenBang:            "!",
	TokenAt:              "@",
	TokenUnderscore:      "_",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsTrivia reports whether the kind carries no grammatical meaning and only
// exists so the tree can reproduce the source exactly. The continuation
// underscore counts: it splices lines without contributing a token of
// its own.
func (k TokenKind) IsTrivia() bool {
	switch k {
	case TokenWhitespace, TokenNewline, TokenComment, TokenRemComment,
		TokenUnderscore:
		return true
	}
	return false
}

func (k TokenKind) IsKeyword() bool {
	return k >= TokenAccess && k <= TokenXor
}

// Token is an immutable slice of the input paired with a classification.
// Text aliases the original source string; lexing never copies bytes.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
	Line   int
}

// Keyword matching is case-insensitive, matching the legacy language rules.
var keywords = map[string]TokenKind{
	"access":        TokenAccess,
	"addressof":     TokenAddressOf,
	"alias":         TokenAlias,
	"and":           TokenAnd,
	"appactivate":   TokenAppActivate,
	"append":        TokenAppend,
	"as":            TokenAs,
	"attribute":     TokenAttribute,
	"base":          TokenBase,
	"beep":          TokenBeep,
	"begin":         TokenBegin,
	"binary":        TokenBinary,
	"boolean":       TokenBoolean,
	"byref":         TokenByRef,
	"byte":          TokenByte,
	"byval":         TokenByVal,
	"call":          TokenCall,
	"case":          TokenCase,
	"chdir":         TokenChDir,
	"chdrive":       TokenChDrive,
	"class":         TokenClass,
	"close":         TokenClose,
	"compare":       TokenCompare,
	"const":         TokenConst,
	"currency":      TokenCurrency,
	"database":      TokenDatabase,
	"date":          TokenDate,
	"decimal":       TokenDecimal,
	"declare":       TokenDeclare,
	"defbool":       TokenDefBool,
	"defbyte":       TokenDefByte,
	"defcur":        TokenDefCur,
	"defdate":       TokenDefDate,
	"defdbl":        TokenDefDbl,
	"defdec":        TokenDefDec,
	"defint":        TokenDefInt,
	"deflng":        TokenDefLng,
	"defobj":        TokenDefObj,
	"defsng":        TokenDefSng,
	"defstr":        TokenDefStr,
	"defvar":        TokenDefVar,
	"deletesetting": TokenDeleteSetting,
	"dim":           TokenDim,
	"do":            TokenDo,
	"double":        TokenDouble,
	"each":          TokenEach,
	"else":          TokenElse,
	"elseif":        TokenElseIf,
	"empty":         TokenEmpty,
	"end":           TokenEnd,
	"enum":          TokenEnum,
	"eqv":           TokenEqv,
	"erase":         TokenErase,
	"error":         TokenError,
	"event":         TokenEvent,
	"exit":          TokenExit,
	"explicit":      TokenExplicit,
	"false":         TokenFalse,
	"filecopy":      TokenFileCopy,
	"for":           TokenFor,
	"friend":        TokenFriend,
	"function":      TokenFunction,
	"get":           TokenGet,
	"gosub":         TokenGoSub,
	"goto":          TokenGoto,
	"if":            TokenIf,
	"imp":           TokenImp,
	"implements":    TokenImplements,
	"in":            TokenIn,
	"input":         TokenInput,
	"integer":       TokenInteger,
	"is":            TokenIs,
	"kill":          TokenKill,
	"len":           TokenLen,
	"let":           TokenLet,
	"lib":           TokenLib,
	"line":          TokenLine,
	"load":          TokenLoad,
	"lock":          TokenLock,
	"long":          TokenLong,
	"loop":          TokenLoop,
	"lset":          TokenLSet,
	"me":            TokenMe,
	"mid":           TokenMid,
	"midb":          TokenMidB,
	"mkdir":         TokenMkDir,
	"mod":           TokenMod,
	"module":        TokenModule,
	"name":          TokenName,
	"new":           TokenNew,
	"next":          TokenNext,
	"not":           TokenNot,
	"null":          TokenNull,
	"object":        TokenObject,
	"on":            TokenOn,
	"open":          TokenOpen,
	"option":        TokenOption,
	"optional":      TokenOptional,
	"or":            TokenOr,
	"output":        TokenOutput,
	"paramarray":    TokenParamArray,
	"preserve":      TokenPreserve,
	"print":         TokenPrint,
	"private":       TokenPrivate,
	"property":      TokenProperty,
	"public":        TokenPublic,
	"put":           TokenPut,
	"raiseevent":    TokenRaiseEvent,
	"random":        TokenRandom,
	"randomize":     TokenRandomize,
	"read":          TokenRead,
	"redim":         TokenReDim,
	"reset":         TokenReset,
	"resume":        TokenResume,
	"return":        TokenReturn,
	"rmdir":         TokenRmDir,
	"rset":          TokenRSet,
	"savepicture":   TokenSavePicture,
	"savesetting":   TokenSaveSetting,
	"seek":          TokenSeek,
	"select":        TokenSelect,
	"sendkeys":      TokenSendKeys,
	"set":           TokenSet,
	"setattr":       TokenSetAttr,
	"single":        TokenSingle,
	"static":        TokenStatic,
	"step":          TokenStep,
	"stop":          TokenStop,
	"string":        TokenString,
	"sub":           TokenSub,
	"text":          TokenText,
	"then":          TokenThen,
	"time":          TokenTime,
	"to":            TokenTo,
	"true":          TokenTrue,
	"type":          TokenType,
	"unload":        TokenUnload,
	"unlock":        TokenUnlock,
	"until":         TokenUntil,
	"variant":       TokenVariant,
	"version":       TokenVersion,
	"wend":          TokenWend,
	"while":         TokenWhile,
	"width":         TokenWidth,
	"with":          TokenWith,
	"withevents":    TokenWithEvents,
	"write":         TokenWrite,
	"xor":           TokenXor,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[strings.ToLower(ident)]; ok {
		return kind
	}
	return TokenIdent
}

package token

import "strconv"

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid is an error token carrying the offending span.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident is a basic identifier.
	Ident
	// ExtendedIdent is a backslash-delimited identifier (\like this\), compared case-sensitively.
	ExtendedIdent

	// IntLit is a decimal integer literal, e.g. 42 or 1_000.
	IntLit
	// RealLit is a decimal real literal, e.g. 1.5E-3.
	RealLit
	// BasedLit is a based literal, e.g. 16#FF#.
	BasedLit
	// CharLit is a character literal, e.g. '0'.
	CharLit
	// StringLit is a string literal with doubled-quote escapes.
	StringLit
	// BitStringLit is a bit string literal, e.g. 8X"FF".
	BitStringLit

	punctBegin
	Amp        // &
	Tick       // '
	LParen     // (
	RParen     // )
	Star       // *
	Plus       // +
	Comma      // ,
	Minus      // -
	Dot        // .
	Slash      // /
	Colon      // :
	Semicolon  // ;
	Lt         // <
	Eq         // =
	Gt         // >
	Bar        // |
	LBracket   // [
	RBracket   // ]
	Question   // ?
	At         // @
	Caret      // ^
	Arrow      // =>
	StarStar   // **
	VarAssign  // :=
	NotEq      // /=
	GtEq       // >=
	LtEq       // <=
	Box        // <>
	Condition  // ??
	MatchEq    // ?=
	MatchNotEq // ?/=
	MatchLt    // ?<
	MatchLtEq  // ?<=
	MatchGt    // ?>
	MatchGtEq  // ?>=
	DoubleLt   // <<
	DoubleGt   // >>
	punctEnd

	keywordBegin
	KwAbs
	KwAccess
	KwAfter
	KwAlias
	KwAll
	KwAnd
	KwArchitecture
	KwArray
	KwAssert
	KwAssume
	KwAssumeGuarantee
	KwAttribute
	KwBegin
	KwBlock
	KwBody
	KwBuffer
	KwBus
	KwCase
	KwComponent
	KwConfiguration
	KwConstant
	KwContext
	KwCover
	KwDefault
	KwDisconnect
	KwDownto
	KwElse
	KwElsif
	KwEnd
	KwEntity
	KwExit
	KwFairness
	KwFile
	KwFor
	KwForce
	KwFunction
	KwGenerate
	KwGeneric
	KwGroup
	KwGuarded
	KwIf
	KwImpure
	KwIn
	KwInertial
	KwInout
	KwIs
	KwLabel
	KwLibrary
	KwLinkage
	KwLiteral
	KwLoop
	KwMap
	KwMod
	KwNand
	KwNew
	KwNext
	KwNor
	KwNot
	KwNull
	KwOf
	KwOn
	KwOpen
	KwOr
	KwOthers
	KwOut
	KwPackage
	KwParameter
	KwPort
	KwPostponed
	KwPrivate
	KwProcedure
	KwProcess
	KwProperty
	KwProtected
	KwPure
	KwRange
	KwRecord
	KwRegister
	KwReject
	KwRelease
	KwRem
	KwReport
	KwRestrict
	KwRestrictGuarantee
	KwReturn
	KwRol
	KwRor
	KwSelect
	KwSequence
	KwSeverity
	KwShared
	KwSignal
	KwSla
	KwSll
	KwSra
	KwSrl
	KwStrong
	KwSubtype
	KwThen
	KwTo
	KwTransport
	KwType
	KwUnaffected
	KwUnits
	KwUntil
	KwUse
	KwVariable
	KwView
	KwVmode
	KwVprop
	KwVunit
	KwWait
	KwWhen
	KwWhile
	KwWith
	KwXnor
	KwXor
	keywordEnd
)

var kindText = [...]string{
	Invalid:             "invalid token",
	EOF:                 "end of input",
	Ident:               "identifier",
	ExtendedIdent:       "extended identifier",
	IntLit:              "integer literal",
	RealLit:             "real literal",
	BasedLit:            "based literal",
	CharLit:             "character literal",
	StringLit:           "string literal",
	BitStringLit:        "bit string literal",
	Amp:                 "&",
	Tick:                "'",
	LParen:              "(",
	RParen:              ")",
	Star:                "*",
	Plus:                "+",
	Comma:               ",",
	Minus:               "-",
	Dot:                 ".",
	Slash:               "/",
	Colon:               ":",
	Semicolon:           ";",
	Lt:                  "<",
	Eq:                  "=",
	Gt:                  ">",
	Bar:                 "|",
	LBracket:            "[",
	RBracket:            "]",
	Question:            "?",
	At:                  "@",
	Caret:               "^",
	Arrow:               "=>",
	StarStar:            "**",
	VarAssign:           ":=",
	NotEq:               "/=",
	GtEq:                ">=",
	LtEq:                "<=",
	Box:                 "<>",
	Condition:           "??",
	MatchEq:             "?=",
	MatchNotEq:          "?/=",
	MatchLt:             "?<",
	MatchLtEq:           "?<=",
	MatchGt:             "?>",
	MatchGtEq:           "?>=",
	DoubleLt:            "<<",
	DoubleGt:            ">>",
	KwAbs:               "abs",
	KwAccess:            "access",
	KwAfter:             "after",
	KwAlias:             "alias",
	KwAll:               "all",
	KwAnd:               "and",
	KwArchitecture:      "architecture",
	KwArray:             "array",
	KwAssert:            "assert",
	KwAssume:            "assume",
	KwAssumeGuarantee:   "assume_guarantee",
	KwAttribute:         "attribute",
	KwBegin:             "begin",
	KwBlock:             "block",
	KwBody:              "body",
	KwBuffer:            "buffer",
	KwBus:               "bus",
	KwCase:              "case",
	KwComponent:         "component",
	KwConfiguration:     "configuration",
	KwConstant:          "constant",
	KwContext:           "context",
	KwCover:             "cover",
	KwDefault:           "default",
	KwDisconnect:        "disconnect",
	KwDownto:            "downto",
	KwElse:              "else",
	KwElsif:             "elsif",
	KwEnd:               "end",
	KwEntity:            "entity",
	KwExit:              "exit",
	KwFairness:          "fairness",
	KwFile:              "file",
	KwFor:               "for",
	KwForce:             "force",
	KwFunction:          "function",
	KwGenerate:          "generate",
	KwGeneric:           "generic",
	KwGroup:             "group",
	KwGuarded:           "guarded",
	KwIf:                "if",
	KwImpure:            "impure",
	KwIn:                "in",
	KwInertial:          "inertial",
	KwInout:             "inout",
	KwIs:                "is",
	KwLabel:             "label",
	KwLibrary:           "library",
	KwLinkage:           "linkage",
	KwLiteral:           "literal",
	KwLoop:              "loop",
	KwMap:               "map",
	KwMod:               "mod",
	KwNand:              "nand",
	KwNew:               "new",
	KwNext:              "next",
	KwNor:               "nor",
	KwNot:               "not",
	KwNull:              "null",
	KwOf:                "of",
	KwOn:                "on",
	KwOpen:              "open",
	KwOr:                "or",
	KwOthers:            "others",
	KwOut:               "out",
	KwPackage:           "package",
	KwParameter:         "parameter",
	KwPort:              "port",
	KwPostponed:         "postponed",
	KwPrivate:           "private",
	KwProcedure:         "procedure",
	KwProcess:           "process",
	KwProperty:          "property",
	KwProtected:         "protected",
	KwPure:              "pure",
	KwRange:             "range",
	KwRecord:            "record",
	KwRegister:          "register",
	KwReject:            "reject",
	KwRelease:           "release",
	KwRem:               "rem",
	KwReport:            "report",
	KwRestrict:          "restrict",
	KwRestrictGuarantee: "restrict_guarantee",
	KwReturn:            "return",
	KwRol:               "rol",
	KwRor:               "ror",
	KwSelect:            "select",
	KwSequence:          "sequence",
	KwSeverity:          "severity",
	KwShared:            "shared",
	KwSignal:            "signal",
	KwSla:               "sla",
	KwSll:               "sll",
	KwSra:               "sra",
	KwSrl:               "srl",
	KwStrong:            "strong",
	KwSubtype:           "subtype",
	KwThen:              "then",
	KwTo:                "to",
	KwTransport:         "transport",
	KwType:              "type",
	KwUnaffected:        "unaffected",
	KwUnits:             "units",
	KwUntil:             "until",
	KwUse:               "use",
	KwVariable:          "variable",
	KwView:              "view",
	KwVmode:             "vmode",
	KwVprop:             "vprop",
	KwVunit:             "vunit",
	KwWait:              "wait",
	KwWhen:              "when",
	KwWhile:             "while",
	KwWith:              "with",
	KwXnor:              "xnor",
	KwXor:               "xor",
}

// String returns the reserved word or symbol for keywords and delimiters and a
// description for the other kinds.
func (k Kind) String() string {
	if int(k) < len(kindText) && kindText[k] != "" {
		return kindText[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Quoted is String wrapped in quotes for keywords and delimiters, for use in diagnostics.
func (k Kind) Quoted() string {
	if k.IsKeyword() || k.IsPunctOrOp() {
		return "'" + k.String() + "'"
	}
	return k.String()
}

func (k Kind) IsKeyword() bool { return k > keywordBegin && k < keywordEnd }

func (k Kind) IsPunctOrOp() bool { return k > punctBegin && k < punctEnd }

func (k Kind) IsLiteral() bool { return k >= IntLit && k <= BitStringLit }

// IsOperator reports whether k is a symbolic operator.
func (k Kind) IsOperator() bool {
	switch k {
	case Amp, Star, Plus, Minus, Slash, Lt, Eq, Gt, StarStar, NotEq, GtEq, LtEq, Condition,
		MatchEq, MatchNotEq, MatchLt, MatchLtEq, MatchGt, MatchGtEq:
		return true
	default:
		return false
	}
}

// IsWordOperator reports whether k is a reserved word that acts as an operator.
func (k Kind) IsWordOperator() bool {
	switch k {
	case KwAbs, KwAnd, KwMod, KwNand, KwNor, KwNot, KwOr, KwRem, KwRol, KwRor,
		KwSla, KwSll, KwSra, KwSrl, KwXnor, KwXor:
		return true
	default:
		return false
	}
}

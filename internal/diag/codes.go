package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Lexical
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005
	LexUnterminatedExtIdent     Code = 1006
	LexBadBitString             Code = 1007
	LexInvalidUTF8              Code = 1008
	LexBadIdentifier            Code = 1009
	LexUnterminatedChar         Code = 1010

	// Syntax
	SynInfo              Code = 2000
	SynUnexpectedToken   Code = 2001
	SynExpectSemicolon   Code = 2002
	SynExpectIdentifier  Code = 2003
	SynUnclosedParen     Code = 2004
	SynEndLabelMismatch  Code = 2005
	SynExpectDesignUnit  Code = 2006
	SynExpectExpression  Code = 2007
	SynExpectStatement   Code = 2008
	SynExpectDeclaration Code = 2009
	SynExpectType        Code = 2010
	SynMixedLogicalOps   Code = 2011
	SynExpectKeyword     Code = 2012
	SynNewerStandard     Code = 2013
	SynBadInterfaceMode  Code = 2014
	SynExpectChoice      Code = 2015

	// Fatal
	FatInfo          Code = 9000
	FatNoDesignUnit  Code = 9001
	FatDepthExceeded Code = 9002
	FatLexCorruption Code = 9003
	FatInternal      Code = 9004
)

var (
	codeDescription = map[Code]string{
		UnknownCode: "Unknown error",

		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Malformed numeric literal",
		LexTokenTooLong:             "Token too long",
		LexUnterminatedExtIdent:     "Unterminated extended identifier",
		LexBadBitString:             "Malformed bit string literal",
		LexInvalidUTF8:              "Invalid UTF-8 sequence",
		LexBadIdentifier:            "Malformed identifier",
		LexUnterminatedChar:         "Unterminated character literal",

		SynInfo:              "Syntax information",
		SynUnexpectedToken:   "Unexpected token",
		SynExpectSemicolon:   "Missing semicolon",
		SynExpectIdentifier:  "Expected identifier",
		SynUnclosedParen:     "Unclosed parenthesis",
		SynEndLabelMismatch:  "End label does not match",
		SynExpectDesignUnit:  "Expected design unit",
		SynExpectExpression:  "Expected expression",
		SynExpectStatement:   "Expected statement",
		SynExpectDeclaration: "Expected declaration",
		SynExpectType:        "Expected type definition",
		SynMixedLogicalOps:   "Logical operators mixed without parentheses",
		SynExpectKeyword:     "Expected keyword",
		SynNewerStandard:     "Construct requires a newer standard",
		SynBadInterfaceMode:  "Invalid interface mode",
		SynExpectChoice:      "Expected choice",

		FatInfo:          "Fatal",
		FatNoDesignUnit:  "No design unit",
		FatDepthExceeded: "Nesting depth limit exceeded",
		FatLexCorruption: "Irrecoverable lexical corruption",
		FatInternal:      "Internal error",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 9000 && ic < 10000:
		return fmt.Sprintf("FAT%04d", ic)
	}
	return "E0000"
}

// ParseCode is the inverse of ID.
func ParseCode(id string) (Code, error) {
	var prefix string
	var n int
	if len(id) != 7 {
		return UnknownCode, fmt.Errorf("malformed diagnostic code %q", id)
	}
	prefix = id[:3]
	if _, err := fmt.Sscanf(id[3:], "%04d", &n); err != nil {
		return UnknownCode, fmt.Errorf("malformed diagnostic code %q: %w", id, err)
	}
	c := Code(n) // #nosec G115 -- four digits always fit
	if c.ID() != prefix+id[3:] {
		return UnknownCode, fmt.Errorf("diagnostic code %q has the wrong prefix", id)
	}
	return c, nil
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

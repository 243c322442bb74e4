package parser

import (
	"vhdlparser/internal/ast"
	"vhdlparser/internal/diag"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

// parseName parses a name with any suffixes: selection, indexing or call,
// slice, attribute and qualification.
func (p *Parser) parseName() ast.Expr {
	start := p.tok.Span
	var n ast.Expr
	switch p.tok.Kind {
	case token.Ident, token.ExtendedIdent:
		tok := p.advance()
		n = &ast.SimpleName{Sp: tok.Span, Name: tok.Text}
	case token.StringLit:
		tok := p.advance()
		n = &ast.Literal{Sp: tok.Span, LitKind: ast.LitString, Text: tok.Text}
	case token.DoubleLt:
		n = p.parseExternalName()
	default:
		p.unexpected(diag.SynExpectIdentifier, "name")
		return nil
	}
	return p.nameSuffixes(start, n)
}

func (p *Parser) nameSuffixes(start source.Span, n ast.Expr) ast.Expr {
	for {
		switch p.tok.Kind {
		case token.Dot:
			p.advance()
			n = &ast.SelectedName{Prefix: n, Suffix: p.suffix(), Sp: p.spanFrom(start)}
		case token.LParen:
			n = p.finishCall(start, n)
		case token.Tick:
			n = p.finishTick(start, n, nil)
		case token.LBracket:
			if !p.signatureThenTick() {
				return n
			}
			sig := p.parseSignature()
			if !p.at(token.Tick) {
				return n
			}
			n = p.finishTick(start, n, sig)
		default:
			return n
		}
	}
}

// suffix parses the part after '.' in a selected name.
func (p *Parser) suffix() string {
	switch p.tok.Kind {
	case token.Ident, token.ExtendedIdent, token.CharLit, token.StringLit:
		return p.advance().Text
	case token.KwAll:
		p.advance()
		return "all"
	}
	p.unexpected(diag.SynExpectIdentifier, "suffix")
	return ""
}

// signatureThenTick looks past a '[...]' for a tick, which makes the
// bracket the signature of an attribute name rather than of an alias.
func (p *Parser) signatureThenTick() bool {
	for i := 1; ; i++ {
		switch p.peek(i).Kind {
		case token.RBracket:
			return p.peek(i+1).Kind == token.Tick
		case token.EOF, token.Semicolon:
			return false
		}
	}
}

// finishTick parses what follows a tick: a qualified expression for '(',
// an attribute designator otherwise.
func (p *Parser) finishTick(start source.Span, prefix ast.Expr, sig *ast.Signature) ast.Expr {
	p.advance() // '
	if p.at(token.LParen) && sig == nil {
		operand := p.parseParenOrAggregate()
		return &ast.QualifiedExpr{Sp: p.spanFrom(start), TypeMark: prefix, Operand: operand}
	}
	n := &ast.AttributeName{Prefix: prefix, Signature: sig}
	if p.atIdent() || p.tok.IsKeyword() {
		n.Attribute = p.advance().Text
	} else {
		p.unexpected(diag.SynExpectIdentifier, "attribute name")
	}
	if p.at(token.LParen) {
		p.advance()
		n.Arg = p.parseExpr()
		p.expect(token.RParen, diag.SynUnclosedParen)
	}
	n.Sp = p.spanFrom(start)
	return n
}

// parseSelectedName parses 'id {. suffix}'.
func (p *Parser) parseSelectedName() ast.Expr {
	start := p.tok.Span
	if !p.atIdent() {
		p.unexpected(diag.SynExpectIdentifier, "name")
		return nil
	}
	tok := p.advance()
	var n ast.Expr = &ast.SimpleName{Sp: tok.Span, Name: tok.Text}
	for p.at(token.Dot) {
		p.advance()
		n = &ast.SelectedName{Prefix: n, Suffix: p.suffix(), Sp: p.spanFrom(start)}
	}
	return n
}

// parseTypeMark parses a selected name optionally followed by attributes
// such as 'subtype or 'base. Parentheses are left to the caller.
func (p *Parser) parseTypeMark() ast.Expr {
	start := p.tok.Span
	if !p.atIdent() {
		p.unexpected(diag.SynExpectType, "type mark")
		return nil
	}
	n := p.parseSelectedName()
	for p.at(token.Tick) && p.peek(1).Kind != token.LParen {
		p.advance()
		a := &ast.AttributeName{Prefix: n}
		if p.atIdent() || p.tok.IsKeyword() {
			a.Attribute = p.advance().Text
		} else {
			p.unexpected(diag.SynExpectIdentifier, "attribute name")
		}
		a.Sp = p.spanFrom(start)
		n = a
	}
	return n
}

// parseExternalName parses '<< class path : subtype_indication >>'.
func (p *Parser) parseExternalName() ast.Expr {
	start := p.advance().Span // <<
	n := &ast.ExternalName{}
	switch p.tok.Kind {
	case token.KwSignal, token.KwConstant, token.KwVariable:
		n.Class = p.fold.Fold(p.advance().Text)
	default:
		p.unexpected(diag.SynExpectKeyword, "'signal', 'constant' or 'variable'")
	}
	pathStart := p.tok.Span
	for !p.atOr(token.Colon, token.DoubleGt, token.Semicolon, token.EOF) {
		p.advance()
	}
	if p.lastSpan.End > pathStart.Start {
		n.Path = p.file.Text(p.spanFrom(pathStart))
	} else {
		p.errorf(diag.SynExpectIdentifier, p.diagSpan(), "external name has no path")
	}
	p.expect(token.Colon, diag.SynUnexpectedToken)
	n.Subtype = p.parseSubtypeIndication()
	p.expect(token.DoubleGt, diag.SynUnclosedParen)
	n.Sp = p.spanFrom(start)
	return n
}

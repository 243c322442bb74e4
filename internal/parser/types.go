package parser

import (
	"vhdlparser/internal/ast"
	"vhdlparser/internal/diag"
	"vhdlparser/internal/token"
)

// parseTypeDecl parses 'type id [is type_definition];'. Without 'is' the
// declaration is incomplete and Def stays nil.
func (p *Parser) parseTypeDecl() *ast.TypeDecl {
	start := p.advance().Span
	n := &ast.TypeDecl{Name: p.ident()}
	if p.accept(token.KwIs) {
		n.Def = p.parseTypeDef(n.Name)
	}
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

// parseTypeDef returns nil rather than a typed nil when nothing was recognised.
func (p *Parser) parseTypeDef(name string) ast.TypeDef {
	switch p.tok.Kind {
	case token.LParen:
		return p.parseEnumeration()
	case token.KwRange:
		return p.parseRangeOrPhysical(name)
	case token.KwArray:
		return p.parseArrayType()
	case token.KwRecord:
		return p.parseRecordType(name)
	case token.KwAccess:
		start := p.advance().Span
		n := &ast.AccessType{Subtype: p.parseSubtypeIndication()}
		n.Sp = p.spanFrom(start)
		return n
	case token.KwFile:
		start := p.advance().Span
		p.expectKw(token.KwOf)
		n := &ast.FileType{TypeMark: p.parseTypeMark()}
		n.Sp = p.spanFrom(start)
		return n
	case token.KwProtected:
		return p.parseProtected(name)
	}
	p.unexpected(diag.SynExpectType, "type definition")
	return nil
}

func (p *Parser) parseEnumeration() *ast.EnumerationType {
	start := p.advance().Span
	n := &ast.EnumerationType{}
	for {
		if p.at(token.CharLit) {
			n.Literals = append(n.Literals, p.advance().Text)
		} else {
			n.Literals = append(n.Literals, p.ident())
		}
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen)
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseRangeOrPhysical(name string) ast.TypeDef {
	start := p.advance().Span
	r := p.parseRange()
	if !p.at(token.KwUnits) {
		return &ast.RangeType{Sp: p.spanFrom(start), Range: r}
	}
	p.advance()
	n := &ast.PhysicalType{Range: r, Primary: p.ident()}
	p.semi()
	for p.atIdent() {
		n.Units = append(n.Units, p.parseUnitDecl())
	}
	p.expectKw(token.KwEnd)
	p.expectKw(token.KwUnits)
	n.EndName = p.endLabel(name)
	n.Sp = p.spanFrom(start)
	return n
}

// parseUnitDecl parses 'id = physical_literal;'.
func (p *Parser) parseUnitDecl() *ast.UnitDecl {
	start := p.tok.Span
	n := &ast.UnitDecl{Name: p.advance().Text}
	p.expect(token.Eq, diag.SynUnexpectedToken)
	n.Value = p.parsePhysicalValue()
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

// parsePhysicalValue parses 'abstract_literal unit' or a bare unit name.
func (p *Parser) parsePhysicalValue() *ast.PhysicalLiteral {
	start := p.tok.Span
	n := &ast.PhysicalLiteral{}
	if p.atOr(token.IntLit, token.RealLit, token.BasedLit) {
		n.Value = p.numberLiteral()
	}
	n.Unit = p.ident()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseArrayType() *ast.ArrayType {
	start := p.advance().Span
	n := &ast.ArrayType{}
	p.expect(token.LParen, diag.SynUnexpectedToken)
	for {
		n.Indexes = push(n.Indexes, p.parseArrayIndex(n))
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen)
	p.expectKw(token.KwOf)
	n.Element = p.parseSubtypeIndication()
	n.Sp = p.spanFrom(start)
	return n
}

// parseArrayIndex parses 'type_mark range <>' or a discrete range. Mixing the
// two forms in one array definition is an error.
func (p *Parser) parseArrayIndex(arr *ast.ArrayType) ast.Node {
	start := p.tok.Span
	if p.atIdent() && p.isUnboundedIndex() {
		mark := p.parseTypeMark()
		p.advance() // range
		p.advance() // <>
		if len(arr.Indexes) > 0 && !arr.Unbounded {
			p.errorf(diag.SynUnexpectedToken, p.spanFrom(start), "unbounded index in a constrained array definition")
		}
		arr.Unbounded = true
		return &ast.IndexSubtype{Sp: p.spanFrom(start), TypeMark: mark}
	}
	if arr.Unbounded {
		p.errorf(diag.SynUnexpectedToken, p.diagSpan(), "constrained index in an unbounded array definition")
	}
	return p.parseDiscreteRange()
}

// isUnboundedIndex scans a selected name for a following 'range <>'.
func (p *Parser) isUnboundedIndex() bool {
	i := 0
	for {
		if !p.peek(i).IsIdent() {
			return false
		}
		if p.peek(i+1).Kind != token.Dot {
			break
		}
		i += 2
	}
	return p.peek(i+1).Kind == token.KwRange && p.peek(i+2).Kind == token.Box
}

func (p *Parser) parseRecordType(name string) *ast.RecordType {
	start := p.advance().Span
	n := &ast.RecordType{}
	for p.atIdent() {
		estart := p.tok.Span
		e := &ast.ElementDecl{}
		e.Names, e.Subtype = p.objectHead()
		p.semi()
		e.Sp = p.spanFrom(estart)
		n.Elements = append(n.Elements, e)
	}
	if len(n.Elements) == 0 {
		p.unexpected(diag.SynExpectDeclaration, "element declaration")
	}
	p.expectKw(token.KwEnd)
	p.expectKw(token.KwRecord)
	n.EndName = p.endLabel(name)
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseProtected(name string) ast.TypeDef {
	start := p.advance().Span
	if p.accept(token.KwBody) {
		n := &ast.ProtectedBody{Decls: p.parseDecls()}
		p.expectKw(token.KwEnd)
		p.expectKw(token.KwProtected)
		p.expectKw(token.KwBody)
		n.EndName = p.endLabel(name)
		n.Sp = p.spanFrom(start)
		return n
	}
	n := &ast.ProtectedType{Decls: p.parseDecls()}
	p.expectKw(token.KwEnd)
	p.expectKw(token.KwProtected)
	n.EndName = p.endLabel(name)
	n.Sp = p.spanFrom(start)
	return n
}

package parser

import (
	"vhdlparser/internal/ast"
	"vhdlparser/internal/diag"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

// parseDesignUnit parses a context clause followed by one library unit.
// It returns nil when no unit could be recognised; the tokens are then
// skipped up to the next unit.
func (p *Parser) parseDesignUnit() ast.DesignUnit {
	start := p.tok.Span
	ctx := p.parseContextClause()

	switch {
	case p.at(token.KwEntity):
		return p.parseEntity(start, ctx)
	case p.at(token.KwArchitecture):
		return p.parseArchitecture(start, ctx)
	case p.at(token.KwPackage):
		if p.peek(1).Kind == token.KwBody {
			return p.parsePackageBody(start, ctx)
		}
		return p.parsePackage(start, ctx)
	case p.at(token.KwConfiguration):
		return p.parseConfiguration(start, ctx)
	case p.at(token.KwContext):
		return p.parseContextDecl(start, ctx)
	}

	if p.at(token.EOF) && len(ctx) > 0 {
		p.errorf(diag.SynExpectDesignUnit, p.diagSpan(), "context clause is not followed by a design unit")
		return nil
	}
	if !p.at(token.EOF) {
		p.unexpected(diag.SynExpectDesignUnit, "design unit")
		p.skipToUnit()
	}
	return nil
}

// skipToUnit drops tokens until something that can begin a design unit.
func (p *Parser) skipToUnit() {
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.KwLibrary, token.KwUse, token.KwEntity, token.KwArchitecture,
			token.KwPackage, token.KwConfiguration, token.KwContext:
			if p.lastKind == token.Invalid || p.lastKind == token.Semicolon {
				return
			}
		}
		p.advance()
	}
}

// isContextDecl distinguishes 'context c is' from a context reference.
func (p *Parser) isContextDecl() bool {
	return p.at(token.KwContext) && p.peek(1).IsIdent() && p.peek(2).Kind == token.KwIs
}

func (p *Parser) parseContextClause() []ast.ContextItem {
	var items []ast.ContextItem
	for {
		switch {
		case p.at(token.KwLibrary):
			items = append(items, p.parseLibraryClause())
		case p.at(token.KwUse):
			items = append(items, p.parseUseClause())
		case p.at(token.KwContext) && !p.isContextDecl():
			items = append(items, p.parseContextReference())
		default:
			return items
		}
	}
}

func (p *Parser) parseLibraryClause() *ast.LibraryClause {
	start := p.advance().Span
	n := &ast.LibraryClause{Names: p.identList()}
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseUseClause() *ast.UseClause {
	start := p.advance().Span
	n := &ast.UseClause{}
	for {
		n.Names = push(n.Names, p.parseSelectedName())
		if !p.accept(token.Comma) {
			break
		}
	}
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseContextReference() *ast.ContextReference {
	start := p.advance().Span
	n := &ast.ContextReference{}
	for {
		n.Names = push(n.Names, p.parseSelectedName())
		if !p.accept(token.Comma) {
			break
		}
	}
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

// closeUnit parses 'end [kw...] [name] ;' where kw are the optional
// repeated reserved words (e.g. 'package body').
func (p *Parser) closeUnit(name string, kws ...token.Kind) string {
	p.expectKw(token.KwEnd)
	if len(kws) > 0 && p.at(kws[0]) {
		for _, k := range kws {
			p.expectKw(k)
		}
	}
	end := p.endLabel(name)
	p.semi()
	return end
}

func (p *Parser) parseEntity(start source.Span, ctx []ast.ContextItem) *ast.EntityDecl {
	p.advance()
	n := &ast.EntityDecl{Context: ctx, Name: p.ident()}
	p.expectKw(token.KwIs)
	n.Generics, n.Ports = p.parseHeader()
	n.Decls = p.parseDecls()
	if p.accept(token.KwBegin) {
		n.Stmts = p.parseConcStmts()
	}
	n.EndName = p.closeUnit(n.Name, token.KwEntity)
	n.Sp = p.spanFrom(start)
	return n
}

// parseHeader parses the optional generic and port clauses of an entity,
// component or block.
func (p *Parser) parseHeader() (generics, ports []ast.InterfaceItem) {
	if p.at(token.KwGeneric) && p.peek(1).Kind != token.KwMap {
		p.advance()
		generics = p.parseInterfaceList(ast.RoleGeneric)
		p.semi()
	}
	if p.at(token.KwPort) && p.peek(1).Kind != token.KwMap {
		p.advance()
		ports = p.parseInterfaceList(ast.RolePort)
		p.semi()
	}
	return generics, ports
}

func (p *Parser) parseArchitecture(start source.Span, ctx []ast.ContextItem) *ast.ArchitectureBody {
	p.advance()
	n := &ast.ArchitectureBody{Context: ctx, Name: p.ident()}
	p.expectKw(token.KwOf)
	n.Entity = p.ident()
	p.expectKw(token.KwIs)
	n.Decls = p.parseDecls()
	p.expectKw(token.KwBegin)
	n.Stmts = p.parseConcStmts()
	n.EndName = p.closeUnit(n.Name, token.KwArchitecture)
	n.Sp = p.spanFrom(start)
	return n
}

// parsePackage parses a package declaration or, for 'package p is new',
// a package instantiation.
func (p *Parser) parsePackage(start source.Span, ctx []ast.ContextItem) ast.DesignUnit {
	p.advance()
	name := p.ident()
	p.expectKw(token.KwIs)
	if p.at(token.KwNew) {
		return p.finishPackageInstantiation(start, ctx, name)
	}
	n := &ast.PackageDecl{Context: ctx, Name: name}
	if p.at(token.KwGeneric) && p.peek(1).Kind != token.KwMap {
		p.advance()
		n.Generics = p.parseInterfaceList(ast.RoleGeneric)
		p.semi()
		if p.at(token.KwGeneric) {
			p.advance()
			p.expectKw(token.KwMap)
			n.GenericMap = p.parseAssocList()
			p.semi()
		}
	}
	n.Decls = p.parseDecls()
	n.EndName = p.closeUnit(n.Name, token.KwPackage)
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) finishPackageInstantiation(start source.Span, ctx []ast.ContextItem, name string) *ast.PackageInstantiation {
	p.advance() // new
	n := &ast.PackageInstantiation{Context: ctx, Name: name, Package: p.parseSelectedName()}
	if p.at(token.KwGeneric) {
		p.advance()
		p.expectKw(token.KwMap)
		n.GenericMap = p.parseAssocList()
	}
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parsePackageBody(start source.Span, ctx []ast.ContextItem) *ast.PackageBody {
	p.advance()
	p.advance() // body
	n := &ast.PackageBody{Context: ctx, Name: p.ident()}
	p.expectKw(token.KwIs)
	n.Decls = p.parseDecls()
	n.EndName = p.closeUnit(n.Name, token.KwPackage, token.KwBody)
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseContextDecl(start source.Span, ctx []ast.ContextItem) *ast.ContextDecl {
	p.advance()
	n := &ast.ContextDecl{Context: ctx, Name: p.ident()}
	p.expectKw(token.KwIs)
	n.Items = p.parseContextClause()
	n.EndName = p.closeUnit(n.Name, token.KwContext)
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseConfiguration(start source.Span, ctx []ast.ContextItem) *ast.ConfigurationDecl {
	p.advance()
	n := &ast.ConfigurationDecl{Context: ctx, Name: p.ident()}
	p.expectKw(token.KwOf)
	n.Entity = p.parseSelectedName()
	p.expectKw(token.KwIs)
	for p.atOr(token.KwUse, token.KwAttribute) {
		if d := p.parseDecl(); d != nil {
			n.Decls = append(n.Decls, d)
		}
	}
	if p.at(token.KwFor) {
		n.Block = p.parseBlockConfig()
	} else {
		p.unexpected(diag.SynExpectKeyword, "block configuration 'for'")
	}
	n.EndName = p.closeUnit(n.Name, token.KwConfiguration)
	n.Sp = p.spanFrom(start)
	return n
}

// atComponentSpec reports whether the 'for' under the cursor starts a
// component configuration ('for u1, u2 : comp', 'for all : comp').
func (p *Parser) atComponentSpec() bool {
	next := p.peek(1)
	if next.Kind == token.KwAll || next.Kind == token.KwOthers {
		return true
	}
	if !next.IsIdent() {
		return false
	}
	k := p.peek(2).Kind
	return k == token.Colon || k == token.Comma
}

func (p *Parser) parseBlockConfig() *ast.BlockConfig {
	p.enter()
	defer p.leave()
	start := p.advance().Span // for
	n := &ast.BlockConfig{Spec: p.parseName()}
	for p.at(token.KwUse) {
		n.Uses = append(n.Uses, p.parseUseClause())
	}
	for p.at(token.KwFor) {
		if p.atComponentSpec() {
			n.Items = append(n.Items, p.parseComponentConfig())
		} else {
			n.Items = append(n.Items, p.parseBlockConfig())
		}
	}
	p.expectKw(token.KwEnd)
	p.expectKw(token.KwFor)
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseComponentConfig() *ast.ComponentConfig {
	start := p.advance().Span // for
	n := &ast.ComponentConfig{Spec: p.parseComponentSpec()}
	if p.at(token.KwUse) {
		n.Binding = p.parseBindingIndication()
		p.semi()
	}
	if p.at(token.KwFor) {
		n.Block = p.parseBlockConfig()
	}
	p.expectKw(token.KwEnd)
	p.expectKw(token.KwFor)
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

// parseComponentSpec parses 'labels : component_name' after 'for'.
func (p *Parser) parseComponentSpec() *ast.ComponentSpec {
	start := p.tok.Span
	n := &ast.ComponentSpec{}
	switch {
	case p.at(token.KwAll):
		p.advance()
		n.Labels = []string{"all"}
	case p.at(token.KwOthers):
		p.advance()
		n.Labels = []string{"others"}
	default:
		n.Labels = p.identList()
	}
	p.expect(token.Colon, diag.SynUnexpectedToken)
	n.Component = p.parseSelectedName()
	n.Sp = p.spanFrom(start)
	return n
}

// parseBindingIndication parses 'use entity|configuration|open ...' with its maps.
func (p *Parser) parseBindingIndication() *ast.BindingIndication {
	start := p.tok.Span
	n := &ast.BindingIndication{}
	if p.accept(token.KwUse) {
		n.Unit = p.parseEntityAspect()
	}
	if p.at(token.KwGeneric) && p.peek(1).Kind == token.KwMap {
		p.advance()
		p.advance()
		n.GenericMap = p.parseAssocList()
	}
	if p.at(token.KwPort) && p.peek(1).Kind == token.KwMap {
		p.advance()
		p.advance()
		n.PortMap = p.parseAssocList()
	}
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseEntityAspect() *ast.InstantiatedUnit {
	start := p.tok.Span
	n := &ast.InstantiatedUnit{}
	switch {
	case p.accept(token.KwEntity):
		n.UnitKind = "entity"
		n.Name = p.parseSelectedName()
		if p.accept(token.LParen) {
			n.Architecture = p.ident()
			p.expect(token.RParen, diag.SynUnclosedParen)
		}
	case p.accept(token.KwConfiguration):
		n.UnitKind = "configuration"
		n.Name = p.parseSelectedName()
	case p.accept(token.KwOpen):
		n.UnitKind = "open"
	default:
		p.unexpected(diag.SynExpectKeyword, "'entity', 'configuration' or 'open'")
	}
	n.Sp = p.spanFrom(start)
	return n
}

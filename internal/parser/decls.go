package parser

import (
	"vhdlparser/internal/ast"
	"vhdlparser/internal/diag"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

// isDeclStart reports whether the current token begins a declarative item.
func (p *Parser) isDeclStart() bool {
	switch p.tok.Kind {
	case token.KwSignal, token.KwConstant, token.KwVariable, token.KwShared, token.KwFile,
		token.KwType, token.KwSubtype, token.KwAlias, token.KwAttribute, token.KwComponent,
		token.KwFunction, token.KwProcedure, token.KwPure, token.KwImpure, token.KwUse,
		token.KwPackage, token.KwGroup, token.KwDisconnect:
		return true
	case token.KwFor:
		return p.atComponentSpec()
	}
	return false
}

// parseDecls parses declarative items up to 'begin', 'end' or end of input.
func (p *Parser) parseDecls() []ast.Decl {
	var out []ast.Decl
	for !p.atOr(token.KwBegin, token.KwEnd, token.EOF) {
		if p.lx.Fatal() {
			break
		}
		start, kind := p.tok.Span.Start, p.tok.Kind
		if d := p.parseDecl(); d != nil {
			out = append(out, d)
		}
		p.progressed(start, kind)
	}
	return out
}

func (p *Parser) parseDecl() ast.Decl {
	p.enter()
	defer p.leave()

	switch p.tok.Kind {
	case token.KwSignal:
		return p.parseSignalDecl()
	case token.KwConstant:
		return p.parseConstantDecl()
	case token.KwVariable, token.KwShared:
		return p.parseVariableDecl()
	case token.KwFile:
		return p.parseFileDecl()
	case token.KwType:
		return p.parseTypeDecl()
	case token.KwSubtype:
		return p.parseSubtypeDecl()
	case token.KwAlias:
		return p.parseAliasDecl()
	case token.KwAttribute:
		if p.peek(2).Kind == token.Colon {
			return p.parseAttributeDecl()
		}
		return p.parseAttributeSpec()
	case token.KwComponent:
		return p.parseComponentDecl()
	case token.KwFunction, token.KwProcedure, token.KwPure, token.KwImpure:
		return p.parseSubprogram()
	case token.KwUse:
		return p.parseUseClause()
	case token.KwPackage:
		return p.parseNestedPackage()
	case token.KwFor:
		if p.atComponentSpec() {
			return p.parseConfigurationSpec()
		}
	case token.KwGroup, token.KwDisconnect:
		p.errorf(diag.SynExpectDeclaration, p.tok.Span, "%s declarations are not supported", p.tok.Kind.Quoted())
		p.advance()
		p.sync()
		return nil
	}
	p.unexpected(diag.SynExpectDeclaration, "declaration")
	p.sync()
	return nil
}

func (p *Parser) parseNestedPackage() ast.Decl {
	start := p.tok.Span
	if p.peek(1).Kind == token.KwBody {
		return p.parsePackageBody(start, nil)
	}
	u := p.parsePackage(start, nil)
	switch d := u.(type) {
	case *ast.PackageDecl:
		return d
	case *ast.PackageInstantiation:
		return d
	}
	return nil
}

// objectHead parses 'ids : subtype_indication' shared by object declarations.
func (p *Parser) objectHead() ([]string, *ast.SubtypeIndication) {
	ids := p.identList()
	p.expect(token.Colon, diag.SynUnexpectedToken)
	return ids, p.parseSubtypeIndication()
}

// optDefault parses an optional ':= expression'.
func (p *Parser) optDefault() ast.Expr {
	if p.accept(token.VarAssign) {
		return p.parseExpr()
	}
	return nil
}

func (p *Parser) parseSignalDecl() *ast.SignalDecl {
	start := p.advance().Span
	n := &ast.SignalDecl{}
	n.Names, n.Subtype = p.objectHead()
	switch {
	case p.accept(token.KwRegister):
		n.SignalKind = "register"
	case p.accept(token.KwBus):
		n.SignalKind = "bus"
	}
	n.Default = p.optDefault()
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseConstantDecl() *ast.ConstantDecl {
	start := p.advance().Span
	n := &ast.ConstantDecl{}
	n.Names, n.Subtype = p.objectHead()
	n.Default = p.optDefault()
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseVariableDecl() *ast.VariableDecl {
	start := p.tok.Span
	n := &ast.VariableDecl{Shared: p.accept(token.KwShared)}
	p.expectKw(token.KwVariable)
	n.Names, n.Subtype = p.objectHead()
	n.Default = p.optDefault()
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseFileDecl() *ast.FileDecl {
	start := p.advance().Span
	n := &ast.FileDecl{}
	n.Names, n.Subtype = p.objectHead()
	if p.accept(token.KwOpen) {
		n.OpenKind = p.parseExpr()
	}
	if p.accept(token.KwIs) {
		n.LogicalName = p.parseExpr()
	}
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseSubtypeDecl() *ast.SubtypeDecl {
	start := p.advance().Span
	n := &ast.SubtypeDecl{Name: p.ident()}
	p.expectKw(token.KwIs)
	n.Subtype = p.parseSubtypeIndication()
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

// designator parses an identifier, operator symbol or character literal.
func (p *Parser) designator() string {
	if p.atOr(token.StringLit, token.CharLit) {
		return p.advance().Text
	}
	return p.ident()
}

func (p *Parser) parseAliasDecl() *ast.AliasDecl {
	start := p.advance().Span
	n := &ast.AliasDecl{Name: p.designator()}
	if p.accept(token.Colon) {
		n.Subtype = p.parseSubtypeIndication()
	}
	p.expectKw(token.KwIs)
	n.Target = p.parseName()
	if p.at(token.LBracket) {
		n.Signature = p.parseSignature()
	}
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

// parseSignature parses '[ type_mark {, type_mark} [return type_mark] ]'.
func (p *Parser) parseSignature() *ast.Signature {
	start := p.advance().Span // [
	n := &ast.Signature{}
	if !p.atOr(token.KwReturn, token.RBracket) {
		n.Params = push(n.Params, p.parseTypeMark())
		for p.accept(token.Comma) {
			n.Params = push(n.Params, p.parseTypeMark())
		}
	}
	if p.accept(token.KwReturn) {
		n.Return = p.parseTypeMark()
	}
	p.expect(token.RBracket, diag.SynUnclosedParen)
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseAttributeDecl() *ast.AttributeDecl {
	start := p.advance().Span
	n := &ast.AttributeDecl{Name: p.ident()}
	p.expect(token.Colon, diag.SynUnexpectedToken)
	n.TypeMark = p.parseTypeMark()
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

// entityClasses are the reserved words allowed after ':' in an attribute specification.
var entityClasses = map[token.Kind]bool{
	token.KwEntity: true, token.KwArchitecture: true, token.KwConfiguration: true,
	token.KwProcedure: true, token.KwFunction: true, token.KwPackage: true, token.KwType: true,
	token.KwSubtype: true, token.KwConstant: true, token.KwSignal: true, token.KwVariable: true,
	token.KwComponent: true, token.KwLabel: true, token.KwLiteral: true, token.KwUnits: true,
	token.KwGroup: true, token.KwFile: true, token.KwProperty: true, token.KwSequence: true,
	token.KwView: true, token.KwContext: true,
}

func (p *Parser) parseAttributeSpec() *ast.AttributeSpec {
	start := p.advance().Span
	n := &ast.AttributeSpec{Designator: p.ident()}
	p.expectKw(token.KwOf)
	switch {
	case p.accept(token.KwAll):
		n.Entities = []string{"all"}
	case p.accept(token.KwOthers):
		n.Entities = []string{"others"}
	default:
		n.Entities = []string{p.designator()}
		for p.accept(token.Comma) {
			n.Entities = append(n.Entities, p.designator())
		}
	}
	p.expect(token.Colon, diag.SynUnexpectedToken)
	if entityClasses[p.tok.Kind] {
		n.EntityClass = p.fold.Fold(p.advance().Text)
	} else {
		p.unexpected(diag.SynExpectKeyword, "entity class")
	}
	p.expectKw(token.KwIs)
	n.Value = p.parseExpr()
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseComponentDecl() *ast.ComponentDecl {
	start := p.advance().Span
	n := &ast.ComponentDecl{Name: p.ident()}
	p.accept(token.KwIs)
	n.Generics, n.Ports = p.parseHeader()
	n.EndName = p.closeUnit(n.Name, token.KwComponent)
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseConfigurationSpec() *ast.ConfigurationSpec {
	start := p.advance().Span // for
	n := &ast.ConfigurationSpec{Spec: p.parseComponentSpec()}
	n.Binding = p.parseBindingIndication()
	p.semi()
	if p.at(token.KwEnd) && p.peek(1).Kind == token.KwFor {
		p.advance()
		p.advance()
		p.semi()
	}
	n.Sp = p.spanFrom(start)
	return n
}

// parseSubprogram parses a subprogram declaration or body.
func (p *Parser) parseSubprogram() ast.Decl {
	start := p.tok.Span
	spec := p.parseSubprogramSpec()
	if !p.at(token.KwIs) {
		p.semi()
		return &ast.SubprogramDecl{Sp: p.spanFrom(start), Spec: spec}
	}
	p.advance()
	if p.at(token.KwNew) {
		p.errorf(diag.SynExpectDeclaration, p.tok.Span, "subprogram instantiation is not supported")
		p.sync()
		return nil
	}
	n := &ast.SubprogramBody{Spec: spec}
	n.Decls = p.parseDecls()
	p.expectKw(token.KwBegin)
	n.Stmts = p.parseSeqStmts()
	p.expectKw(token.KwEnd)
	if spec.Function {
		p.accept(token.KwFunction)
	} else {
		p.accept(token.KwProcedure)
	}
	n.EndName = p.endLabel(spec.Name)
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseSubprogramSpec() *ast.SubprogramSpec {
	start := p.tok.Span
	n := &ast.SubprogramSpec{}
	switch {
	case p.accept(token.KwPure):
		n.Purity = "pure"
	case p.accept(token.KwImpure):
		n.Purity = "impure"
	}
	switch {
	case p.accept(token.KwFunction):
		n.Function = true
	case p.accept(token.KwProcedure):
	default:
		p.unexpected(diag.SynExpectKeyword, "'function' or 'procedure'")
	}
	if p.at(token.StringLit) {
		n.Name = p.advance().Text
	} else {
		n.Name = p.ident()
	}
	p.accept(token.KwParameter)
	if p.at(token.LParen) {
		n.Params = p.parseInterfaceList(ast.RoleParameter)
	}
	if n.Function {
		if p.expectKw(token.KwReturn) {
			n.Return = p.parseTypeMark()
		}
	}
	n.Sp = p.spanFrom(start)
	return n
}

// parseInterfaceList parses '( element {; element} )'.
func (p *Parser) parseInterfaceList(role ast.InterfaceRole) []ast.InterfaceItem {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken); !ok {
		return nil
	}
	var out []ast.InterfaceItem
	for first := true; ; first = false {
		if p.at(token.RParen) {
			if first {
				p.errorf(diag.SynUnexpectedToken, p.tok.Span, "empty interface list")
			} else {
				p.errorf(diag.SynUnexpectedToken, p.lastSpan, "unexpected ';' before ')' in interface list")
			}
			break
		}
		start, kind := p.tok.Span.Start, p.tok.Kind
		if item := p.parseInterfaceItem(role); item != nil {
			out = append(out, item)
		}
		if p.accept(token.Semicolon) {
			continue
		}
		if p.at(token.RParen) || p.at(token.EOF) {
			break
		}
		p.unexpected(diag.SynUnexpectedToken, "';' or ')'")
		p.skipInList()
		p.progressed(start, kind)
		if !p.accept(token.Semicolon) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen)
	return out
}

// skipInList skips to the ';' or ')' that ends the current list element.
func (p *Parser) skipInList() {
	nest := 0
	for !p.at(token.EOF) {
		switch p.tok.Kind {
		case token.LParen:
			nest++
		case token.RParen:
			if nest == 0 {
				return
			}
			nest--
		case token.Semicolon:
			if nest == 0 {
				return
			}
		case token.KwEnd, token.KwBegin, token.KwIs:
			return
		}
		p.advance()
	}
}

var modes = map[token.Kind]string{
	token.KwIn:      "in",
	token.KwOut:     "out",
	token.KwInout:   "inout",
	token.KwBuffer:  "buffer",
	token.KwLinkage: "linkage",
}

func (p *Parser) parseInterfaceItem(role ast.InterfaceRole) ast.InterfaceItem {
	start := p.tok.Span
	switch p.tok.Kind {
	case token.KwType:
		p.need2008(p.advance().Span, "generic type")
		return &ast.InterfaceTypeDecl{Name: p.ident(), Sp: p.spanFrom(start)}
	case token.KwFunction, token.KwProcedure, token.KwPure, token.KwImpure:
		n := &ast.InterfaceSubprogramDecl{Spec: p.parseSubprogramSpec()}
		if p.accept(token.KwIs) {
			if p.at(token.Box) {
				n.Default = &ast.Box{Sp: p.advance().Span}
			} else {
				n.Default = p.parseName()
			}
		}
		n.Sp = p.spanFrom(start)
		return n
	case token.KwPackage:
		p.need2008(p.advance().Span, "generic package")
		n := &ast.InterfacePackageDecl{Name: p.ident()}
		p.expectKw(token.KwIs)
		p.expectKw(token.KwNew)
		n.Package = p.parseSelectedName()
		if p.expectKw(token.KwGeneric) {
			p.expectKw(token.KwMap)
			n.GenericMap = p.parseAssocList()
		}
		n.Sp = p.spanFrom(start)
		return n
	}

	n := &ast.InterfaceDecl{Role: role}
	switch p.tok.Kind {
	case token.KwSignal, token.KwConstant, token.KwVariable, token.KwFile:
		n.Class = p.fold.Fold(p.advance().Text)
	}
	n.Names = p.identList()
	p.expect(token.Colon, diag.SynUnexpectedToken)
	if m, ok := modes[p.tok.Kind]; ok {
		p.advance()
		n.Mode = m
		if role == ast.RoleGeneric && m != "in" {
			p.errorf(diag.SynBadInterfaceMode, p.lastSpan, "generic cannot have mode %q", m)
		}
	}
	n.Subtype = p.parseSubtypeIndication()
	n.Bus = p.accept(token.KwBus)
	n.Default = p.optDefault()
	n.Sp = p.spanFrom(start)
	return n
}

// parseSubtypeIndication parses '[resolution] type_mark [constraint]'.
func (p *Parser) parseSubtypeIndication() *ast.SubtypeIndication {
	start := p.tok.Span
	n := &ast.SubtypeIndication{}
	if p.at(token.LParen) {
		n.Resolution = p.parseParenOrAggregate()
	}
	mark := p.parseTypeMark()
	if n.Resolution == nil && p.atIdent() && !p.tok.OnNewLine() {
		n.Resolution = mark
		mark = p.parseTypeMark()
	}
	n.TypeMark = mark
	n.Constraint = p.parseOptConstraint()
	n.Sp = p.spanFrom(start)
	return n
}

// parseOptConstraint parses a range or index constraint if one follows.
// It returns nil, never a typed nil pointer.
func (p *Parser) parseOptConstraint() ast.Node {
	switch {
	case p.at(token.KwRange):
		start := p.advance().Span
		r := p.parseRange()
		return &ast.RangeConstraint{Sp: p.spanFrom(start), Range: r}
	case p.at(token.LParen):
		return p.parseIndexConstraint()
	}
	return nil
}

func (p *Parser) parseIndexConstraint() *ast.IndexConstraint {
	p.enter()
	defer p.leave()
	start := p.advance().Span // (
	n := &ast.IndexConstraint{}
	for {
		if p.at(token.KwOpen) {
			n.Ranges = append(n.Ranges, &ast.Open{Sp: p.advance().Span})
		} else {
			n.Ranges = push(n.Ranges, p.parseDiscreteRange())
		}
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen)
	if p.at(token.LParen) {
		n.Element = p.parseIndexConstraint()
	}
	n.Sp = p.spanFrom(start)
	return n
}

// parseRange parses 'left to|downto right' or a range attribute name.
func (p *Parser) parseRange() ast.Node {
	start := p.tok.Span
	left := p.parseExpr()
	return p.finishRange(start, left)
}

func (p *Parser) finishRange(start source.Span, left ast.Expr) ast.Node {
	if p.atOr(token.KwTo, token.KwDownto) {
		dir := p.advance().Text
		r := &ast.Range{Left: left, Direction: p.fold.Fold(dir), Right: p.parseExpr()}
		r.Sp = p.spanFrom(start)
		return r
	}
	if left == nil {
		return nil
	}
	return left
}

// parseDiscreteRange also accepts 'type_mark range r'.
func (p *Parser) parseDiscreteRange() ast.Node {
	start := p.tok.Span
	return p.finishDiscrete(start, p.parseExpr())
}

func (p *Parser) finishDiscrete(start source.Span, left ast.Expr) ast.Node {
	if p.at(token.KwRange) && left != nil {
		cstart := p.advance().Span
		r := p.parseRange()
		return &ast.SubtypeIndication{
			Sp:         p.spanFrom(start),
			TypeMark:   left,
			Constraint: &ast.RangeConstraint{Sp: p.spanFrom(cstart), Range: r},
		}
	}
	return p.finishRange(start, left)
}

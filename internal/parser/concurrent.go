package parser

import (
	"vhdlparser/internal/ast"
	"vhdlparser/internal/diag"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

// parseConcStmts parses concurrent statements up to 'end' or, inside a
// generate, up to the next alternative.
func (p *Parser) parseConcStmts() []ast.Stmt {
	var out []ast.Stmt
	for !p.atOr(token.KwEnd, token.KwElsif, token.KwElse, token.KwWhen, token.EOF) {
		if p.lx.Fatal() {
			break
		}
		start, kind := p.tok.Span.Start, p.tok.Kind
		if s := p.parseConcStmt(); s != nil {
			out = append(out, s)
		}
		p.progressed(start, kind)
	}
	return out
}

// optLabel consumes 'label :' if present.
func (p *Parser) optLabel() string {
	if p.atIdent() && p.peek(1).Kind == token.Colon {
		label := p.advance().Text
		p.advance()
		return label
	}
	return ""
}

// misplacedDecl reports a declaration found among statements and parses it
// so that recovery resumes after it.
func (p *Parser) misplacedDecl() {
	p.errorf(diag.SynExpectStatement, p.tok.Span, "declaration is not allowed after 'begin'")
	p.parseDecl()
}

func (p *Parser) parseConcStmt() ast.Stmt {
	p.enter()
	defer p.leave()

	start := p.tok.Span
	label := p.optLabel()
	postponed := p.accept(token.KwPostponed)

	switch p.tok.Kind {
	case token.KwProcess:
		return p.parseProcess(start, label, postponed)
	case token.KwBlock:
		return p.parseBlock(start, label)
	case token.KwFor:
		return p.parseForGenerate(start, label)
	case token.KwIf:
		return p.parseIfGenerate(start, label)
	case token.KwCase:
		return p.parseCaseGenerate(start, label)
	case token.KwAssert:
		return p.parseConcAssertion(start, label, postponed)
	case token.KwWith:
		return p.parseSelectedAssign(start, label, postponed)
	case token.KwComponent, token.KwEntity, token.KwConfiguration:
		return p.parseInstantiation(start, label)
	case token.Ident, token.ExtendedIdent, token.LParen, token.DoubleLt:
		return p.parseConcAssignOrCall(start, label, postponed)
	}
	if label == "" && p.isDeclStart() {
		p.misplacedDecl()
		return nil
	}
	p.unexpected(diag.SynExpectStatement, "concurrent statement")
	p.sync()
	return nil
}

func (p *Parser) requireLabel(label, what string, sp source.Span) {
	if label == "" {
		p.errorf(diag.SynExpectIdentifier, sp, "%s requires a label", what)
	}
}

func (p *Parser) parseProcess(start source.Span, label string, postponed bool) *ast.ProcessStmt {
	p.advance()
	n := &ast.ProcessStmt{Label: label, Postponed: postponed}
	if p.accept(token.LParen) {
		if p.at(token.KwAll) {
			p.need2008(p.advance().Span, "'process (all)'")
			n.SensitivityAll = true
		} else {
			n.Sensitivity = p.parseNameList()
		}
		p.expect(token.RParen, diag.SynUnclosedParen)
	}
	p.accept(token.KwIs)
	n.Decls = p.parseDecls()
	p.expectKw(token.KwBegin)
	n.Stmts = p.parseSeqStmts()
	p.expectKw(token.KwEnd)
	p.accept(token.KwPostponed)
	p.expectKw(token.KwProcess)
	n.EndLabel = p.endLabel(label)
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

// parseNameList parses 'name {, name}' of a sensitivity list.
func (p *Parser) parseNameList() []ast.Expr {
	var out []ast.Expr
	for {
		if n := p.parseName(); n != nil {
			out = append(out, n)
		}
		if !p.accept(token.Comma) {
			return out
		}
	}
}

func (p *Parser) parseBlock(start source.Span, label string) *ast.BlockStmt {
	p.requireLabel(label, "block statement", p.tok.Span)
	p.advance()
	n := &ast.BlockStmt{Label: label}
	if p.accept(token.LParen) {
		n.Guard = p.parseExpr()
		p.expect(token.RParen, diag.SynUnclosedParen)
	}
	p.accept(token.KwIs)
	if p.at(token.KwGeneric) && p.peek(1).Kind != token.KwMap {
		p.advance()
		n.Generics = p.parseInterfaceList(ast.RoleGeneric)
		p.semi()
		if p.at(token.KwGeneric) && p.peek(1).Kind == token.KwMap {
			p.advance()
			p.advance()
			n.GenericMap = p.parseAssocList()
			p.semi()
		}
	}
	if p.at(token.KwPort) && p.peek(1).Kind != token.KwMap {
		p.advance()
		n.Ports = p.parseInterfaceList(ast.RolePort)
		p.semi()
		if p.at(token.KwPort) && p.peek(1).Kind == token.KwMap {
			p.advance()
			p.advance()
			n.PortMap = p.parseAssocList()
			p.semi()
		}
	}
	n.Decls = p.parseDecls()
	p.expectKw(token.KwBegin)
	n.Stmts = p.parseConcStmts()
	p.expectKw(token.KwEnd)
	p.expectKw(token.KwBlock)
	n.EndLabel = p.endLabel(label)
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

// parseGenerateBody parses '[decls begin] stmts [end [alt_label];]'.
func (p *Parser) parseGenerateBody(altLabel string) ([]ast.Decl, []ast.Stmt) {
	var decls []ast.Decl
	if p.isDeclStart() || p.at(token.KwBegin) {
		decls = p.parseDecls()
		p.expectKw(token.KwBegin)
	}
	stmts := p.parseConcStmts()
	if p.at(token.KwEnd) && p.peek(1).Kind != token.KwGenerate {
		p.advance()
		p.endLabel(altLabel)
		p.semi()
	}
	return decls, stmts
}

func (p *Parser) closeGenerate(label string) string {
	p.expectKw(token.KwEnd)
	p.expectKw(token.KwGenerate)
	end := p.endLabel(label)
	p.semi()
	return end
}

func (p *Parser) parseForGenerate(start source.Span, label string) *ast.ForGenerate {
	p.requireLabel(label, "generate statement", p.tok.Span)
	p.advance()
	n := &ast.ForGenerate{Label: label, Param: p.ident()}
	p.expectKw(token.KwIn)
	n.Range = p.parseDiscreteRange()
	p.expectKw(token.KwGenerate)
	n.Decls, n.Stmts = p.parseGenerateBody("")
	n.EndLabel = p.closeGenerate(label)
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseIfGenerate(start source.Span, label string) *ast.IfGenerate {
	p.requireLabel(label, "generate statement", p.tok.Span)
	n := &ast.IfGenerate{Label: label}
	for first := true; first || p.at(token.KwElsif); first = false {
		bstart := p.advance().Span // if / elsif
		b := &ast.GenerateBranch{AltLabel: p.optLabel()}
		b.Condition = p.parseExpr()
		p.expectKw(token.KwGenerate)
		b.Decls, b.Stmts = p.parseGenerateBody(b.AltLabel)
		b.Sp = p.spanFrom(bstart)
		n.Branches = append(n.Branches, b)
	}
	if p.at(token.KwElse) {
		bstart := p.advance().Span
		b := &ast.GenerateBranch{AltLabel: p.optLabel()}
		p.expectKw(token.KwGenerate)
		b.Decls, b.Stmts = p.parseGenerateBody(b.AltLabel)
		b.Sp = p.spanFrom(bstart)
		n.Branches = append(n.Branches, b)
	}
	n.EndLabel = p.closeGenerate(label)
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseCaseGenerate(start source.Span, label string) *ast.CaseGenerate {
	p.requireLabel(label, "generate statement", p.tok.Span)
	p.advance()
	n := &ast.CaseGenerate{Label: label, Selector: p.parseExpr()}
	p.expectKw(token.KwGenerate)
	for p.at(token.KwWhen) {
		bstart := p.advance().Span
		b := &ast.GenerateBranch{AltLabel: p.optLabel()}
		b.Choices = p.parseChoices()
		p.expect(token.Arrow, diag.SynUnexpectedToken)
		b.Decls, b.Stmts = p.parseGenerateBody(b.AltLabel)
		b.Sp = p.spanFrom(bstart)
		n.Branches = append(n.Branches, b)
	}
	if len(n.Branches) == 0 {
		p.unexpected(diag.SynExpectChoice, "'when'")
	}
	n.EndLabel = p.closeGenerate(label)
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseInstantiation(start source.Span, label string) *ast.ComponentInstantiation {
	p.requireLabel(label, "instantiation", p.tok.Span)
	ustart := p.tok.Span
	u := &ast.InstantiatedUnit{UnitKind: p.fold.Fold(p.advance().Text)}
	u.Name = p.parseSelectedName()
	if u.UnitKind == "entity" && p.accept(token.LParen) {
		u.Architecture = p.ident()
		p.expect(token.RParen, diag.SynUnclosedParen)
	}
	u.Sp = p.spanFrom(ustart)
	return p.finishInstantiation(start, label, u)
}

func (p *Parser) finishInstantiation(start source.Span, label string, u *ast.InstantiatedUnit) *ast.ComponentInstantiation {
	n := &ast.ComponentInstantiation{Label: label, Unit: u}
	if p.at(token.KwGeneric) {
		p.advance()
		p.expectKw(token.KwMap)
		n.GenericMap = p.parseAssocList()
	}
	if p.at(token.KwPort) {
		p.advance()
		p.expectKw(token.KwMap)
		n.PortMap = p.parseAssocList()
	}
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

// parseTarget parses an assignment target: a name or an aggregate.
func (p *Parser) parseTarget() ast.Expr {
	if p.at(token.LParen) {
		return p.parseParenOrAggregate()
	}
	return p.parseName()
}

func isPlainName(e ast.Expr) bool {
	switch e.(type) {
	case *ast.SimpleName, *ast.SelectedName:
		return true
	}
	return false
}

func (p *Parser) parseConcAssignOrCall(start source.Span, label string, postponed bool) ast.Stmt {
	target := p.parseTarget()
	switch {
	case p.at(token.LtEq):
		return p.finishConcSignalAssign(start, label, postponed, target)
	case label != "" && isPlainName(target) && p.atOr(token.KwGeneric, token.KwPort):
		u := &ast.InstantiatedUnit{Sp: target.Span(), UnitKind: "component", Name: target}
		return p.finishInstantiation(start, label, u)
	}
	n := &ast.ConcProcedureCall{Label: label, Postponed: postponed, Call: target}
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) finishConcSignalAssign(start source.Span, label string, postponed bool, target ast.Expr) ast.Stmt {
	p.advance() // <=
	guarded := p.accept(token.KwGuarded)
	delay := p.parseOptDelay()
	wstart := p.tok.Span
	wave := p.parseWaveform()
	if p.at(token.KwWhen) {
		n := &ast.ConditionalAssign{
			Label: label, Postponed: postponed, Target: target, Guarded: guarded, Delay: delay,
			Alternatives: p.parseConditionalWaveforms(wstart, wave),
		}
		p.semi()
		n.Sp = p.spanFrom(start)
		return n
	}
	n := &ast.ConcSignalAssign{
		Label: label, Postponed: postponed, Target: target, Guarded: guarded, Delay: delay,
		Waveform: wave,
	}
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

// parseConditionalWaveforms parses 'waveform when cond else ... [else waveform]'
// given the first waveform.
func (p *Parser) parseConditionalWaveforms(wstart source.Span, wave []*ast.WaveformElement) []*ast.ConditionalWaveform {
	var out []*ast.ConditionalWaveform
	for {
		cw := &ast.ConditionalWaveform{Waveform: wave}
		if p.accept(token.KwWhen) {
			cw.Condition = p.parseExpr()
		}
		cw.Sp = p.spanFrom(wstart)
		out = append(out, cw)
		if cw.Condition == nil || !p.accept(token.KwElse) {
			return out
		}
		wstart = p.tok.Span
		wave = p.parseWaveform()
	}
}

// parseOptDelay parses 'transport' or '[reject time] inertial'.
func (p *Parser) parseOptDelay() *ast.DelayMechanism {
	start := p.tok.Span
	switch {
	case p.accept(token.KwTransport):
		return &ast.DelayMechanism{Sp: p.spanFrom(start), Mechanism: "transport"}
	case p.accept(token.KwReject):
		n := &ast.DelayMechanism{Mechanism: "inertial", Reject: p.parseExpr()}
		p.expectKw(token.KwInertial)
		n.Sp = p.spanFrom(start)
		return n
	case p.accept(token.KwInertial):
		return &ast.DelayMechanism{Sp: p.spanFrom(start), Mechanism: "inertial"}
	}
	return nil
}

// parseWaveform parses 'unaffected' or 'element {, element}'.
func (p *Parser) parseWaveform() []*ast.WaveformElement {
	if p.at(token.KwUnaffected) {
		sp := p.advance().Span
		return []*ast.WaveformElement{{Sp: sp, Value: &ast.Unaffected{Sp: sp}}}
	}
	var out []*ast.WaveformElement
	for {
		start := p.tok.Span
		el := &ast.WaveformElement{Value: p.parseExpr()}
		if p.accept(token.KwAfter) {
			el.After = p.parseExpr()
		}
		el.Sp = p.spanFrom(start)
		if el.Value != nil || el.After != nil {
			out = append(out, el)
		}
		if !p.accept(token.Comma) {
			return out
		}
	}
}

func (p *Parser) parseSelectedAssign(start source.Span, label string, postponed bool) *ast.SelectedAssign {
	p.advance() // with
	n := &ast.SelectedAssign{Label: label, Postponed: postponed, Selector: p.parseExpr()}
	p.expectKw(token.KwSelect)
	if p.at(token.Question) {
		p.need2008(p.advance().Span, "matching selected assignment")
		n.Matching = true
	}
	n.Target = p.parseTarget()
	p.expect(token.LtEq, diag.SynUnexpectedToken)
	n.Guarded = p.accept(token.KwGuarded)
	n.Delay = p.parseOptDelay()
	for {
		wstart := p.tok.Span
		sw := &ast.SelectedWaveform{Waveform: p.parseWaveform()}
		if p.expectKw(token.KwWhen) {
			sw.Choices = p.parseChoices()
		}
		sw.Sp = p.spanFrom(wstart)
		n.Alternatives = append(n.Alternatives, sw)
		if !p.accept(token.Comma) {
			break
		}
	}
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseConcAssertion(start source.Span, label string, postponed bool) *ast.ConcAssertion {
	p.advance()
	n := &ast.ConcAssertion{Label: label, Postponed: postponed, Condition: p.parseExpr()}
	n.Report, n.Severity = p.parseReportSeverity()
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

// parseReportSeverity parses the optional 'report expr' and 'severity expr' parts.
func (p *Parser) parseReportSeverity() (report, severity ast.Expr) {
	if p.accept(token.KwReport) {
		report = p.parseExpr()
	}
	if p.accept(token.KwSeverity) {
		severity = p.parseExpr()
	}
	return report, severity
}

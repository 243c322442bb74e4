package parser

import (
	"vhdlparser/internal/ast"
	"vhdlparser/internal/diag"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

// parseSeqStmts parses sequential statements up to 'end', 'elsif', 'else'
// or the 'when' of the next case alternative.
func (p *Parser) parseSeqStmts() []ast.Stmt {
	var out []ast.Stmt
	for !p.atOr(token.KwEnd, token.KwElsif, token.KwElse, token.KwWhen, token.EOF) {
		if p.lx.Fatal() {
			break
		}
		start, kind := p.tok.Span.Start, p.tok.Kind
		if s := p.parseSeqStmt(); s != nil {
			out = append(out, s)
		}
		p.progressed(start, kind)
	}
	return out
}

func (p *Parser) parseSeqStmt() ast.Stmt {
	p.enter()
	defer p.leave()

	start := p.tok.Span
	label := p.optLabel()

	switch p.tok.Kind {
	case token.KwIf:
		return p.parseIf(start, label)
	case token.KwCase:
		return p.parseCase(start, label)
	case token.KwLoop, token.KwWhile, token.KwFor:
		return p.parseLoop(start, label)
	case token.KwNext:
		p.advance()
		n := &ast.NextStmt{Label: label}
		n.LoopLabel, n.Condition = p.parseLoopControl()
		n.Sp = p.spanFrom(start)
		return n
	case token.KwExit:
		p.advance()
		n := &ast.ExitStmt{Label: label}
		n.LoopLabel, n.Condition = p.parseLoopControl()
		n.Sp = p.spanFrom(start)
		return n
	case token.KwReturn:
		p.advance()
		n := &ast.ReturnStmt{Label: label}
		if !p.at(token.Semicolon) {
			n.Value = p.parseExpr()
		}
		p.semi()
		n.Sp = p.spanFrom(start)
		return n
	case token.KwNull:
		p.advance()
		p.semi()
		return &ast.NullStmt{Sp: p.spanFrom(start), Label: label}
	case token.KwWait:
		return p.parseWait(start, label)
	case token.KwAssert:
		p.advance()
		n := &ast.AssertStmt{Label: label, Condition: p.parseExpr()}
		n.Report, n.Severity = p.parseReportSeverity()
		p.semi()
		n.Sp = p.spanFrom(start)
		return n
	case token.KwReport:
		p.advance()
		n := &ast.ReportStmt{Label: label, Message: p.parseExpr()}
		if p.accept(token.KwSeverity) {
			n.Severity = p.parseExpr()
		}
		p.semi()
		n.Sp = p.spanFrom(start)
		return n
	case token.Ident, token.ExtendedIdent, token.LParen, token.DoubleLt:
		return p.parseSeqAssignOrCall(start, label)
	}
	if label == "" && p.isDeclStart() {
		p.misplacedDecl()
		return nil
	}
	p.unexpected(diag.SynExpectStatement, "sequential statement")
	p.sync()
	return nil
}

// parseLoopControl parses '[loop_label] [when condition] ;' of next and exit.
func (p *Parser) parseLoopControl() (string, ast.Expr) {
	label := p.optIdent()
	var cond ast.Expr
	if p.accept(token.KwWhen) {
		cond = p.parseExpr()
	}
	p.semi()
	return label, cond
}

func (p *Parser) parseIf(start source.Span, label string) *ast.IfStmt {
	n := &ast.IfStmt{Label: label}
	for first := true; first || p.at(token.KwElsif); first = false {
		bstart := p.advance().Span // if / elsif
		b := &ast.IfBranch{Condition: p.parseExpr()}
		p.expectKw(token.KwThen)
		b.Stmts = p.parseSeqStmts()
		b.Sp = p.spanFrom(bstart)
		n.Branches = append(n.Branches, b)
	}
	if p.at(token.KwElse) {
		bstart := p.advance().Span
		b := &ast.IfBranch{Stmts: p.parseSeqStmts()}
		b.Sp = p.spanFrom(bstart)
		n.Branches = append(n.Branches, b)
	}
	p.expectKw(token.KwEnd)
	p.expectKw(token.KwIf)
	n.EndLabel = p.endLabel(label)
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseCase(start source.Span, label string) *ast.CaseStmt {
	p.advance()
	n := &ast.CaseStmt{Label: label}
	if p.at(token.Question) {
		p.need2008(p.advance().Span, "matching case statement")
		n.Matching = true
	}
	n.Selector = p.parseExpr()
	p.expectKw(token.KwIs)
	for p.at(token.KwWhen) {
		astart := p.advance().Span
		alt := &ast.CaseAlternative{Choices: p.parseChoices()}
		p.expect(token.Arrow, diag.SynUnexpectedToken)
		alt.Stmts = p.parseSeqStmts()
		alt.Sp = p.spanFrom(astart)
		n.Alternatives = append(n.Alternatives, alt)
	}
	if len(n.Alternatives) == 0 {
		p.unexpected(diag.SynExpectChoice, "'when'")
	}
	p.expectKw(token.KwEnd)
	p.expectKw(token.KwCase)
	if p.accept(token.Question) && !n.Matching {
		p.errorf(diag.SynUnexpectedToken, p.lastSpan, "'?' after 'end case' of an ordinary case statement")
	}
	n.EndLabel = p.endLabel(label)
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseLoop(start source.Span, label string) *ast.LoopStmt {
	n := &ast.LoopStmt{Label: label}
	sstart := p.tok.Span
	switch {
	case p.accept(token.KwWhile):
		cond := p.parseExpr()
		n.Scheme = &ast.WhileScheme{Sp: p.spanFrom(sstart), Condition: cond}
	case p.accept(token.KwFor):
		s := &ast.ForScheme{Param: p.ident()}
		p.expectKw(token.KwIn)
		s.Range = p.parseDiscreteRange()
		s.Sp = p.spanFrom(sstart)
		n.Scheme = s
	}
	p.expectKw(token.KwLoop)
	n.Stmts = p.parseSeqStmts()
	p.expectKw(token.KwEnd)
	p.expectKw(token.KwLoop)
	n.EndLabel = p.endLabel(label)
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseWait(start source.Span, label string) *ast.WaitStmt {
	p.advance()
	n := &ast.WaitStmt{Label: label}
	if p.accept(token.KwOn) {
		n.On = p.parseNameList()
	}
	if p.accept(token.KwUntil) {
		n.Until = p.parseExpr()
	}
	if p.accept(token.KwFor) {
		n.For = p.parseExpr()
	}
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseSeqAssignOrCall(start source.Span, label string) ast.Stmt {
	target := p.parseTarget()
	switch {
	case p.at(token.LtEq):
		p.advance()
		delay := p.parseOptDelay()
		wstart := p.tok.Span
		wave := p.parseWaveform()
		if p.at(token.KwWhen) {
			p.need2008(p.tok.Span, "sequential conditional signal assignment")
			n := &ast.ConditionalAssign{
				Label: label, Target: target, Delay: delay,
				Alternatives: p.parseConditionalWaveforms(wstart, wave),
			}
			p.semi()
			n.Sp = p.spanFrom(start)
			return n
		}
		n := &ast.SignalAssign{Label: label, Target: target, Delay: delay, Waveform: wave}
		p.semi()
		n.Sp = p.spanFrom(start)
		return n

	case p.at(token.VarAssign):
		p.advance()
		vstart := p.tok.Span
		value := p.parseExpr()
		if p.at(token.KwWhen) {
			p.need2008(p.tok.Span, "conditional variable assignment")
			n := &ast.ConditionalVariableAssign{Label: label, Target: target}
			n.Alternatives = p.parseConditionalValues(vstart, value)
			p.semi()
			n.Sp = p.spanFrom(start)
			return n
		}
		n := &ast.VariableAssign{Label: label, Target: target, Value: value}
		p.semi()
		n.Sp = p.spanFrom(start)
		return n
	}
	n := &ast.ProcedureCall{Label: label, Call: target}
	p.semi()
	n.Sp = p.spanFrom(start)
	return n
}

func (p *Parser) parseConditionalValues(vstart source.Span, value ast.Expr) []*ast.ConditionalValue {
	var out []*ast.ConditionalValue
	for {
		cv := &ast.ConditionalValue{Value: value}
		if p.accept(token.KwWhen) {
			cv.Condition = p.parseExpr()
		}
		cv.Sp = p.spanFrom(vstart)
		out = append(out, cv)
		if cv.Condition == nil || !p.accept(token.KwElse) {
			return out
		}
		vstart = p.tok.Span
		value = p.parseExpr()
	}
}

package parser

import (
	"vhdlparser/internal/ast"
	"vhdlparser/internal/diag"
	"vhdlparser/internal/source"
	"vhdlparser/internal/token"
)

// Operator classes from loosest to tightest binding:
//
//	??                                   condition (unary)
//	and or nand nor xor xnor             logical
//	= /= < <= > >= ?= ?/= ?< ?<= ?> ?>=  relational
//	sll srl sla sra rol ror              shift
//	+ - &                                adding (and sign)
//	* / mod rem                          multiplying
//	** abs not, unary logical            miscellaneous

func isLogicalOp(k token.Kind) bool {
	switch k {
	case token.KwAnd, token.KwOr, token.KwNand, token.KwNor, token.KwXor, token.KwXnor:
		return true
	}
	return false
}

func isRelationalOp(k token.Kind) bool {
	switch k {
	case token.Eq, token.NotEq, token.Lt, token.LtEq, token.Gt, token.GtEq,
		token.MatchEq, token.MatchNotEq, token.MatchLt, token.MatchLtEq, token.MatchGt, token.MatchGtEq:
		return true
	}
	return false
}

func isShiftOp(k token.Kind) bool {
	switch k {
	case token.KwSll, token.KwSrl, token.KwSla, token.KwSra, token.KwRol, token.KwRor:
		return true
	}
	return false
}

func isAddingOp(k token.Kind) bool {
	return k == token.Plus || k == token.Minus || k == token.Amp
}

func isMultiplyingOp(k token.Kind) bool {
	return k == token.Star || k == token.Slash || k == token.KwMod || k == token.KwRem
}

// opText is the operator spelling stored in the tree: reserved words are
// folded to lower case, symbols are kept.
func (p *Parser) opText(tok token.Token) string {
	if tok.Kind.IsKeyword() {
		return p.fold.Fold(tok.Text)
	}
	return tok.Kind.String()
}

func (p *Parser) binary(left ast.Expr, op token.Token, right ast.Expr) ast.Expr {
	return &ast.BinaryExpr{
		Sp:    p.spanFrom(left.Span()),
		Op:    p.opText(op),
		Left:  left,
		Right: right,
	}
}

// parseExpr parses a full expression. It returns nil after reporting when no
// expression starts at the current token.
func (p *Parser) parseExpr() ast.Expr {
	p.enter()
	defer p.leave()
	if p.at(token.Condition) {
		op := p.advance()
		operand := p.parseLogical()
		return &ast.UnaryExpr{Sp: p.spanFrom(op.Span), Op: p.opText(op), Operand: operand}
	}
	return p.parseLogical()
}

// parseLogical enforces that a sequence of logical operators uses one
// associative operator; anything else must be parenthesized.
func (p *Parser) parseLogical() ast.Expr {
	left := p.parseRelation()
	if left == nil {
		return nil
	}
	var first token.Kind
	for isLogicalOp(p.tok.Kind) {
		op := p.advance()
		switch {
		case first == 0:
			first = op.Kind
		case op.Kind != first:
			p.errorf(diag.SynMixedLogicalOps, op.Span,
				"mixing %s and %s requires parentheses", first.Quoted(), op.Kind.Quoted())
		case op.Kind == token.KwNand || op.Kind == token.KwNor:
			p.errorf(diag.SynMixedLogicalOps, op.Span,
				"%s is not associative; use parentheses", op.Kind.Quoted())
		}
		left = p.binary(left, op, p.parseRelation())
	}
	return left
}

func (p *Parser) parseRelation() ast.Expr {
	left := p.parseShift()
	if left == nil || !isRelationalOp(p.tok.Kind) {
		return left
	}
	op := p.advance()
	left = p.binary(left, op, p.parseShift())
	if isRelationalOp(p.tok.Kind) {
		p.errorf(diag.SynUnexpectedToken, p.tok.Span, "relational operators do not chain; use parentheses")
	}
	return left
}

func (p *Parser) parseShift() ast.Expr {
	left := p.parseSimple()
	if left == nil || !isShiftOp(p.tok.Kind) {
		return left
	}
	op := p.advance()
	return p.binary(left, op, p.parseSimple())
}

// parseSimple parses '[sign] term {adding_operator term}'. The sign applies
// to the first term.
func (p *Parser) parseSimple() ast.Expr {
	var left ast.Expr
	if p.atOr(token.Plus, token.Minus) {
		op := p.advance()
		operand := p.parseTerm()
		left = &ast.UnaryExpr{Sp: p.spanFrom(op.Span), Op: p.opText(op), Operand: operand}
	} else {
		left = p.parseTerm()
	}
	if left == nil {
		return nil
	}
	for isAddingOp(p.tok.Kind) {
		op := p.advance()
		left = p.binary(left, op, p.parseTerm())
	}
	return left
}

func (p *Parser) parseTerm() ast.Expr {
	left := p.parseFactor()
	if left == nil {
		return nil
	}
	for isMultiplyingOp(p.tok.Kind) {
		op := p.advance()
		left = p.binary(left, op, p.parseFactor())
	}
	return left
}

func (p *Parser) parseFactor() ast.Expr {
	if p.atOr(token.KwAbs, token.KwNot) || isLogicalOp(p.tok.Kind) {
		op := p.advance()
		operand := p.parsePrimary()
		return &ast.UnaryExpr{Sp: p.spanFrom(op.Span), Op: p.opText(op), Operand: operand}
	}
	left := p.parsePrimary()
	if left == nil || !p.at(token.StarStar) {
		return left
	}
	op := p.advance()
	return p.binary(left, op, p.parsePrimary())
}

func (p *Parser) parsePrimary() ast.Expr {
	switch p.tok.Kind {
	case token.IntLit, token.RealLit, token.BasedLit:
		return p.parseNumber()
	case token.CharLit:
		tok := p.advance()
		return &ast.Literal{Sp: tok.Span, LitKind: ast.LitCharacter, Text: tok.Text}
	case token.StringLit:
		if p.peek(1).Kind == token.LParen {
			return p.parseName()
		}
		tok := p.advance()
		return &ast.Literal{Sp: tok.Span, LitKind: ast.LitString, Text: tok.Text}
	case token.BitStringLit:
		tok := p.advance()
		return &ast.Literal{Sp: tok.Span, LitKind: ast.LitBitString, Text: tok.Text}
	case token.KwNull:
		tok := p.advance()
		return &ast.Literal{Sp: tok.Span, LitKind: ast.LitNull, Text: tok.Text}
	case token.LParen:
		return p.parseParenOrAggregate()
	case token.KwNew:
		start := p.advance().Span
		n := &ast.Allocator{}
		if operand := p.parseName(); operand != nil {
			n.Operand = operand
		}
		n.Sp = p.spanFrom(start)
		return n
	case token.Ident, token.ExtendedIdent, token.DoubleLt:
		return p.parseName()
	}
	p.unexpected(diag.SynExpectExpression, "expression")
	return nil
}

func (p *Parser) numberLiteral() *ast.Literal {
	tok := p.advance()
	lit := &ast.Literal{Sp: tok.Span, Text: tok.Text}
	switch tok.Kind {
	case token.RealLit:
		lit.LitKind = ast.LitReal
	case token.BasedLit:
		lit.LitKind = ast.LitBased
	default:
		lit.LitKind = ast.LitInteger
	}
	return lit
}

// parseNumber parses an abstract literal, or a physical literal when a unit
// name follows on the same line.
func (p *Parser) parseNumber() ast.Expr {
	lit := p.numberLiteral()
	if !p.atIdent() || p.tok.OnNewLine() {
		return lit
	}
	unit := p.advance()
	return &ast.PhysicalLiteral{Sp: p.spanFrom(lit.Sp), Value: lit, Unit: unit.Text}
}

// parseParenOrAggregate parses '( ... )': a parenthesized expression when it
// holds exactly one positional element, an aggregate otherwise.
func (p *Parser) parseParenOrAggregate() ast.Expr {
	start := p.advance().Span // (
	if p.at(token.RParen) {
		p.errorf(diag.SynExpectExpression, p.tok.Span, "empty parentheses")
		p.advance()
		return &ast.Aggregate{Sp: p.spanFrom(start)}
	}
	var elems []*ast.ElementAssociation
	for {
		elems = append(elems, p.parseElementAssociation())
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen)
	if len(elems) == 1 && len(elems[0].Choices) == 0 {
		return &ast.ParenExpr{Sp: p.spanFrom(start), X: elems[0].Value}
	}
	return &ast.Aggregate{Sp: p.spanFrom(start), Elements: elems}
}

func (p *Parser) parseElementAssociation() *ast.ElementAssociation {
	start := p.tok.Span
	n := &ast.ElementAssociation{}
	first := p.parseChoice()
	if e, ok := first.(ast.Expr); ok && !p.atOr(token.Bar, token.Arrow) {
		n.Value = e
		n.Sp = p.spanFrom(start)
		return n
	}
	if first == nil && !p.atOr(token.Bar, token.Arrow) {
		n.Sp = p.spanFrom(start)
		return n
	}
	if first != nil {
		n.Choices = append(n.Choices, first)
	}
	for p.accept(token.Bar) {
		if c := p.parseChoice(); c != nil {
			n.Choices = append(n.Choices, c)
		}
	}
	p.expect(token.Arrow, diag.SynUnexpectedToken)
	n.Value = p.parseExpr()
	n.Sp = p.spanFrom(start)
	return n
}

// parseChoice parses 'others', a discrete range or an expression.
func (p *Parser) parseChoice() ast.Node {
	if p.at(token.KwOthers) {
		return &ast.OthersChoice{Sp: p.advance().Span}
	}
	return p.parseDiscreteRange()
}

// parseChoices parses 'choice {| choice}'.
func (p *Parser) parseChoices() []ast.Node {
	var out []ast.Node
	for {
		if c := p.parseChoice(); c != nil {
			out = append(out, c)
		}
		if !p.accept(token.Bar) {
			return out
		}
	}
}

// parseAssocList parses '( association {, association} )' of a map aspect.
func (p *Parser) parseAssocList() []*ast.Association {
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken); !ok {
		return nil
	}
	var out []*ast.Association
	for {
		out = append(out, p.parseAssociation())
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, diag.SynUnclosedParen)
	return out
}

func (p *Parser) parseAssociation() *ast.Association {
	start := p.tok.Span
	n := &ast.Association{}
	first := p.parseActual()
	if p.accept(token.Arrow) {
		n.Formal = first
		n.Actual = p.parseActual()
	} else {
		n.Actual = first
	}
	n.Sp = p.spanFrom(start)
	return n
}

// parseActual parses an expression, 'open', '<>' or 'inertial expression'.
func (p *Parser) parseActual() ast.Expr {
	switch p.tok.Kind {
	case token.KwOpen:
		return &ast.Open{Sp: p.advance().Span}
	case token.Box:
		return &ast.Box{Sp: p.advance().Span}
	case token.KwInertial:
		p.advance()
	}
	return p.parseExpr()
}

// finishCall parses the parenthesized part after a name prefix: an
// association list, or a slice when the first element is a range.
func (p *Parser) finishCall(start source.Span, prefix ast.Expr) ast.Expr {
	p.advance() // (
	if p.at(token.RParen) {
		p.errorf(diag.SynExpectExpression, p.tok.Span, "empty parentheses")
		p.advance()
		return &ast.CallOrIndex{Sp: p.spanFrom(start), Prefix: prefix}
	}

	estart := p.tok.Span
	first := p.parseActual()
	if p.atOr(token.KwTo, token.KwDownto) || (p.at(token.KwRange) && first != nil) {
		r := p.finishDiscrete(estart, first)
		p.expect(token.RParen, diag.SynUnclosedParen)
		return &ast.SliceName{Sp: p.spanFrom(start), Prefix: prefix, Range: r}
	}

	a := &ast.Association{}
	if p.accept(token.Arrow) {
		a.Formal = first
		a.Actual = p.parseActual()
	} else {
		a.Actual = first
	}
	a.Sp = p.spanFrom(estart)
	n := &ast.CallOrIndex{Prefix: prefix, Args: []*ast.Association{a}}
	for p.accept(token.Comma) {
		n.Args = append(n.Args, p.parseAssociation())
	}
	p.expect(token.RParen, diag.SynUnclosedParen)
	n.Sp = p.spanFrom(start)
	return n
}

package syntax

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/arrowctl/resolve/pkg/logic"
)

// ParseError reports a syntax error with the token position it was found at.
type ParseError struct {
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax: parse error at position %d: %s", e.Pos, e.Message)
}

// Parse lexes and parses one line of surface syntax into a Sequent.
//
//	formula       := formula_side (ImplicationSign formula_side)?
//	formula_side  := clause*
//	clause        := quantifier VARIABLE '(' clause ')'
//	               | '(' clause ')' (binary_op '(' clause ')' | (nary_op '(' clause ')')+)?
//	               | prefix_op '(' comma_list ')'
//	               | VARIABLE | CONSTANT
//
// A formula with no ImplicationSign is a bare goal: "prove this from no
// premises", matching the system's ImplicationSign([], clauses) default.
func Parse(src string) (*logic.Sequent, error) {
	tokens, err := Lex(src)
	if err != nil {
		return nil, errors.Wrap(err, "syntax")
	}
	p := &parser{tokens: tokens}
	seq, err := p.parseFormula()
	if err != nil {
		return nil, errors.Wrap(err, "syntax")
	}
	if p.peek().Kind != TokenEOF {
		return nil, errors.WithStack(&ParseError{Pos: p.peek().Pos, Message: "trailing input after formula"})
	}
	return seq, nil
}

type parser struct {
	tokens []Token
	pos    int
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) advance() Token {
	t := p.tokens[p.pos]
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(kind TokenKind, what string) (Token, error) {
	t := p.peek()
	if t.Kind != kind {
		return t, errors.WithStack(&ParseError{Pos: t.Pos, Message: fmt.Sprintf("expected %s", what)})
	}
	return p.advance(), nil
}

func (p *parser) parseFormula() (*logic.Sequent, error) {
	lhs, err := p.parseFormulaSide()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind == TokenImplicationSign {
		p.advance()
		rhs, err := p.parseFormulaSide()
		if err != nil {
			return nil, err
		}
		return logic.NewSequent(lhs, rhs), nil
	}
	// No turnstile: the parsed side is the goal, proved from no premises.
	return logic.NewSequent(nil, lhs), nil
}

func startsClause(k TokenKind) bool {
	switch k {
	case TokenForall, TokenExists, TokenLParen, TokenNot, TokenEquals,
		TokenCustomFunctionOrPredicate, TokenVariable, TokenConstant:
		return true
	default:
		return false
	}
}

func (p *parser) parseFormulaSide() ([]logic.Node, error) {
	var clauses []logic.Node
	for startsClause(p.peek().Kind) {
		c, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		clauses = append(clauses, c)
	}
	return clauses, nil
}

func (p *parser) parseClause() (logic.Node, error) {
	switch p.peek().Kind {
	case TokenForall, TokenExists:
		return p.parseQuantifierComplex()
	default:
		return p.parseOpAppl()
	}
}

func (p *parser) parseQuantifierComplex() (logic.Node, error) {
	quant := p.advance()
	varTok, err := p.expect(TokenVariable, "bound variable name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenLParen, "'('"); err != nil {
		return nil, err
	}
	body, err := p.parseClause()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen, "')'"); err != nil {
		return nil, err
	}
	v := logic.NewVariable(varTok.Text)
	if quant.Kind == TokenForall {
		return logic.NewForall(v, body)
	}
	return logic.NewExists(v, body)
}

func (p *parser) parseOpAppl() (logic.Node, error) {
	switch p.peek().Kind {
	case TokenLParen:
		return p.parseParenthesizedChain()
	case TokenNot:
		p.advance()
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		if len(args) != 1 {
			return nil, errors.WithStack(&ParseError{Pos: p.peek().Pos, Message: "not(...) takes exactly one argument"})
		}
		return logic.NewNot(args[0]), nil
	case TokenEquals:
		p.advance()
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		if len(args) != 2 {
			return nil, errors.WithStack(&ParseError{Pos: p.peek().Pos, Message: "equals(...) takes exactly two arguments"})
		}
		return logic.NewEquals(args[0], args[1]), nil
	case TokenCustomFunctionOrPredicate:
		name := p.advance().Text
		args, err := p.parseArgList()
		if err != nil {
			return nil, err
		}
		return logic.NewCustom(name, args), nil
	case TokenVariable:
		return logic.NewVariable(p.advance().Text), nil
	case TokenConstant:
		return logic.NewConstant(p.advance().Text), nil
	default:
		t := p.peek()
		return nil, errors.WithStack(&ParseError{Pos: t.Pos, Message: "expected a formula"})
	}
}

// parseParenthesizedChain parses "(clause)" optionally followed by either one
// binary operator application or a chain of identical n-ary operator
// applications, each introducing another parenthesized clause.
func (p *parser) parseParenthesizedChain() (logic.Node, error) {
	first, err := p.parseParenthesized()
	if err != nil {
		return nil, err
	}

	switch p.peek().Kind {
	case TokenNor:
		p.advance()
		second, err := p.parseParenthesized()
		if err != nil {
			return nil, err
		}
		return logic.NewNor([]logic.Node{first, second}), nil
	case TokenImplies:
		p.advance()
		second, err := p.parseParenthesized()
		if err != nil {
			return nil, err
		}
		return logic.NewImplication(first, second), nil
	case TokenEquiv:
		p.advance()
		second, err := p.parseParenthesized()
		if err != nil {
			return nil, err
		}
		return logic.NewEquivalence(first, second), nil
	case TokenXor:
		p.advance()
		second, err := p.parseParenthesized()
		if err != nil {
			return nil, err
		}
		return logic.NewXor(first, second), nil
	case TokenAnd, TokenOr, TokenNand:
		return p.parseNaryChain(first)
	default:
		return first, nil
	}
}

func (p *parser) parseParenthesized() (logic.Node, error) {
	if _, err := p.expect(TokenLParen, "'('"); err != nil {
		return nil, err
	}
	c, err := p.parseClause()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRParen, "')'"); err != nil {
		return nil, err
	}
	return c, nil
}

func (p *parser) parseNaryChain(first logic.Node) (logic.Node, error) {
	op := p.peek().Kind
	operands := []logic.Node{first}
	for p.peek().Kind == op {
		p.advance()
		next, err := p.parseParenthesized()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	if startsBinaryTail(p.peek().Kind) {
		return nil, errors.WithStack(&ParseError{Pos: p.peek().Pos, Message: "cannot mix n-ary and binary operators in one chain"})
	}
	switch op {
	case TokenAnd:
		return logic.NewAnd(operands)
	case TokenOr:
		return logic.NewOr(operands)
	default:
		return logic.NewNand(operands), nil
	}
}

func startsBinaryTail(k TokenKind) bool {
	switch k {
	case TokenNor, TokenImplies, TokenEquiv, TokenXor:
		return true
	default:
		return false
	}
}

// parseArgList parses "( clause (',' clause)* )" for prefix application.
func (p *parser) parseArgList() ([]logic.Node, error) {
	if _, err := p.expect(TokenLParen, "'('"); err != nil {
		return nil, err
	}
	var args []logic.Node
	if startsClause(p.peek().Kind) {
		first, err := p.parseClause()
		if err != nil {
			return nil, err
		}
		args = append(args, first)
		for p.peek().Kind == TokenComma {
			p.advance()
			next, err := p.parseClause()
			if err != nil {
				return nil, err
			}
			args = append(args, next)
		}
	}
	if _, err := p.expect(TokenRParen, "')'"); err != nil {
		return nil, err
	}
	return args, nil
}

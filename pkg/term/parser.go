package term

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenLambda
	TokenDot
	TokenLParen
	TokenRParen
	TokenNumber
	TokenIdent
)

type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

// ParseError reports a syntax error and the byte offset it was detected at.
// It is the only error kind the parser produces; the parser stops at the
// first error and never returns a partial term.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Pos, e.Msg)
}

func tokenize(input string) ([]Token, error) {
	var tokens []Token
	for pos := 0; pos < len(input); {
		r, width := utf8.DecodeRuneInString(input[pos:])
		switch {
		case unicode.IsSpace(r):
			pos += width
		case r == 'λ' || r == '\\':
			tokens = append(tokens, Token{Type: TokenLambda, Literal: string(r), Pos: pos})
			pos += width
		case r == '.':
			tokens = append(tokens, Token{Type: TokenDot, Literal: ".", Pos: pos})
			pos++
		case r == '(':
			tokens = append(tokens, Token{Type: TokenLParen, Literal: "(", Pos: pos})
			pos++
		case r == ')':
			tokens = append(tokens, Token{Type: TokenRParen, Literal: ")", Pos: pos})
			pos++
		case r < 0x80 && isDigit(byte(r)):
			start := pos
			for pos < len(input) && isDigit(input[pos]) {
				pos++
			}
			tokens = append(tokens, Token{Type: TokenNumber, Literal: input[start:pos], Pos: start})
		case r < 0x80 && isLetter(byte(r)):
			start := pos
			for pos < len(input) && (isLetter(input[pos]) || isDigit(input[pos])) {
				pos++
			}
			tokens = append(tokens, Token{Type: TokenIdent, Literal: input[start:pos], Pos: start})
		default:
			return nil, &ParseError{Pos: pos, Msg: fmt.Sprintf("invalid character %q", r)}
		}
	}
	return tokens, nil
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

type Parser struct {
	input  string
	tokens []Token
	tpos   int

	// binders holds the names introduced by enclosing binders, innermost
	// last; nameless binders occupy a slot with the empty string so index
	// arithmetic still counts them.
	binders []string

	// freeNames assigns stable global slots to unresolved names, in order
	// of first appearance.
	freeNames []string
}

func NewParser(input string) (*Parser, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	return &Parser{input: input, tokens: tokens}, nil
}

func (p *Parser) current() Token {
	if p.tpos >= len(p.tokens) {
		return Token{Type: TokenEOF, Pos: len(p.input)}
	}
	return p.tokens[p.tpos]
}

func (p *Parser) next() {
	p.tpos++
}

// Parse consumes the whole input; leftover tokens after a complete term are
// an error, never silently dropped.
func (p *Parser) Parse() (Term, error) {
	if len(p.tokens) == 0 {
		return nil, &ParseError{Pos: 0, Msg: "empty expression"}
	}
	t, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Type != TokenEOF {
		if tok.Type == TokenRParen {
			return nil, &ParseError{Pos: tok.Pos, Msg: "unmatched ')'"}
		}
		return nil, &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("trailing input starting at %q", tok.Literal)}
	}
	return t, nil
}

// Term ::= Lambda | App
func (p *Parser) parseTerm() (Term, error) {
	if p.current().Type == TokenLambda {
		return p.parseLambda()
	}
	return p.parseApp()
}

func (p *Parser) parseLambda() (Term, error) {
	lam := p.current()
	p.next()

	// A name directly after the marker is only a binder name when a dot
	// follows; "λ x" is a nameless binder whose body is the free name x.
	// Peek one token ahead and backtrack if the dot is absent.
	name := ""
	if p.current().Type == TokenIdent {
		save := p.tpos
		ident := p.current()
		p.next()
		if p.current().Type == TokenDot {
			name = ident.Literal
			p.next()
		} else {
			p.tpos = save
		}
	}

	if t := p.current().Type; t == TokenEOF || t == TokenRParen || t == TokenDot {
		return nil, &ParseError{Pos: lam.Pos, Msg: "abstraction is missing its body"}
	}

	p.binders = append(p.binders, name)
	body, err := p.parseTerm()
	p.binders = p.binders[:len(p.binders)-1]
	if err != nil {
		return nil, err
	}
	return Abs{Body: body}, nil
}

func (p *Parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current().Type {
		case TokenNumber, TokenIdent, TokenLParen:
			right, err := p.parseAtom()
			if err != nil {
				return nil, err
			}
			left = App{Fun: left, Arg: right}
		case TokenLambda:
			// An abstraction in argument position extends as far
			// right as possible, so it ends the application chain:
			// "x λ 1 2" is x (λ 1 2).
			right, err := p.parseLambda()
			if err != nil {
				return nil, err
			}
			return App{Fun: left, Arg: right}, nil
		default:
			return left, nil
		}
	}
}

func (p *Parser) parseAtom() (Term, error) {
	tok := p.current()
	switch tok.Type {
	case TokenNumber:
		index, err := strconv.Atoi(tok.Literal)
		if err != nil || index < 1 {
			return nil, &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("variable index %q must be a positive integer", tok.Literal)}
		}
		p.next()
		return Var{Index: index}, nil
	case TokenIdent:
		p.next()
		return Var{Index: p.resolve(tok.Literal)}, nil
	case TokenLParen:
		p.next()
		if p.current().Type == TokenRParen {
			return nil, &ParseError{Pos: tok.Pos, Msg: "empty expression inside parentheses"}
		}
		t, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.current().Type != TokenRParen {
			return nil, &ParseError{Pos: tok.Pos, Msg: "unmatched '('"}
		}
		p.next()
		return t, nil
	case TokenEOF:
		return nil, &ParseError{Pos: tok.Pos, Msg: "unexpected end of input"}
	case TokenRParen:
		return nil, &ParseError{Pos: tok.Pos, Msg: "unmatched ')'"}
	default:
		return nil, &ParseError{Pos: tok.Pos, Msg: fmt.Sprintf("unexpected token %q", tok.Literal)}
	}
}

// resolve maps a surface name to an index: the distance to the innermost
// enclosing binder of that name, or a free index past the current depth
// taken from the per-parse naming environment.
func (p *Parser) resolve(name string) int {
	for i := len(p.binders) - 1; i >= 0; i-- {
		if p.binders[i] == name {
			return len(p.binders) - i
		}
	}
	for slot, free := range p.freeNames {
		if free == name {
			return len(p.binders) + slot + 1
		}
	}
	p.freeNames = append(p.freeNames, name)
	return len(p.binders) + len(p.freeNames)
}

// Parse parses a surface-syntax lambda term into its nameless form.
//
// Surface syntax convention (a boundary detail, so it is fixed and
// documented precisely here):
//
//   - the binder marker is 'λ' or '\'
//   - variable references are 1-based decimal index literals ("1", "12")
//     or names ("x", "foo"); tokens are separated by whitespace or parens,
//     so "12" is the single index twelve
//   - a binder may be nameless ("λ 2 1") or named ("λx. x"); a name
//     directly after the binder marker followed by '.' binds that name for
//     the body, otherwise the marker binds anonymously and the body starts
//     immediately
//   - application is juxtaposition and associates to the left; an
//     abstraction body extends as far right as possible
//   - a name with no matching enclosing binder is a free variable; free
//     names are assigned global slots in order of first appearance, so the
//     first free name seen resolves to index depth+1 at each occurrence
func Parse(input string) (Term, error) {
	p, err := NewParser(input)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

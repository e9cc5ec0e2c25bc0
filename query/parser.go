package query

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sift-go/sift/engine"
)

// Operation is one parsed clause of a query. Effect, Field and Condition are
// nil when the clause omitted them; the caller resolves the defaults. Text is
// always set on a successfully parsed operation.
type Operation struct {
	Effect    *engine.Effect
	Field     *string
	Condition *engine.Condition
	Text      *string
}

// SyntaxError is a recoverable query error: the offending byte offset plus
// the parser stage reached, for diagnostics shown to the end user.
type SyntaxError struct {
	Offset int
	Stage  string
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d while parsing %s", e.Msg, e.Offset, e.Stage)
}

// conditionAliases maps bracketed operator names to conditions.
var conditionAliases = map[string]engine.Condition{
	"is":       engine.ConditionEquals,
	"equals":   engine.ConditionEquals,
	"matches":  engine.ConditionMatches,
	"includes": engine.ConditionIncludes,
	"contains": engine.ConditionIncludes,
}

// Parse tokenizes a line into its sequence of operations. A blank line
// yields no operations and no error.
func Parse(line string) ([]Operation, error) {
	p := &parser{input: line}
	var ops []Operation
	for {
		p.skipSpaces()
		if p.eof() {
			return ops, nil
		}
		op, err := p.parseOperation()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
}

type parser struct {
	input string
	pos   int
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) atSpace() bool {
	r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
	return unicode.IsSpace(r)
}

func (p *parser) skipSpaces() {
	for !p.eof() && p.atSpace() {
		_, size := utf8.DecodeRuneInString(p.input[p.pos:])
		p.pos += size
	}
}

// parseOperation parses one clause. The cursor is on a non-space character.
func (p *parser) parseOperation() (Operation, error) {
	var op Operation
	op.Effect = p.parseEffect()

	field, err := p.parseField()
	if err != nil {
		return op, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return op, err
	}

	switch {
	case cond != nil:
		text, err := p.parseText("text")
		if err != nil {
			return op, err
		}
		if text == nil || *text == "" {
			return op, &SyntaxError{Offset: p.pos, Stage: "text", Msg: "missing query text"}
		}
		op.Field = field
		op.Condition = cond
		op.Text = text
	case field == nil:
		text, err := p.parseText("search term")
		if err != nil {
			return op, err
		}
		if text == nil {
			return op, &SyntaxError{Offset: p.pos, Stage: "search term", Msg: "unexpected end"}
		}
		if *text == "" {
			return op, &SyntaxError{Offset: p.pos, Stage: "search term", Msg: "missing query text"}
		}
		op.Text = text
	default:
		if !p.eof() && !p.atSpace() {
			r, _ := utf8.DecodeRuneInString(p.input[p.pos:])
			return op, &SyntaxError{Offset: p.pos, Stage: "condition", Msg: fmt.Sprintf("unrecognized operator %q", r)}
		}
		// A bare token looks like a field name until we know no condition
		// operator follows; it is really the search text.
		op.Text = field
	}
	return op, nil
}

// parseEffect consumes the clause's run of effect characters. With several
// effect characters the last one wins.
func (p *parser) parseEffect() *engine.Effect {
	var eff *engine.Effect
	for !p.eof() {
		var e engine.Effect
		switch p.input[p.pos] {
		case '-':
			e = engine.EffectRemove
		case '+':
			e = engine.EffectAdd
		case '&':
			e = engine.EffectFilter
		default:
			return eff
		}
		eff = &e
		p.pos++
	}
	return eff
}

func isFieldRune(r rune) bool {
	return r == '_' || r == '-' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// parseField consumes a run of word characters, hyphens and escapes.
// Returns nil without advancing when the cursor is not on a field character.
func (p *parser) parseField() (*string, error) {
	var b strings.Builder
	for !p.eof() {
		if p.input[p.pos] == '\\' {
			r, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			b.WriteRune(r)
			continue
		}
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if !isFieldRune(r) {
			break
		}
		b.WriteRune(r)
		p.pos += size
	}
	if b.Len() == 0 {
		return nil, nil
	}
	s := b.String()
	return &s, nil
}

// parseCondition consumes a condition operator when the cursor is on one.
func (p *parser) parseCondition() (*engine.Condition, error) {
	if p.eof() {
		return nil, nil
	}
	switch p.input[p.pos] {
	case ':':
		p.pos++
		c := engine.ConditionMatches
		return &c, nil
	case '=':
		p.pos++
		c := engine.ConditionEquals
		return &c, nil
	case '%', '^':
		op := p.input[p.pos]
		if p.pos+1 >= len(p.input) || p.input[p.pos+1] != '=' {
			return nil, &SyntaxError{Offset: p.pos, Stage: "condition", Msg: fmt.Sprintf("unrecognized operator %q", string(op))}
		}
		p.pos += 2
		c := engine.ConditionStartsWith
		if op == '%' {
			c = engine.ConditionIncludes
		}
		return &c, nil
	case '[':
		return p.parseBracketedCondition()
	}
	return nil, nil
}

func (p *parser) parseBracketedCondition() (*engine.Condition, error) {
	start := p.pos
	end := strings.IndexByte(p.input[p.pos:], ']')
	if end < 0 {
		return nil, &SyntaxError{Offset: start, Stage: "condition", Msg: `unexpected end of string while matching "]"`}
	}
	name := p.input[p.pos+1 : p.pos+end]
	cond, ok := conditionAliases[name]
	if !ok {
		return nil, &SyntaxError{Offset: start, Stage: "condition", Msg: fmt.Sprintf("unrecognized operator %q", "["+name+"]")}
	}
	p.pos += end + 1
	if p.eof() || p.input[p.pos] != ':' {
		return nil, &SyntaxError{Offset: p.pos, Stage: "condition", Msg: `expected ":" after bracketed operator`}
	}
	p.pos++
	return &cond, nil
}

// parseText consumes the clause's payload: a run of characters up to the
// next unescaped, unquoted whitespace. Returns nil without advancing when
// the clause already ended.
func (p *parser) parseText(stage string) (*string, error) {
	if p.eof() || p.atSpace() {
		return nil, nil
	}
	var b strings.Builder
	quoted := false
	quoteStart := 0
	for !p.eof() {
		ch := p.input[p.pos]
		if ch == '\\' {
			r, err := p.parseEscape()
			if err != nil {
				return nil, err
			}
			b.WriteRune(r)
			continue
		}
		if ch == '"' {
			if quoted {
				quoted = false
			} else {
				quoted = true
				quoteStart = p.pos
			}
			p.pos++
			continue
		}
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		if unicode.IsSpace(r) && !quoted {
			break
		}
		b.WriteRune(r)
		p.pos += size
	}
	if quoted {
		return nil, &SyntaxError{Offset: quoteStart, Stage: stage, Msg: `unexpected end of string while matching "\""`}
	}
	s := b.String()
	return &s, nil
}

// parseEscape consumes one backslash escape. The cursor is on the backslash.
func (p *parser) parseEscape() (rune, error) {
	start := p.pos
	p.pos++
	if p.eof() {
		return 0, &SyntaxError{Offset: start, Stage: "escape sequence", Msg: `unexpected end of string after "\"`}
	}
	ch := p.input[p.pos]
	p.pos++
	switch ch {
	case '\\':
		return '\\', nil
	case '"':
		return '"', nil
	case '\'':
		return '\'', nil
	case ' ':
		return ' ', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 'x':
		return p.parseHex(2)
	case 'u':
		if !p.eof() && p.input[p.pos] == '{' {
			return p.parseBracedCodepoint()
		}
		return p.parseHex(4)
	default:
		return 0, &SyntaxError{Offset: start, Stage: "escape sequence", Msg: fmt.Sprintf("unknown escape character %q", rune(ch))}
	}
}

func (p *parser) parseHex(n int) (rune, error) {
	start := p.pos
	if start+n > len(p.input) {
		return 0, &SyntaxError{Offset: start, Stage: "escape sequence", Msg: "unexpected end of string in escape sequence"}
	}
	v, err := strconv.ParseUint(p.input[start:start+n], 16, 32)
	if err != nil {
		return 0, &SyntaxError{Offset: start, Stage: "escape sequence", Msg: "invalid hex digit in escape sequence"}
	}
	p.pos += n
	return rune(v), nil
}

func (p *parser) parseBracedCodepoint() (rune, error) {
	open := p.pos
	p.pos++
	end := strings.IndexByte(p.input[p.pos:], '}')
	if end < 0 {
		return 0, &SyntaxError{Offset: open, Stage: "escape sequence", Msg: `unexpected end of string while matching "}"`}
	}
	digits := p.input[p.pos : p.pos+end]
	if digits == "" {
		return 0, &SyntaxError{Offset: p.pos, Stage: "escape sequence", Msg: "empty codepoint escape"}
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || v > unicode.MaxRune {
		return 0, &SyntaxError{Offset: p.pos, Stage: "escape sequence", Msg: "invalid codepoint in escape sequence"}
	}
	p.pos += end + 1
	return rune(v), nil
}

package query

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sift-go/sift/engine"
)

func strPtr(s string) *string                      { return &s }
func condPtr(c engine.Condition) *engine.Condition { return &c }
func effPtr(e engine.Effect) *engine.Effect        { return &e }

func TestParse_FieldConditionAndBareTerm(t *testing.T) {
	ops, err := Parse("-animal:dog frog")
	require.NoError(t, err)
	require.Equal(t, []Operation{
		{Effect: effPtr(engine.EffectRemove), Field: strPtr("animal"), Condition: condPtr(engine.ConditionMatches), Text: strPtr("dog")},
		{Text: strPtr("frog")},
	}, ops)
}

func TestParse_BareTermWithEffect(t *testing.T) {
	ops, err := Parse("+dog")
	require.NoError(t, err)
	require.Equal(t, []Operation{
		{Effect: effPtr(engine.EffectAdd), Text: strPtr("dog")},
	}, ops)
}

func TestParse_QuotedTextWithEscapedQuotes(t *testing.T) {
	ops, err := Parse(`-animal-scientific="\"Canis lupus\""`)
	require.NoError(t, err)
	require.Equal(t, []Operation{
		{
			Effect:    effPtr(engine.EffectRemove),
			Field:     strPtr("animal-scientific"),
			Condition: condPtr(engine.ConditionEquals),
			Text:      strPtr(`"Canis lupus"`),
		},
	}, ops)
}

func TestParse_BlankLine(t *testing.T) {
	for _, line := range []string{"", "   ", "\t \n"} {
		ops, err := Parse(line)
		require.NoError(t, err)
		require.Empty(t, ops)
	}
}

func TestParse_ConditionOperators(t *testing.T) {
	tests := []struct {
		line string
		want engine.Condition
	}{
		{"a:x", engine.ConditionMatches},
		{"a=x", engine.ConditionEquals},
		{"a%=x", engine.ConditionIncludes},
		{"a^=x", engine.ConditionStartsWith},
		{"a[is]:x", engine.ConditionEquals},
		{"a[equals]:x", engine.ConditionEquals},
		{"a[matches]:x", engine.ConditionMatches},
		{"a[includes]:x", engine.ConditionIncludes},
		{"a[contains]:x", engine.ConditionIncludes},
	}
	for _, tt := range tests {
		ops, err := Parse(tt.line)
		require.NoError(t, err, tt.line)
		require.Len(t, ops, 1, tt.line)
		require.Equal(t, strPtr("a"), ops[0].Field, tt.line)
		require.Equal(t, condPtr(tt.want), ops[0].Condition, tt.line)
		require.Equal(t, strPtr("x"), ops[0].Text, tt.line)
	}
}

func TestParse_ConditionWithoutField(t *testing.T) {
	ops, err := Parse(":dog")
	require.NoError(t, err)
	require.Equal(t, []Operation{
		{Condition: condPtr(engine.ConditionMatches), Text: strPtr("dog")},
	}, ops)
}

func TestParse_LastEffectCharacterWins(t *testing.T) {
	ops, err := Parse("-+dog")
	require.NoError(t, err)
	require.Equal(t, []Operation{
		{Effect: effPtr(engine.EffectAdd), Text: strPtr("dog")},
	}, ops)

	ops, err = Parse("&tag:pet")
	require.NoError(t, err)
	require.Equal(t, effPtr(engine.EffectFilter), ops[0].Effect)
}

func TestParse_QuotedSpanKeepsSpaces(t *testing.T) {
	ops, err := Parse(`name:"big dog" +frog`)
	require.NoError(t, err)
	require.Len(t, ops, 2)
	require.Equal(t, strPtr("big dog"), ops[0].Text)
	require.Equal(t, strPtr("frog"), ops[1].Text)
}

func TestParse_BareQuotedTerm(t *testing.T) {
	ops, err := Parse(`"two words"`)
	require.NoError(t, err)
	require.Equal(t, []Operation{{Text: strPtr("two words")}}, ops)
}

func TestParse_EscapedSpaceInBareTerm(t *testing.T) {
	ops, err := Parse(`dog\ house`)
	require.NoError(t, err)
	require.Equal(t, []Operation{{Text: strPtr("dog house")}}, ops)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		line  string
		stage string
	}{
		{"-", "search term"},        // effect with nothing after it
		{"animal:", "text"},         // condition but no text
		{`animal:""`, "text"},       // text resolves to empty
		{`""`, "search term"},       // bare empty quotes
		{"a!b", "condition"},        // junk after a field
		{"a%b", "condition"},        // % without =
		{"a^", "condition"},         // ^ without =
		{"a[bogus]:x", "condition"}, // unknown alias
		{"a[is]x", "condition"},     // alias missing the colon
		{"a[is", "condition"},       // unterminated alias
		{`a:"foo`, "text"},          // unterminated quote
	}
	for _, tt := range tests {
		_, err := Parse(tt.line)
		require.Error(t, err, tt.line)
		var se *SyntaxError
		require.ErrorAs(t, err, &se, tt.line)
		require.Equal(t, tt.stage, se.Stage, tt.line)
	}
}

func TestParse_UnterminatedQuoteOffset(t *testing.T) {
	_, err := Parse(`tag:"foo`)
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 4, se.Offset)
}

func TestParseText_UnbalancedQuotes(t *testing.T) {
	p := &parser{input: `"foo`}
	_, err := p.parseText("text")
	var se *SyntaxError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 0, se.Offset)

	p = &parser{input: `foo"`}
	_, err = p.parseText("text")
	require.ErrorAs(t, err, &se)
	require.Equal(t, 3, se.Offset)
}

func TestParseEscape_Sequences(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{`\\`, '\\'},
		{`\"`, '"'},
		{`\'`, '\''},
		{`\ `, ' '},
		{`\n`, '\n'},
		{`\r`, '\r'},
		{`\x1B`, '\x1b'},
		{`\x41`, 'A'},
		{`\u0041`, 'A'},
		{`\u1234`, 'ሴ'},
		{`\u{1234}`, 'ሴ'},
		{`\u{1F600}`, '\U0001F600'},
	}
	for _, tt := range tests {
		p := &parser{input: tt.in}
		got, err := p.parseEscape()
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
		require.Equal(t, len(tt.in), p.pos, tt.in)
	}
}

func TestParseEscape_Errors(t *testing.T) {
	for _, in := range []string{`\`, `\q`, `\x1`, `\x1g`, `\u123`, `\u12zz`, `\u{`, `\u{}`, `\u{12`, `\u{zz}`, `\u{110000}`} {
		p := &parser{input: in}
		_, err := p.parseEscape()
		require.Error(t, err, in)
		var se *SyntaxError
		require.ErrorAs(t, err, &se, in)
		require.Equal(t, "escape sequence", se.Stage, in)
	}
}

func TestSyntaxError_Message(t *testing.T) {
	_, err := Parse("animal:")
	require.EqualError(t, err, "missing query text at offset 7 while parsing text")
}

package token_stream_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"hmc-go/packages/compiler/src/token_stream"
)

// humanize flattens a token tree into [type, text] pairs, with group tokens
// rendered as their delimiter and nested contents
func humanize(tokens []token_stream.Token) []interface{} {
	var result []interface{}
	for _, token := range tokens {
		switch token.Type {
		case token_stream.TokenTypeGROUP:
			result = append(result, []interface{}{token_stream.TokenTypeGROUP, string(token.Delim.OpenChar()), humanize(token.Tokens)})
		default:
			result = append(result, []interface{}{token.Type, token.Text})
		}
	}
	return result
}

func tokenizeAndHumanize(t *testing.T, source string) []interface{} {
	t.Helper()
	tokens, err := token_stream.Tokenize(source, "test.html")
	if err != nil {
		t.Fatalf("Tokenize(%q) error: %v", source, err)
	}
	return humanize(tokens)
}

func TestTokenize(t *testing.T) {
	t.Run("should split markup punctuation into single puncts", func(t *testing.T) {
		expected := []interface{}{
			[]interface{}{token_stream.TokenTypePUNCT, "<"},
			[]interface{}{token_stream.TokenTypeIDENT, "br"},
			[]interface{}{token_stream.TokenTypePUNCT, "/"},
			[]interface{}{token_stream.TokenTypePUNCT, ">"},
		}
		result := tokenizeAndHumanize(t, "<br/>")
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("tokenize mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should keep brace groups as one token tree", func(t *testing.T) {
		expected := []interface{}{
			[]interface{}{token_stream.TokenTypePUNCT, "@"},
			[]interface{}{token_stream.TokenTypeGROUP, "{", []interface{}{
				[]interface{}{token_stream.TokenTypeIDENT, "expr"},
			}},
		}
		result := tokenizeAndHumanize(t, "@{expr}")
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("tokenize mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should decode string literals", func(t *testing.T) {
		tokens, err := token_stream.Tokenize(`"a\nb"`, "test.html")
		if err != nil {
			t.Fatalf("Tokenize() error: %v", err)
		}
		if len(tokens) != 1 || tokens[0].Value != "a\nb" {
			t.Errorf("Tokenize() = %+v, want one literal with decoded value", tokens)
		}
	})

	t.Run("should skip comments and whitespace", func(t *testing.T) {
		expected := []interface{}{
			[]interface{}{token_stream.TokenTypeIDENT, "a"},
			[]interface{}{token_stream.TokenTypeIDENT, "b"},
		}
		result := tokenizeAndHumanize(t, "a // comment\n/* block */ b")
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("tokenize mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should report unclosed groups", func(t *testing.T) {
		_, err := token_stream.Tokenize("{a", "test.html")
		if err == nil {
			t.Fatal("Tokenize() expected error for unclosed group")
		}
	})

	t.Run("should report stray closing delimiters", func(t *testing.T) {
		_, err := token_stream.Tokenize("a}", "test.html")
		if err == nil {
			t.Fatal("Tokenize() expected error for stray `}`")
		}
	})
}

func TestCursor(t *testing.T) {
	t.Run("peeking never advances the receiver", func(t *testing.T) {
		tokens, err := token_stream.Tokenize("<div>", "test.html")
		if err != nil {
			t.Fatalf("Tokenize() error: %v", err)
		}
		c := token_stream.NewCursor(nil, tokens)

		lt, after, ok := c.PunctCh('<')
		if !ok || lt.Text != "<" {
			t.Fatalf("PunctCh('<') = %v, %v", lt, ok)
		}
		// the original cursor still sees `<`
		if again, _, ok := c.PunctCh('<'); !ok || again.Text != "<" {
			t.Errorf("receiver cursor advanced by a peek")
		}
		// the returned cursor sees the identifier
		if ident, _, ok := after.Ident(); !ok || ident.Text != "div" {
			t.Errorf("advanced cursor at %v, want ident div", ident)
		}
	})

	t.Run("mismatched accessors return the receiver unchanged", func(t *testing.T) {
		tokens, _ := token_stream.Tokenize("div", "test.html")
		c := token_stream.NewCursor(nil, tokens)
		if _, rest, ok := c.PunctCh('<'); ok || !cursorEqual(rest, c) {
			t.Errorf("failed peek must not advance")
		}
	})
}

func cursorEqual(a, b token_stream.Cursor) bool {
	ta, oka := a.Peek()
	tb, okb := b.Peek()
	return oka == okb && ta.Text == tb.Text
}

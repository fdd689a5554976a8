package program

import (
	"fmt"

	"hmc-go/packages/compiler/src/markup_parser"
	"hmc-go/packages/compiler/src/token_stream"
)

// LiteralEvaluator evaluates the expressions a host compiler would have
// constant-folded anyway: single string, number, and boolean literals.
// Anything else needs real host semantics and is reported as an error. It is
// enough to run programs whose markup is fully static.
type LiteralEvaluator struct{}

// Eval implements ExprEvaluator
func (LiteralEvaluator) Eval(expr *markup_parser.Expr) (interface{}, error) {
	if len(expr.Tokens) == 1 {
		token := expr.Tokens[0]
		switch {
		case token.IsStringLiteral():
			return token.Value, nil
		case token.Type == token_stream.TokenTypeLITERAL:
			return token.Text, nil
		case token.IsIdent("true"):
			return true, nil
		case token.IsIdent("false"):
			return false, nil
		}
	}
	return nil, fmt.Errorf("the expression `%s` requires runtime evaluation", expr)
}

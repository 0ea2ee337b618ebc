package rules

import (
	"go/ast"
	"go/token"

	m "github.com/mouse-blink/lintel/internal/model"
)

const (
	literalTrue  = "true"
	literalFalse = "false"
)

// CheckBoolLiteralComparison reports `x == true` style comparisons and
// offers the simplified operand as a fix.
func CheckBoolLiteralComparison(src *Source) []m.Message {
	if src.File == nil {
		return nil
	}

	var messages []m.Message

	ast.Inspect(src.File, func(n ast.Node) bool {
		expr, ok := n.(*ast.BinaryExpr)
		if !ok || (expr.Op != token.EQL && expr.Op != token.NEQ) {
			return true
		}

		literal, operand := boolLiteralOperand(expr)
		if literal == "" {
			return true
		}

		msg := m.Message{
			Kind:        m.BoolLiteralComparison(expr.Op.String(), literal),
			Location:    src.location(expr.Pos()),
			EndLocation: src.location(expr.End()),
			Filename:    src.Filename,
		}

		if text, ok := src.text(operand.Pos(), operand.End()); ok {
			msg.Fix = &m.Fix{
				Content:     simplify(text, operand, (expr.Op == token.EQL) == (literal == literalTrue)),
				Location:    msg.Location,
				EndLocation: msg.EndLocation,
			}
		}

		messages = append(messages, msg)

		return true
	})

	return messages
}

// boolLiteralOperand returns the literal name and the other operand, or an
// empty name when neither side is a bool literal. Comparing two literals
// reports the right-hand one.
func boolLiteralOperand(expr *ast.BinaryExpr) (string, ast.Expr) {
	if name := boolLiteral(expr.Y); name != "" {
		return name, expr.X
	}

	if name := boolLiteral(expr.X); name != "" {
		return name, expr.Y
	}

	return "", nil
}

func boolLiteral(expr ast.Expr) string {
	ident, ok := ast.Unparen(expr).(*ast.Ident)
	if !ok || (ident.Name != literalTrue && ident.Name != literalFalse) {
		return ""
	}

	return ident.Name
}

func simplify(text string, operand ast.Expr, keep bool) string {
	if keep {
		return text
	}

	switch operand.(type) {
	case *ast.Ident, *ast.CallExpr, *ast.SelectorExpr, *ast.ParenExpr, *ast.IndexExpr:
		return "!" + text
	}

	return "!(" + text + ")"
}

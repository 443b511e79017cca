package ast

import (
	"fmt"
	"strings"
)

// Print renders a Program as an indented s-expression tree, used by the
// cmd/golox `--ast` debug flag. It is a direct descendant of the teacher's
// PrintingVisitor, adapted from an ad-hoc Visitor over a handful of demo
// node types into a type switch over the full statement/expression set.
func Print(p *Program) string {
	var b strings.Builder
	for _, s := range p.Statements {
		printStmt(&b, s, 0)
	}
	return b.String()
}

func indent(b *strings.Builder, depth int) {
	b.WriteString(strings.Repeat("  ", depth))
}

func printStmt(b *strings.Builder, s Stmt, depth int) {
	indent(b, depth)
	switch n := s.(type) {
	case *ExprStmt:
		b.WriteString("(expr ")
		b.WriteString(printExpr(n.Expression))
		b.WriteString(")\n")
	case *PrintStmt:
		b.WriteString("(print ")
		b.WriteString(printExpr(n.Expression))
		b.WriteString(")\n")
	case *VarStmt:
		b.WriteString(fmt.Sprintf("(var %s", n.Name.Lexeme))
		if n.Initializer != nil {
			b.WriteString(" = ")
			b.WriteString(printExpr(n.Initializer))
		}
		b.WriteString(")\n")
	case *Block:
		b.WriteString("(block\n")
		for _, stmt := range n.Statements {
			printStmt(b, stmt, depth+1)
		}
		indent(b, depth)
		b.WriteString(")\n")
	case *IfStmt:
		b.WriteString("(if ")
		b.WriteString(printExpr(n.Condition))
		b.WriteString("\n")
		printStmt(b, n.Then, depth+1)
		if n.Else != nil {
			printStmt(b, n.Else, depth+1)
		}
		indent(b, depth)
		b.WriteString(")\n")
	case *WhileStmt:
		b.WriteString("(while ")
		b.WriteString(printExpr(n.Condition))
		b.WriteString("\n")
		printStmt(b, n.Body, depth+1)
		indent(b, depth)
		b.WriteString(")\n")
	case *FunctionStmt:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Lexeme
		}
		b.WriteString(fmt.Sprintf("(fun %s(%s)\n", n.Name.Lexeme, strings.Join(params, ", ")))
		for _, stmt := range n.Body {
			printStmt(b, stmt, depth+1)
		}
		indent(b, depth)
		b.WriteString(")\n")
	case *ReturnStmt:
		b.WriteString("(return")
		if n.Value != nil {
			b.WriteString(" ")
			b.WriteString(printExpr(n.Value))
		}
		b.WriteString(")\n")
	default:
		b.WriteString(fmt.Sprintf("(unknown-stmt %T)\n", n))
	}
}

func printExpr(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		if n.Value == nil {
			return "nil"
		}
		return fmt.Sprintf("%v", n.Value)
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return fmt.Sprintf("(= %s %s)", n.Name.Lexeme, printExpr(n.Value))
	case *Unary:
		return fmt.Sprintf("(%s %s)", n.Operator.Lexeme, printExpr(n.Right))
	case *Binary:
		return fmt.Sprintf("(%s %s %s)", n.Operator.Lexeme, printExpr(n.Left), printExpr(n.Right))
	case *Logical:
		return fmt.Sprintf("(%s %s %s)", n.Operator.Lexeme, printExpr(n.Left), printExpr(n.Right))
	case *Grouping:
		return fmt.Sprintf("(group %s)", printExpr(n.Expression))
	case *Call:
		args := make([]string, len(n.Arguments))
		for i, a := range n.Arguments {
			args[i] = printExpr(a)
		}
		return fmt.Sprintf("(call %s %s)", printExpr(n.Callee), strings.Join(args, " "))
	default:
		return fmt.Sprintf("(unknown-expr %T)", n)
	}
}

package summary

import (
	"strconv"
	"strings"
)

// Expr is a node of a server-side expression over semantic model fields.
// Building the bin-assignment expression as a tree keeps the first-match-wins
// combinator logic testable apart from its textual serialization.
type Expr interface {
	write(b *strings.Builder)
}

type fieldRef struct{ name string }

func (e fieldRef) write(b *strings.Builder) {
	b.WriteString("${")
	b.WriteString(e.name)
	b.WriteString("}")
}

type numberLit struct{ v float64 }

func (e numberLit) write(b *strings.Builder) {
	b.WriteString(strconv.FormatFloat(e.v, 'f', -1, 64))
}

type nullLit struct{}

func (nullLit) write(b *strings.Builder) { b.WriteString("null") }

type lessOrEqual struct{ left, right Expr }

func (e lessOrEqual) write(b *strings.Builder) {
	e.left.write(b)
	b.WriteString(" <= ")
	e.right.write(b)
}

type ifExpr struct{ cond, then, els Expr }

func (e ifExpr) write(b *strings.Builder) {
	b.WriteString("if(")
	e.cond.write(b)
	b.WriteString(", ")
	e.then.write(b)
	b.WriteString(", ")
	e.els.write(b)
	b.WriteString(")")
}

// coalesce evaluates its arguments in order and yields the first non-null.
type coalesce struct{ args []Expr }

func (e coalesce) write(b *strings.Builder) {
	b.WriteString("coalesce(")
	for i, a := range e.args {
		if i > 0 {
			b.WriteString(", ")
		}
		a.write(b)
	}
	b.WriteString(")")
}

func FieldRef(name string) Expr { return fieldRef{name} }

func Number(v float64) Expr { return numberLit{v} }

func Null() Expr { return nullLit{} }

func LessOrEqual(left, right Expr) Expr { return lessOrEqual{left, right} }

func If(cond, then, els Expr) Expr { return ifExpr{cond, then, els} }

func Coalesce(args ...Expr) Expr { return coalesce{args} }

// Serialize renders the tree in the query language's expression syntax.
func Serialize(e Expr) string {
	var b strings.Builder
	e.write(&b)
	return b.String()
}

// binAssignmentExpr builds the derived bin dimension for a histogram: for
// each bin index in ascending order, test the value against that bin's upper
// bound and yield the index. Coalesce keeps the first satisfied test, so ties
// land in the lower bin.
func binAssignmentExpr(fieldName string, min, binSize float64, bins int) Expr {
	args := make([]Expr, bins)
	for i := 0; i < bins; i++ {
		upper := min + float64(i+1)*binSize
		args[i] = If(LessOrEqual(FieldRef(fieldName), Number(upper)), Number(float64(i)), Null())
	}
	return Coalesce(args...)
}

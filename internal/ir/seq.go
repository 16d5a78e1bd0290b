// Package ir models a generated statement sequence as a list of statement
// nodes, so transforms on it (capturing a call result, re-indenting) are
// structural instead of textual find-and-replace.
package ir

import "strings"

// Stmt is a single generated C statement. Expr is set when the statement is
// a bare call whose result is discarded; it holds the call expression so the
// sequence can later be rewritten to capture that result.
type Stmt struct {
	Text string
	Expr string
}

// Call builds a statement evaluating expr for its side effect only.
func Call(expr string) Stmt {
	return Stmt{Text: expr + ";", Expr: expr}
}

// Seq is an ordered statement sequence.
type Seq []Stmt

// String renders the sequence one statement per line, with a trailing line
// break. An empty sequence renders as the empty string.
func (s Seq) String() string {
	var b strings.Builder
	for _, st := range s {
		b.WriteString(st.Text)
		b.WriteByte('\n')
	}

	return b.String()
}

// Indent returns a copy of the sequence with prefix prepended to every
// statement.
func (s Seq) Indent(prefix string) Seq {
	res := make(Seq, len(s))
	for i, st := range s {
		res[i] = Stmt{Text: prefix + st.Text, Expr: st.Expr}
	}

	return res
}

// CallExpr returns the expression of the first value-producing call in the
// sequence, or ok=false when the sequence holds none.
func (s Seq) CallExpr() (string, bool) {
	for _, st := range s {
		if st.Expr != "" {
			return st.Expr, true
		}
	}

	return "", false
}

// AssignCall returns a copy of the sequence where the first value-producing
// call is replaced by an assignment of its result into target. ok is false
// when the sequence holds no such call; the copy is then unchanged.
func (s Seq) AssignCall(target string) (Seq, bool) {
	res := make(Seq, len(s))
	copy(res, s)

	for i, st := range s {
		if st.Expr == "" {
			continue
		}

		res[i] = Stmt{Text: target + " = " + st.Expr + ";"}

		return res, true
	}

	return res, false
}

package expression

import (
	"bytes"
	"strings"
)

// Expr is an AST node. The variant set is closed: Compare, Between, In and
// Call are the leaf predicates, And, Or and Not are the only composition
// nodes. Parenthesized groups are unwrapped by the parser and leave no node.
type Expr interface {
	exprNode()
	String() string
}

// Operand is a function argument: a Path or a Literal.
type Operand interface {
	operandNode()
	String() string
}

// Path is an attribute name reference. It carries no type information.
// A bare path is letters, digits and '_', with '.', '#' and ':' allowed
// after the first character, so dotted names such as meta.owner parse
// unquoted; any other name needs backticks.
type Path struct {
	Name string
}

func (p Path) operandNode() {}

func (p Path) String() string {
	if isIdentifierName(p.Name) {
		return p.Name
	}

	return "`" + p.Name + "`"
}

func isIdentifierName(name string) bool {
	if name == "" {
		return false
	}

	if isDigit(name[0]) {
		return false
	}

	for i := 0; i < len(name); i++ {
		ch := name[i]
		if !isLetter(ch) && !isDigit(ch) && ch != '_' {
			return false
		}
	}

	// a bare keyword or value word would not lex back as an identifier
	if _, ok := keywords[toUpper(name)]; ok {
		return false
	}

	return true
}

// Operator is a comparison operator. The != spelling is normalized to <>.
type Operator string

const (
	// Equal the = operator
	Equal Operator = "="
	// NotEqual the <> operator
	NotEqual Operator = "<>"
	// Less the < operator
	Less Operator = "<"
	// LessOrEqual the <= operator
	LessOrEqual Operator = "<="
	// Greater the > operator
	Greater Operator = ">"
	// GreaterOrEqual the >= operator
	GreaterOrEqual Operator = ">="
)

// Compare is `path op value`.
type Compare struct {
	Path  Path
	Op    Operator
	Value Literal
}

func (c *Compare) exprNode() {}

func (c *Compare) String() string {
	return c.Path.String() + " " + string(c.Op) + " " + c.Value.String()
}

// Between is `path BETWEEN low AND high`.
type Between struct {
	Path Path
	Low  Literal
	High Literal
}

func (b *Between) exprNode() {}

func (b *Between) String() string {
	var out bytes.Buffer

	out.WriteString(b.Path.String())
	out.WriteString(" BETWEEN ")
	out.WriteString(b.Low.String())
	out.WriteString(" AND ")
	out.WriteString(b.High.String())

	return out.String()
}

// In is `path IN (v, ...)`. Values is never empty.
type In struct {
	Path   Path
	Values []Literal
}

func (i *In) exprNode() {}

func (i *In) String() string {
	values := []string{}
	for _, v := range i.Values {
		values = append(values, v.String())
	}

	return i.Path.String() + " IN (" + strings.Join(values, ", ") + ")"
}

// Call is a predicate function call such as begins_with(path, value). Name
// is canonical lowercase.
type Call struct {
	Name string
	Args []Operand
}

func (c *Call) exprNode() {}

func (c *Call) String() string {
	args := []string{}
	for _, a := range c.Args {
		args = append(args, a.String())
	}

	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// And is the conjunction of two expressions.
type And struct {
	Left  Expr
	Right Expr
}

func (a *And) exprNode() {}

func (a *And) String() string {
	return "(" + a.Left.String() + " AND " + a.Right.String() + ")"
}

// Or is the disjunction of two expressions.
type Or struct {
	Left  Expr
	Right Expr
}

func (o *Or) exprNode() {}

func (o *Or) String() string {
	return "(" + o.Left.String() + " OR " + o.Right.String() + ")"
}

// Not negates an expression.
type Not struct {
	Expr Expr
}

func (n *Not) exprNode() {}

func (n *Not) String() string {
	return "NOT (" + n.Expr.String() + ")"
}

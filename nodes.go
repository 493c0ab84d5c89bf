package intexpr

import (
	"strconv"
	"strings"
)

// node is a node in the syntax tree of an expression.
type node struct {
	kind nodeKind
	// val is the value of a nodeNum.
	val int64
	// at is the index of the node's token in the normalized tokens.
	at int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum // push val
	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
)

var nodeops = [...]TokenKind{
	nodeAdd: Add,
	nodeSub: Sub,
	nodeMul: Mul,
	nodeDiv: Div,
}

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		return nodeops[k].String()
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// opnode gets the node kind for a binary operator token kind.
func opnode(op TokenKind) nodeKind {
	switch op {
	case Add:
		return nodeAdd
	case Sub:
		return nodeSub
	case Mul:
		return nodeMul
	case Div:
		return nodeDiv
	default:
		return nodeNone
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(strconv.FormatInt(n.val, 10))
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteString(nodeops[n.kind].symbol())
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	default:
		panic("intexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// eval computes the value of the subtree.
func (n *node) eval() (int64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		a, err := n.left.eval()
		if err != nil {
			return 0, err
		}
		b, err := n.right.eval()
		if err != nil {
			return 0, err
		}
		return arith(n.at, nodeops[n.kind], a, b)
	default:
		panic("intexpr: invalid AST node " + n.kind.String())
	}
}

package clause

import (
	"strings"

	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
)

type Operator string

const (
	In      Operator = "IN"
	NotIn   Operator = "NOT IN"
	Like    Operator = "LIKE"
	NotLike Operator = "NOT LIKE"
)

// Operators lists the supported operators.
var Operators = []Operator{In, NotIn, Like, NotLike}

// ParseOperator accepts any casing and spacing of a supported operator.
func ParseOperator(s string) (Operator, error) {
	op := Operator(strings.ToUpper(strings.Join(strings.Fields(s), " ")))
	if !op.Valid() {
		return "", srvErrors.NewUnsupportedOperatorError(s)
	}
	return op, nil
}

func (o Operator) Valid() bool {
	switch o {
	case In, NotIn, Like, NotLike:
		return true
	default:
		return false
	}
}

func (o Operator) isList() bool {
	return o == In || o == NotIn
}

func (o Operator) String() string {
	return string(o)
}

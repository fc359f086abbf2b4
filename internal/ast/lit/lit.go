// Package lit defines the literal constant values of the Veldt AST.
// Literals are shared between the named and resolved trees: resolution
// passes them through unchanged.
package lit

import (
	"fmt"
	"math/big"
	"strconv"
)

// Literal is a constant value appearing in an expression or pattern.
type Literal interface {
	literalNode()
	String() string
}

type Unit struct{}

type Bool struct{ Value bool }

type Char struct{ Value rune }

type Float32 struct{ Value float32 }

type Float64 struct{ Value float64 }

type Int8 struct{ Value int8 }

type Int16 struct{ Value int16 }

type Int32 struct{ Value int32 }

type Int64 struct{ Value int64 }

type BigInt struct{ Value *big.Int }

type Str struct{ Value string }

func (Unit) literalNode()    {}
func (Bool) literalNode()    {}
func (Char) literalNode()    {}
func (Float32) literalNode() {}
func (Float64) literalNode() {}
func (Int8) literalNode()    {}
func (Int16) literalNode()   {}
func (Int32) literalNode()   {}
func (Int64) literalNode()   {}
func (BigInt) literalNode()  {}
func (Str) literalNode()     {}

func (Unit) String() string      { return "()" }
func (l Bool) String() string    { return strconv.FormatBool(l.Value) }
func (l Char) String() string    { return strconv.QuoteRune(l.Value) }
func (l Float32) String() string { return strconv.FormatFloat(float64(l.Value), 'g', -1, 32) }
func (l Float64) String() string { return strconv.FormatFloat(l.Value, 'g', -1, 64) }
func (l Int8) String() string    { return strconv.FormatInt(int64(l.Value), 10) }
func (l Int16) String() string   { return strconv.FormatInt(int64(l.Value), 10) }
func (l Int32) String() string   { return strconv.FormatInt(int64(l.Value), 10) }
func (l Int64) String() string   { return strconv.FormatInt(l.Value, 10) }
func (l Str) String() string     { return strconv.Quote(l.Value) }

func (l BigInt) String() string {
	if l.Value == nil {
		return "0"
	}
	return fmt.Sprintf("%sii", l.Value.String())
}

package typesystem

import (
	"fmt"
	"strings"

	"github.com/veldt-lang/veldt/internal/symbols"
)

// Type is the interface for all canonical types produced by resolution.
// The set of variants is closed: primitives (TCon), enums, tuples,
// functions, type applications, and type variables.
type Type interface {
	String() string
	Kind() Kind
}

// TVar represents a type variable (e.g. 'a, 'b, t1). Type variables
// introduced before resolution pass through unchanged.
type TVar struct {
	Name    string
	KindVal Kind // renamed from Kind to avoid collision with the method
}

func (t TVar) String() string { return t.Name }

func (t TVar) Kind() Kind {
	if t.KindVal == nil {
		return Star
	}
	return t.KindVal
}

// TCon represents a primitive type constant.
type TCon struct {
	Name string
}

func (t TCon) String() string { return t.Name }
func (t TCon) Kind() Kind     { return Star }

// The closed set of primitive types.
var (
	Unit    = TCon{Name: "Unit"}
	Bool    = TCon{Name: "Bool"}
	Char    = TCon{Name: "Char"}
	Float32 = TCon{Name: "Float32"}
	Float64 = TCon{Name: "Float64"}
	Int8    = TCon{Name: "Int8"}
	Int16   = TCon{Name: "Int16"}
	Int32   = TCon{Name: "Int32"}
	Int64   = TCon{Name: "Int64"}
	BigInt  = TCon{Name: "BigInt"}
	Str     = TCon{Name: "Str"}
	Native  = TCon{Name: "Native"}
)

// Primitives maps the written name of a primitive type to its canonical
// type. The unsized aliases Int and Float widen to Int32 and Float64.
var Primitives = map[string]Type{
	"Unit":    Unit,
	"Bool":    Bool,
	"Char":    Char,
	"Float":   Float64,
	"Float32": Float32,
	"Float64": Float64,
	"Int":     Int32,
	"Int8":    Int8,
	"Int16":   Int16,
	"Int32":   Int32,
	"Int64":   Int64,
	"BigInt":  BigInt,
	"Str":     Str,
	"Native":  Native,
}

// TEnum represents a resolved enum type.
type TEnum struct {
	Sym     symbols.EnumSym
	KindVal Kind
}

func (t TEnum) String() string { return t.Sym.String() }

func (t TEnum) Kind() Kind {
	if t.KindVal == nil {
		return Star
	}
	return t.KindVal
}

// TTuple represents a tuple type (t1, ..., tn).
type TTuple struct {
	Elements []Type
}

func (t TTuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

func (t TTuple) Kind() Kind { return Star }

// TFunc represents a function type (t1, ..., tn) -> r.
type TFunc struct {
	Params     []Type
	ReturnType Type
}

func (t TFunc) String() string {
	parts := make([]string, len(t.Params))
	for i, p := range t.Params {
		parts[i] = p.String()
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), t.ReturnType.String())
}

func (t TFunc) Kind() Kind { return Star }

// TApp represents a type application base[t1, ..., tn].
type TApp struct {
	Constructor Type
	Args        []Type
}

func (t TApp) String() string {
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return fmt.Sprintf("%s[%s]", t.Constructor.String(), strings.Join(parts, ", "))
}

func (t TApp) Kind() Kind {
	// The kind of an application peels arrows off the constructor; with
	// default Star kinds this collapses to Star.
	k := t.Constructor.Kind()
	for range t.Args {
		if ka, ok := k.(KArrow); ok {
			k = ka.Right
		}
	}
	return k
}

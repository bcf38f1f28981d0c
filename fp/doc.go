// Package fp provides first-class function values: named function types
// for the usual single-operation capabilities (predicates, consumers,
// suppliers, one- and two-argument functions), and combinators to
// compose them.
//
// The types exist so that function values can be stored in variables
// and fields, passed as arguments, and returned as results with a name
// that says what they are for:
//
//	var discount fp.UnaryOperator[float64] = func(price float64) float64 {
//		return price * 0.9
//	}
//
//	squareThenDouble := fp.Then(square, double)
//
// The stream package accepts these types through its Func* adapters.
package fp

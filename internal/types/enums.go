package types

// TypeKind enumerates the type kinds an inversion-api document may
// declare.  Primitives carry no children; optional/array wrap exactly
// one child; struct/enum carry indexed members; named is an alias to
// another declared type.
type TypeKind string

const (
	KindNull     TypeKind = "null"
	KindBool     TypeKind = "bool"
	KindI32      TypeKind = "i32"
	KindU32      TypeKind = "u32"
	KindI64      TypeKind = "i64"
	KindU64      TypeKind = "u64"
	KindF64      TypeKind = "f64"
	KindBytes    TypeKind = "bytes"
	KindString   TypeKind = "string"
	KindOptional TypeKind = "optional"
	KindArray    TypeKind = "array"
	KindStruct   TypeKind = "struct"
	KindEnum     TypeKind = "enum"
	KindNamed    TypeKind = "namedType"
)

// KindFromString maps a document kind string to a TypeKind.  The second
// return is false for unknown strings; the caller decides how to report
// that.
func KindFromString(value string) (TypeKind, bool) {
	switch TypeKind(value) {
	case KindNull, KindBool, KindI32, KindU32, KindI64, KindU64,
		KindF64, KindBytes, KindString, KindOptional, KindArray,
		KindStruct, KindEnum, KindNamed:
		return TypeKind(value), true
	default:
		return "", false
	}
}

// IsPrimitive reports whether the kind carries no child types.
func (k TypeKind) IsPrimitive() bool {
	switch k {
	case KindNull, KindBool, KindI32, KindU32, KindI64, KindU64,
		KindF64, KindBytes, KindString:
		return true
	default:
		return false
	}
}

// CallDirection distinguishes the two call namespaces: callsIn entries
// are served by the document owner, callsOut entries are requests the
// owner makes of its dependant binding.
type CallDirection string

const (
	CallIn  CallDirection = "callsIn"
	CallOut CallDirection = "callsOut"
)

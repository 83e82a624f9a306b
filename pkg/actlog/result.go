package actlog

import "fmt"

// ResultType classifies point events attached to an activity. Sinks
// ignore kinds they do not handle.
type ResultType int

const (
	// ResultFileLinked reports one file deduplicated during store
	// optimisation; field 0 is its size in bytes.
	ResultFileLinked ResultType = iota
	// ResultBuildLogLine carries one line of build output; field 0 is
	// the text.
	ResultBuildLogLine
	// ResultUntrustedPath reports a path whose signature was not
	// trusted during verification.
	ResultUntrustedPath
	// ResultCorruptedPath reports a path whose contents failed
	// verification.
	ResultCorruptedPath
	// ResultSetPhase names the phase a build has entered; field 0 is
	// the phase name.
	ResultSetPhase
)

// String returns a short diagnostic name for the result kind.
func (t ResultType) String() string {
	switch t {
	case ResultFileLinked:
		return "file-linked"
	case ResultBuildLogLine:
		return "build-log-line"
	case ResultUntrustedPath:
		return "untrusted-path"
	case ResultCorruptedPath:
		return "corrupted-path"
	case ResultSetPhase:
		return "set-phase"
	default:
		return fmt.Sprintf("result(%d)", int(t))
	}
}

type fieldKind int

const (
	fieldNone fieldKind = iota
	fieldString
	fieldUint
)

func (k fieldKind) String() string {
	switch k {
	case fieldString:
		return "string"
	case fieldUint:
		return "uint"
	default:
		return "empty"
	}
}

// Field is a typed value attached to a result: a string or an unsigned
// integer. Reading a field through the wrong accessor, or reading the
// zero Field at all, is a producer bug and panics.
type Field struct {
	kind fieldKind
	str  string
	num  uint64
}

// StringField wraps a string value.
func StringField(s string) Field {
	return Field{kind: fieldString, str: s}
}

// UintField wraps an unsigned integer value.
func UintField(v uint64) Field {
	return Field{kind: fieldUint, num: v}
}

// Str returns the string value.
func (f Field) Str() string {
	if f.kind != fieldString {
		panic(fmt.Sprintf("actlog: field holds %s, not string", f.kind))
	}
	return f.str
}

// Uint returns the integer value.
func (f Field) Uint() uint64 {
	if f.kind != fieldUint {
		panic(fmt.Sprintf("actlog: field holds %s, not uint", f.kind))
	}
	return f.num
}

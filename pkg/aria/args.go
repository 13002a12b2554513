package aria

// ArgKind tags the payload carried by an Arg.
type ArgKind int

const (
	// ArgBool carries a boolean.
	ArgBool ArgKind = iota
	// ArgInt carries an integer.
	ArgInt
	// ArgTristate carries a Tristate.
	ArgTristate
	// ArgEnum carries an enumerated token as its numeric value.
	ArgEnum
	// ArgNumber carries a float64.
	ArgNumber
	// ArgString carries a string.
	ArgString
	// ArgReference carries an Accessible.
	ArgReference
)

func (k ArgKind) String() string {
	switch k {
	case ArgBool:
		return "boolean"
	case ArgInt:
		return "integer"
	case ArgTristate:
		return "tristate"
	case ArgEnum:
		return "enum"
	case ArgNumber:
		return "number"
	case ArgString:
		return "string"
	case ArgReference:
		return "reference"
	default:
		return "unknown"
	}
}

// Arg is one tagged argument supplied when collecting state or property
// values. Construct instances with BoolArg, IntArg, TristateArg, EnumArg,
// NumberArg, StringArg or RefArg.
type Arg struct {
	kind ArgKind
	b    bool
	i    int
	t    Tristate
	f    float64
	s    string
	ref  Accessible
}

// Kind reports the payload tag of the argument.
func (a Arg) Kind() ArgKind { return a.kind }

// BoolArg wraps a boolean argument.
func BoolArg(v bool) Arg { return Arg{kind: ArgBool, b: v} }

// IntArg wraps an integer argument.
func IntArg(v int) Arg { return Arg{kind: ArgInt, i: v} }

// TristateArg wraps a tristate argument.
func TristateArg(v Tristate) Arg { return Arg{kind: ArgTristate, t: v} }

// EnumArg wraps an enumerated token argument, such as a Checked or Sort
// token.
func EnumArg[T ~int](v T) Arg { return Arg{kind: ArgEnum, i: int(v)} }

// NumberArg wraps a floating point argument.
func NumberArg(v float64) Arg { return Arg{kind: ArgNumber, f: v} }

// StringArg wraps a string argument.
func StringArg(v string) Arg { return Arg{kind: ArgString, s: v} }

// RefArg wraps an accessible object argument.
func RefArg(ref Accessible) Arg { return Arg{kind: ArgReference, ref: ref} }

// Args is a positional cursor over tagged arguments. Each collection call
// consumes exactly one argument; the caller is responsible for supplying
// arguments in the order the attributes are collected.
type Args struct {
	list []Arg
	pos  int
}

// NewArgs returns a cursor over args.
func NewArgs(args ...Arg) *Args {
	return &Args{list: args}
}

// Remaining reports how many arguments have not been consumed yet.
func (a *Args) Remaining() int {
	return len(a.list) - a.pos
}

// next consumes and returns the next argument.
func (a *Args) next() (Arg, bool) {
	if a.pos >= len(a.list) {
		return Arg{}, false
	}
	arg := a.list[a.pos]
	a.pos++
	return arg, true
}

package parse

// State is the lexical state of a Decoder.
type State int

const (
	StateScan State = iota
	StateString
	StateTrue
	StateFalse
	StateData
	StateDate
	StateNumber
	StateDouble
	StateDone
	StateError
)

var stateNames = [...]string{
	StateScan:   "scan",
	StateString: "string",
	StateTrue:   "true",
	StateFalse:  "false",
	StateData:   "data",
	StateDate:   "date",
	StateNumber: "number",
	StateDouble: "double",
	StateDone:   "done",
	StateError:  "error",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "invalid"
	}
	return stateNames[s]
}

// expect is what the grammar allows next while scanning.
type expect int

const (
	expectValue expect = iota
	expectFirstElem
	expectElemSep
	expectKey
	expectColon
	expectEntrySep
	expectEnd
)

func (e expect) String() string {
	switch e {
	case expectValue:
		return "a value"
	case expectFirstElem:
		return "a value or ')'"
	case expectElemSep:
		return "',' or ')'"
	case expectKey:
		return "a quoted key or '}'"
	case expectColon:
		return "':' or '='"
	case expectEntrySep:
		return "';'"
	default:
		return "end of input"
	}
}

func (e expect) valueStart() bool {
	return e == expectValue || e == expectFirstElem
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return false
}

func hexVal(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

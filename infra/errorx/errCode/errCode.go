package errCode

type ErrCode int

const (
	UNKNOWN ErrCode = iota
	EMPTY_VALUE
	INVALID_VALUE
	DEGENERATE_VALUE
	OUT_OF_RANGE
	AXIS_MISMATCH
	NOT_FOUND
)

var codeNames = map[ErrCode]string{
	UNKNOWN:          "UNKNOWN",
	EMPTY_VALUE:      "EMPTY_VALUE",
	INVALID_VALUE:    "INVALID_VALUE",
	DEGENERATE_VALUE: "DEGENERATE_VALUE",
	OUT_OF_RANGE:     "OUT_OF_RANGE",
	AXIS_MISMATCH:    "AXIS_MISMATCH",
	NOT_FOUND:        "NOT_FOUND",
}

func (c ErrCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

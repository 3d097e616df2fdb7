package keywords

// Keyword efficiently stores the CSS keywords used
// by the box alignment properties.
type Keyword uint8

const (
	_ Keyword = iota
	Auto
	Baseline
	Center
	End
	First
	FlexEnd
	FlexStart
	Last
	Left
	Legacy
	Normal
	Right
	Safe
	SelfEnd
	SelfStart
	SpaceAround
	SpaceBetween
	SpaceEvenly
	Start
	Stretch
	Unsafe
)

func NewKeyword(s string) Keyword {
	switch s {
	case "auto":
		return Auto
	case "baseline":
		return Baseline
	case "center":
		return Center
	case "end":
		return End
	case "first":
		return First
	case "flex-end":
		return FlexEnd
	case "flex-start":
		return FlexStart
	case "last":
		return Last
	case "left":
		return Left
	case "legacy":
		return Legacy
	case "normal":
		return Normal
	case "right":
		return Right
	case "safe":
		return Safe
	case "self-end":
		return SelfEnd
	case "self-start":
		return SelfStart
	case "space-around":
		return SpaceAround
	case "space-between":
		return SpaceBetween
	case "space-evenly":
		return SpaceEvenly
	case "start":
		return Start
	case "stretch":
		return Stretch
	case "unsafe":
		return Unsafe
	}
	return 0
}

var keywordsNames = [...]string{
	Auto:         "auto",
	Baseline:     "baseline",
	Center:       "center",
	End:          "end",
	First:        "first",
	FlexEnd:      "flex-end",
	FlexStart:    "flex-start",
	Last:         "last",
	Left:         "left",
	Legacy:       "legacy",
	Normal:       "normal",
	Right:        "right",
	Safe:         "safe",
	SelfEnd:      "self-end",
	SelfStart:    "self-start",
	SpaceAround:  "space-around",
	SpaceBetween: "space-between",
	SpaceEvenly:  "space-evenly",
	Start:        "start",
	Stretch:      "stretch",
	Unsafe:       "unsafe",
}

func (k Keyword) String() string {
	if int(k) < len(keywordsNames) && k != 0 {
		return keywordsNames[k]
	}
	return "<invalid keyword>"
}

// NewKeywords converts a list of keywords, returning false
// if one of them is unknown.
func NewKeywords(ss []string) ([]Keyword, bool) {
	out := make([]Keyword, len(ss))
	for i, s := range ss {
		out[i] = NewKeyword(s)
		if out[i] == 0 {
			return nil, false
		}
	}
	return out, true
}

package keywords

import (
	"testing"

	tu "github.com/benoitkugler/gridlayout/utils/testutils"
)

func TestKeywordRoundTrip(t *testing.T) {
	for k := Auto; k <= Unsafe; k++ {
		tu.AssertEqual(t, NewKeyword(k.String()), k)
	}
	tu.AssertEqual(t, NewKeyword("space-between"), SpaceBetween)
	tu.AssertEqual(t, NewKeyword("dense"), Keyword(0))
}

func TestNewKeywords(t *testing.T) {
	kws, ok := NewKeywords([]string{"safe", "center"})
	tu.AssertEqual(t, ok, true)
	tu.AssertEqual(t, kws, []Keyword{Safe, Center})

	_, ok = NewKeywords([]string{"first", "baselin"})
	tu.AssertEqual(t, ok, false)
}

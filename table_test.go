package mailchars

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func isAlnum(ch rune) bool {
	return '0' <= ch && ch <= '9' || 'A' <= ch && ch <= 'Z' || 'a' <= ch && ch <= 'z'
}

// Restatements of each charset straight from the RFC text, kept deliberately
// different in shape from the table construction so that the two can check
// each other over the whole us-ascii range.
var charsetCases = []struct {
	name string
	set  Charset
	has  func(ch rune) bool
}{
	{
		name: "QTextWs",
		set:  QTextWs,
		has: func(ch rune) bool {
			return IsWS(ch) || IsVChar(ch) && ch != '"' && ch != '\\'
		},
	},
	{
		name: "CTextWs",
		set:  CTextWs,
		has: func(ch rune) bool {
			return IsWS(ch) || IsVChar(ch) && ch != '(' && ch != ')' && ch != '\\'
		},
	},
	{
		name: "DTextWs",
		set:  DTextWs,
		has: func(ch rune) bool {
			return IsWS(ch) || IsVChar(ch) && ch != '[' && ch != ']' && ch != '\\'
		},
	},
	{
		name: "AText",
		set:  AText,
		has: func(ch rune) bool {
			return isAlnum(ch) || strings.ContainsRune("!#$%&'*+-/=?^_`{|}~", ch)
		},
	},
	{
		name: "RestrictedToken",
		set:  RestrictedToken,
		has: func(ch rune) bool {
			return isAlnum(ch) || strings.ContainsRune("!#$&-^_.+", ch)
		},
	},
	{
		name: "Token",
		set:  Token,
		has: func(ch rune) bool {
			return IsVChar(ch) && !strings.ContainsRune("()<>@,;:\\\"/[]?=", ch)
		},
	},
	{
		name: "ObsNoWsCtl",
		set:  ObsNoWsCtl,
		has: func(ch rune) bool {
			return 1 <= ch && ch <= 8 || ch == 11 || ch == 12 || 14 <= ch && ch <= 31 || ch == 127
		},
	},
	{
		name: "Rfc7230Token",
		set:  Rfc7230Token,
		has: func(ch rune) bool {
			return isAlnum(ch) || strings.ContainsRune("!#$%&'*+-.^_`|~", ch)
		},
	},
}

func TestTableAgainstRFCText(t *testing.T) {
	for _, test := range charsetCases {
		t.Run(test.name, func(t *testing.T) {
			for ch := rune(0); ch < 0x80; ch++ {
				want := test.has(ch)
				assert.Equal(t, want, test.set.Contains(ch),
					"Contains(%q)", ch,
				)
				assert.Equal(t, want, Lookup(ch).Is(test.set),
					"Lookup(%q).Is", ch,
				)
			}
		})
	}
}

// Direct tests and tests through a LookupResult must agree everywhere,
// including outside the table.
func TestDirectAndLookupAgree(t *testing.T) {
	chars := []rune{0, '\t', ' ', '!', 'A', 'd', '~', 0x7f, 0x80, '↓', -1}
	for _, test := range charsetCases {
		for _, ch := range chars {
			res := Lookup(ch)
			assert.Equal(t, test.set.Contains(ch), res.Is(test.set),
				"%s: strict mismatch for %U", test.name, ch,
			)
			assert.Equal(t, test.set.ContainsOrNonASCII(ch), res.IsOrNonASCII(test.set),
				"%s: non-ascii mismatch for %U", test.name, ch,
			)
		}
	}
}

func TestCharsetRelations(t *testing.T) {
	for ch := rune(0); ch < 0x80; ch++ {
		res := Lookup(ch)

		// rfc6838 restricted-name chars are a subset of the rfc2045 token
		// chars, which in turn only add "{" and "}" over rfc7230 tchar.
		if res.Is(RestrictedToken) {
			assert.True(t, res.Is(Token), "%q", ch)
		}
		if res.Is(Rfc7230Token) {
			assert.True(t, res.Is(Token), "%q", ch)
		}
		assert.Equal(t,
			res.Is(Token) && ch != '{' && ch != '}',
			res.Is(Rfc7230Token),
			"%q", ch,
		)

		// obs-NO-WS-CTL stays disjoint from the modern sets so that it can
		// be combined with them to opt into the obsolete grammar.
		if res.Is(ObsNoWsCtl) {
			assert.Equal(t, Charset(0), res.mask&^ObsNoWsCtl, "%q", ch)
		}
	}
}

func TestCharsetBitsDisjoint(t *testing.T) {
	var seen Charset
	for _, test := range charsetCases {
		assert.NotZero(t, test.set, test.name)
		assert.Zero(t, test.set&(test.set-1), "%s: not a single bit", test.name)
		assert.Zero(t, seen&test.set, "%s: bit already taken", test.name)
		seen |= test.set
	}
	assert.Equal(t, Charset(0xff), seen)
}

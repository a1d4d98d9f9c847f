package ppath

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrSyntax = errors.New("syntax error")

// Segment is one step of a path: the separator that introduced it and its
// text with quotes and the closing bracket removed.
type Segment struct {
	Sep    byte
	Text   string
	Quoted bool
}

func (s Segment) String() string {
	text := s.Text
	if s.Quoted {
		text = `"` + text + `"`
	}
	if s.Sep == '[' {
		return "[" + text + "]"
	}
	return "." + text
}

// IsWhole reports whether expr addresses the whole document.
func IsWhole(expr string) bool {
	return expr == "" || expr == "-"
}

// Parse splits expr into segments. It never modifies expr; segment text is
// a substring of it. A nil result with a nil error means the whole document.
func Parse(expr string) ([]Segment, error) {
	if IsWhole(expr) {
		return nil, nil
	}
	var (
		res []Segment
		sep byte = '.'
		i   int
		n   = len(expr)
	)
	for {
		seg, next, err := segmentAt(expr, i, sep)
		if err != nil {
			return nil, err
		}
		res = append(res, seg)
		if next >= n {
			return res, nil
		}
		sep = expr[next]
		i = next + 1
	}
}

// segmentAt reads the segment starting at i and returns it along with the
// position of the separator following it (len(expr) at the end).
func segmentAt(expr string, i int, sep byte) (Segment, int, error) {
	n := len(expr)
	if i < n && expr[i] == '"' {
		j := strings.IndexByte(expr[i+1:], '"')
		if j < 0 {
			return Segment{}, 0, fmt.Errorf("%w: mismatched quotes in %q", ErrSyntax, expr)
		}
		seg := Segment{Sep: sep, Text: expr[i+1 : i+1+j], Quoted: true}
		next := i + j + 2
		if sep == '[' {
			if next >= n || expr[next] != ']' {
				return Segment{}, 0, fmt.Errorf("%w: expected ']' after quoted index at offset %d in %q", ErrSyntax, next, expr)
			}
			next++
		}
		if next < n && expr[next] != '.' && expr[next] != '[' {
			return Segment{}, 0, fmt.Errorf("%w: unexpected %s after quoted segment in %q", ErrSyntax, strconv.QuoteRune(rune(expr[next])), expr)
		}
		return seg, next, nil
	}
	// scanning starts past the segment's first character so that a key may
	// itself begin with a separator character.
	next := n
	if i+1 < n {
		if k := strings.IndexAny(expr[i+1:], ".["); k >= 0 {
			next = i + 1 + k
		}
	}
	text := expr[min(i, n):next]
	if sep == '[' {
		if !strings.HasSuffix(text, "]") {
			return Segment{}, 0, fmt.Errorf("%w: expected ']' to close %q in %q", ErrSyntax, "["+text, expr)
		}
		text = text[:len(text)-1]
	}
	return Segment{Sep: sep, Text: text}, next, nil
}

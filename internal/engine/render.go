package engine

import (
	"cmp"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Render writes n as indented JSON text. Object members follow script-host
// property order (see PropertyOrder), numbers are normalized with FormatFloat,
// and empty containers render as {} and [].
func Render(n *Node, indent string) string {
	var b strings.Builder
	render(&b, n, indent, 0)
	return b.String()
}

func render(b *strings.Builder, n *Node, indent string, depth int) {
	if n == nil {
		b.WriteString("null")
		return
	}
	switch n.Kind {
	case KindBeginObject:
		if len(n.Members) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteByte('{')
		for i, m := range PropertyOrder(n.Members) {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, indent, depth+1)
			b.WriteString(Quote(m.Key))
			b.WriteString(": ")
			render(b, m.Value, indent, depth+1)
		}
		newline(b, indent, depth)
		b.WriteByte('}')
	case KindBeginArray:
		if len(n.Items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteByte('[')
		for i, it := range n.Items {
			if i > 0 {
				b.WriteByte(',')
			}
			newline(b, indent, depth+1)
			render(b, it, indent, depth+1)
		}
		newline(b, indent, depth)
		b.WriteByte(']')
	case KindString:
		b.WriteString(Quote(n.Text))
	case KindNumber:
		f, err := strconv.ParseFloat(n.Text, 64)
		if (err != nil && !isRangeErr(err)) || math.IsInf(f, 0) || math.IsNaN(f) {
			b.WriteString("null")
			return
		}
		b.WriteString(FormatFloat(f))
	case KindBool:
		b.WriteString(strconv.FormatBool(n.Bool))
	default:
		b.WriteString("null")
	}
}

// PropertyOrder returns members in the order a script host enumerates object
// properties: array-index keys ("0" to "4294967294", no leading zeros) first
// in ascending numeric order, then every other key in insertion order.
func PropertyOrder(members []Member) []Member {
	var index, named []Member
	for _, m := range members {
		if _, ok := arrayIndex(m.Key); ok {
			index = append(index, m)
		} else {
			named = append(named, m)
		}
	}
	if len(index) == 0 {
		return members
	}
	slices.SortFunc(index, func(a, b Member) int {
		x, _ := arrayIndex(a.Key)
		y, _ := arrayIndex(b.Key)
		return cmp.Compare(x, y)
	})
	return append(index, named...)
}

// arrayIndex reports whether key is the canonical text of an array index.
func arrayIndex(key string) (uint32, bool) {
	if key == "" || (len(key) > 1 && key[0] == '0') {
		return 0, false
	}
	for i := 0; i < len(key); i++ {
		if key[i] < '0' || key[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseUint(key, 10, 32)
	if err != nil || n == math.MaxUint32 {
		return 0, false
	}
	return uint32(n), true
}

func newline(b *strings.Builder, indent string, depth int) {
	b.WriteByte('\n')
	for i := 0; i < depth; i++ {
		b.WriteString(indent)
	}
}

func isRangeErr(err error) bool {
	ne, ok := err.(*strconv.NumError)
	return ok && ne.Err == strconv.ErrRange
}

// FormatFloat renders f the way a script host prints a number: shortest
// round-trip digits, exponent form below 1e-6 and from 1e21 upward, and 0 for
// negative zero.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	s := strconv.FormatFloat(f, 'e', -1, 64)
	mant, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mant + "e" + sign + digits
}

// Quote renders s as a JSON string literal with minimal escaping: quotes,
// backslashes and control characters only.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				const hex = "0123456789abcdef"
				b.WriteString(`\u00`)
				b.WriteByte(hex[r>>4])
				b.WriteByte(hex[r&0xF])
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

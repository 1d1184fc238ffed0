package xpattern

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type node interface {
	parse(st *parseState, pos int) (int, error)
	format(b *strings.Builder, f Fields) error
}

type signStyle uint8

const (
	signNotNegative signStyle = iota
	signNormal                // leading '-' for negative values
	signExceedsPad            // '-' for negative, '+' when wider than the minimum width
)

var pow10 = [...]int64{1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000}

func parseNodes(nodes []node, st *parseState, pos int) (int, error) {
	var err error
	for _, n := range nodes {
		if pos, err = n.parse(st, pos); err != nil {
			return pos, err
		}
	}
	return pos, nil
}

func formatNodes(nodes []node, b *strings.Builder, f Fields) error {
	for _, n := range nodes {
		if err := n.format(b, f); err != nil {
			return err
		}
	}
	return nil
}

func unavailable(field Field) error {
	return fmt.Errorf("%w: %s", ErrFieldUnavailable, field)
}

type literalNode struct {
	text string
}

func (n *literalNode) parse(st *parseState, pos int) (int, error) {
	if !strings.HasPrefix(st.text[pos:], n.text) {
		return pos, st.fail(pos, "expected %q", n.text)
	}
	return pos + len(n.text), nil
}

func (n *literalNode) format(b *strings.Builder, _ Fields) error {
	b.WriteString(n.text)
	return nil
}

type numberNode struct {
	field    Field
	minWidth int
	maxWidth int
	sign     signStyle
	reserve  int // digits left for the fixed-width numbers that follow
}

func (n *numberNode) parse(st *parseState, pos int) (int, error) {
	text := st.text
	p := pos
	neg := false

	if p < len(text) {
		switch {
		case text[p] == '-' && n.sign != signNotNegative:
			neg = true
			p++
		case text[p] == '+' && n.sign == signExceedsPad:
			p++
		}
	}

	run := 0
	for p+run < len(text) && isDigit(text[p+run]) {
		run++
	}

	take := min(run-n.reserve, n.maxWidth)
	if take < n.minWidth {
		return pos, st.fail(p, "expected at least %d digits for %s", n.minWidth, n.field)
	}
	if p > pos && !neg && take <= n.minWidth {
		return pos, st.fail(pos, "unexpected sign for %s", n.field)
	}
	if p == pos && n.sign == signExceedsPad && take > n.minWidth {
		return pos, st.fail(pos, "%s wider than %d digits needs a sign", n.field, n.minWidth)
	}

	v, err := strconv.ParseInt(text[p:p+take], 10, 64)
	if err != nil {
		return pos, st.fail(p, "%s value out of range", n.field)
	}
	if neg {
		v = -v
	}

	if err := st.put(n.field, v, pos); err != nil {
		return pos, err
	}
	return p + take, nil
}

func (n *numberNode) format(b *strings.Builder, f Fields) error {
	v, ok := f.value(n.field)
	if !ok {
		return unavailable(n.field)
	}

	neg := v < 0
	if neg && n.sign == signNotNegative {
		return fmt.Errorf("%w: negative %s %d", ErrUnprintable, n.field, v)
	}

	abs := uint64(v)
	if neg {
		abs = uint64(-v)
	}
	digits := strconv.FormatUint(abs, 10)
	if len(digits) > n.maxWidth {
		return fmt.Errorf("%w: %s %d exceeds %d digits", ErrUnprintable, n.field, v, n.maxWidth)
	}

	switch {
	case neg:
		b.WriteByte('-')
	case n.sign == signExceedsPad && len(digits) > n.minWidth:
		b.WriteByte('+')
	}
	for i := len(digits); i < n.minWidth; i++ {
		b.WriteByte('0')
	}
	b.WriteString(digits)
	return nil
}

// reducedNode is a two digit year in the range 2000..2099.
type reducedNode struct {
	field Field
}

const reducedBase = 2000

func (n *reducedNode) parse(st *parseState, pos int) (int, error) {
	v, next, ok := digitsAt(st.text, pos, 2)
	if !ok {
		return pos, st.fail(pos, "expected 2 digits for %s", n.field)
	}
	if err := st.put(n.field, reducedBase+v, pos); err != nil {
		return pos, err
	}
	return next, nil
}

func (n *reducedNode) format(b *strings.Builder, f Fields) error {
	v, ok := f.value(n.field)
	if !ok {
		return unavailable(n.field)
	}
	v %= 100
	if v < 0 {
		v += 100
	}
	if v < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(v, 10))
	return nil
}

// fractionNode is a fixed number of leading digits of the second fraction.
type fractionNode struct {
	width int
}

func (n *fractionNode) parse(st *parseState, pos int) (int, error) {
	v, next, ok := digitsAt(st.text, pos, n.width)
	if !ok {
		return pos, st.fail(pos, "expected %d fraction digits", n.width)
	}
	if err := st.put(FieldNano, v*pow10[9-n.width], pos); err != nil {
		return pos, err
	}
	return next, nil
}

func (n *fractionNode) format(b *strings.Builder, f Fields) error {
	v, ok := f.value(FieldNano)
	if !ok {
		return unavailable(FieldNano)
	}
	digits := strconv.FormatInt(v/pow10[9-n.width], 10)
	for i := len(digits); i < n.width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(digits)
	return nil
}

type textNode struct {
	field Field
	names []string
	base  int64
}

func (n *textNode) parse(st *parseState, pos int) (int, error) {
	best := -1
	for i, name := range n.names {
		if strings.HasPrefix(st.text[pos:], name) && (best < 0 || len(name) > len(n.names[best])) {
			best = i
		}
	}
	if best < 0 {
		return pos, st.fail(pos, "expected %s text", n.field)
	}
	if err := st.put(n.field, n.base+int64(best), pos); err != nil {
		return pos, err
	}
	return pos + len(n.names[best]), nil
}

func (n *textNode) format(b *strings.Builder, f Fields) error {
	v, ok := f.value(n.field)
	if !ok {
		return unavailable(n.field)
	}
	idx := v - n.base
	if idx < 0 || idx >= int64(len(n.names)) {
		return fmt.Errorf("%w: %s %d has no text", ErrUnprintable, n.field, v)
	}
	b.WriteString(n.names[idx])
	return nil
}

type presence uint8

const (
	absent presence = iota
	optional
	mandatory
)

const maxOffsetSeconds = 18 * 3600

type offsetNode struct {
	colon   bool
	minutes presence
	seconds presence
	zero    string
	gmt     bool
}

func (n *offsetNode) parse(st *parseState, pos int) (int, error) {
	text := st.text
	p := pos

	switch {
	case n.gmt:
		if !strings.HasPrefix(text[p:], "GMT") {
			return pos, st.fail(p, "expected GMT offset")
		}
		p += 3
		if p >= len(text) || (text[p] != '+' && text[p] != '-') {
			return p, st.put(FieldOffset, 0, pos)
		}
	case n.zero == "Z" && strings.HasPrefix(text[p:], "Z"):
		return p + 1, st.put(FieldOffset, 0, pos)
	}

	if p >= len(text) || (text[p] != '+' && text[p] != '-') {
		return pos, st.fail(p, "expected offset sign")
	}
	neg := text[p] == '-'
	p++

	hh, p, ok := digitsAt(text, p, 2)
	if !ok {
		return pos, st.fail(p, "expected offset hours")
	}

	var mm, ss int64
	if n.minutes != absent {
		next, v, ok := n.component(text, p)
		switch {
		case ok:
			mm, p = v, next
			if n.seconds != absent {
				if next, v, ok := n.component(text, p); ok {
					ss, p = v, next
				}
			}
		case n.minutes == mandatory:
			return pos, st.fail(p, "expected offset minutes")
		}
	}

	if hh > 18 || mm > 59 || ss > 59 {
		return pos, st.fail(pos, "offset out of range")
	}
	total := hh*3600 + mm*60 + ss
	if total > maxOffsetSeconds {
		return pos, st.fail(pos, "offset out of range")
	}
	if neg {
		total = -total
	}

	return p, st.put(FieldOffset, total, pos)
}

func (n *offsetNode) component(text string, p int) (int, int64, bool) {
	if n.colon {
		if p >= len(text) || text[p] != ':' {
			return p, 0, false
		}
		p++
	}
	v, next, ok := digitsAt(text, p, 2)
	return next, v, ok
}

func (n *offsetNode) format(b *strings.Builder, f Fields) error {
	v, ok := f.value(FieldOffset)
	if !ok {
		return unavailable(FieldOffset)
	}

	if n.gmt {
		b.WriteString("GMT")
		if v == 0 {
			return nil
		}
	} else if v == 0 {
		b.WriteString(n.zero)
		return nil
	}

	if v < 0 {
		b.WriteByte('-')
		v = -v
	} else {
		b.WriteByte('+')
	}
	hh, mm, ss := v/3600, v/60%60, v%60

	writeTwo(b, hh)
	if n.minutes == mandatory || (n.minutes == optional && (mm != 0 || ss != 0)) {
		if n.colon {
			b.WriteByte(':')
		}
		writeTwo(b, mm)
		if n.seconds != absent && ss != 0 {
			if n.colon {
				b.WriteByte(':')
			}
			writeTwo(b, ss)
		}
	}
	return nil
}

type optionalNode struct {
	nodes []node
}

func (n *optionalNode) parse(st *parseState, pos int) (int, error) {
	snapshot := *st
	next, err := parseNodes(n.nodes, st, pos)
	if err != nil {
		*st = snapshot
		return pos, nil
	}
	return next, nil
}

func (n *optionalNode) format(b *strings.Builder, f Fields) error {
	var sub strings.Builder
	if err := formatNodes(n.nodes, &sub, f); err != nil {
		if errors.Is(err, ErrFieldUnavailable) {
			return nil
		}
		return err
	}
	b.WriteString(sub.String())
	return nil
}

// adjacentWidth reports the width of nodes that consume an exact number of digits.
func adjacentWidth(n node) (int, bool) {
	switch n := n.(type) {
	case *numberNode:
		if n.minWidth == n.maxWidth && n.sign == signNotNegative {
			return n.minWidth, true
		}
	case *reducedNode:
		return 2, true
	case *fractionNode:
		return n.width, true
	}
	return 0, false
}

// reserveAdjacent lets a variable-width number leave room for the fixed-width
// numbers directly after it, so yyyyMMdd parses.
func reserveAdjacent(nodes []node) {
	for i, n := range nodes {
		num, ok := n.(*numberNode)
		if !ok || num.minWidth == num.maxWidth {
			continue
		}
		num.reserve = 0
		for _, next := range nodes[i+1:] {
			w, fixed := adjacentWidth(next)
			if !fixed {
				break
			}
			num.reserve += w
		}
	}
}

func digitsAt(text string, pos, width int) (int64, int, bool) {
	if pos+width > len(text) {
		return 0, pos, false
	}
	var v int64
	for i := pos; i < pos+width; i++ {
		if !isDigit(text[i]) {
			return 0, pos, false
		}
		v = v*10 + int64(text[i]-'0')
	}
	return v, pos + width, true
}

func writeTwo(b *strings.Builder, v int64) {
	b.WriteByte(byte('0' + v/10))
	b.WriteByte(byte('0' + v%10))
}

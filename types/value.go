package types

import (
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Conversion failure categories. The conversion functions in the util
// package wrap these so callers can distinguish malformed input from
// input which parses but does not fit the destination width.
var (
	ErrSyntax      = errors.New("invalid syntax")
	ErrRange       = errors.New("value out of range")
	ErrUnsupported = errors.New("unsupported value kind")
)

// ValueKind identifies the scalar type an option argument converts to.
// A kind describes both the parse grammar and the width checked against.
type ValueKind int

const (
	// KindNone marks an option argument which is kept as raw text only.
	KindNone ValueKind = iota
	KindString
	KindBool
	// KindRune accepts exactly one UTF-8 character.
	KindRune
	// KindByte accepts exactly one byte.
	KindByte
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	// KindTime accepts most common date/time layouts.
	KindTime
	// KindDuration accepts time.ParseDuration syntax, e.g. "1h30m".
	KindDuration
)

func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindRune:
		return "rune"
	case KindByte:
		return "byte"
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint:
		return "uint"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindTime:
		return "time"
	case KindDuration:
		return "duration"
	}
	return "unknown"
}

// Signed reports whether k is one of the signed integer kinds.
func (k ValueKind) Signed() bool {
	switch k {
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
	return false
}

// Unsigned reports whether k is one of the unsigned integer kinds.
func (k ValueKind) Unsigned() bool {
	switch k {
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
	return false
}

// Bits returns the bit size strconv expects for numeric kinds, 0 otherwise.
func (k ValueKind) Bits() int {
	switch k {
	case KindInt, KindUint:
		return strconv.IntSize
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}
	return 0
}

// Value is a converted option argument tagged with its kind. The zero
// Value has KindNone and renders as the empty string.
type Value struct {
	kind ValueKind
	s    string
	b    bool
	i    int64
	u    uint64
	f    float64
	t    time.Time
	d    time.Duration
}

func NewString(s string) Value          { return Value{kind: KindString, s: s} }
func NewBool(b bool) Value              { return Value{kind: KindBool, b: b} }
func NewRune(r rune) Value              { return Value{kind: KindRune, i: int64(r)} }
func NewByte(b byte) Value              { return Value{kind: KindByte, u: uint64(b)} }
func NewTime(t time.Time) Value         { return Value{kind: KindTime, t: t} }
func NewDuration(d time.Duration) Value { return Value{kind: KindDuration, d: d} }

// NewInt builds a signed integer value of the given width kind.
func NewInt(kind ValueKind, v int64) Value { return Value{kind: kind, i: v} }

// NewUint builds an unsigned integer value of the given width kind.
func NewUint(kind ValueKind, v uint64) Value { return Value{kind: kind, u: v} }

// NewFloat builds a floating-point value of the given width kind.
func NewFloat(kind ValueKind, v float64) Value { return Value{kind: kind, f: v} }

func (v Value) Kind() ValueKind         { return v.kind }
func (v Value) Str() string             { return v.s }
func (v Value) Bool() bool              { return v.b }
func (v Value) Rune() rune              { return rune(v.i) }
func (v Value) Byte() byte              { return byte(v.u) }
func (v Value) Int() int64              { return v.i }
func (v Value) Uint() uint64            { return v.u }
func (v Value) Float() float64          { return v.f }
func (v Value) Time() time.Time         { return v.t }
func (v Value) Duration() time.Duration { return v.d }

// Interface returns the payload as the Go type matching the kind, e.g.
// int8 for KindInt8. KindNone returns nil.
func (v Value) Interface() any {
	switch v.kind {
	case KindString:
		return v.s
	case KindBool:
		return v.b
	case KindRune:
		return rune(v.i)
	case KindByte:
		return byte(v.u)
	case KindInt:
		return int(v.i)
	case KindInt8:
		return int8(v.i)
	case KindInt16:
		return int16(v.i)
	case KindInt32:
		return int32(v.i)
	case KindInt64:
		return v.i
	case KindUint:
		return uint(v.u)
	case KindUint8:
		return uint8(v.u)
	case KindUint16:
		return uint16(v.u)
	case KindUint32:
		return uint32(v.u)
	case KindUint64:
		return v.u
	case KindFloat32:
		return float32(v.f)
	case KindFloat64:
		return v.f
	case KindTime:
		return v.t
	case KindDuration:
		return v.d
	}
	return nil
}

// String renders the payload for display.
func (v Value) String() string {
	switch v.kind {
	case KindNone:
		return ""
	case KindString:
		return v.s
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindRune:
		return string(rune(v.i))
	case KindByte:
		return string(rune(v.u))
	case KindFloat32:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case KindFloat64:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindTime:
		return v.t.Format(time.RFC3339)
	case KindDuration:
		return v.d.String()
	}
	if v.kind.Unsigned() {
		return strconv.FormatUint(v.u, 10)
	}
	if v.kind.Signed() {
		return strconv.FormatInt(v.i, 10)
	}
	return fmt.Sprintf("%v", v.Interface())
}

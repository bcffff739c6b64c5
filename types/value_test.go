package types

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValueKind_String(t *testing.T) {
	tests := []struct {
		kind ValueKind
		want string
	}{
		{KindNone, "none"},
		{KindString, "string"},
		{KindBool, "bool"},
		{KindRune, "rune"},
		{KindByte, "byte"},
		{KindInt, "int"},
		{KindInt8, "int8"},
		{KindUint64, "uint64"},
		{KindFloat32, "float32"},
		{KindTime, "time"},
		{KindDuration, "duration"},
		{ValueKind(250), "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestValueKind_Partitions(t *testing.T) {
	signed := []ValueKind{KindInt, KindInt8, KindInt16, KindInt32, KindInt64}
	unsigned := []ValueKind{KindUint, KindUint8, KindUint16, KindUint32, KindUint64}

	for _, k := range signed {
		assert.True(t, k.Signed(), "%s should be signed", k)
		assert.False(t, k.Unsigned(), "%s should not be unsigned", k)
	}
	for _, k := range unsigned {
		assert.True(t, k.Unsigned(), "%s should be unsigned", k)
		assert.False(t, k.Signed(), "%s should not be signed", k)
	}
	assert.False(t, KindString.Signed())
	assert.False(t, KindString.Unsigned())
}

func TestValueKind_Bits(t *testing.T) {
	assert.Equal(t, strconv.IntSize, KindInt.Bits(), "int follows the platform width")
	assert.Equal(t, strconv.IntSize, KindUint.Bits())
	assert.Equal(t, 8, KindInt8.Bits())
	assert.Equal(t, 16, KindUint16.Bits())
	assert.Equal(t, 32, KindFloat32.Bits())
	assert.Equal(t, 64, KindInt64.Bits())
	assert.Equal(t, 0, KindString.Bits(), "non-numeric kinds have no width")
	assert.Equal(t, 0, KindRune.Bits())
}

func TestValue_Accessors(t *testing.T) {
	assert.Equal(t, "text", NewString("text").Str())
	assert.True(t, NewBool(true).Bool())
	assert.Equal(t, 'é', NewRune('é').Rune())
	assert.Equal(t, byte(0x7f), NewByte(0x7f).Byte())
	assert.Equal(t, int64(-9), NewInt(KindInt32, -9).Int())
	assert.Equal(t, uint64(9), NewUint(KindUint8, 9).Uint())
	assert.Equal(t, 1.5, NewFloat(KindFloat64, 1.5).Float())

	d := 90 * time.Minute
	assert.Equal(t, d, NewDuration(d).Duration())

	ts := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, ts, NewTime(ts).Time())

	assert.Equal(t, KindRune, NewRune('x').Kind())
}

func TestValue_Interface(t *testing.T) {
	assert.Equal(t, "text", NewString("text").Interface())
	assert.Equal(t, false, NewBool(false).Interface())
	assert.Equal(t, 'q', NewRune('q').Interface())
	assert.Equal(t, byte(3), NewByte(3).Interface())
	assert.Equal(t, int8(-3), NewInt(KindInt8, -3).Interface(), "the concrete type follows the kind")
	assert.Equal(t, int64(-3), NewInt(KindInt64, -3).Interface())
	assert.Equal(t, uint16(70), NewUint(KindUint16, 70).Interface())
	assert.Equal(t, float32(1.5), NewFloat(KindFloat32, 1.5).Interface())
	assert.Equal(t, 2*time.Second, NewDuration(2*time.Second).Interface())
	assert.Nil(t, Value{}.Interface(), "the zero value carries nothing")
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "", Value{}.String())
	assert.Equal(t, "text", NewString("text").String())
	assert.Equal(t, "true", NewBool(true).String())
	assert.Equal(t, "false", NewBool(false).String())
	assert.Equal(t, "é", NewRune('é').String())
	assert.Equal(t, "A", NewByte('A').String())
	assert.Equal(t, "-42", NewInt(KindInt, -42).String())
	assert.Equal(t, "42", NewUint(KindUint, 42).String())
	assert.Equal(t, "2.5", NewFloat(KindFloat64, 2.5).String())
	assert.Equal(t, "1h30m0s", NewDuration(90*time.Minute).String())

	ts := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2024-06-01T10:30:00Z", NewTime(ts).String())
}

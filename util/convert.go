package util

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/araddon/dateparse"

	"github.com/optree/optree/types"
)

// Convert parses text as the given scalar kind and returns the tagged
// value. Integer kinds auto-detect the base the way strtol does ("0x"
// hex, leading "0" octal, decimal otherwise) and the whole token must be
// consumed. Failures wrap types.ErrSyntax when no valid form was found
// and types.ErrRange when the parsed value does not fit the kind's width.
func Convert(text string, kind types.ValueKind) (types.Value, error) {
	switch kind {
	case types.KindString:
		return types.NewString(text), nil
	case types.KindBool:
		return convertBool(text)
	case types.KindRune:
		return convertRune(text)
	case types.KindByte:
		return convertByte(text)
	case types.KindFloat32, types.KindFloat64:
		f, err := strconv.ParseFloat(text, kind.Bits())
		if err != nil {
			return types.Value{}, convErr(err, text, kind)
		}
		return types.NewFloat(kind, f), nil
	case types.KindTime:
		t, err := dateparse.ParseLocal(text)
		if err != nil {
			return types.Value{}, fmt.Errorf("%w: %q is not a recognized time", types.ErrSyntax, text)
		}
		return types.NewTime(t), nil
	case types.KindDuration:
		d, err := time.ParseDuration(text)
		if err != nil {
			return types.Value{}, fmt.Errorf("%w: %q is not a duration", types.ErrSyntax, text)
		}
		return types.NewDuration(d), nil
	}
	if kind.Signed() {
		n, err := strconv.ParseInt(text, 0, kind.Bits())
		if err != nil {
			return types.Value{}, convErr(err, text, kind)
		}
		return types.NewInt(kind, n), nil
	}
	if kind.Unsigned() {
		n, err := strconv.ParseUint(text, 0, kind.Bits())
		if err != nil {
			return types.Value{}, convErr(err, text, kind)
		}
		return types.NewUint(kind, n), nil
	}
	return types.Value{}, fmt.Errorf("%w: %s", types.ErrUnsupported, kind)
}

func convErr(err error, text string, kind types.ValueKind) error {
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%w: %q does not fit %s", types.ErrRange, text, kind)
	}
	return fmt.Errorf("%w: cannot parse %q as %s", types.ErrSyntax, text, kind)
}

// convertBool accepts the word forms true/false, enabled/disabled,
// yes/no and on/off in any case, then falls back to integer conversion
// accepting exactly 0 or 1.
func convertBool(text string) (types.Value, error) {
	switch strings.ToLower(text) {
	case "true", "enabled", "yes", "on":
		return types.NewBool(true), nil
	case "false", "disabled", "no", "off":
		return types.NewBool(false), nil
	}
	n, err := strconv.ParseInt(text, 0, 64)
	if err != nil || (n != 0 && n != 1) {
		return types.Value{}, fmt.Errorf("%w: %q is not a boolean", types.ErrSyntax, text)
	}
	return types.NewBool(n == 1), nil
}

// convertRune accepts exactly one character. Empty text converts to the
// zero rune; anything longer than one rune is a range failure.
func convertRune(text string) (types.Value, error) {
	if text == "" {
		return types.NewRune(0), nil
	}
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError && size <= 1 {
		return types.Value{}, fmt.Errorf("%w: %q is not valid UTF-8", types.ErrSyntax, text)
	}
	if size != len(text) {
		return types.Value{}, fmt.Errorf("%w: %q is more than one character", types.ErrRange, text)
	}
	return types.NewRune(r), nil
}

func convertByte(text string) (types.Value, error) {
	switch len(text) {
	case 0:
		return types.NewByte(0), nil
	case 1:
		return types.NewByte(text[0]), nil
	}
	return types.Value{}, fmt.Errorf("%w: %q is more than one byte", types.ErrRange, text)
}

// SplitList splits text on any rune in delims. Runs of consecutive
// delimiters yield no empty items. Empty text or an empty delimiter set
// yields a zero-length result.
func SplitList(text, delims string) []string {
	if text == "" || delims == "" {
		return nil
	}
	return strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(delims, r)
	})
}

// ConvertList splits text on delims and converts every item to kind.
// The first failing item aborts the conversion; its error names the item.
func ConvertList(text, delims string, kind types.ValueKind) ([]types.Value, error) {
	items := SplitList(text, delims)
	values := make([]types.Value, 0, len(items))
	for _, item := range items {
		v, err := Convert(item, kind)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", item, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// Store writes a converted scalar through dst, which must be a pointer
// whose type exactly matches the value's kind (*int8 for KindInt8, and
// so on). A mismatch wraps types.ErrUnsupported.
func Store(v types.Value, dst any) error {
	switch v.Kind() {
	case types.KindString:
		if p, ok := dst.(*string); ok {
			*p = v.Str()
			return nil
		}
	case types.KindBool:
		if p, ok := dst.(*bool); ok {
			*p = v.Bool()
			return nil
		}
	case types.KindRune:
		if p, ok := dst.(*rune); ok {
			*p = v.Rune()
			return nil
		}
	case types.KindByte:
		if p, ok := dst.(*byte); ok {
			*p = v.Byte()
			return nil
		}
	case types.KindInt:
		if p, ok := dst.(*int); ok {
			*p = int(v.Int())
			return nil
		}
	case types.KindInt8:
		if p, ok := dst.(*int8); ok {
			*p = int8(v.Int())
			return nil
		}
	case types.KindInt16:
		if p, ok := dst.(*int16); ok {
			*p = int16(v.Int())
			return nil
		}
	case types.KindInt32:
		if p, ok := dst.(*int32); ok {
			*p = int32(v.Int())
			return nil
		}
	case types.KindInt64:
		if p, ok := dst.(*int64); ok {
			*p = v.Int()
			return nil
		}
	case types.KindUint:
		if p, ok := dst.(*uint); ok {
			*p = uint(v.Uint())
			return nil
		}
	case types.KindUint8:
		if p, ok := dst.(*uint8); ok {
			*p = uint8(v.Uint())
			return nil
		}
	case types.KindUint16:
		if p, ok := dst.(*uint16); ok {
			*p = uint16(v.Uint())
			return nil
		}
	case types.KindUint32:
		if p, ok := dst.(*uint32); ok {
			*p = uint32(v.Uint())
			return nil
		}
	case types.KindUint64:
		if p, ok := dst.(*uint64); ok {
			*p = v.Uint()
			return nil
		}
	case types.KindFloat32:
		if p, ok := dst.(*float32); ok {
			*p = float32(v.Float())
			return nil
		}
	case types.KindFloat64:
		if p, ok := dst.(*float64); ok {
			*p = v.Float()
			return nil
		}
	case types.KindTime:
		if p, ok := dst.(*time.Time); ok {
			*p = v.Time()
			return nil
		}
	case types.KindDuration:
		if p, ok := dst.(*time.Duration); ok {
			*p = v.Duration()
			return nil
		}
	}
	return fmt.Errorf("%w: cannot store %s into %T", types.ErrUnsupported, v.Kind(), dst)
}

// StoreList writes converted list items through dst, which must be a
// pointer to a slice of the Go type matching the element kind.
func StoreList(kind types.ValueKind, values []types.Value, dst any) error {
	switch kind {
	case types.KindString:
		if p, ok := dst.(*[]string); ok {
			out := make([]string, len(values))
			for i, v := range values {
				out[i] = v.Str()
			}
			*p = out
			return nil
		}
	case types.KindBool:
		if p, ok := dst.(*[]bool); ok {
			out := make([]bool, len(values))
			for i, v := range values {
				out[i] = v.Bool()
			}
			*p = out
			return nil
		}
	case types.KindRune:
		if p, ok := dst.(*[]rune); ok {
			out := make([]rune, len(values))
			for i, v := range values {
				out[i] = v.Rune()
			}
			*p = out
			return nil
		}
	case types.KindByte:
		if p, ok := dst.(*[]byte); ok {
			out := make([]byte, len(values))
			for i, v := range values {
				out[i] = v.Byte()
			}
			*p = out
			return nil
		}
	case types.KindInt:
		if p, ok := dst.(*[]int); ok {
			out := make([]int, len(values))
			for i, v := range values {
				out[i] = int(v.Int())
			}
			*p = out
			return nil
		}
	case types.KindInt8:
		if p, ok := dst.(*[]int8); ok {
			out := make([]int8, len(values))
			for i, v := range values {
				out[i] = int8(v.Int())
			}
			*p = out
			return nil
		}
	case types.KindInt16:
		if p, ok := dst.(*[]int16); ok {
			out := make([]int16, len(values))
			for i, v := range values {
				out[i] = int16(v.Int())
			}
			*p = out
			return nil
		}
	case types.KindInt32:
		if p, ok := dst.(*[]int32); ok {
			out := make([]int32, len(values))
			for i, v := range values {
				out[i] = int32(v.Int())
			}
			*p = out
			return nil
		}
	case types.KindInt64:
		if p, ok := dst.(*[]int64); ok {
			out := make([]int64, len(values))
			for i, v := range values {
				out[i] = v.Int()
			}
			*p = out
			return nil
		}
	case types.KindUint:
		if p, ok := dst.(*[]uint); ok {
			out := make([]uint, len(values))
			for i, v := range values {
				out[i] = uint(v.Uint())
			}
			*p = out
			return nil
		}
	case types.KindUint8:
		if p, ok := dst.(*[]uint8); ok {
			out := make([]uint8, len(values))
			for i, v := range values {
				out[i] = uint8(v.Uint())
			}
			*p = out
			return nil
		}
	case types.KindUint16:
		if p, ok := dst.(*[]uint16); ok {
			out := make([]uint16, len(values))
			for i, v := range values {
				out[i] = uint16(v.Uint())
			}
			*p = out
			return nil
		}
	case types.KindUint32:
		if p, ok := dst.(*[]uint32); ok {
			out := make([]uint32, len(values))
			for i, v := range values {
				out[i] = uint32(v.Uint())
			}
			*p = out
			return nil
		}
	case types.KindUint64:
		if p, ok := dst.(*[]uint64); ok {
			out := make([]uint64, len(values))
			for i, v := range values {
				out[i] = v.Uint()
			}
			*p = out
			return nil
		}
	case types.KindFloat32:
		if p, ok := dst.(*[]float32); ok {
			out := make([]float32, len(values))
			for i, v := range values {
				out[i] = float32(v.Float())
			}
			*p = out
			return nil
		}
	case types.KindFloat64:
		if p, ok := dst.(*[]float64); ok {
			out := make([]float64, len(values))
			for i, v := range values {
				out[i] = v.Float()
			}
			*p = out
			return nil
		}
	case types.KindTime:
		if p, ok := dst.(*[]time.Time); ok {
			out := make([]time.Time, len(values))
			for i, v := range values {
				out[i] = v.Time()
			}
			*p = out
			return nil
		}
	case types.KindDuration:
		if p, ok := dst.(*[]time.Duration); ok {
			out := make([]time.Duration, len(values))
			for i, v := range values {
				out[i] = v.Duration()
			}
			*p = out
			return nil
		}
	}
	return fmt.Errorf("%w: cannot store %s list into %T", types.ErrUnsupported, kind, dst)
}

// ValidateStore checks that dst is the pointer type Store (or StoreList,
// when list is true) expects for the kind, without writing anything.
// Declaration checks run this so mismatches surface at startup.
func ValidateStore(kind types.ValueKind, dst any, list bool) error {
	ok := false
	if list {
		switch kind {
		case types.KindString:
			_, ok = dst.(*[]string)
		case types.KindBool:
			_, ok = dst.(*[]bool)
		case types.KindRune:
			_, ok = dst.(*[]rune)
		case types.KindByte:
			_, ok = dst.(*[]byte)
		case types.KindInt:
			_, ok = dst.(*[]int)
		case types.KindInt8:
			_, ok = dst.(*[]int8)
		case types.KindInt16:
			_, ok = dst.(*[]int16)
		case types.KindInt32:
			_, ok = dst.(*[]int32)
		case types.KindInt64:
			_, ok = dst.(*[]int64)
		case types.KindUint:
			_, ok = dst.(*[]uint)
		case types.KindUint8:
			_, ok = dst.(*[]uint8)
		case types.KindUint16:
			_, ok = dst.(*[]uint16)
		case types.KindUint32:
			_, ok = dst.(*[]uint32)
		case types.KindUint64:
			_, ok = dst.(*[]uint64)
		case types.KindFloat32:
			_, ok = dst.(*[]float32)
		case types.KindFloat64:
			_, ok = dst.(*[]float64)
		case types.KindTime:
			_, ok = dst.(*[]time.Time)
		case types.KindDuration:
			_, ok = dst.(*[]time.Duration)
		}
	} else {
		switch kind {
		case types.KindString:
			_, ok = dst.(*string)
		case types.KindBool:
			_, ok = dst.(*bool)
		case types.KindRune:
			_, ok = dst.(*rune)
		case types.KindByte:
			_, ok = dst.(*byte)
		case types.KindInt:
			_, ok = dst.(*int)
		case types.KindInt8:
			_, ok = dst.(*int8)
		case types.KindInt16:
			_, ok = dst.(*int16)
		case types.KindInt32:
			_, ok = dst.(*int32)
		case types.KindInt64:
			_, ok = dst.(*int64)
		case types.KindUint:
			_, ok = dst.(*uint)
		case types.KindUint8:
			_, ok = dst.(*uint8)
		case types.KindUint16:
			_, ok = dst.(*uint16)
		case types.KindUint32:
			_, ok = dst.(*uint32)
		case types.KindUint64:
			_, ok = dst.(*uint64)
		case types.KindFloat32:
			_, ok = dst.(*float32)
		case types.KindFloat64:
			_, ok = dst.(*float64)
		case types.KindTime:
			_, ok = dst.(*time.Time)
		case types.KindDuration:
			_, ok = dst.(*time.Duration)
		}
	}
	if !ok {
		return fmt.Errorf("%w: %T does not hold %s", types.ErrUnsupported, dst, kind)
	}
	return nil
}

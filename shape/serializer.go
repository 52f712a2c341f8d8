package shape

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
)

// These flags define which fields to include in a serialized output.
const (
	SerializeType   = 1 << iota // element type name
	SerializeOffset             // byte offset in the packed layout
	SerializeSize               // element size in bytes
	SerializeValue              // element value
)

// SerializeAll includes every field.
const SerializeAll = SerializeType | SerializeOffset | SerializeSize | SerializeValue

const (
	serializerBasePrefix   = '['
	serializerRowPrefix    = `{"index":`
	serializerTypePrefix   = `,"type":`
	serializerOffsetPrefix = `,"offset":`
	serializerSizePrefix   = `,"size":`
	serializerValuePrefix  = `,"value":`
	serializerRowSuffix    = "},"
	serializerBaseSuffix   = ']'
)

// Serialize returns a JSON encoding of a sequence of shape s holding values,
// using flag to define which fields to include. Rows follow the order of s.
// Missing values are encoded as null.
func Serialize(s Shape, values []any, flag int) []byte {
	if s.Len() == 0 {
		return []byte("[]")
	}
	approxRowSize := 12
	if flag&SerializeType != 0 {
		approxRowSize += 20
	}
	if flag&SerializeOffset != 0 {
		approxRowSize += 14
	}
	if flag&SerializeSize != 0 {
		approxRowSize += 12
	}
	if flag&SerializeValue != 0 {
		approxRowSize += 20
	}
	buf := make([]byte, 0, 2+s.Len()*approxRowSize)
	buf = append(buf, serializerBasePrefix)
	for i, e := range s.elems {
		buf = append(buf, serializerRowPrefix...)
		buf = strconv.AppendInt(buf, int64(i), 10)
		if flag&SerializeType != 0 {
			buf = append(buf, serializerTypePrefix...)
			buf = strconv.AppendQuote(buf, e.Type.String())
		}
		if flag&SerializeOffset != 0 {
			buf = append(buf, serializerOffsetPrefix...)
			buf = strconv.AppendUint(buf, uint64(e.Offset), 10)
		}
		if flag&SerializeSize != 0 {
			buf = append(buf, serializerSizePrefix...)
			buf = strconv.AppendUint(buf, uint64(e.Size), 10)
		}
		if flag&SerializeValue != 0 {
			buf = append(buf, serializerValuePrefix...)
			if i < len(values) {
				buf = appendValue(buf, values[i])
			} else {
				buf = append(buf, "null"...)
			}
		}
		buf = append(buf, serializerRowSuffix...)
	}
	buf[len(buf)-1] = serializerBaseSuffix
	return buf
}

// appendValue appends the JSON encoding of x to buf. Numbers and booleans are
// written as is, non-finite floats as null; anything else is written as its
// quoted fmt representation.
func appendValue(buf []byte, x any) []byte {
	if x == nil {
		return append(buf, "null"...)
	}
	v := reflect.ValueOf(x)
	switch v.Kind() {
	case reflect.Bool:
		return strconv.AppendBool(buf, v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.AppendInt(buf, v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.AppendUint(buf, v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		f := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return append(buf, "null"...)
		}
		return strconv.AppendFloat(buf, f, 'g', -1, v.Type().Bits())
	case reflect.String:
		return appendString(buf, v.String())
	}
	return appendString(buf, fmt.Sprint(x))
}

// appendString appends s as a JSON string. Invalid UTF-8 is replaced with
// U+FFFD.
func appendString(buf []byte, s string) []byte {
	b, _ := json.Marshal(s)
	return append(buf, b...)
}

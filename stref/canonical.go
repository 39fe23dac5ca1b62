package stref

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrNonFinite is returned when a record's fingerprint or selector
// data contains NaN or +/-Inf: canonical JSON has no representation
// for either, and a reference that cannot round-trip is worse than one
// that fails to encode at all.
var ErrNonFinite = errors.New("stref: NaN/Inf cannot be canonically encoded")

// marshalCanonical writes v (a tree of map[string]interface{},
// []interface{}, string, float64, int, bool, nil) to sb as canonical
// JSON: object keys sorted lexicographically, floats formatted with
// the shortest round-trippable representation (strconv's 'g', -1
// precision), no whitespace. Two independent encoders given the same
// logical tree produce byte-identical output.
func marshalCanonical(v interface{}, sb *strings.Builder) error {
	switch val := v.(type) {
	case nil:
		sb.WriteString("null")
	case bool:
		if val {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case string:
		sb.WriteString(strconv.Quote(val))
	case int:
		sb.WriteString(strconv.Itoa(val))
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return ErrNonFinite
		}
		sb.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
	case []interface{}:
		sb.WriteByte('[')
		for i, e := range val {
			if i > 0 {
				sb.WriteByte(',')
			}
			if err := marshalCanonical(e, sb); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case map[string]interface{}:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(k))
			sb.WriteByte(':')
			if err := marshalCanonical(val[k], sb); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	default:
		return fmt.Errorf("stref: unsupported canonical JSON value type %T", v)
	}
	return nil
}

func canonicalize(v interface{}) (string, error) {
	var sb strings.Builder
	if err := marshalCanonical(v, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

package matchers

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

// Base predicate names.
const (
	ToEqual         = "toEqual"
	ToBe            = "toBe"
	ToMatch         = "toMatch"
	ToContain       = "toContain"
	ToBeDefined     = "toBeDefined"
	ToBeUndefined   = "toBeUndefined"
	ToBeNull        = "toBeNull"
	ToBeTruthy      = "toBeTruthy"
	ToBeFalsy       = "toBeFalsy"
	ToBeLessThan    = "toBeLessThan"
	ToBeGreaterThan = "toBeGreaterThan"
	ToBeCloseTo     = "toBeCloseTo"
	ToHaveLength    = "toHaveLength"
)

// Base returns the value predicates every table starts from.
func Base() Table {
	return Table{
		ToEqual: func(s *Subject, args ...any) bool {
			return equals(s.Actual, arg(args, 0))
		},
		ToBe: func(s *Subject, args ...any) bool {
			return identical(s.Actual, arg(args, 0))
		},
		ToMatch: func(s *Subject, args ...any) bool {
			return matches(s.Actual, arg(args, 0))
		},
		ToContain: func(s *Subject, args ...any) bool {
			return contains(s.Actual, arg(args, 0))
		},
		ToBeDefined: func(s *Subject, args ...any) bool {
			return !isNil(s.Actual)
		},
		ToBeUndefined: func(s *Subject, args ...any) bool {
			return isNil(s.Actual)
		},
		ToBeNull: func(s *Subject, args ...any) bool {
			return isNil(s.Actual)
		},
		ToBeTruthy: func(s *Subject, args ...any) bool {
			return truthy(s.Actual)
		},
		ToBeFalsy: func(s *Subject, args ...any) bool {
			return !truthy(s.Actual)
		},
		ToBeLessThan: func(s *Subject, args ...any) bool {
			return compareNumeric(s.Actual, arg(args, 0), "<")
		},
		ToBeGreaterThan: func(s *Subject, args ...any) bool {
			return compareNumeric(s.Actual, arg(args, 0), ">")
		},
		ToBeCloseTo: func(s *Subject, args ...any) bool {
			precision := 2
			if p, ok := toInt(arg(args, 1)); ok {
				precision = p
			}
			return closeTo(s.Actual, arg(args, 0), precision)
		},
		ToHaveLength: func(s *Subject, args ...any) bool {
			return length(s.Actual, arg(args, 0))
		},
	}
}

func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func equals(actual, expected any) bool {
	if reflect.DeepEqual(actual, expected) {
		return true
	}
	actualNum, aOk := toFloat64(actual)
	expectedNum, eOk := toFloat64(expected)
	return aOk && eOk && !isString(actual) && !isString(expected) && actualNum == expectedNum
}

// identical is == for comparable values of the same dynamic type.
func identical(actual, expected any) bool {
	if actual == nil || expected == nil {
		return isNil(actual) && isNil(expected)
	}
	at, et := reflect.TypeOf(actual), reflect.TypeOf(expected)
	if at != et || !at.Comparable() {
		return false
	}
	return actual == expected
}

func matches(actual, expected any) bool {
	actualStr := fmt.Sprintf("%v", actual)

	if re, ok := expected.(*regexp.Regexp); ok {
		return re != nil && re.MatchString(actualStr)
	}

	pattern := fmt.Sprintf("%v", expected)
	pattern = strings.TrimPrefix(pattern, "/")
	pattern = strings.TrimSuffix(pattern, "/")

	re, err := regexp.Compile(pattern)
	if err != nil {
		return false
	}
	return re.MatchString(actualStr)
}

func contains(actual, expected any) bool {
	if s, ok := actual.(string); ok {
		return strings.Contains(s, fmt.Sprintf("%v", expected))
	}
	rv := reflect.ValueOf(actual)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			if equals(rv.Index(i).Interface(), expected) {
				return true
			}
		}
	case reflect.Map:
		if expected == nil {
			return false
		}
		k := reflect.ValueOf(expected)
		if k.Type().AssignableTo(rv.Type().Key()) {
			return rv.MapIndex(k).IsValid()
		}
	}
	return false
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isString(v any) bool {
	_, ok := v.(string)
	return ok
}

func truthy(v any) bool {
	if isNil(v) {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.String:
		return rv.Len() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

func compareNumeric(actual, expected any, op string) bool {
	actualNum, aOk := toFloat64(actual)
	expectedNum, eOk := toFloat64(expected)
	if !aOk || !eOk {
		return false
	}

	switch op {
	case ">":
		return actualNum > expectedNum
	case ">=":
		return actualNum >= expectedNum
	case "<":
		return actualNum < expectedNum
	case "<=":
		return actualNum <= expectedNum
	}
	return false
}

func closeTo(actual, expected any, precision int) bool {
	actualNum, aOk := toFloat64(actual)
	expectedNum, eOk := toFloat64(expected)
	if !aOk || !eOk {
		return false
	}
	return math.Abs(expectedNum-actualNum) < math.Pow(10, -float64(precision))/2
}

// computeLength returns the length of a value, or -1 if length cannot be computed
func computeLength(actual any) int {
	if actual == nil {
		return -1
	}
	rv := reflect.ValueOf(actual)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return rv.Len()
	default:
		return -1
	}
}

func length(actual, expected any) bool {
	expectedLen, ok := toInt(expected)
	if !ok {
		return false
	}
	actualLen := computeLength(actual)
	return actualLen != -1 && actualLen == expectedLen
}

func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case uint32:
		return float64(n), true
	case string:
		if f, err := strconv.ParseFloat(n, 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case int32:
		return int(n), true
	case float64:
		return int(n), true
	case float32:
		return int(n), true
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i, true
		}
	}
	return 0, false
}

package game

import (
	"fmt"
	"reflect"
	"strings"
)

// Reason classifies why a candidate game was rejected.
type Reason string

const (
	ReasonMissingField Reason = "missing_field"
	ReasonHintCount    Reason = "hint_count"
	ReasonTriviaCount  Reason = "trivia_count"
)

// Rejection is returned by Validate for a candidate that must not be exported.
type Rejection struct {
	Reason Reason
	// Field is the JSON path of the first null value for ReasonMissingField.
	Field string
	// Count is the observed length for the count reasons.
	Count int
}

func (r *Rejection) Error() string {
	switch r.Reason {
	case ReasonMissingField:
		return fmt.Sprintf("missing value for %s", r.Field)
	case ReasonHintCount:
		return fmt.Sprintf("has %d hints, want %d", r.Count, HintCount)
	case ReasonTriviaCount:
		return fmt.Sprintf("has %d trivia, want %d", r.Count, TriviaCount)
	default:
		return string(r.Reason)
	}
}

// Validate applies the acceptance rules: no null anywhere in the object,
// exactly HintCount hints and exactly TriviaCount trivia. Empty strings are
// present values and pass. Optional (omitempty) fields may be absent.
func Validate(g Game) error {
	if field := firstNull(reflect.ValueOf(g), ""); field != "" {
		return &Rejection{Reason: ReasonMissingField, Field: field}
	}
	if len(g.Hints) != HintCount {
		return &Rejection{Reason: ReasonHintCount, Count: len(g.Hints)}
	}
	if len(g.Trivia) != TriviaCount {
		return &Rejection{Reason: ReasonTriviaCount, Count: len(g.Trivia)}
	}
	return nil
}

// firstNull walks v and returns the JSON path of the first nil pointer, slice,
// map or interface, or "" when there is none.
func firstNull(v reflect.Value, path string) string {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return orRoot(path)
		}
		return firstNull(v.Elem(), path)
	case reflect.Map:
		if v.IsNil() {
			return orRoot(path)
		}
		iter := v.MapRange()
		for iter.Next() {
			if field := firstNull(iter.Value(), fmt.Sprintf("%s.%v", path, iter.Key())); field != "" {
				return field
			}
		}
	case reflect.Slice:
		if v.IsNil() {
			return orRoot(path)
		}
		for i := 0; i < v.Len(); i++ {
			if field := firstNull(v.Index(i), fmt.Sprintf("%s[%d]", path, i)); field != "" {
				return field
			}
		}
	case reflect.Struct:
		t := v.Type()
		for i := 0; i < v.NumField(); i++ {
			sf := t.Field(i)
			if !sf.IsExported() {
				continue
			}
			name, optional := jsonField(sf)
			if name == "-" {
				continue
			}
			fv := v.Field(i)
			if optional && fv.IsZero() {
				continue
			}
			childPath := name
			if path != "" {
				childPath = path + "." + name
			}
			if field := firstNull(fv, childPath); field != "" {
				return field
			}
		}
	}
	return ""
}

func jsonField(sf reflect.StructField) (string, bool) {
	tag := sf.Tag.Get("json")
	if tag == "" {
		return sf.Name, false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = sf.Name
	}
	return name, strings.Contains(","+opts+",", ",omitempty,")
}

func orRoot(path string) string {
	if path == "" {
		return "$"
	}
	return path
}

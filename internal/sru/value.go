package sru

import (
	"fmt"
	"strconv"
)

type valueKind int

const (
	kindInt valueKind = iota
	kindFlag
)

// Value is the value of an #UPPGIFT line: an integer amount or a flag
// such as "X".
type Value struct {
	kind valueKind
	n    int64
	flag string
}

// Int returns an integer Value.
func Int(n int64) Value {
	return Value{kind: kindInt, n: n}
}

// Flag returns a flag Value.
func Flag(s string) Value {
	return Value{kind: kindFlag, flag: s}
}

func (v Value) String() string {
	if v.kind == kindFlag {
		return v.flag
	}
	return strconv.FormatInt(v.n, 10)
}

// Entry is one #UPPGIFT line of a form.
type Entry struct {
	Code  int
	Value Value
}

// IntEntry is shorthand for an Entry holding an integer.
func IntEntry(code int, n int64) Entry {
	return Entry{Code: code, Value: Int(n)}
}

func (e Entry) String() string {
	return fmt.Sprintf("#UPPGIFT %d %s", e.Code, e.Value)
}

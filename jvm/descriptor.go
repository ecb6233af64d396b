package jvm

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadType marks a type token that is neither a primitive keyword nor a
// syntactically valid dotted class name.
var ErrBadType = errors.New("not a primitive or class name")

var primitiveDescriptors = map[string]string{
	"int":     "I",
	"double":  "D",
	"boolean": "Z",
	"float":   "F",
	"long":    "J",
	"byte":    "B",
	"short":   "S",
	"char":    "C",
	"void":    "V",
}

var primitiveNames = map[byte]string{}

func init() {
	for name, desc := range primitiveDescriptors {
		primitiveNames[desc[0]] = name
	}
}

// EncodeType converts a bare type token (no array suffix) into its JVM
// descriptor: a single letter for the nine primitive keywords, or
// "L<slash-name>;" for a reference type. The token is encoded as given;
// obfuscated-name substitution is up to the caller.
func EncodeType(name string) (string, error) {
	if desc, ok := primitiveDescriptors[name]; ok {
		return desc, nil
	}
	if !validClassName(name) {
		return "", fmt.Errorf("%w: %q", ErrBadType, name)
	}
	return "L" + SourceToInternalName(name) + ";", nil
}

func validClassName(name string) bool {
	if name == "" || strings.ContainsAny(name, " \t();[") {
		return false
	}
	for _, part := range strings.Split(name, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// StripArray removes trailing "[]" pairs from a type token, counting them.
func StripArray(token string) (string, int) {
	dims := 0
	for strings.HasSuffix(token, "[]") {
		token = token[:len(token)-2]
		dims++
	}
	return token, dims
}

// WrapArray prepends one "[" per array dimension to a descriptor.
func WrapArray(desc string, dims int) string {
	if dims == 0 {
		return desc
	}
	return strings.Repeat("[", dims) + desc
}

// ParseFieldDescriptor decodes a single JVM type descriptor. It only
// succeeds if the whole string is consumed.
func ParseFieldDescriptor(desc string) (Type, bool) {
	t, n, ok := parseType(desc, 0)
	if !ok || n != len(desc) {
		return Type{}, false
	}
	return t, true
}

// ParseMethodDescriptor decodes a "(<params>)<return>" method descriptor.
func ParseMethodDescriptor(desc string) (MethodType, bool) {
	var mt MethodType
	if len(desc) == 0 || desc[0] != '(' {
		return MethodType{}, false
	}
	i := 1
	for i < len(desc) && desc[i] != ')' {
		t, n, ok := parseType(desc, i)
		if !ok {
			return MethodType{}, false
		}
		mt.Parameters = append(mt.Parameters, t)
		i += n
	}
	if i >= len(desc) {
		return MethodType{}, false
	}
	i++
	ret, n, ok := parseType(desc, i)
	if !ok || i+n != len(desc) {
		return MethodType{}, false
	}
	mt.Return = ret
	return mt, true
}

func parseType(desc string, start int) (Type, int, bool) {
	var t Type
	i := start
	for i < len(desc) && desc[i] == '[' {
		t.ArrayDepth++
		i++
	}
	if i >= len(desc) {
		return Type{}, 0, false
	}
	if desc[i] == 'L' {
		end := strings.IndexByte(desc[i:], ';')
		if end < 0 {
			return Type{}, 0, false
		}
		t.Name = InternalToSourceName(desc[i+1 : i+end])
		if t.Name == "" {
			return Type{}, 0, false
		}
		return t, i - start + end + 1, true
	}
	name, ok := primitiveNames[desc[i]]
	if !ok {
		return Type{}, 0, false
	}
	t.Name = name
	return t, i - start + 1, true
}

func InternalToSourceName(name string) string {
	return strings.ReplaceAll(name, "/", ".")
}

func SourceToInternalName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}

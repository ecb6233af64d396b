package jvm

import "strings"

// Type is a Java source-level type reference: a primitive keyword or a
// dotted class name, plus an array depth.
type Type struct {
	Name       string
	ArrayDepth int
}

func (t Type) String() string {
	var sb strings.Builder
	sb.WriteString(t.Name)
	for i := 0; i < t.ArrayDepth; i++ {
		sb.WriteString("[]")
	}
	return sb.String()
}

func (t Type) IsPrimitive() bool {
	if t.ArrayDepth > 0 {
		return false
	}
	_, ok := primitiveDescriptors[t.Name]
	return ok
}

func (t Type) IsArray() bool {
	return t.ArrayDepth > 0
}

// Descriptor renders the type in JVM binary form, one leading "[" per
// array dimension.
func (t Type) Descriptor() (string, error) {
	desc, err := EncodeType(t.Name)
	if err != nil {
		return "", err
	}
	return WrapArray(desc, t.ArrayDepth), nil
}

// MethodType is the decoded form of a JVM method descriptor.
type MethodType struct {
	Parameters []Type
	Return     Type
}

func (mt MethodType) String() string {
	var sb strings.Builder
	sb.WriteString(mt.Return.String())
	sb.WriteString(" (")
	for i, p := range mt.Parameters {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(")")
	return sb.String()
}

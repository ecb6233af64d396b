package proguard

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseClassHeader(t *testing.T) {
	tests := []struct {
		input string
		want  ClassEntry
	}{
		{"com.foo.Bar -> a:", ClassEntry{Name: "com.foo.Bar", ObfName: "a"}},
		{"com.foo.Bar$Inner -> a$b:", ClassEntry{Name: "com.foo.Bar$Inner", ObfName: "a$b"}},
		{"com.foo.Bar -> a:12:34:", ClassEntry{Name: "com.foo.Bar", ObfName: "a"}},
		{"Standalone -> zz:", ClassEntry{Name: "Standalone", ObfName: "zz"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			entry, err := ParseLine(tt.input)
			if err != nil {
				t.Fatalf("ParseLine(%q) failed: %v", tt.input, err)
			}
			if entry != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.input, entry, tt.want)
			}
		})
	}
}

func TestParseClassHeaderMalformed(t *testing.T) {
	tests := []string{
		"com.foo.Bar a:",
		"com.foo.Bar => a:",
		"com.foo.Bar -> a",
		"-> a:",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseLine(input); !errors.Is(err, ErrMalformedHeader) {
				t.Errorf("ParseLine(%q) error = %v, want ErrMalformedHeader", input, err)
			}
		})
	}
}

func TestParseFieldLine(t *testing.T) {
	tests := []struct {
		input string
		want  FieldEntry
	}{
		{"    int x -> b", FieldEntry{Type: "int", Name: "x", ObfName: "b"}},
		{"    com.foo.Bar[] items -> c", FieldEntry{Type: "com.foo.Bar[]", Name: "items", ObfName: "c"}},
		{"\tjava.lang.String name -> a", FieldEntry{Type: "java.lang.String", Name: "name", ObfName: "a"}},
		{"    boolean enabled -> d  ", FieldEntry{Type: "boolean", Name: "enabled", ObfName: "d"}},
		{"    long count -> 14:15:e", FieldEntry{Type: "long", Name: "count", ObfName: "e"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			entry, err := ParseLine(tt.input)
			if err != nil {
				t.Fatalf("ParseLine(%q) failed: %v", tt.input, err)
			}
			if entry != tt.want {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.input, entry, tt.want)
			}
		})
	}
}

func TestParseMethodLine(t *testing.T) {
	tests := []struct {
		input string
		want  MethodEntry
	}{
		{
			"    14:20:void doIt(int,com.foo.Bar) -> c",
			MethodEntry{ReturnType: "void", Name: "doIt", Parameters: []string{"int", "com.foo.Bar"}, ObfName: "c"},
		},
		{
			"    10:10:int size() -> a",
			MethodEntry{ReturnType: "int", Name: "size", Parameters: nil, ObfName: "a"},
		},
		{
			"    14:20:int[] calc(java.lang.String[]) -> d",
			MethodEntry{ReturnType: "int[]", Name: "calc", Parameters: []string{"java.lang.String[]"}, ObfName: "d"},
		},
		{
			"    1:1:void <init>() -> <init>",
			MethodEntry{ReturnType: "void", Name: "<init>", Parameters: nil, ObfName: "<init>"},
		},
		{
			"    5:9:double avg(double[], int) -> e",
			MethodEntry{ReturnType: "double", Name: "avg", Parameters: []string{"double[]", "int"}, ObfName: "e"},
		},
		{
			// no line-number prefix
			"    boolean equals(java.lang.Object) -> equals",
			MethodEntry{ReturnType: "boolean", Name: "equals", Parameters: []string{"java.lang.Object"}, ObfName: "equals"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			entry, err := ParseLine(tt.input)
			if err != nil {
				t.Fatalf("ParseLine(%q) failed: %v", tt.input, err)
			}
			if !reflect.DeepEqual(entry, tt.want) {
				t.Errorf("ParseLine(%q) = %+v, want %+v", tt.input, entry, tt.want)
			}
		})
	}
}

func TestParseMemberMalformed(t *testing.T) {
	tests := []string{
		"    int x",
		"    x -> y",
		"    1:2:void doIt( -> c",
		"    1:2:void doIt(int,) -> c",
		"    1:2:void (int) -> c",
		"    : x -> y",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseLine(input); !errors.Is(err, ErrMalformedMember) {
				t.Errorf("ParseLine(%q) error = %v, want ErrMalformedMember", input, err)
			}
		})
	}
}

func TestLineClassification(t *testing.T) {
	tests := []struct {
		line    string
		comment bool
		member  bool
		skip    bool
	}{
		{"# compiled from: Bar.java", true, false, true},
		{"com.foo.Bar -> a:", false, false, false},
		{"    int x -> b", false, true, false},
		{"\tint x -> b", false, true, false},
		{"", false, false, true},
		{"   ", false, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			if got := IsComment(tt.line); got != tt.comment {
				t.Errorf("IsComment(%q) = %v, want %v", tt.line, got, tt.comment)
			}
			if got := IsMember(tt.line); got != tt.member {
				t.Errorf("IsMember(%q) = %v, want %v", tt.line, got, tt.member)
			}
			if got := Skip(tt.line); got != tt.skip {
				t.Errorf("Skip(%q) = %v, want %v", tt.line, got, tt.skip)
			}
		})
	}
}

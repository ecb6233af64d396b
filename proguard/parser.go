package proguard

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedHeader = errors.New("malformed class header")
	ErrMalformedMember = errors.New("malformed member line")
)

// Entry is one logical line of a ProGuard mapping file: a class header, a
// field member, or a method member.
type Entry interface {
	entry()
}

// ClassEntry is a non-indented header line "<deobf> -> <obf>:".
type ClassEntry struct {
	Name    string // deobfuscated, dotted
	ObfName string // obfuscated binary name
}

// FieldEntry is an indented line "<type> <name> -> <obf>".
type FieldEntry struct {
	Type    string // textual type token, may carry [] suffixes
	Name    string
	ObfName string
}

// MethodEntry is an indented line
// "<start>:<end>:<ret> <name>(<params>) -> <obf>". The line-number prefix
// is discarded during parsing.
type MethodEntry struct {
	ReturnType string
	Name       string
	Parameters []string
	ObfName    string
}

func (ClassEntry) entry()  {}
func (FieldEntry) entry()  {}
func (MethodEntry) entry() {}

// IsComment reports whether the line is a comment.
func IsComment(line string) bool {
	return strings.HasPrefix(line, "#")
}

// IsMember reports whether the line is indented, i.e. belongs to the most
// recent class header.
func IsMember(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

// Skip reports whether the line carries no mapping at all.
func Skip(line string) bool {
	return IsComment(line) || strings.TrimSpace(line) == ""
}

// ParseLine parses one non-comment, non-blank line of the mapping grammar.
func ParseLine(line string) (Entry, error) {
	if IsMember(line) {
		return parseMember(line)
	}
	return parseHeader(line)
}

func parseHeader(line string) (Entry, error) {
	deobf, obf, ok := strings.Cut(line, " -> ")
	if !ok {
		return nil, fmt.Errorf("%w: missing %q separator", ErrMalformedHeader, " -> ")
	}
	deobf = strings.TrimSpace(deobf)
	obf = strings.TrimSpace(obf)
	name, _, ok := strings.Cut(obf, ":")
	if !ok {
		return nil, fmt.Errorf("%w: missing trailing colon", ErrMalformedHeader)
	}
	if deobf == "" || name == "" {
		return nil, fmt.Errorf("%w: empty class name", ErrMalformedHeader)
	}
	return ClassEntry{Name: deobf, ObfName: name}, nil
}

func parseMember(line string) (Entry, error) {
	deobf, obf, ok := strings.Cut(strings.TrimLeft(line, " \t"), " -> ")
	if !ok {
		return nil, fmt.Errorf("%w: missing %q separator", ErrMalformedMember, " -> ")
	}
	obf = strings.TrimRight(obf, " \t\r")

	typ, rest, ok := strings.Cut(deobf, " ")
	if !ok {
		return nil, fmt.Errorf("%w: expected \"<type> <name>\"", ErrMalformedMember)
	}
	// method lines prefix the return type with source line numbers,
	// "14:32:void" -> "void"
	if i := strings.LastIndexByte(typ, ':'); i >= 0 {
		typ = typ[i+1:]
	}
	if typ == "" {
		return nil, fmt.Errorf("%w: empty type token", ErrMalformedMember)
	}

	if open := strings.IndexByte(rest, '('); open >= 0 {
		closing := strings.IndexByte(rest, ')')
		if closing < open {
			return nil, fmt.Errorf("%w: unbalanced parentheses", ErrMalformedMember)
		}
		name := rest[:open]
		if name == "" || obf == "" {
			return nil, fmt.Errorf("%w: empty method name", ErrMalformedMember)
		}
		var params []string
		if args := rest[open+1 : closing]; args != "" {
			params = strings.Split(args, ",")
			for i := range params {
				params[i] = strings.TrimSpace(params[i])
				if params[i] == "" {
					return nil, fmt.Errorf("%w: empty parameter type", ErrMalformedMember)
				}
			}
		}
		return MethodEntry{ReturnType: typ, Name: name, Parameters: params, ObfName: obf}, nil
	}

	// the obfuscated side of a field line may carry a ":<lineinfo>" prefix
	if i := strings.LastIndexByte(obf, ':'); i >= 0 {
		obf = obf[i+1:]
	}
	if rest == "" || obf == "" {
		return nil, fmt.Errorf("%w: empty field name", ErrMalformedMember)
	}
	return FieldEntry{Type: typ, Name: rest, ObfName: obf}, nil
}

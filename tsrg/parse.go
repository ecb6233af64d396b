package tsrg

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// File is the parsed form of a generated TSRG mapping.
type File struct {
	Classes []Class
}

type Class struct {
	ObfName string // slash form
	Name    string // deobfuscated, slash form
	Fields  []Field
	Methods []Method
}

// Field lines carry names only; the grammar has no field descriptors.
type Field struct {
	ObfName string
	Name    string
}

type Method struct {
	ObfName    string
	Descriptor string // "(<params>)<return>"
	Name       string
}

// Parse reads the TSRG grammar produced by Convert. Member lines attach to
// the most recent class line.
func Parse(r io.Reader) (*File, error) {
	file := &File{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if line == "" {
			continue
		}
		if line[0] == '\t' {
			if len(file.Classes) == 0 {
				return nil, fmt.Errorf("line %d: member line before any class line", lineNo)
			}
			class := &file.Classes[len(file.Classes)-1]
			parts := strings.Split(line[1:], "\t")
			switch len(parts) {
			case 2:
				class.Fields = append(class.Fields, Field{ObfName: parts[0], Name: parts[1]})
			case 3:
				class.Methods = append(class.Methods, Method{ObfName: parts[0], Descriptor: parts[1], Name: parts[2]})
			default:
				return nil, fmt.Errorf("line %d: expected 2 or 3 tab-separated fields, got %d", lineNo, len(parts))
			}
			continue
		}
		obf, name, ok := strings.Cut(line, " ")
		if !ok {
			return nil, fmt.Errorf("line %d: malformed class line %q", lineNo, line)
		}
		file.Classes = append(file.Classes, Class{ObfName: obf, Name: name})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return file, nil
}

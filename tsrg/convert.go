package tsrg

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"

	"tsrgconv/jvm"
	"tsrgconv/proguard"
)

// ClassIndex maps the reference descriptor of a deobfuscated class
// ("Lcom/foo/Bar;") to its obfuscated binary name ("a").
type ClassIndex map[string]string

// BuildIndex scans every class header of a ProGuard mapping file and
// records the descriptor of the deobfuscated name against the obfuscated
// name. The index must be complete before member translation starts, so
// that types referencing classes declared later in the file still resolve.
func BuildIndex(r io.Reader) (ClassIndex, error) {
	index := make(ClassIndex)
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if proguard.Skip(line) || proguard.IsMember(line) {
			continue
		}
		entry, err := proguard.ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		class := entry.(proguard.ClassEntry)
		desc, err := jvm.EncodeType(class.Name)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		index[desc] = class.ObfName
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return index, nil
}

// Translator resolves member signatures against a class index. The index
// is treated as read-only and is never shared across conversions.
type Translator struct {
	index ClassIndex
}

func NewTranslator(index ClassIndex) *Translator {
	return &Translator{index: index}
}

// TranslateType renders one textual type token as a JVM descriptor,
// substituting the obfuscated class name when the index knows the type.
// Array dimensions are stripped before the lookup and re-applied as
// leading "[" characters afterwards.
func (t *Translator) TranslateType(token string) (string, error) {
	base, dims := jvm.StripArray(token)
	desc, err := jvm.EncodeType(base)
	if err != nil {
		return "", err
	}
	if obf, ok := t.index[desc]; ok {
		desc = "L" + obf + ";"
	}
	if strings.Contains(desc, ".") {
		desc = strings.ReplaceAll(desc, ".", "/")
	}
	return jvm.WrapArray(desc, dims), nil
}

// Render produces the output line for one parsed entry, without the
// trailing newline.
func (t *Translator) Render(entry proguard.Entry) (string, error) {
	switch e := entry.(type) {
	case proguard.ClassEntry:
		return jvm.SourceToInternalName(e.ObfName) + " " + jvm.SourceToInternalName(e.Name), nil
	case proguard.FieldEntry:
		return "\t" + e.ObfName + "\t" + e.Name, nil
	case proguard.MethodEntry:
		return t.renderMethod(e)
	}
	return "", fmt.Errorf("unhandled entry type %T", entry)
}

func (t *Translator) renderMethod(m proguard.MethodEntry) (string, error) {
	var params strings.Builder
	for _, p := range m.Parameters {
		desc, err := t.TranslateType(p)
		if err != nil {
			return "", err
		}
		params.WriteString(desc)
	}
	ret, err := t.TranslateType(m.ReturnType)
	if err != nil {
		return "", err
	}
	return "\t" + m.ObfName + "\t(" + params.String() + ")" + ret + "\t" + m.Name, nil
}

// Convert rewrites a ProGuard mapping into the TSRG grammar: first pass
// builds the class index, second pass translates every line in input
// order. The whole result is buffered and only written to w after the
// entire input has translated, so a failed conversion produces no output.
func Convert(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}

	index, err := BuildIndex(bytes.NewReader(data))
	if err != nil {
		return err
	}
	translator := NewTranslator(index)

	var out bytes.Buffer
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if proguard.Skip(line) {
			continue
		}
		entry, err := proguard.ParseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		rendered, err := translator.Render(entry)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		out.WriteString(rendered)
		out.WriteByte('\n')
	}
	if err := sc.Err(); err != nil {
		return err
	}

	_, err = w.Write(out.Bytes())
	return err
}

package main

import (
	"fmt"
	"os"
	"os/exec"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/benoitkugler/gridlayout/css/properties"
)

const (
	OUT = "props_gen.go"

	TEMPLATE = `
	func (s %[1]s) Get%[2]s() %[3]s { return s[%[4]s].(%[3]s)	}
	func (s %[1]s) Set%[2]s(v %[3]s) { s[%[4]s] = v }

`

	TEMPLATE_ITF = `
    Get%[1]s() %[2]s 
    Set%[1]s(v %[2]s)
	`
)

func main() {
	code := `package properties 
    
	// Code generated from properties/properties.go DO NOT EDIT

	`
	codeITF := "type StyleAccessor interface {"

	codeStrings := `var propsNames = [...]string{
		`
	codeStringsRev := `
	// PropsFromNames maps CSS property names to internal enum tags.
	var PropsFromNames = map[string]KnownProp{
		`

	props := parseConstants("properties.go")
	sort.Slice(props, func(i, j int) bool { return props[i].propName < props[j].propName })

	for _, item := range props {
		v := properties.InitialValues[item.value]
		propertyCamel := item.varName[1:]
		typeName := reflect.TypeOf(v).Name()

		code += fmt.Sprintf(TEMPLATE, "Properties", propertyCamel, typeName, item.varName)
		codeITF += fmt.Sprintf(TEMPLATE_ITF, propertyCamel, typeName)
		codeStrings += fmt.Sprintf("%s: %q,\n", item.varName, item.propName)
		codeStringsRev += fmt.Sprintf("%q: %s,\n", item.propName, item.varName)
	}

	codeITF += "}\n"
	codeStrings += "}\n"
	codeStringsRev += "}\n"

	if err := os.WriteFile(OUT, []byte(code+codeITF+codeStrings+codeStringsRev), os.ModePerm); err != nil {
		panic(err)
	}
	if err := exec.Command("gofmt", "-w", OUT).Run(); err != nil {
		panic(err)
	}
	fmt.Println("Generated", OUT)
}

func kebabCase(s string) string {
	var out strings.Builder
	for i, r := range s {
		if i != 0 && unicode.IsUpper(r) {
			out.WriteRune('-')
		}
		out.WriteRune(unicode.ToLower(r))
	}
	return out.String()
}

type prop struct {
	value    properties.KnownProp
	varName  string
	propName string // in CSS form
}

func parseConstants(fn string) (out []prop) {
	b, err := os.ReadFile(fn)
	if err != nil {
		panic(err)
	}
	inEnum := false
	var val properties.KnownProp
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "const") {
			inEnum = true
			continue
		}

		if inEnum && strings.HasPrefix(line, "P") {
			val++
			varName := line
			propName := kebabCase(line[1:])
			out = append(out, prop{val, varName, propName})
		}

		if inEnum && strings.HasPrefix(line, ")") {
			inEnum = false
		}
	}
	return out
}

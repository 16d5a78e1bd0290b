package codegen

import "strings"

const indent = "  "

// Sketch assembles the registered includes, helper functions and setup
// statements around the given loop body into one compilation unit ready for
// the native toolchain.
func (c *Context) Sketch(loop string) string {
	var b strings.Builder

	for _, inc := range c.Includes() {
		b.WriteString(inc)
		b.WriteByte('\n')
	}

	if len(c.includes) > 0 {
		b.WriteByte('\n')
	}

	for _, fn := range c.Functions() {
		b.WriteString(fn)
		b.WriteString("\n\n")
	}

	b.WriteString("void setup() {\n")

	for _, s := range c.Setup() {
		b.WriteString(indent)
		b.WriteString(s)
		b.WriteByte('\n')
	}

	b.WriteString("}\n\nvoid loop() {\n")
	b.WriteString(indentLines(loop, indent))
	b.WriteString("}\n")

	return b.String()
}

// indentLines prepends prefix to every non-empty line of code, which is
// expected to end with a line break when non-empty.
func indentLines(code, prefix string) string {
	if code == "" {
		return ""
	}

	var b strings.Builder

	for _, line := range strings.Split(strings.TrimSuffix(code, "\n"), "\n") {
		if line != "" {
			b.WriteString(prefix)
			b.WriteString(line)
		}

		b.WriteByte('\n')
	}

	return b.String()
}

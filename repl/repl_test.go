package repl

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestStartPrintsTreesAndDiagnostics(t *testing.T) {
	in := strings.NewReader("const x = 1\nobject {\n")
	var out bytes.Buffer

	Start(in, &out, false)

	got := out.String()
	assert.Contains(t, got, "const x =\n  literal 1\n")
	assert.Contains(t, got, "error[E0101]")
	assert.Contains(t, got, "<repl>:1:8")
	assert.Equal(t, 3, strings.Count(got, PROMPT), "one prompt per line plus the final one")
}

func TestStartStopsAtEndOfInput(t *testing.T) {
	var out bytes.Buffer
	Start(strings.NewReader(""), &out, false)
	assert.Equal(t, PROMPT+"\n", out.String())
}

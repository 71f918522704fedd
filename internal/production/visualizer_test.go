// Tests for ExportDOT rendering.
package production

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comalice/fsmx"
	"github.com/comalice/fsmx/modthree"
)

func TestExportDOT_Simple(t *testing.T) {
	table := fsmx.Table[string, string]{}
	table.Set("s1", "e1", "s2")

	dot := ExportDOT("simple", table, "s1", []string{"s2"})

	assert.True(t, strings.HasPrefix(dot, `digraph "simple" {`), "missing DOT header")
	assert.Contains(t, dot, `"s1";`)
	assert.Contains(t, dot, `"s2" [shape=doublecircle];`)
	assert.Contains(t, dot, `"__start" -> "s1";`)
	assert.Contains(t, dot, `"s1" -> "s2" [label="e1"];`)
	assert.True(t, strings.HasSuffix(dot, "}\n"))
}

func TestExportDOT_MergesParallelEdges(t *testing.T) {
	table := fsmx.Table[string, rune]{}
	table.Set("a", 'y', "b")
	table.Set("a", 'x', "b")
	table.Set("b", 'x', "a")

	dot := ExportDOT("m", table, "a", nil)

	assert.Contains(t, dot, `"a" -> "b" [label="120,121"];`)
	assert.Contains(t, dot, `"b" -> "a" [label="120"];`)
	assert.NotContains(t, dot, "doublecircle")
}

func TestExportDOT_ModThree(t *testing.T) {
	final := []modthree.Remainder{modthree.S0, modthree.S1, modthree.S2}
	dot := ExportDOT("mod-three", modthree.Table(), modthree.S0, final)

	want := `digraph "mod-three" {
  rankdir=LR;
  node [shape=circle, fontsize=10];
  edge [fontsize=9];
  "__start" [shape=point];
  "S0" [shape=doublecircle];
  "S1" [shape=doublecircle];
  "S2" [shape=doublecircle];
  "__start" -> "S0";
  "S0" -> "S0" [label="0"];
  "S0" -> "S1" [label="1"];
  "S1" -> "S0" [label="1"];
  "S1" -> "S2" [label="0"];
  "S2" -> "S1" [label="0"];
  "S2" -> "S2" [label="1"];
}
`
	assert.Equal(t, want, dot)

	// Map iteration order must not leak into the output.
	for range 10 {
		assert.Equal(t, dot, ExportDOT("mod-three", modthree.Table(), modthree.S0, final))
	}
}

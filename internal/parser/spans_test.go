package parser

import (
	"testing"

	"abacus/internal/ast"
	"abacus/internal/diag"
	"abacus/internal/lexer"
	"abacus/internal/source"
	"abacus/internal/testkit"
)

// Statement spans stay inside the file span even when recovery drops
// statements around them.
func TestSpanInvariantsHold(t *testing.T) {
	inputs := []string{
		"",
		"1 + 2\n",
		"x = (1 + 2) * 3; y = x ^ 2\nmax(x, y, 10)\n",
		"# comment only\n",
		"broken + \nnext = 4\n",
		"2 ^ -1 )\n",
		"a = 1\n\n\nb = a + 1",
	}
	for _, input := range inputs {
		fs := source.NewFileSet()
		fileID := fs.AddVirtual("test.abc", []byte(input))
		file := fs.Get(fileID)

		bag := diag.NewBag(100)
		reporter := &diag.BagReporter{Bag: bag}
		lx := lexer.New(file, lexer.Options{Reporter: reporter})
		builder := ast.NewBuilder(ast.Hints{})

		result := ParseFile(fs, lx, builder, Options{Reporter: reporter, MaxErrors: 100})
		if err := testkit.CheckSpanInvariants(builder, result.File, file); err != nil {
			t.Errorf("input %q: %v", input, err)
		}
	}
}

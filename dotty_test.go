package wordtree

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestTree2Dot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wordtree")
	defer teardown()
	//
	tree := New()
	for _, w := range []string{"b", "a", `say "c"`} {
		tree.Insert(w)
	}
	tree.Insert("aa") // right child of a; a gets an empty left child
	var buf bytes.Buffer
	if err := Tree2Dot(tree, &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.HasPrefix(dot, "strict digraph {") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("DOT output not framed as digraph")
	}
	for _, want := range []string{
		`"0" -> "1";`,
		`"0" -> "2";`,
		`"1" -> "nil1_0";`,
		`"1" -> "3";`,
		`label="say \"c\""`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("expected DOT output to contain %s", want)
		}
	}
}

func TestTree2DotEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Tree2Dot(New(), &buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "->") {
		t.Errorf("empty tree should not have edges")
	}
	if err := Tree2Dot(New(), nil); err != ErrIllegalArguments {
		t.Errorf("expected ErrIllegalArguments for nil writer, got %v", err)
	}
}

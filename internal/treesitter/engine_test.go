package treesitter

import (
	"testing"

	"github.com/kobzarvs/led/internal/config"
	"github.com/kobzarvs/led/internal/document"
	"github.com/kobzarvs/led/internal/syntax"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	langs := config.Languages{
		Languages: []config.Language{
			{Name: "go", FileTypes: []string{"go"}},
		},
	}
	e := New(langs)
	if err := e.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	t.Cleanup(func() { _ = e.Stop() })
	return e
}

func newGoDocument(lines ...string) *document.Document {
	doc := document.NewFromLines(1, 80, 20, lines...)
	doc.Bind("main.go")
	return doc
}

func TestHighlightGo(t *testing.T) {
	e := newTestEngine(t)
	doc := newGoDocument("package main", "", "// hi", "func main() { x := 1 }")

	rows, ok := e.Highlight(doc, 0, 3, 80)
	if !ok {
		t.Fatalf("Highlight ok = false, want true")
	}
	for row := 0; row < 4; row++ {
		if got := syntax.Join(rows[row]); got != doc.Line(row) {
			t.Fatalf("row %d joined = %q, want %q", row, got, doc.Line(row))
		}
	}
	if got := rows[0][0]; got.Text != "package" || got.Kind != syntax.Keyword {
		t.Fatalf("row 0 first token = %+v, want keyword package", got)
	}
	for _, tok := range rows[2] {
		if tok.Kind != syntax.Comment {
			t.Fatalf("comment row token = %+v, want comment", tok)
		}
	}
	if got := rows[3][0]; got.Text != "func" || got.Kind != syntax.Keyword {
		t.Fatalf("row 3 first token = %+v, want keyword func", got)
	}
	found := false
	for _, tok := range rows[3] {
		if tok.Text == " 1" && tok.Kind == syntax.Literal {
			found = true
		}
	}
	if !found {
		t.Fatalf("row 3 tokens = %+v, want literal \" 1\"", rows[3])
	}
}

func TestHighlightUnknownLanguage(t *testing.T) {
	e := newTestEngine(t)
	doc := document.NewFromLines(1, 80, 20, "hello")
	doc.Bind("README.md")
	if _, ok := e.Highlight(doc, 0, 0, 80); ok {
		t.Fatalf("Highlight ok = true for README.md, want false")
	}
	unbound := document.NewFromLines(2, 80, 20, "hello")
	if _, ok := e.Highlight(unbound, 0, 0, 80); ok {
		t.Fatalf("Highlight ok = true for unnamed buffer, want false")
	}
}

func TestHighlightTruncatesToColumns(t *testing.T) {
	e := newTestEngine(t)
	doc := newGoDocument("package main")
	rows, ok := e.Highlight(doc, 0, 0, 4)
	if !ok {
		t.Fatalf("Highlight ok = false, want true")
	}
	if got := syntax.Join(rows[0]); got != "pack" {
		t.Fatalf("joined = %q, want %q", got, "pack")
	}
}

func TestHighlightReusesTreeUntilChange(t *testing.T) {
	e := newTestEngine(t)
	doc := newGoDocument("package main")
	if _, ok := e.Highlight(doc, 0, 0, 80); !ok {
		t.Fatalf("Highlight ok = false, want true")
	}
	first := e.trees[doc.ID()]
	if _, ok := e.Highlight(doc, 0, 0, 80); !ok {
		t.Fatalf("Highlight ok = false, want true")
	}
	if e.trees[doc.ID()] != first {
		t.Fatalf("tree reparsed without a change")
	}

	doc.EndOfRow()
	doc.InsertNewline()
	if _, ok := e.Highlight(doc, 0, 1, 80); !ok {
		t.Fatalf("Highlight ok = false, want true")
	}
	if e.trees[doc.ID()] == first {
		t.Fatalf("tree not reparsed after edit")
	}
	if got := e.trees[doc.ID()].tick; got != doc.ChangeTick() {
		t.Fatalf("cached tick = %d, want %d", got, doc.ChangeTick())
	}
}

func TestKindsForLineFirstCaptureWins(t *testing.T) {
	spans := []highlightSpan{
		{StartCol: 0, EndCol: 3, Kind: "keyword"},
		{StartCol: 2, EndCol: 5, Kind: "string"},
	}
	got := kindsForLine(6, spans)
	want := []syntax.Kind{
		syntax.Keyword, syntax.Keyword, syntax.Keyword,
		syntax.Literal, syntax.Literal, syntax.Other,
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestKindForCapture(t *testing.T) {
	cases := map[string]syntax.Kind{
		"comment":     syntax.Comment,
		"number":      syntax.Literal,
		"keyword":     syntax.Keyword,
		"operator":    syntax.Operator,
		"punctuation": syntax.Punctuator,
		"function":    syntax.Identifier,
		"markup":      syntax.Other,
	}
	for name, want := range cases {
		if got := kindForCapture(name); got != want {
			t.Fatalf("kindForCapture(%q) = %v, want %v", name, got, want)
		}
	}
}

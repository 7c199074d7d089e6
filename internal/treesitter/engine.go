// Package treesitter classifies the visible rows of a document with a real
// grammar when one is available for its file type.
package treesitter

import (
	"context"
	"math"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/bash"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/toml"
	"github.com/smacker/go-tree-sitter/yaml"

	"github.com/kobzarvs/led/internal/config"
	"github.com/kobzarvs/led/internal/document"
	"github.com/kobzarvs/led/internal/logger"
	"github.com/kobzarvs/led/internal/syntax"
)

// Engine keeps one parse tree per document and reparses it when the
// document's change tick moves. It is used from the editor loop only.
type Engine struct {
	langs   config.Languages
	parsers map[string]*sitter.Parser
	queries map[string]*sitter.Query
	trees   map[int]*parsedDoc
}

type parsedDoc struct {
	lang   string
	tick   uint64
	tree   *sitter.Tree
	source []byte
}

// highlightSpan is a capture on one row, in byte columns.
type highlightSpan struct {
	StartCol int
	EndCol   int
	Kind     string
}

func New(langs config.Languages) *Engine {
	return &Engine{
		langs:   langs,
		parsers: make(map[string]*sitter.Parser),
		queries: make(map[string]*sitter.Query),
		trees:   make(map[int]*parsedDoc),
	}
}

// Start builds a parser and highlight query for every built-in grammar.
func (e *Engine) Start() error {
	languages := []struct {
		name  string
		query string
	}{
		{"go", goHighlightQuery},
		{"yaml", yamlHighlightQuery},
		{"toml", tomlHighlightQuery},
		{"bash", bashHighlightQuery},
	}

	for _, l := range languages {
		lang := tsLanguageForName(l.name)
		p := sitter.NewParser()
		p.SetLanguage(lang)
		e.parsers[l.name] = p

		query, err := sitter.NewQuery([]byte(l.query), lang)
		if err != nil {
			logger.Warn("highlight query rejected", "language", l.name, "err", err)
			continue
		}
		e.queries[l.name] = query
	}
	return nil
}

// Stop releases every tree, query and parser.
func (e *Engine) Stop() error {
	for id, doc := range e.trees {
		doc.tree.Close()
		delete(e.trees, id)
	}
	for name, q := range e.queries {
		q.Close()
		delete(e.queries, name)
	}
	for name, p := range e.parsers {
		p.Close()
		delete(e.parsers, name)
	}
	return nil
}

// Language returns the configured grammar for path when the engine can
// highlight it.
func (e *Engine) Language(path string) (string, bool) {
	lang := e.langs.Match(path)
	if lang == nil {
		return "", false
	}
	if _, ok := e.queries[lang.Name]; !ok {
		return "", false
	}
	return lang.Name, true
}

// Highlight returns tokens for rows [start, end] of doc, each row cut to
// cols bytes. ok is false when the document has no supported grammar; the
// caller then falls back to the lexical tokenizer.
func (e *Engine) Highlight(doc *document.Document, start, end, cols int) (map[int][]syntax.Token, bool) {
	lang, ok := e.Language(doc.Path())
	if !ok {
		return nil, false
	}
	parsed, ok := e.parse(doc, lang)
	if !ok {
		return nil, false
	}
	spans := queryHighlights(e.queries[lang], parsed.tree, parsed.source, start, end)
	out := make(map[int][]syntax.Token, end-start+1)
	for row := start; row <= end && row < doc.LineCount(); row++ {
		line := doc.Line(row)
		if cols >= 0 && len(line) > cols {
			line = line[:cols]
		}
		out[row] = syntax.FromKinds(line, kindsForLine(len(line), spans[row]))
	}
	return out, true
}

func (e *Engine) parse(doc *document.Document, lang string) (*parsedDoc, bool) {
	prev := e.trees[doc.ID()]
	if prev != nil && prev.lang == lang && prev.tick == doc.ChangeTick() {
		return prev, true
	}
	parser := e.parsers[lang]
	if parser == nil {
		return nil, false
	}
	source := []byte(doc.Content())
	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		logger.Warn("parse failed", "doc", doc.ID(), "language", lang, "err", err)
		return nil, false
	}
	if prev != nil {
		prev.tree.Close()
	}
	parsed := &parsedDoc{lang: lang, tick: doc.ChangeTick(), tree: tree, source: source}
	e.trees[doc.ID()] = parsed
	logger.Debug("parsed", "doc", doc.ID(), "language", lang, "bytes", len(source))
	return parsed, true
}

func queryHighlights(query *sitter.Query, tree *sitter.Tree, source []byte, startLine, endLine int) map[int][]highlightSpan {
	if query == nil || tree == nil {
		return nil
	}
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.SetPointRange(
		sitter.Point{Row: uint32(startLine), Column: 0},
		sitter.Point{Row: uint32(endLine + 1), Column: 0},
	)
	cursor.Exec(query, tree.RootNode())

	out := make(map[int][]highlightSpan)
	for {
		match, ok := cursor.NextMatch()
		if !ok {
			break
		}
		match = cursor.FilterPredicates(match, source)
		if match == nil {
			continue
		}
		for _, capture := range match.Captures {
			kind := query.CaptureNameForId(capture.Index)
			start := capture.Node.StartPoint()
			end := capture.Node.EndPoint()
			for row := int(start.Row); row <= int(end.Row); row++ {
				if row < startLine || row > endLine {
					continue
				}
				startCol := 0
				endCol := math.MaxInt32
				if row == int(start.Row) {
					startCol = int(start.Column)
				}
				if row == int(end.Row) {
					endCol = int(end.Column)
				}
				out[row] = append(out[row], highlightSpan{StartCol: startCol, EndCol: endCol, Kind: kind})
			}
		}
	}
	return out
}

// kindsForLine assigns each byte the kind of the first capture covering it.
func kindsForLine(n int, spans []highlightSpan) []syntax.Kind {
	kinds := make([]syntax.Kind, n)
	set := make([]bool, n)
	for _, span := range spans {
		kind := kindForCapture(span.Kind)
		for col := max(span.StartCol, 0); col < min(span.EndCol, n); col++ {
			if !set[col] {
				kinds[col] = kind
				set[col] = true
			}
		}
	}
	for col := range kinds {
		if !set[col] {
			kinds[col] = syntax.Other
		}
	}
	return kinds
}

func kindForCapture(name string) syntax.Kind {
	switch name {
	case "comment":
		return syntax.Comment
	case "string", "number", "constant":
		return syntax.Literal
	case "keyword":
		return syntax.Keyword
	case "operator":
		return syntax.Operator
	case "punctuation":
		return syntax.Punctuator
	case "type", "function", "field", "builtin", "variable", "parameter":
		return syntax.Identifier
	default:
		return syntax.Other
	}
}

func tsLanguageForName(name string) *sitter.Language {
	switch name {
	case "go":
		return golang.GetLanguage()
	case "yaml":
		return yaml.GetLanguage()
	case "toml":
		return toml.GetLanguage()
	case "bash":
		return bash.GetLanguage()
	default:
		return nil
	}
}

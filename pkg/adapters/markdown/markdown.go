// Package markdown reads and writes notes as Markdown with optional YAML
// frontmatter:
//
//	---
//	title: Groceries
//	---
//	milk, eggs
package markdown

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/aretw0/notepad/pkg/core"
)

// ErrUnclosedFrontmatter is returned when a document opens a frontmatter
// block and never closes it.
var ErrUnclosedFrontmatter = errors.New("frontmatter started but no closing delimiter found")

// Metadata is the decoded frontmatter.
type Metadata map[string]any

// Document is a Markdown file split into frontmatter and body.
type Document struct {
	Metadata Metadata
	Content  string
}

// Parse reads a stream and splits it into frontmatter and content.
// A stream that does not start with "---" has no frontmatter.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := &Document{Metadata: make(Metadata)}

	if !bytes.HasPrefix(data, []byte("---\n")) && !bytes.HasPrefix(data, []byte("---\r\n")) {
		doc.Content = string(data)
		return doc, nil
	}

	rest := data[bytes.IndexByte(data, '\n')+1:]
	start, end, ok := closingFence(rest)
	if !ok {
		return nil, ErrUnclosedFrontmatter
	}

	if err := yaml.Unmarshal(rest[:start], &doc.Metadata); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter: %w", err)
	}
	if doc.Metadata == nil {
		doc.Metadata = make(Metadata)
	}

	doc.Content = string(rest[end:])
	return doc, nil
}

// closingFence finds the first line of rest that is exactly "---", allowing a
// trailing "\r". It returns where that line starts and where the next one begins.
func closingFence(rest []byte) (start, end int, ok bool) {
	for off := 0; off < len(rest); {
		line, next := rest[off:], len(rest)
		if i := bytes.IndexByte(line, '\n'); i >= 0 {
			line, next = line[:i], off+i+1
		}
		if string(bytes.TrimSuffix(line, []byte("\r"))) == "---" {
			return off, next, true
		}
		off = next
	}
	return 0, 0, false
}

// String serializes the document back to Markdown with frontmatter.
func (d *Document) String() (string, error) {
	var buf bytes.Buffer

	if len(d.Metadata) > 0 {
		buf.WriteString("---\n")
		encoder := yaml.NewEncoder(&buf)
		encoder.SetIndent(2)
		if err := encoder.Encode(map[string]any(d.Metadata)); err != nil {
			return "", err
		}
		encoder.Close()
		buf.WriteString("---\n")
	}

	buf.WriteString(d.Content)
	return buf.String(), nil
}

// Title returns the "title" key, or fallback when it is missing or not a string.
func (d *Document) Title(fallback string) string {
	if t, ok := d.Metadata["title"].(string); ok && t != "" {
		return t
	}
	return fallback
}

// FromNote builds the Markdown form of a note. The id travels in the
// frontmatter so the output identifies the note it came from.
func FromNote(n core.Note) *Document {
	return &Document{
		Metadata: Metadata{"id": n.ID, "title": n.Title},
		Content:  n.Body,
	}
}

// Format renders a note as Markdown.
func Format(n core.Note) (string, error) {
	return FromNote(n).String()
}

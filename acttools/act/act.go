// Package act reads GlobalSat GB-580 activity exports (ACT files).
//
// An ACT file is almost XML: its first line is garbage and the remaining
// elements have no common root. Read drops the first line and wraps the rest
// in a synthetic root so that it can be parsed as a regular XML document.
package act

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
)

// RootTag is the synthetic element every document is wrapped into
const RootTag = "top"

const header = `<?xml version="1.0" encoding="utf-8"?><` + RootTag + `>`
const footer = `</` + RootTag + `>`

// ErrFileNotFound is returned when the ACT file doesn't exist
var ErrFileNotFound = errors.New("file not found")

// ErrParse is returned when the wrapped content is not valid XML
var ErrParse = errors.New("invalid ACT content")

// ParseError describes where the XML parser gave up. Line is the line in the
// ACT file, the discarded first line included.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	var synErr *xml.SyntaxError
	if errors.As(e.Err, &synErr) {
		msg = synErr.Msg
	}

	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", ErrParse, e.Line, msg)
	}
	return fmt.Sprintf("%s: %s", ErrParse, msg)
}

// Is reports ErrParse as matching every ParseError
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// Unwrap returns the error of the XML parser
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Document is a parsed ACT file
type Document struct {
	Root *Node
}

// Read loads and parses the ACT file at path
func Read(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file %s doesn't exist: %w", path, ErrFileNotFound)
		}
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// Parse parses ACT content from r. The first line is always discarded.
func Parse(r io.Reader) (*Document, error) {
	br := bufio.NewReader(r)
	if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
		return nil, err
	}

	content, err := ioutil.ReadAll(br)
	if err != nil {
		return nil, err
	}

	wrapped := make([]byte, 0, len(header)+len(content)+len(footer))
	wrapped = append(wrapped, header...)
	wrapped = append(wrapped, content...)
	wrapped = append(wrapped, footer...)

	root, err := buildTree(wrapped)
	if err != nil {
		return nil, err
	}

	return &Document{Root: root}, nil
}

// Find returns the top level elements of the document named name (case-insensitive)
func (d *Document) Find(name string) []*Node {
	return d.Root.Elements(name)
}

func buildTree(data []byte) (*Node, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = true

	var root *Node
	var stack []*Node
	var text []*bytes.Buffer

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: t.Name.Local}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, n)
			} else {
				root = n
			}
			stack = append(stack, n)
			text = append(text, &bytes.Buffer{})
		case xml.EndElement:
			last := len(stack) - 1
			stack[last].Text = text[last].String()
			stack = stack[:last]
			text = text[:last]
		case xml.CharData:
			if len(stack) > 0 {
				text[len(text)-1].Write(t)
			}
		}
	}

	if root == nil {
		return nil, &ParseError{Err: errors.New("empty document")}
	}

	return root, nil
}

func parseError(err error) error {
	var synErr *xml.SyntaxError
	if errors.As(err, &synErr) {
		// the wrapped line 1 is the second line of the file
		return &ParseError{Line: synErr.Line + 1, Err: synErr}
	}
	return &ParseError{Err: err}
}

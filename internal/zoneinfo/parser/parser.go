// Package parser implements the zoneinfo.Parser contract: it splits a loaded
// document into lines and classifies each one.
package parser

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"

	pkgzoneinfo "github.com/goliatone/go-tzgen/pkg/zoneinfo"
)

// Parser implements pkgzoneinfo.Parser on top of the line-level parse
// functions.
type Parser struct {
	options pkgzoneinfo.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgzoneinfo.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgzoneinfo.ParserOptions) pkgzoneinfo.Parser {
	return &Parser{options: options}
}

// Lines parses every line of the document, preserving order. Space lines are
// dropped; they carry no information the table builder needs. Parse failures
// include the 1-based line number unless SkipInvalidLines is set.
func (p *Parser) Lines(ctx context.Context, doc pkgzoneinfo.Document) ([]pkgzoneinfo.Line, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("zoneinfo parser: document payload is empty")
	}

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []pkgzoneinfo.Line
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line, err := pkgzoneinfo.ParseLine(scanner.Text())
		if err != nil {
			if p.options.SkipInvalidLines {
				continue
			}
			return nil, fmt.Errorf("zoneinfo parser: %s line %d: %w", doc.Location(), lineNo, err)
		}
		if _, ok := line.(pkgzoneinfo.Space); ok {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("zoneinfo parser: scan %s: %w", doc.Location(), err)
	}

	if len(lines) == 0 {
		return nil, errors.New("zoneinfo parser: no zone, rule, or link lines found")
	}

	return lines, nil
}

// Package protocol implements the textual tool-call markup embedded in
// model output: parsing <tool> blocks out of free-form text and rendering
// the <tool-result>/<tool-error> blocks substituted back in.
package protocol

import (
	"strings"
)

const (
	toolOpen  = "<tool>"
	toolClose = "</tool>"

	nameOpen  = "<name>"
	nameClose = "</name>"

	paramsOpen  = "<parameters>"
	paramsClose = "</parameters>"

	paramPrefix = "<param"
	paramClose  = "</param>"
)

// ToolCall is one structured invocation extracted from model text.
// SourceSpan is the exact substring that produced it, kept so the
// dispatcher can substitute the result back in place.
type ToolCall struct {
	Name       string
	Parameters map[string]string
	SourceSpan string
}

// Parser extracts tool calls from raw model output. It never fails:
// malformed blocks degrade to "no call" for that span.
type Parser struct {
	logf func(format string, args ...any)
}

// NewParser creates a Parser. logf receives diagnostics for skipped
// blocks; nil discards them.
func NewParser(logf func(format string, args ...any)) *Parser {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Parser{logf: logf}
}

// Parse scans text for non-overlapping <tool>...</tool> spans and returns
// the calls in document order. The first </tool> closes the nearest
// preceding <tool>; nesting is not supported. An unterminated <tool>
// yields nothing for the remainder of the text.
func (p *Parser) Parse(text string) []ToolCall {
	var calls []ToolCall

	cursor := 0
	for {
		start := strings.Index(text[cursor:], toolOpen)
		if start < 0 {
			break
		}
		start += cursor

		end := strings.Index(text[start+len(toolOpen):], toolClose)
		if end < 0 {
			// Unterminated block. Nothing after it can be well formed.
			break
		}
		end += start + len(toolOpen)

		span := text[start : end+len(toolClose)]
		inner := text[start+len(toolOpen) : end]
		cursor = end + len(toolClose)

		call, ok := p.parseBlock(inner)
		if !ok {
			continue
		}
		call.SourceSpan = span
		calls = append(calls, call)
	}

	return calls
}

// parseBlock extracts the name and parameters from the interior of one
// tool span. A block missing either section is skipped.
func (p *Parser) parseBlock(inner string) (call ToolCall, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			p.logf("protocol: recovered parsing tool block: %v", r)
			ok = false
		}
	}()

	name, found := firstSection(inner, nameOpen, nameClose)
	if !found {
		p.logf("protocol: skipping tool block without <name>")
		return ToolCall{}, false
	}

	paramsBody, found := firstSection(inner, paramsOpen, paramsClose)
	if !found {
		p.logf("protocol: skipping tool block without <parameters>")
		return ToolCall{}, false
	}

	return ToolCall{
		Name:       strings.TrimSpace(name),
		Parameters: parseParams(paramsBody),
	}, true
}

// firstSection returns the interior of the first open...close pair in s.
func firstSection(s, open, closing string) (string, bool) {
	start := strings.Index(s, open)
	if start < 0 {
		return "", false
	}
	rest := s[start+len(open):]
	end := strings.Index(rest, closing)
	if end < 0 {
		return "", false
	}
	return rest[:end], true
}

// parseParams extracts every <param name="KEY">VALUE</param> pair in
// document order. Values are raw text trimmed of surrounding whitespace;
// a duplicate key overwrites the earlier value. A malformed param tag
// ends the scan for the block.
func parseParams(body string) map[string]string {
	params := make(map[string]string)

	cursor := 0
	for {
		tag := strings.Index(body[cursor:], paramPrefix)
		if tag < 0 {
			break
		}
		tag += cursor

		attrStart := strings.Index(body[tag:], `name="`)
		if attrStart < 0 {
			break
		}
		keyStart := tag + attrStart + len(`name="`)

		keyEnd := strings.Index(body[keyStart:], `"`)
		if keyEnd < 0 {
			break
		}
		key := body[keyStart : keyStart+keyEnd]

		valStart := strings.Index(body[keyStart+keyEnd:], ">")
		if valStart < 0 {
			break
		}
		valStart += keyStart + keyEnd + 1

		valEnd := strings.Index(body[valStart:], paramClose)
		if valEnd < 0 {
			break
		}

		params[key] = strings.TrimSpace(body[valStart : valStart+valEnd])
		cursor = valStart + valEnd + len(paramClose)
	}

	return params
}

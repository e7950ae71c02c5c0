//-----------------------------------------------------------------------------
// Copyright (c) 2024-present Detlef Stern
//
// This file is part of plp.
//
// plp is licensed under the latest version of the EUPL // (European Union
// Public License). Please see file LICENSE.txt for your rights and obligations
// under this license.
//
// SPDX-License-Identifier: EUPL-1.2
// SPDX-FileCopyrightText: 2024-present Detlef Stern
//-----------------------------------------------------------------------------

// Package reader turns PLP source text into a single plp.Object, in two
// phases: a regex tokenizer followed by a cursor-based recursive-descent
// parser. Either exactly one value is returned or exactly one error; the
// reader never restarts.
package reader

import (
	"regexp"
	"strconv"
	"strings"

	"plp.sh/plp"
	"plp.sh/plp/perr"
)

// backtick holds the one character a raw string literal can't spell.
const backtick = "`"

// tokenPattern is the tokenizer from https://norvig.com/lispy2.html:
// leading whitespace/commas are skipped, then one of `~@`, a lone
// delimiter/reader-macro character, a double-quoted string (escapes
// included, closing quote optional so an unterminated string is still
// captured as one token), a `;` line comment, or a run of anything else.
var tokenPattern = regexp.MustCompile(
	`[\s,]*(~@|[\[\]{}()'` + backtick + `~^@]|"(?:\\.|[^\\"])*"?|;.*|[^\s\[\]{}('"` + backtick + `,;)]*)`,
)

func tokenize(body string) []string {
	var tokens []string
	matches := tokenPattern.FindAllStringSubmatch(body, -1)
	for _, m := range matches {
		tok := m[1]
		if strings.TrimSpace(tok) != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// cursor walks a token slice one token at a time.
type cursor struct {
	tokens []string
	pos    int
}

func (c *cursor) get() (string, bool) {
	if c.pos < len(c.tokens) {
		return c.tokens[c.pos], true
	}
	return "", false
}

func (c *cursor) next() (string, bool) {
	tok, ok := c.get()
	if ok {
		c.pos++
	}
	return tok, ok
}

// ReadString reads exactly one value from body, returning a *perr.Error on
// any failure (empty input, unmatched delimiter, unmatched quote).
func ReadString(body string) (plp.Object, error) {
	tokens := tokenize(body)
	if len(tokens) == 0 {
		return nil, perr.New("empty line!")
	}
	c := &cursor{tokens: tokens}
	return readToken(c)
}

func readToken(c *cursor) (plp.Object, error) {
	token, ok := c.get()
	if !ok {
		return nil, perr.Unmatchedf("unexpected end of input")
	}
	if strings.HasPrefix(token, ";") {
		c.next()
		return readToken(c)
	}
	switch token {
	case "'":
		c.next()
		form, err := readToken(c)
		if err != nil {
			return nil, err
		}
		return plp.List{plp.Symbol("quote"), form}, nil
	case "(":
		return readSequenceAs(c, ")", func(items []plp.Object) plp.Object { return plp.List(items) })
	case ")":
		return nil, perr.Unmatchedf("unexpected \")\"")
	case "[":
		return readSequenceAs(c, "]", func(items []plp.Object) plp.Object { return plp.Vector(items) })
	case "]":
		return nil, perr.Unmatchedf("unexpected \"]\"")
	case "{":
		return readHashMap(c)
	case "}":
		return nil, perr.Unmatchedf("unexpected \"}\"")
	default:
		return readAtom(c)
	}
}

// readSequenceAs consumes the opening delimiter (already positioned at it)
// and reads values until end, then wraps them with build.
func readSequenceAs(c *cursor, end string, build func([]plp.Object) plp.Object) (plp.Object, error) {
	items, err := readSequence(c, end)
	if err != nil {
		return nil, err
	}
	return build(items), nil
}

func readSequence(c *cursor, end string) ([]plp.Object, error) {
	var items []plp.Object
	c.next() // consume the opening delimiter
	for {
		token, ok := c.get()
		if token == end && ok {
			c.next()
			break
		}
		if !ok {
			return nil, perr.Unmatchedf("missing closing \"%s\"", end)
		}
		item, err := readToken(c)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func readHashMap(c *cursor) (plp.Object, error) {
	items, err := readSequence(c, "}")
	if err != nil {
		return nil, err
	}
	hm, err := plp.NewHashMap(items)
	if err != nil {
		return nil, perr.New("%s", err)
	}
	return hm, nil
}

func readAtom(c *cursor) (plp.Object, error) {
	token, _ := c.get()
	defer c.next()

	if n, ok := parseInteger(token); ok {
		return n, nil
	}
	if f, ok := parseFloat(token); ok {
		return f, nil
	}
	if len(token) >= 2 && token[0] == '"' && token[len(token)-1] == '"' {
		return plp.MakeString(unescapeString(token[1 : len(token)-1])), nil
	}
	if len(token) > 0 && token[0] == '"' {
		return nil, perr.Unmatchedf("expected closing '\"'")
	}
	if len(token) > 0 && token[0] == ':' {
		return plp.Keyword(token[1:]), nil
	}
	switch token {
	case "true":
		return plp.MakeBoolean(true), nil
	case "false":
		return plp.MakeBoolean(false), nil
	case "nil":
		return plp.Nil(), nil
	default:
		return plp.Symbol(token), nil
	}
}

func parseInteger(token string) (plp.Integer, bool) {
	n, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, false
	}
	return plp.Integer(n), true
}

func parseFloat(token string) (plp.Float, bool) {
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return plp.Float(f), true
}

// unescapeString processes the \\, \", and \n escape sequences, using a
// placeholder byte so `\\n` (escaped backslash followed by n) does not
// turn into a newline.
func unescapeString(s string) string {
	const placeholder = '\b'
	s = strings.ReplaceAll(s, `\\`, string(placeholder))
	s = strings.ReplaceAll(s, `\"`, `"`)
	s = strings.ReplaceAll(s, `\n`, "\n")
	s = strings.ReplaceAll(s, string(placeholder), `\`)
	return s
}

// Package pgparser splits PostgreSQL scripts into statements.
//
// This package runs the Bytebase PostgreSQL lexer over a script and cuts it at
// statement-terminating semicolons. Semicolons inside string constants,
// dollar-quoted bodies, quoted identifiers and comments do not end a statement.
// No parse tree is built, so statements the parser would reject are still split.
package pgparser

import (
	"fmt"
	"strings"

	"github.com/antlr4-go/antlr/v4"
	parser "github.com/bytebase/parser/postgresql"
)

// Position is a one-based line and zero-based column in a script.
type Position struct {
	Line   int
	Column int
}

// SyntaxError represents a lexing error with position information.
type SyntaxError struct {
	Message  string
	Position *Position
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	if e.Position != nil {
		return fmt.Sprintf("syntax error at line %d, column %d: %s",
			e.Position.Line, e.Position.Column, e.Message)
	}
	return fmt.Sprintf("syntax error: %s", e.Message)
}

// syntaxErrorListener collects the first lexing error.
type syntaxErrorListener struct {
	*antlr.DefaultErrorListener
	err *SyntaxError
}

// SyntaxError is called when a lexing error is encountered.
func (l *syntaxErrorListener) SyntaxError(
	_ antlr.Recognizer,
	_ any,
	line, column int,
	msg string,
	_ antlr.RecognitionException,
) {
	if l.err == nil {
		l.err = &SyntaxError{
			Message:  msg,
			Position: &Position{Line: line, Column: column},
		}
	}
}

// Statements splits a PostgreSQL script into trimmed statements without their
// terminating semicolon. Statements holding only comments are dropped.
//
// Example:
//
//	stmts, err := pgparser.Statements("CREATE FUNCTION f() RETURNS int AS $$ BEGIN RETURN 1; END $$ LANGUAGE plpgsql; SELECT f();")
//	// stmts has two elements; the function body stays intact
func Statements(script string) ([]string, error) {
	lexer := parser.NewPostgreSQLLexer(antlr.NewInputStream(script))
	listener := &syntaxErrorListener{DefaultErrorListener: antlr.NewDefaultErrorListener()}
	lexer.RemoveErrorListeners()
	lexer.AddErrorListener(listener)

	stream := antlr.NewCommonTokenStream(lexer, antlr.TokenDefaultChannel)
	stream.Fill()
	if listener.err != nil {
		return nil, listener.err
	}

	var (
		result  []string
		buf     strings.Builder
		hasCode bool
	)
	flush := func() {
		if text := strings.TrimSpace(buf.String()); hasCode && text != "" {
			result = append(result, text)
		}
		buf.Reset()
		hasCode = false
	}
	for _, token := range stream.GetAllTokens() {
		switch {
		case token.GetTokenType() == antlr.TokenEOF:
			continue
		case token.GetTokenType() == parser.PostgreSQLLexerSEMI:
			flush()
			continue
		case token.GetChannel() == antlr.TokenDefaultChannel:
			hasCode = true
		}
		buf.WriteString(token.GetText())
	}
	flush()
	return result, nil
}

// Package mysqlparser splits MySQL scripts into statements with the MySQL ANTLR lexer.
//
// Only the token stream is used; no parse tree is ever built. The lexer knows about
// comments, quoting, DELIMITER statements and compound statements (BEGIN ... END,
// IF, LOOP, WHILE, REPEAT, CASE), so a semicolon inside a stored procedure body does
// not end the statement.
package mysqlparser

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/antlr4-go/antlr/v4"
	parser "github.com/gedhean/mysql-parser"
	"github.com/pkg/errors"
)

var delimiterPattern = regexp.MustCompile(`(?i)^\s*DELIMITER\s+(?P<DELIMITER>[^\s\\]+)\s*`)

// Statements returns the non-empty statements of script, trimmed and without
// their terminator.
//
// A lexer error is returned as a *SyntaxError. Unbalanced compound blocks and a
// DELIMITER that is declared but never used are errors too, so callers that only
// need a best-effort split can fall back to a simpler splitter.
func Statements(script string) ([]string, error) {
	s, listener := newSplitter(script)
	pieces, err := s.split()
	if listener.Err != nil {
		return nil, listener.Err
	}
	if err != nil {
		slog.Debug("failed to split MySQL script", "error", err)
		return nil, err
	}

	var result []string
	for _, piece := range pieces {
		text := strings.TrimSpace(piece)
		text = strings.TrimSpace(strings.TrimSuffix(text, ";"))
		if text != "" {
			result = append(result, text)
		}
	}
	return result, nil
}

func newSplitter(script string) (*splitter, *LexerErrorListener) {
	lexer := parser.NewMySQLLexer(antlr.NewInputStream(script))
	listener := &LexerErrorListener{
		DefaultErrorListener: antlr.NewDefaultErrorListener(),
		Statement:            script,
	}
	lexer.RemoveErrorListeners()
	lexer.AddErrorListener(listener)
	stream := antlr.NewCommonTokenStream(lexer, antlr.TokenDefaultChannel)
	stream.Fill()

	s := &splitter{
		source: []rune(script),
		tokens: stream.GetAllTokens(),
	}
	s.kinds = make([]runeKind, len(s.source))
	for _, token := range s.tokens {
		var kind runeKind
		switch {
		case isCode(token):
			kind = codeRune
		case token.GetChannel() == antlr.TokenDefaultChannel && token.GetTokenType() != antlr.TokenEOF:
			kind = quotedRune
		default:
			continue
		}
		for p := max(token.GetStart(), 0); p <= token.GetStop() && p < len(s.kinds); p++ {
			s.kinds[p] = kind
		}
	}
	return s, listener
}

// isCode reports whether token is SQL text a terminator can be matched in:
// default channel, and neither quoted nor EOF.
func isCode(token antlr.Token) bool {
	if token.GetChannel() != antlr.TokenDefaultChannel {
		return false
	}
	switch token.GetTokenType() {
	case antlr.TokenEOF,
		parser.MySQLLexerSINGLE_QUOTED_TEXT,
		parser.MySQLLexerDOUBLE_QUOTED_TEXT,
		parser.MySQLLexerBACK_TICK_QUOTED_ID:
		return false
	}
	return true
}

// extractDelimiter returns the terminator declared by a DELIMITER line.
func extractDelimiter(line string) (string, error) {
	matchList := delimiterPattern.FindStringSubmatch(line)
	index := delimiterPattern.SubexpIndex("DELIMITER")
	if index >= 0 && index < len(matchList) {
		return matchList[index], nil
	}
	return "", errors.Errorf("cannot extract delimiter from %q", line)
}

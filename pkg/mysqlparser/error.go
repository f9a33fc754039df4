package mysqlparser

import (
	"fmt"

	"github.com/antlr4-go/antlr/v4"
)

// SyntaxError is a lexing error.
type SyntaxError struct {
	Position   *Position
	Message    string
	RawMessage string
}

// Error returns the error message.
func (e *SyntaxError) Error() string {
	return e.Message
}

// LexerErrorListener keeps the first error reported by the MySQL lexer.
type LexerErrorListener struct {
	*antlr.DefaultErrorListener
	Err       *SyntaxError
	Statement string
}

// SyntaxError records the first error and ignores the rest.
func (l *LexerErrorListener) SyntaxError(
	_ antlr.Recognizer,
	_ any,
	line, column int,
	message string,
	_ antlr.RecognitionException,
) {
	if l.Err != nil {
		return
	}

	// From antlr4, the line is ONE based, and the column is ZERO based.
	l.Err = &SyntaxError{
		Position: &Position{
			Line:   line - 1,
			Column: column,
		},
		RawMessage: message,
		Message:    fmt.Sprintf("Syntax error at line %d:%d \n%s", line, column, relatedText(l.Statement, line, column)),
	}
}

// relatedText returns up to 40 bytes of the statement ending at the error position.
func relatedText(statement string, line, column int) string {
	offset := 0
	for l := 1; l < line && offset < len(statement); offset++ {
		if statement[offset] == '\n' {
			l++
		}
	}
	end := min(offset+column+1, len(statement))
	start := max(end-40, 0)
	return fmt.Sprintf("related text: %s", statement[start:end])
}

package mysqlparser

import (
	"github.com/antlr4-go/antlr/v4"
	parser "github.com/gedhean/mysql-parser"
	"github.com/pkg/errors"
)

// Block kinds whose bodies may hold semicolons that do not end the statement.
const (
	beginBlock = iota // BEGIN ... END and CASE ... END [CASE]
	ifBlock
	loopBlock
	whileBlock
	repeatBlock
	blockKinds
)

var errUnbalanced = errors.New("invalid statement: unbalanced compound block")

// splitter cuts a lexed script into statement texts. Offsets are rune indexes
// into source, which is how the lexer reports token positions.
type splitter struct {
	source []rune
	tokens []antlr.Token
	kinds  []runeKind
}

type runeKind uint8

const (
	hiddenRune runeKind = iota // whitespace and comments
	quotedRune
	codeRune
)

func (s *splitter) split() ([]string, error) {
	for _, token := range s.tokens {
		if token.GetChannel() == antlr.TokenDefaultChannel && token.GetTokenType() == parser.MySQLLexerDELIMITER_SYMBOL {
			return s.splitByDelimiter()
		}
	}
	return s.splitByBlocks()
}

// splitByDelimiter follows the mysql client: a DELIMITER line at the start of a
// statement changes the terminator, and every statement ends at the current one.
// The terminator is matched on characters rather than tokens since the lexer
// folds "$" into identifiers, so END$$ is a single token.
func (s *splitter) splitByDelimiter() ([]string, error) {
	var result []string
	delimiter := []rune(";")
	unused := false
	start, skip := 0, 0

	for _, token := range s.tokens {
		if !isCode(token) || token.GetStart() < skip {
			continue
		}
		if token.GetTokenType() == parser.MySQLLexerDELIMITER_SYMBOL && s.text(start, token.GetStart()) == "" {
			end := s.lineEnd(token.GetStart())
			d, err := extractDelimiter(string(s.source[token.GetStart():end]))
			if err != nil {
				return nil, errors.Wrap(err, "invalid DELIMITER statement")
			}
			delimiter = []rune(d)
			unused = d != ";"
			start, skip = end, end
			continue
		}
		for p := max(token.GetStart(), start); p <= token.GetStop(); p++ {
			if !s.matchAt(p, delimiter) {
				continue
			}
			if text := s.text(start, p); text != "" {
				result = append(result, text)
			}
			unused = false
			start = p + len(delimiter)
			p = start - 1
		}
	}

	rest := s.text(start, len(s.source))
	if rest == "" {
		return result, nil
	}
	if unused {
		return nil, errors.Errorf("delimiter %q is declared but never terminates a statement", string(delimiter))
	}
	return append(result, rest), nil
}

// splitByBlocks ends statements at semicolons that are not inside a compound block.
func (s *splitter) splitByBlocks() ([]string, error) {
	var open [blockKinds][]int
	var ends []int

	for i, token := range s.tokens {
		switch token.GetTokenType() {
		case parser.MySQLLexerSEMICOLON_SYMBOL:
			ends = append(ends, i)
		case parser.MySQLLexerEND_SYMBOL:
			kind, ok := s.closes(i)
			if !ok {
				continue
			}
			stack := open[kind]
			if len(stack) == 0 {
				return nil, errUnbalanced
			}
			opener := stack[len(stack)-1]
			if kind == ifBlock || kind == repeatBlock {
				// IF(a,b,c) and REPEAT(s,n) open a block that is never closed.
				opener = stack[0]
			}
			for len(ends) > 0 && ends[len(ends)-1] > opener {
				ends = ends[:len(ends)-1]
			}
			open[kind] = stack[:len(stack)-1]
		default:
			if kind, ok := s.opens(i); ok {
				open[kind] = append(open[kind], i)
			}
		}
	}

	var result []string
	start := 0
	for _, end := range ends {
		stop := s.tokens[end].GetStop() + 1
		if text := s.text(start, stop); text != "" {
			result = append(result, text)
		}
		start = stop
	}
	if text := s.text(start, len(s.source)); text != "" {
		result = append(result, text)
	}
	return result, nil
}

// opens reports the block kind token i starts, if any.
func (s *splitter) opens(i int) (int, bool) {
	prev, next := s.neighbor(i, -1), s.neighbor(i, 1)
	switch s.tokens[i].GetTokenType() {
	case parser.MySQLLexerBEGIN_SYMBOL:
		// BEGIN, BEGIN WORK and XA BEGIN start transactions.
		transaction := next == parser.MySQLLexerWORK_SYMBOL ||
			next == parser.MySQLLexerSEMICOLON_SYMBOL ||
			next == antlr.TokenEOF ||
			prev == parser.MySQLLexerXA_SYMBOL
		return beginBlock, !transaction
	case parser.MySQLLexerCASE_SYMBOL:
		return beginBlock, prev != parser.MySQLLexerEND_SYMBOL
	case parser.MySQLLexerIF_SYMBOL:
		return ifBlock, prev != parser.MySQLLexerEND_SYMBOL && next != parser.MySQLLexerEXISTS_SYMBOL
	case parser.MySQLLexerLOOP_SYMBOL:
		return loopBlock, prev != parser.MySQLLexerEND_SYMBOL
	case parser.MySQLLexerWHILE_SYMBOL:
		return whileBlock, prev != parser.MySQLLexerEND_SYMBOL
	case parser.MySQLLexerREPEAT_SYMBOL:
		return repeatBlock, prev != parser.MySQLLexerEND_SYMBOL
	}
	return 0, false
}

// closes reports the block kind the END at token i terminates.
func (s *splitter) closes(i int) (int, bool) {
	if s.neighbor(i, -1) == parser.MySQLLexerXA_SYMBOL {
		return 0, false
	}
	switch s.neighbor(i, 1) {
	case parser.MySQLLexerIF_SYMBOL:
		return ifBlock, true
	case parser.MySQLLexerLOOP_SYMBOL:
		return loopBlock, true
	case parser.MySQLLexerWHILE_SYMBOL:
		return whileBlock, true
	case parser.MySQLLexerREPEAT_SYMBOL:
		return repeatBlock, true
	}
	return beginBlock, true
}

// neighbor returns the type of the default-channel token offset steps away from i.
func (s *splitter) neighbor(i, offset int) int {
	step := 1
	if offset < 0 {
		step, offset = -1, -offset
	}
	for offset > 0 {
		i += step
		if i < 0 || i >= len(s.tokens) {
			return antlr.TokenEOF
		}
		if s.tokens[i].GetChannel() == antlr.TokenDefaultChannel {
			offset--
		}
	}
	return s.tokens[i].GetTokenType()
}

// matchAt reports whether delimiter starts at rune p with every rune outside
// quotes and comments.
func (s *splitter) matchAt(p int, delimiter []rune) bool {
	if p+len(delimiter) > len(s.source) {
		return false
	}
	for i, r := range delimiter {
		if s.kinds[p+i] != codeRune || s.source[p+i] != r {
			return false
		}
	}
	return true
}

// text returns source[from:to], or "" when that range holds only comments,
// whitespace and semicolons.
func (s *splitter) text(from, to int) string {
	to = min(to, len(s.source))
	for p := from; p < to; p++ {
		if s.source[p] == ';' || s.kinds[p] == hiddenRune {
			continue
		}
		return string(s.source[from:to])
	}
	return ""
}

func (s *splitter) lineEnd(p int) int {
	for ; p < len(s.source); p++ {
		if s.source[p] == '\n' {
			return p
		}
	}
	return p
}

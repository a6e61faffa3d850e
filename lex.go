package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type token struct {
	kind tokenKind
	// num is the value of a tokenNum.
	num float64
	// text is the lowercased name of a tokenName or the symbol of a
	// tokenSym. Aliases are already replaced, so × is "*".
	text string
}

func (t token) String() string {
	if t.kind == tokenNum {
		return t.kind.String() + ":" + strconv.FormatFloat(t.num, 'g', -1, 64)
	}
	return t.kind.String() + ":" + t.text
}

type tokenKind int8

const (
	tokenNone tokenKind = iota
	// tokenNum is a decimal numeral.
	tokenNum
	// tokenName is a function, constant, or keyword name.
	tokenName
	// tokenSym is a one-character operator, bracket, or separator.
	tokenSym
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenName:
		return "Name"
	case tokenSym:
		return "Sym"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Symbols contains the runes which lex as one-character symbol tokens.
const Symbols = "+-*/^(),%!"

// aliases maps alternative operator runes to the symbol they lex as.
var aliases = map[rune]string{
	'×': "*",
	'÷': "/",
}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
}

// tokenize splits an expression into tokens. All whitespace is removed
// before scanning, so whitespace never separates tokens: "1 2" is 12.
func tokenize(src string) ([]token, error) {
	l := lexer{src: strings.NewReader(strings.Map(dropSpace, src))}
	var toks []token
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

func dropSpace(r rune) rune {
	if unicode.IsSpace(r) {
		return -1
	}
	return r
}

// unreadRune unreads a rune from the src. Panics if unreading returns an
// error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
}

// peekDigit reports whether the next rune is an ASCII digit without
// consuming it.
func (l *lexer) peekDigit() bool {
	r, _, err := l.src.ReadRune()
	if err != nil {
		return false
	}
	l.unreadRune()
	return isDigit(r)
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (token, error) {
	defer l.buf.Reset()
	r, _, err := l.src.ReadRune()
	if err != nil {
		return token{}, err
	}
	switch {
	case isDigit(r), r == '.' && l.peekDigit():
		l.unreadRune()
		return token{kind: tokenNum, num: l.scanNum()}, nil
	case r == '_', isLetter(r):
		l.unreadRune()
		l.scanIdent()
		return token{kind: tokenName, text: strings.ToLower(l.buf.String())}, nil
	case strings.ContainsRune(Symbols, r):
		return token{kind: tokenSym, text: string(r)}, nil
	}
	if s, ok := aliases[r]; ok {
		return token{kind: tokenSym, text: s}, nil
	}
	return token{}, &LexError{Char: r}
}

// scanNum consumes the maximal run of digits and decimal points and returns
// the value of its longest numeric prefix. A run like 1.2.3 is consumed
// entirely and has the value 1.2.
func (l *lexer) scanNum() float64 {
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			break
		}
		if !isDigit(r) && r != '.' {
			l.unreadRune()
			break
		}
		l.buf.WriteRune(r)
	}
	s := l.buf.String()
	end := strings.IndexByte(s, '.')
	if end >= 0 {
		if k := strings.IndexByte(s[end+1:], '.'); k >= 0 {
			end += 1 + k
		} else {
			end = len(s)
		}
	} else {
		end = len(s)
	}
	// The run starts with a digit or with a dot followed by a digit, so the
	// prefix always has at least one digit and always parses.
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return v
		}
		panic("calc: invalid numeral " + strconv.Quote(s[:end]) + ": " + err.Error())
	}
	return v
}

func (l *lexer) scanIdent() {
	for {
		r, _, err := l.src.ReadRune()
		if err != nil {
			// next unreads the rune that decides ident scanning before
			// calling scanIdent, so we have scanned at least one rune.
			return
		}
		if r != '_' && !isLetter(r) && !isDigit(r) {
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

// LexError indicates a character that cannot begin any token.
type LexError struct {
	// Char is the offending character.
	Char rune
}

func (err *LexError) Error() string {
	return "invalid character: " + string(err.Char)
}

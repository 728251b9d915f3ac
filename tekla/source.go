package tekla

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

type Source struct {
	Name    string
	Content string
	Lines   []string
}

func NewSource(name string, content string) *Source {
	return &Source{
		Name:    name,
		Content: content,
		Lines:   strings.Split(content, "\n"),
	}
}

// Positioned is implemented by every diagnostic of the lexer, parser and interpreter.
type Positioned interface {
	error
	Position() Pos
}

// Annotate renders err with the source location and a caret under the offending column.
// Errors without a position are returned as is.
func (s *Source) Annotate(err error) string {
	var positioned Positioned
	if !errors.As(err, &positioned) {
		return err.Error()
	}
	pos := positioned.Position()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s at %s:%d:%d\n", err.Error(), s.Name, pos.Line, pos.Column)

	idx := pos.Line - 1
	if idx >= 0 && idx < len(s.Lines) {
		line := s.Lines[idx]
		sb.WriteString(line)
		sb.WriteString("\n")

		col := pos.Column - 1
		for i, r := range []rune(line) {
			if i >= col {
				break
			}
			if r == '\t' {
				sb.WriteString("\t")
			} else {
				sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
			}
		}
		sb.WriteString("^\n")
	}

	return sb.String()
}

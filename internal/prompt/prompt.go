// Package prompt reads answers from a line-oriented terminal.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"mkvedit/internal/i18n"
)

// ErrClosed is returned when input ends before an answer is given.
var ErrClosed = errors.New("input closed")

// Prompter writes localized prompts and reads one trimmed line per answer.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	locale *i18n.Locale
}

// New constructs a Prompter. A nil locale means English.
func New(in io.Reader, out io.Writer, locale *i18n.Locale) *Prompter {
	if locale == nil {
		locale = i18n.Default()
	}
	return &Prompter{in: bufio.NewReader(in), out: out, locale: locale}
}

// Locale returns the prompter's language.
func (p *Prompter) Locale() *i18n.Locale { return p.locale }

// Writer returns the output stream prompts are written to.
func (p *Prompter) Writer() io.Writer { return p.out }

// T formats a localized message without printing it.
func (p *Prompter) T(format string, args ...any) string {
	return p.locale.Sprintf(format, args...)
}

// Printf writes a localized message.
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprint(p.out, p.locale.Sprintf(format, args...))
}

// Linef writes a localized message followed by a newline.
func (p *Prompter) Linef(format string, args ...any) {
	fmt.Fprintln(p.out, p.locale.Sprintf(format, args...))
}

// Ask prints the localized prompt and returns the next line without
// surrounding whitespace. A final line without a newline is still returned.
func (p *Prompter) Ask(format string, args ...any) (string, error) {
	p.Printf(format, args...)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", ErrClosed
		}
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// Confirm asks a y/n question. Empty input yields def; anything other than
// y/yes/n/no re-asks.
func (p *Prompter) Confirm(def bool, format string, args ...any) (bool, error) {
	for {
		answer, err := p.Ask(format, args...)
		if err != nil {
			return false, err
		}
		if yes, ok := ParseYesNo(answer); ok {
			return yes, nil
		}
		if answer == "" {
			return def, nil
		}
		p.Linef("Please answer y or n.")
	}
}

// ParseYesNo interprets y/yes/n/no case-insensitively, including the Chinese
// 是/否.
func ParseYesNo(answer string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes", "是":
		return true, true
	case "n", "no", "否":
		return false, true
	default:
		return false, false
	}
}

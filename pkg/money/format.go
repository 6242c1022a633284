package money

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders float amounts as dollar strings with locale digit grouping,
// e.g. "$1,545.00" for en-US.
type Formatter struct {
	p *message.Printer
}

func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return &Formatter{p: message.NewPrinter(tag)}, nil
}

func (f *Formatter) Format(amount float64) string {
	if amount < 0 {
		return "-" + f.p.Sprintf("$%.2f", math.Abs(amount))
	}
	return f.p.Sprintf("$%.2f", amount)
}

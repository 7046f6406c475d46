// Package formatter projects record field values into display strings.
package formatter

import (
	"dentalclinic-service/internal/pkg/constvars"
	"dentalclinic-service/internal/pkg/dto/responses"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Formatter struct {
	tag language.Tag
}

func NewFormatter(locale string) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, err
	}
	return &Formatter{tag: tag}, nil
}

// MustNewFormatter panics on an unparsable locale. Use it for literals only.
func MustNewFormatter(locale string) *Formatter {
	f, err := NewFormatter(locale)
	if err != nil {
		panic(err)
	}
	return f
}

// Amount groups digits with the locale's thousands separator, without
// decimals or currency symbol: 15000 becomes "15,000" in en-US.
func (f *Formatter) Amount(amount int64) string {
	return message.NewPrinter(f.tag).Sprintf("%d", amount)
}

func (f *Formatter) Locale() string {
	return f.tag.String()
}

func PaymentStatus(paid bool) responses.RecordStatus {
	if paid {
		return responses.RecordStatus{Label: constvars.PaymentStatusPaid, Tone: constvars.StatusToneSuccess}
	}
	return responses.RecordStatus{Label: constvars.PaymentStatusPending, Tone: constvars.StatusToneWarning}
}

// LongDate turns "2025-01-15" into "January 15, 2025". Empty or unparsable
// input renders as "N/A".
func LongDate(isoDate string) string {
	if isoDate == "" {
		return constvars.DateNotAvailable
	}
	parsed, err := time.Parse(constvars.DateISOFormat, isoDate)
	if err != nil {
		return constvars.DateNotAvailable
	}
	return parsed.Format(constvars.DateLongFormat)
}

// Package lang provides display-language formatting: locale-aware numbers
// and dates, and the phrase tables for casualty comparisons. Everything here
// is pure lookup and formatting; no state, safe for concurrent use.
package lang

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Locale bundles a language tag with its printer and phrasebook.
type Locale struct {
	Code    string
	tag     language.Tag
	printer *message.Printer
	phrases phrasebook
	months  [12]string
	dateFmt func(day int, month string, year int) string
}

var supported = []language.Tag{
	language.English,
	language.German,
	language.French,
	language.Spanish,
}

var matcher = language.NewMatcher(supported)

// Match resolves a BCP 47 language code to the best supported locale.
// Unknown codes fall back to English.
func Match(code string) *Locale {
	tag, _ := language.MatchStrings(matcher, code)
	base, _ := tag.Base()
	switch base.String() {
	case "de":
		return newLocale("de", language.German, germanPhrases, germanMonths, dayMonthYear)
	case "fr":
		return newLocale("fr", language.French, frenchPhrases, frenchMonths, frenchDate)
	case "es":
		return newLocale("es", language.Spanish, spanishPhrases, spanishMonths, spanishDate)
	default:
		return newLocale("en", language.English, englishPhrases, englishMonths, monthDayYear)
	}
}

func newLocale(code string, tag language.Tag, pb phrasebook, months [12]string, dateFmt func(int, string, int) string) *Locale {
	return &Locale{
		Code:    code,
		tag:     tag,
		printer: message.NewPrinter(tag),
		phrases: pb,
		months:  months,
		dateFmt: dateFmt,
	}
}

// FormatInt renders an integer with the locale's digit grouping.
func (l *Locale) FormatInt(n int64) string {
	return l.printer.Sprint(number.Decimal(n))
}

// FormatDate renders a date in the locale's conventional order with the
// locale's month name.
func (l *Locale) FormatDate(t time.Time) string {
	return l.dateFmt(t.Day(), l.months[t.Month()-1], t.Year())
}

func monthDayYear(day int, month string, year int) string {
	return fmt.Sprintf("%s %d, %d", month, day, year)
}

func dayMonthYear(day int, month string, year int) string {
	return fmt.Sprintf("%d. %s %d", day, month, year)
}

func frenchDate(day int, month string, year int) string {
	return fmt.Sprintf("%d %s %d", day, month, year)
}

func spanishDate(day int, month string, year int) string {
	return fmt.Sprintf("%d de %s de %d", day, month, year)
}

var englishMonths = [12]string{"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December"}

var germanMonths = [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember"}

var frenchMonths = [12]string{"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre"}

var spanishMonths = [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"}

package lang

import "fmt"

// Fraction buckets for comparable-event phrasing.
type Fraction int

const (
	FractionThird Fraction = iota
	FractionHalf
	FractionTwoThirds
)

// phrasebook holds one language's comparison wording. Event names are
// inserted as-is; each language's patterns carry their own article rules.
type phrasebook struct {
	approx    func(event string) string
	fraction  func(f Fraction, event string) string
	times     func(n int, event string) string
	sameAs    func(other string) string
	twiceAs   func(other string) string
	moreThanX func(n int, other string) string
}

// ComparisonApprox renders "approximately <event>".
func (l *Locale) ComparisonApprox(event string) string {
	return l.phrases.approx(event)
}

// ComparisonFraction renders "a third of / half of / two-thirds of <event>".
func (l *Locale) ComparisonFraction(f Fraction, event string) string {
	return l.phrases.fraction(f, event)
}

// ComparisonTimes renders "<N> times <event>", spelling out two and three.
func (l *Locale) ComparisonTimes(n int, event string) string {
	return l.phrases.times(n, event)
}

// CompareSame renders "about as many as <other>".
func (l *Locale) CompareSame(other string) string {
	return l.phrases.sameAs(other)
}

// CompareTwice renders "twice as many as <other>".
func (l *Locale) CompareTwice(other string) string {
	return l.phrases.twiceAs(other)
}

// CompareMoreThan renders "more than <N> times as many as <other>".
func (l *Locale) CompareMoreThan(n int, other string) string {
	return l.phrases.moreThanX(n, other)
}

var englishPhrases = phrasebook{
	approx: func(event string) string {
		return "approximately the " + event
	},
	fraction: func(f Fraction, event string) string {
		switch f {
		case FractionThird:
			return "a third of the " + event
		case FractionHalf:
			return "half of the " + event
		default:
			return "two-thirds of the " + event
		}
	},
	times: func(n int, event string) string {
		switch n {
		case 2:
			return "twice the " + event
		case 3:
			return "three times the " + event
		default:
			return fmt.Sprintf("%d times the %s", n, event)
		}
	},
	sameAs: func(other string) string {
		return "about as many as " + other
	},
	twiceAs: func(other string) string {
		return "twice as many as " + other
	},
	moreThanX: func(n int, other string) string {
		return fmt.Sprintf("more than %d times as many as %s", n, other)
	},
}

var germanPhrases = phrasebook{
	approx: func(event string) string {
		return "ungefähr so viele wie beim " + event
	},
	fraction: func(f Fraction, event string) string {
		switch f {
		case FractionThird:
			return "ein Drittel der Opfer vom " + event
		case FractionHalf:
			return "die Hälfte der Opfer vom " + event
		default:
			return "zwei Drittel der Opfer vom " + event
		}
	},
	times: func(n int, event string) string {
		switch n {
		case 2:
			return "doppelt so viele wie beim " + event
		case 3:
			return "dreimal so viele wie beim " + event
		default:
			return fmt.Sprintf("%d-mal so viele wie beim %s", n, event)
		}
	},
	sameAs: func(other string) string {
		return "etwa so viele wie " + other
	},
	twiceAs: func(other string) string {
		return "doppelt so viele wie " + other
	},
	moreThanX: func(n int, other string) string {
		return fmt.Sprintf("mehr als %d-mal so viele wie %s", n, other)
	},
}

var frenchPhrases = phrasebook{
	approx: func(event string) string {
		return "environ l'équivalent de " + event
	},
	fraction: func(f Fraction, event string) string {
		switch f {
		case FractionThird:
			return "un tiers de " + event
		case FractionHalf:
			return "la moitié de " + event
		default:
			return "les deux tiers de " + event
		}
	},
	times: func(n int, event string) string {
		switch n {
		case 2:
			return "deux fois " + event
		case 3:
			return "trois fois " + event
		default:
			return fmt.Sprintf("%d fois %s", n, event)
		}
	},
	sameAs: func(other string) string {
		return "à peu près autant que " + other
	},
	twiceAs: func(other string) string {
		return "deux fois plus que " + other
	},
	moreThanX: func(n int, other string) string {
		return fmt.Sprintf("plus de %d fois plus que %s", n, other)
	},
}

var spanishPhrases = phrasebook{
	approx: func(event string) string {
		return "aproximadamente lo mismo que " + event
	},
	fraction: func(f Fraction, event string) string {
		switch f {
		case FractionThird:
			return "un tercio de " + event
		case FractionHalf:
			return "la mitad de " + event
		default:
			return "dos tercios de " + event
		}
	},
	times: func(n int, event string) string {
		switch n {
		case 2:
			return "el doble de " + event
		case 3:
			return "el triple de " + event
		default:
			return fmt.Sprintf("%d veces %s", n, event)
		}
	},
	sameAs: func(other string) string {
		return "casi lo mismo que " + other
	},
	twiceAs: func(other string) string {
		return "el doble que " + other
	},
	moreThanX: func(n int, other string) string {
		return fmt.Sprintf("más de %d veces más que %s", n, other)
	},
}

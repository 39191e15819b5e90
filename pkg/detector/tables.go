package detector

// indicator pairs a code with the substrings that signal it.
// Tables are ordered; the first entry wins ties.
type indicator struct {
	Code    string
	Markers []string
}

var languageIndicators = []indicator{
	{"en", []string{"the", "and", "for", "with", "this", "that"}},
	{"es", []string{"el", "la", "de", "en", "un", "es"}},
	{"fr", []string{"le", "de", "et", "à", "un", "il"}},
	{"de", []string{"der", "die", "und", "in", "den", "von"}},
	{"it", []string{"il", "di", "e", "la", "in", "da"}},
	{"pt", []string{"o", "de", "e", "do", "da", "em"}},
}

// .uk precedes .co.uk; both map to GB so the order is harmless.
var countryDomains = []indicator{
	{"GB", []string{".uk"}},
	{"GB", []string{".co.uk"}},
	{"DE", []string{".de"}},
	{"FR", []string{".fr"}},
	{"ES", []string{".es"}},
	{"IT", []string{".it"}},
	{"CA", []string{".ca"}},
	{"AU", []string{".au"}},
	{"JP", []string{".jp"}},
	{"BR", []string{".br"}},
	{"IN", []string{".in"}},
	{"CN", []string{".cn"}},
	{"MX", []string{".mx"}},
}

var currencyIndicators = []indicator{
	{"USD", []string{"$", "usd", "dollar"}},
	{"EUR", []string{"€", "eur", "euro"}},
	{"GBP", []string{"£", "gbp", "pound"}},
	{"JPY", []string{"¥", "jpy", "yen"}},
	{"INR", []string{"₹", "inr", "rupee"}},
}

const (
	DefaultLanguage = "en"
	DefaultCountry  = "US"
	DefaultCurrency = "USD"

	languageSampleChars = 1000
)

// Languages returns the codes considered by the stop-word heuristic, in tie-break order.
func Languages() []string {
	codes := make([]string, len(languageIndicators))
	for i, ind := range languageIndicators {
		codes[i] = ind.Code
	}
	return codes
}

// Currencies returns the detectable currency codes in precedence order.
func Currencies() []string {
	codes := make([]string, len(currencyIndicators))
	for i, ind := range currencyIndicators {
		codes[i] = ind.Code
	}
	return codes
}

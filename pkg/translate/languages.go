package translate

import "sort"

// supportedLanguages is the closed set of target language codes accepted by
// the translation service. Anything outside it is rejected before a request
// is made.
var supportedLanguages = map[string]struct{}{
	"af": {}, "ar": {}, "bn": {}, "bs": {}, "bg": {}, "yue": {}, "ca": {},
	"zh-Hans": {}, "zh-Hant": {}, "hr": {}, "cs": {}, "da": {}, "nl": {},
	"en": {}, "et": {}, "fj": {}, "fil": {}, "fi": {}, "fr": {}, "de": {},
	"el": {}, "gu": {}, "ht": {}, "he": {}, "hi": {}, "mww": {}, "hu": {},
	"is": {}, "id": {}, "ga": {}, "it": {}, "ja": {}, "kn": {}, "kk": {},
	"sw": {}, "tlh-Latn": {}, "tlh-Piqd": {}, "ko": {}, "lv": {}, "lt": {},
	"mg": {}, "ms": {}, "ml": {}, "mt": {}, "mi": {}, "mr": {}, "nb": {},
	"fa": {}, "pl": {}, "pt-br": {}, "pt-pt": {}, "pa": {}, "otq": {},
	"ro": {}, "ru": {}, "sm": {}, "sr-Cyrl": {}, "sr-Latn": {}, "sk": {},
	"sl": {}, "es": {}, "sv": {}, "ty": {}, "ta": {}, "te": {}, "th": {},
	"to": {}, "tr": {}, "uk": {}, "ur": {}, "vi": {}, "cy": {}, "yua": {},
}

// IsSupported reports whether code is a valid translation target.
func IsSupported(code string) bool {
	_, ok := supportedLanguages[code]
	return ok
}

// SupportedLanguages returns the accepted target codes, sorted.
func SupportedLanguages() []string {
	out := make([]string, 0, len(supportedLanguages))
	for code := range supportedLanguages {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

package romanize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Cyrillic to Latin, lower case. Upper and title case forms are derived.
var russianPairs = [][2]string{
	{"щ", "sch"}, {"ж", "zh"}, {"ц", "ts"}, {"ч", "ch"}, {"ш", "sh"},
	{"ю", "ju"}, {"я", "ja"},
	{"а", "a"}, {"б", "b"}, {"в", "v"}, {"г", "g"}, {"д", "d"},
	{"е", "e"}, {"ё", "e"}, {"з", "z"}, {"и", "i"}, {"й", "j"},
	{"к", "k"}, {"л", "l"}, {"м", "m"}, {"н", "n"}, {"о", "o"},
	{"п", "p"}, {"р", "r"}, {"с", "s"}, {"т", "t"}, {"у", "u"},
	{"ф", "f"}, {"х", "h"}, {"ъ", "\""}, {"ы", "y"}, {"ь", "'"},
	{"э", "e"},
}

var toLatin, toCyrillic = buildTranslitReplacers()

func buildTranslitReplacers() (*strings.Replacer, *strings.Replacer) {
	var forward, reverse []string
	seen := make(map[string]bool)

	for _, p := range russianPairs {
		cyr, lat := p[0], p[1]
		upperCyr := strings.ToUpper(cyr)
		forward = append(forward, cyr, lat, upperCyr, titleASCII(lat))

		// е is the reverse of "e"; ё and э are not recoverable
		if seen[lat] {
			continue
		}
		seen[lat] = true
		reverse = append(reverse, lat, cyr, titleASCII(lat), upperCyr)
		if len(lat) > 1 {
			reverse = append(reverse, strings.ToUpper(lat), upperCyr)
		}
	}

	return strings.NewReplacer(forward...), strings.NewReplacer(reverse...)
}

func titleASCII(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// Translit is the built-in Russian transliteration table.
type Translit struct{}

func (Translit) TransliterateRussian(text string, reverse bool) (string, error) {
	if reverse {
		return toCyrillic.Replace(text), nil
	}
	return toLatin.Replace(text), nil
}

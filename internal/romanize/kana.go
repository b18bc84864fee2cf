package romanize

import (
	"context"
	"strings"
	"unicode"

	"golang.org/x/text/width"
)

// Hepburn romaji for each hiragana. Katakana is folded onto hiragana first.
var hiragana = map[rune]string{
	'あ': "a", 'い': "i", 'う': "u", 'え': "e", 'お': "o",
	'か': "ka", 'き': "ki", 'く': "ku", 'け': "ke", 'こ': "ko",
	'さ': "sa", 'し': "shi", 'す': "su", 'せ': "se", 'そ': "so",
	'た': "ta", 'ち': "chi", 'つ': "tsu", 'て': "te", 'と': "to",
	'な': "na", 'に': "ni", 'ぬ': "nu", 'ね': "ne", 'の': "no",
	'は': "ha", 'ひ': "hi", 'ふ': "fu", 'へ': "he", 'ほ': "ho",
	'ま': "ma", 'み': "mi", 'む': "mu", 'め': "me", 'も': "mo",
	'や': "ya", 'ゆ': "yu", 'よ': "yo",
	'ら': "ra", 'り': "ri", 'る': "ru", 'れ': "re", 'ろ': "ro",
	'わ': "wa", 'ゐ': "i", 'ゑ': "e", 'を': "wo", 'ん': "n",
	'が': "ga", 'ぎ': "gi", 'ぐ': "gu", 'げ': "ge", 'ご': "go",
	'ざ': "za", 'じ': "ji", 'ず': "zu", 'ぜ': "ze", 'ぞ': "zo",
	'だ': "da", 'ぢ': "ji", 'づ': "zu", 'で': "de", 'ど': "do",
	'ば': "ba", 'び': "bi", 'ぶ': "bu", 'べ': "be", 'ぼ': "bo",
	'ぱ': "pa", 'ぴ': "pi", 'ぷ': "pu", 'ぺ': "pe", 'ぽ': "po",
	'ゔ': "vu",
	'ぁ': "a", 'ぃ': "i", 'ぅ': "u", 'ぇ': "e", 'ぉ': "o",
	'ゃ': "ya", 'ゅ': "yu", 'ょ': "yo", 'ゎ': "wa",
	'ゕ': "ka", 'ゖ': "ke",
}

// small kana that fuse with the preceding kana
var (
	smallY     = map[rune]string{'ゃ': "a", 'ゅ': "u", 'ょ': "o"}
	smallVowel = map[rune]string{'ぁ': "a", 'ぃ': "i", 'ぅ': "u", 'ぇ': "e", 'ぉ': "o"}
)

const (
	sokuon   = 'っ'
	chouon   = 'ー'
	nakaguro = '・'
)

// KanaRomanizer is a table-driven Hepburn romanizer. It handles hiragana
// and katakana only; kanji pass through unchanged.
type KanaRomanizer struct{}

func NewKanaRomanizer() *KanaRomanizer {
	return &KanaRomanizer{}
}

func (k *KanaRomanizer) RomanizeJapanese(_ context.Context, text string) (string, error) {
	return RomanizeKana(text), nil
}

// RomanizeKana converts kana runs to romaji. Words are split at whitespace,
// Japanese punctuation and script changes.
func RomanizeKana(text string) string {
	text = width.Fold.String(text)

	var words []string
	var run []rune
	runIsKana := false

	flush := func() {
		if len(run) == 0 {
			return
		}
		if runIsKana {
			if w := romanizeKanaRun(run); w != "" {
				words = append(words, w)
			}
		} else {
			words = append(words, string(run))
		}
		run = run[:0]
	}

	for _, r := range text {
		if isWordBoundary(r) {
			flush()
			continue
		}
		kana := isKana(r)
		if len(run) > 0 && kana != runIsKana {
			flush()
		}
		runIsKana = kana
		run = append(run, r)
	}
	flush()

	return strings.Join(words, " ")
}

func isWordBoundary(r rune) bool {
	return unicode.IsSpace(r) || r == nakaguro || (r >= 0x3000 && r <= 0x303F)
}

func isKana(r rune) bool {
	return (r >= 0x3041 && r <= 0x309F) || (r >= 0x30A0 && r <= 0x30FF)
}

func toHiragana(r rune) rune {
	if r >= 0x30A1 && r <= 0x30F6 {
		return r - 0x60
	}
	return r
}

func romanizeKanaRun(run []rune) string {
	var b strings.Builder
	geminate := false

	for i := 0; i < len(run); i++ {
		r := toHiragana(run[i])

		switch r {
		case sokuon:
			geminate = true
			continue
		case chouon:
			if v := lastVowel(b.String()); v != 0 {
				b.WriteByte(v)
			}
			continue
		}

		syl, ok := hiragana[r]
		if !ok {
			b.WriteRune(run[i])
			geminate = false
			continue
		}

		if i+1 < len(run) {
			if fused, ok := fuse(syl, toHiragana(run[i+1])); ok {
				syl = fused
				i++
			}
		}

		if geminate {
			syl = geminatePrefix(syl) + syl
			geminate = false
		}
		b.WriteString(syl)
	}

	return b.String()
}

// combines a full kana with a following small kana: き+ゃ, シ+ェ, フ+ァ
func fuse(base string, small rune) (string, bool) {
	if v, ok := smallY[small]; ok {
		if len(base) < 2 || !strings.HasSuffix(base, "i") {
			return "", false
		}
		stem := base[:len(base)-1]
		switch base {
		case "shi", "chi", "ji":
			return stem + v, true
		}
		return stem + "y" + v, true
	}

	if v, ok := smallVowel[small]; ok {
		switch base {
		case "u":
			return "w" + v, true
		case "fu":
			return "f" + v, true
		case "tsu":
			return "ts" + v, true
		}
		if len(base) < 2 {
			return "", false
		}
		return base[:len(base)-1] + v, true
	}

	return "", false
}

func geminatePrefix(syl string) string {
	if strings.HasPrefix(syl, "ch") {
		return "t"
	}
	if syl == "" || strings.IndexByte("aeioun", syl[0]) >= 0 {
		return ""
	}
	return syl[:1]
}

func lastVowel(s string) byte {
	if s == "" {
		return 0
	}
	if c := s[len(s)-1]; strings.IndexByte("aeiou", c) >= 0 {
		return c
	}
	return 0
}

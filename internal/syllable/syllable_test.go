package syllable

import (
	"reflect"
	"strings"
	"testing"

	"github.com/Elevatorisbest/Lyridan/internal/langdetect"
)

func testDictionary(t *testing.T, entries ...string) *Dictionary {
	t.Helper()
	dict, err := LoadDictionary(strings.NewReader(strings.Join(entries, "\n")))
	if err != nil {
		t.Fatalf("LoadDictionary failed: %v", err)
	}
	return dict
}

func TestJapaneseSegmenter(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"konnichiwa", []string{"kon", "ni", "chi", "wa"}},
		{"kitte", []string{"kit", "te"}},
		{"matcha", []string{"mat", "cha"}},
		{"kyou", []string{"kyo", "u"}},
		{"shinjitsu", []string{"shin", "ji", "tsu"}},
		{"onna", []string{"on", "na"}},
		{"anata", []string{"a", "na", "ta"}},
		{"Tokyo", []string{"To", "kyo"}},
		{"SAKURA", []string{"SA", "KU", "RA"}},
		{"hmm", []string{"h", "m", "m"}},
		{"san", []string{"san"}},
		{"こんにちは", []string{"こ", "ん", "に", "ち", "は"}},
		{"ai!", []string{"a", "i", "!"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := JapaneseSegmenter{}.Segment(tt.word)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestRussianSegmenter(t *testing.T) {
	tests := []struct {
		word string
		want []string
	}{
		{"привет", []string{"при", "вет"}},
		{"майка", []string{"май", "ка"}},
		{"война", []string{"вой", "на"}},
		{"здравствуйте", []string{"здравст", "вуй", "те"}},
		{"ПРИВЕТ", []string{"ПРИ", "ВЕТ"}},
		{"аэ", []string{"а", "э"}},
		{"ёлка", []string{"ёл", "ка"}},
		{"мгла", []string{"мгла"}},
		{"!!!", []string{"!!!"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := RussianSegmenter{}.Segment(tt.word)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestEnglishSegmenter(t *testing.T) {
	seg := NewEnglishSegmenter(testDictionary(t, "be•au•ti•ful", "hel•lo"))

	tests := []struct {
		word string
		want []string
	}{
		{"Beautiful", []string{"Be", "au", "ti", "ful"}},
		{"beautiful", []string{"be", "au", "ti", "ful"}},
		{"BEAUTIFUL", []string{"BE", "AU", "TI", "FUL"}},
		{"beautiful,", []string{"be", "au", "ti", "ful,"}},
		{"(Hello)", []string{"(Hel", "lo)"}},
		{"Xqzzy", []string{"Xqzzy"}},
		{"...", []string{"..."}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got := seg.Segment(tt.word)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Segment(%q) = %q, want %q", tt.word, got, tt.want)
			}
		})
	}
}

func TestEnglishSegmenterDoesNotMutateDictionary(t *testing.T) {
	dict := testDictionary(t, "hel•lo")
	seg := NewEnglishSegmenter(dict)

	seg.Segment("HELLO!")

	got, _ := dict.Lookup("hello")
	if !reflect.DeepEqual(got, []string{"hel", "lo"}) {
		t.Errorf("dictionary entry changed to %q", got)
	}
}

func TestContextSyllabize(t *testing.T) {
	ctx := NewContext(testDictionary(t, "be•au•ti•ful"))

	tests := []struct {
		word string
		sep  string
		lang langdetect.Language
		want string
	}{
		{"Beautiful", "-", langdetect.Other, "Be-au-ti-ful"},
		{"Xqzzy", "-", langdetect.Other, "Xqzzy"},
		{"привет", "-", langdetect.Russian, "при-вет"},
		{"майка", "+", langdetect.Russian, "май+ка"},
		{"konnichiwa", "+", langdetect.Japanese, "kon+ni+chi+wa"},
		{"konnichiwa", "+", langdetect.Mixed, "kon+ni+chi+wa"},
		{"", "+", langdetect.Japanese, ""},
	}

	for _, tt := range tests {
		t.Run(tt.lang.String()+"/"+tt.word, func(t *testing.T) {
			got := ctx.Syllabize(tt.word, tt.sep, tt.lang)
			if got != tt.want {
				t.Errorf("Syllabize(%q, %q, %v) = %q, want %q", tt.word, tt.sep, tt.lang, got, tt.want)
			}
		})
	}
}

func TestReconstructionInvariant(t *testing.T) {
	ctx := NewContext(testDictionary(t, "be•au•ti•ful", "to•mor•row"))

	words := []string{
		"konnichiwa", "Shinkansen", "kitte", "xyz", "!?", "日本",
		"привет", "здравствуйте", "майка", "Москва",
		"beautiful", "Tomorrow,", "\"tomorrow\"", "unknown",
	}
	seps := []string{"+", "-", "::", "<sep>", "~~~~~~~~~~~~~~~~~~~~"}

	for _, lang := range []langdetect.Language{langdetect.Japanese, langdetect.Russian, langdetect.Other} {
		for _, word := range words {
			for _, sep := range seps {
				joined := strings.Join(ctx.Segment(word, lang), sep)
				back := strings.ReplaceAll(joined, sep, "")
				if !strings.EqualFold(back, word) {
					t.Errorf("%v: %q with sep %q rebuilt as %q", lang, word, sep, back)
				}
			}
		}
	}
}

func TestDefaultDictionary(t *testing.T) {
	dict, err := DefaultDictionary()
	if err != nil {
		t.Fatalf("DefaultDictionary failed: %v", err)
	}
	if dict.Len() < 200 {
		t.Errorf("embedded dictionary has %d entries, want at least 200", dict.Len())
	}

	again, _ := DefaultDictionary()
	if again != dict {
		t.Error("DefaultDictionary should return the same instance")
	}

	seg := NewEnglishSegmenter(dict)
	if got := strings.Join(seg.Segment("Forever"), "-"); got != "For-ev-er" {
		t.Errorf("Segment(Forever) = %q, want For-ev-er", got)
	}
}

func TestLoadDictionarySkipsPlainLines(t *testing.T) {
	dict := testDictionary(t, "\ufeffhel•lo", "cat", "", "  to•day  ", "a••b")

	if dict.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", dict.Len())
	}
	if _, ok := dict.Lookup("cat"); ok {
		t.Error("single-syllable line without interpunct should be skipped")
	}
	if got, ok := dict.Lookup("TODAY"); !ok || !reflect.DeepEqual(got, []string{"to", "day"}) {
		t.Errorf("Lookup(TODAY) = %q, %v", got, ok)
	}
	if got, ok := dict.Lookup("ab"); !ok || !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Lookup(ab) = %q, %v", got, ok)
	}
}

func TestNilDictionary(t *testing.T) {
	var dict *Dictionary
	if _, ok := dict.Lookup("hello"); ok {
		t.Error("nil dictionary should miss")
	}
	ctx := NewContext(nil)
	if got := ctx.Syllabize("hello", "-", langdetect.Other); got != "hello" {
		t.Errorf("Syllabize with nil dictionary = %q, want hello", got)
	}
}

func TestClampSeparator(t *testing.T) {
	long := strings.Repeat("ж", 25)
	if got := ClampSeparator(long); got != strings.Repeat("ж", 20) {
		t.Errorf("ClampSeparator kept %d runes, want 20", len([]rune(got)))
	}
	if got := ClampSeparator("+"); got != "+" {
		t.Errorf("ClampSeparator(+) = %q", got)
	}
}

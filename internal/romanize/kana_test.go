package romanize

import (
	"context"
	"testing"
)

func TestRomanizeKana(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"こんにちは", "konnichiha"},
		{"きって", "kitte"},
		{"ラーメン", "raamen"},
		{"しゃしん", "shashin"},
		{"まっちゃ", "matcha"},
		{"ファイト", "faito"},
		{"ヴァイオリン", "vaiorin"},
		{"ティー", "tii"},
		{"ジェット", "jetto"},
		{"東京タワー", "東京 tawaa"},
		{"君の名は。", "君 no 名 ha"},
		{"さくら　さくら", "sakura sakura"},
		{"ｶﾀｶﾅ", "katakana"},
		{"ＡＢＣ", "ABC"},
		{"love ソング", "love songu"},
		{"っ", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := RomanizeKana(tt.in); got != tt.want {
				t.Errorf("RomanizeKana(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestKanaRomanizerNeverFails(t *testing.T) {
	got, err := NewKanaRomanizer().RomanizeJapanese(context.Background(), "さよなら")
	if err != nil {
		t.Fatalf("RomanizeJapanese error: %v", err)
	}
	if got != "sayonara" {
		t.Errorf("RomanizeJapanese = %q, want sayonara", got)
	}
}

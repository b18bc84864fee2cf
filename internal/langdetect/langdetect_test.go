package langdetect

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		text string
		want Language
	}{
		{"こんにちは", Japanese},
		{"カタカナ", Japanese},
		{"漢字", Japanese},
		{"привет", Russian},
		{"ПРИВЕТ", Russian},
		{"こんにちはпривет", Mixed},
		{"hello", Other},
		{"", Other},
		{"123 !?", Other},
		{"hello мир", Russian},
		{"ёё", Other},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Detect(tt.text); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectSample(t *testing.T) {
	lines := []string{"hello", "world", "привет", "こんにちは"}

	if got := DetectSample(lines, 2); got != Other {
		t.Errorf("DetectSample(first 2) = %v, want other", got)
	}
	if got := DetectSample(lines, 3); got != Russian {
		t.Errorf("DetectSample(first 3) = %v, want russian", got)
	}
	if got := DetectSample(lines, 10); got != Mixed {
		t.Errorf("DetectSample(first 10) = %v, want mixed", got)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"japanese", Japanese, false},
		{" JA ", Japanese, false},
		{"ru", Russian, false},
		{"Mixed", Mixed, false},
		{"english", Other, false},
		{"other", Other, false},
		{"klingon", Other, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLanguageString(t *testing.T) {
	for lang, want := range map[Language]string{
		Japanese: "japanese",
		Russian:  "russian",
		Mixed:    "mixed",
		Other:    "other",
	} {
		if got := lang.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(lang), got, want)
		}
	}
}

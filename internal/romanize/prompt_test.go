package romanize

import (
	"strings"
	"testing"
)

func TestBuildPromptIncludesItems(t *testing.T) {
	prompt := BuildPrompt([]Item{{Index: 3, Text: "さくら"}})

	for _, want := range []string{"Hepburn", `"index": 3`, `"text": "さくら"`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestExtractResults(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []Result
		wantErr bool
	}{
		{
			name: "plain array",
			in:   `[{"index":0,"text":"sakura"}]`,
			want: []Result{{Index: 0, Text: "sakura"}},
		},
		{
			name: "fenced",
			in:   "```json\n[{\"index\":1,\"text\":\"hana\"}]\n```",
			want: []Result{{Index: 1, Text: "hana"}},
		},
		{
			name: "wrapper object",
			in:   `{"results":[{"index":0,"text":"yume"}]}`,
			want: []Result{{Index: 0, Text: "yume"}},
		},
		{
			name: "leading chatter",
			in:   `Here you go: [{"index":0,"text":"sora"}]`,
			want: []Result{{Index: 0, Text: "sora"}},
		},
		{
			name: "invalid escape",
			in:   `[{"index":0,"text":"a\Nb"}]`,
			want: []Result{{Index: 0, Text: `a\Nb`}},
		},
		{
			name:    "no json",
			in:      "I cannot help with that.",
			wantErr: true,
		},
		{
			name:    "empty texts",
			in:      `[{"index":0,"text":""}]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractResults(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("extractResults error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %d results, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("result %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestMatchResults(t *testing.T) {
	items := []Item{{Index: 0}, {Index: 1}}

	if err := matchResults(items, []Result{{Index: 1}, {Index: 0}}); err != nil {
		t.Errorf("matching results rejected: %v", err)
	}
	if err := matchResults(items, []Result{{Index: 0}}); err == nil {
		t.Error("short result list should be rejected")
	}
	if err := matchResults(items, []Result{{Index: 0}, {Index: 0}}); err == nil {
		t.Error("duplicate index should be rejected")
	}
	if err := matchResults(items, []Result{{Index: 0}, {Index: 7}}); err == nil {
		t.Error("unknown index should be rejected")
	}
}

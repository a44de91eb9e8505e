package url

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "http scheme unchanged",
			input: "http://example.com",
			want:  "http://example.com",
		},
		{
			name:  "https scheme unchanged",
			input: "https://example.com",
			want:  "https://example.com",
		},
		{
			name:  "about scheme unchanged",
			input: "about:blank",
			want:  "about:blank",
		},
		{
			name:  "domain gets https",
			input: "example.com",
			want:  "https://example.com",
		},
		{
			name:  "domain with path gets https",
			input: "example.com/path",
			want:  "https://example.com/path",
		},
		{
			name:  "relative reference unchanged",
			input: "./compose",
			want:  "./compose",
		},
		{
			name:  "garbage unchanged",
			input: "notaurl!!!",
			want:  "notaurl!!!",
		},
		{
			name:  "surrounding whitespace trimmed",
			input: "  example.com ",
			want:  "https://example.com",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractDomain(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: ""},
		{input: "https://www.Example.com/path", want: "example.com"},
		{input: "https://mail.example.com:8443/", want: "mail.example.com"},
		{input: "/relative", want: ""},
		{input: "http://[::1", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ExtractDomain(tt.input); got != tt.want {
				t.Errorf("ExtractDomain(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

package htmltext

import "testing"

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain text", "hello world", "hello world"},
		{"inline tags", "Release <b>1.0</b> is out", "Release 1.0 is out"},
		{"paragraphs", "<p>first</p><p>second</p>", "first second"},
		{"nested markup", "<div><p>alpha <em>beta</em></p><ul><li>gamma</li></ul></div>", "alpha beta gamma"},
		{"script skipped", "<p>shown</p><script>alert('hidden')</script>", "shown"},
		{"style skipped", "<style>p { color: red }</style><p>shown</p>", "shown"},
		{"whitespace collapsed", "  a\n\n  b\t c  ", "a b c"},
		{"entities decoded", "fish &amp; chips", "fish & chips"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.input); got != tt.expected {
				t.Errorf("Extract(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

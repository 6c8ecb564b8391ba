package htmlsanitize_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/flatfacts/admin/internal/app/system/htmlsanitize"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"plain text", "Hello, World!", "Hello, World!"},
		{"safe html", "<p><strong>Bold</strong> and <em>italic</em></p>", "<p><strong>Bold</strong> and <em>italic</em></p>"},
		{"script removed", "<p>Hello</p><script>alert('xss')</script>", "<p>Hello</p>"},
		{"code blocks kept", "<pre><code>function test() {}</code></pre>", "<pre><code>function test() {}</code></pre>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := htmlsanitize.Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestSanitize_RemovesDangerousAttributes(t *testing.T) {
	inputs := map[string]string{
		"onclick":     `<button onclick="alert('xss')">Click</button>`,
		"javascript:": `<a href="javascript:alert('xss')">Click</a>`,
		"onerror":     `<img src="x" onerror="alert('xss')">`,
		"<iframe":     `<iframe src="https://evil.example"></iframe>`,
	}
	for bad, input := range inputs {
		if got := htmlsanitize.Sanitize(input); strings.Contains(got, bad) {
			t.Errorf("Sanitize(%q) = %q still contains %q", input, got, bad)
		}
	}
}

func TestSanitize_KeepsSafeLinks(t *testing.T) {
	got := htmlsanitize.Sanitize(`<a href="https://example.com">Link</a>`)
	if !strings.Contains(got, `href="https://example.com"`) {
		t.Errorf("safe link lost: %q", got)
	}
}

func TestSanitizeToHTML(t *testing.T) {
	if got := htmlsanitize.SanitizeToHTML("<p>Hello</p><script>x</script>"); got != template.HTML("<p>Hello</p>") {
		t.Errorf("SanitizeToHTML = %q", got)
	}
	if got := htmlsanitize.SanitizeToHTML(""); got != "" {
		t.Errorf("SanitizeToHTML(\"\") = %q", got)
	}
}

func TestStripTags(t *testing.T) {
	got := htmlsanitize.StripTags("  <b>Thanks</b> for writing<script>x()</script> ")
	if got != "Thanks for writing" {
		t.Errorf("StripTags = %q", got)
	}
}

func TestPlainText(t *testing.T) {
	got := htmlsanitize.PlainText(`<p>Rent &amp; bills <b>"included"</b></p>`)
	if got != `Rent & bills "included"` {
		t.Errorf("PlainText = %q", got)
	}
}

func TestIsPlainText(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"Hello, World!", true},
		{"<p>Hello</p>", false},
		{"5 < 10", true},
		{"5 > 3", true},
	}
	for _, tt := range tests {
		if got := htmlsanitize.IsPlainText(tt.in); got != tt.want {
			t.Errorf("IsPlainText(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPlainTextToHTML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Hello, World!", "<p>Hello, World!</p>"},
		{"Line 1\nLine 2\nLine 3", "<p>Line 1<br>Line 2<br>Line 3</p>"},
		{"Line 1\r\nLine 2", "<p>Line 1<br>Line 2</p>"},
		{"A & B", "<p>A &amp; B</p>"},
		{"<script>", "<p>&lt;script&gt;</p>"},
	}
	for _, tt := range tests {
		if got := htmlsanitize.PlainTextToHTML(tt.in); got != tt.want {
			t.Errorf("PlainTextToHTML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrepareForDisplay(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want template.HTML
	}{
		{"empty", "", ""},
		{"plain text", "Hello, World!", "<p>Hello, World!</p>"},
		{"plain text newlines", "Line 1\nLine 2", "<p>Line 1<br>Line 2</p>"},
		{"html", "<p>Hello</p>", "<p>Hello</p>"},
		{"dangerous html", "<p>Hello</p><script>alert('xss')</script>", "<p>Hello</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := htmlsanitize.PrepareForDisplay(tt.in); got != tt.want {
				t.Errorf("PrepareForDisplay(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExcerpt(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"spread   over\nlines", 50, "spread over lines"},
		{"abcdefghij", 4, "abcd…"},
		{"ünïcödé text", 6, "ünïcöd…"},
		{"anything", 0, "anything"},
	}
	for _, tt := range tests {
		if got := htmlsanitize.Excerpt(tt.in, tt.n); got != tt.want {
			t.Errorf("Excerpt(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

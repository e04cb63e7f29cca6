package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// LoadFixture reads a testdata document and fails the test when it is missing.
func LoadFixture(tb testing.TB, path string) string {
	tb.Helper()
	data, err := os.ReadFile(filepath.FromSlash(path))
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	return string(data)
}

// MarkdownDocument renders a frontmatter block followed by body, using the
// supplied key/value pairs in order.
func MarkdownDocument(body string, pairs ...string) string {
	out := "---\n"
	for i := 0; i+1 < len(pairs); i += 2 {
		out += pairs[i] + ": " + pairs[i+1] + "\n"
	}
	out += "---\n\n" + body
	return out
}

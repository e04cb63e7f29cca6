package markdown

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
)

const frontMatterDelimiter = "---"

// frontMatterPattern matches a block that opens at byte zero. The closing
// delimiter only needs to start a line; anything after it on that line is
// left to the body.
var frontMatterPattern = regexp.MustCompile(`(?s)\A---\n(.*?)\n---`)

// FrontMatter holds the extracted key/value pairs. Keys are free-form.
type FrontMatter map[string]string

// Value returns the value stored under key. Empty values count as absent.
func (fm FrontMatter) Value(key string) (string, bool) {
	value, ok := fm[key]
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// String returns the value for key or fallback when it is absent.
func (fm FrontMatter) String(key, fallback string) string {
	if value, ok := fm.Value(key); ok {
		return value
	}
	return fallback
}

// Optional returns a pointer to the value for key, or nil when it is absent.
func (fm FrontMatter) Optional(key string) *string {
	value, ok := fm.Value(key)
	if !ok {
		return nil
	}
	return &value
}

// errNoFrontMatter signals that the document does not open with a block.
var errNoFrontMatter = errors.New("no frontmatter block")

// SplitFrontMatter separates the leading block from the body using the line
// syntax: one "key: value" pair per line, split on the first colon. Lines
// without a colon are ignored and later keys overwrite earlier ones. The body
// is returned with surrounding whitespace trimmed.
func SplitFrontMatter(content string) (FrontMatter, string, error) {
	loc := frontMatterPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return nil, "", errNoFrontMatter
	}

	block := content[loc[2]:loc[3]]
	body := strings.TrimSpace(content[loc[1]:])
	return parseLines(block), body, nil
}

func parseLines(block string) FrontMatter {
	fm := FrontMatter{}
	for _, line := range strings.Split(block, "\n") {
		idx := strings.Index(line, ":")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(line[:idx])
		fm[key] = unquote(strings.TrimSpace(line[idx+1:]))
	}
	return fm
}

// unquote strips one pair of matching single or double quotes.
func unquote(value string) string {
	if len(value) < 2 {
		return value
	}
	first, last := value[0], value[len(value)-1]
	if first == last && (first == '"' || first == '\'') {
		return value[1 : len(value)-1]
	}
	return value
}

// SplitYAMLFrontMatter decodes a leading "---" block as YAML with
// adrg/frontmatter. Scalar values are stringified so the result has the same
// shape as SplitFrontMatter.
func SplitYAMLFrontMatter(content string) (FrontMatter, string, error) {
	if !strings.HasPrefix(content, frontMatterDelimiter) {
		return nil, "", errNoFrontMatter
	}

	raw := map[string]any{}
	rest, err := frontmatter.MustParse(strings.NewReader(content), &raw)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return nil, "", errNoFrontMatter
		}
		return nil, "", fmt.Errorf("decode frontmatter: %w", err)
	}

	fm := make(FrontMatter, len(raw))
	for key, value := range raw {
		fm[key] = stringify(value)
	}
	return fm, strings.TrimSpace(string(rest)), nil
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprint(v)
	}
}

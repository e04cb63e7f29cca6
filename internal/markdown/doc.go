// Package markdown turns raw news documents into posts. It extracts the
// leading frontmatter block, normalises the well known fields and derives the
// display date. Failures are reported per document through *ParseFailure so
// callers can drop a bad document without abandoning the batch.
package markdown

// Package sources provides interfaces.Fetcher implementations: a client for
// the GitHub repository contents API and a filesystem backed lister for local
// content trees.
package sources

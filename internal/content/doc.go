// Package content renders a scanner.Profile into the Markdown bodies of the
// knowledge-base documents and the identity context fragment. Every
// function is pure and returns non-empty text, falling back to a fixed
// phrase for each section the profile has nothing for.
package content

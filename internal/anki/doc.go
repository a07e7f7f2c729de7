// Package anki exports flashcard sets as Anki import files: a plain CSV
// or a self-contained .apkg package.
package anki

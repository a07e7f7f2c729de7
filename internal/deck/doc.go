// Package deck holds the flashcard data model: term/definition cards,
// named sets of cards and the in-memory store that owns every set for the
// lifetime of the process. Sets and the store are append-only.
package deck

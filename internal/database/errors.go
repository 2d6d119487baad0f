package database

import "errors"

var (
	// ErrWordlistExists is returned when a list with the same name or the
	// same content has already been imported.
	ErrWordlistExists = errors.New("word list already imported")

	// ErrWordlistNotFound is returned when a named list does not exist.
	ErrWordlistNotFound = errors.New("word list not found")

	// ErrEmptyWordlist is returned when an import contains no usable words.
	ErrEmptyWordlist = errors.New("word list contains no words")
)

// Package deck reads slide decks from plain text files.
//
// A deck is a sequence of slides separated by lines containing only "---".
// A separator written as "--- *" marks the slide after it as the one a
// carousel starts on. When the first non-blank line of a slide starts with
// "# " it becomes the slide title:
//
//	# Welcome
//	A terminal carousel.
//	---
//	# Wraparound
//	Clones at both ends.
//	--- *
//	# Autoplay
//	Starts here.
//
// Blank lines around a slide are dropped, and so are slides that are
// entirely blank. A file without any slide is rejected with ErrEmpty.
package deck

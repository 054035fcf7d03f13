package legacy

import (
	"strings"
	"unicode"
)

// Title-scanner states. The scanner walks the lowercased title looking
// for an "op"/"ed" token that follows a space, optionally followed by a
// number with or without a separating space.
const (
	scanStart      = iota // nothing matched
	scanSpace             // just consumed a space
	scanO                 // "o" after a space
	scanOP                // "op" matched, split recorded
	scanE                 // "e" after a space
	scanED                // "ed" matched, split recorded
	scanSpaceAfter        // space right after "op"/"ed"
	scanNumber            // digits directly after "op"/"ed"
	scanSpacedNum         // digits after "op "/"ed "
)

// ParseTitle splits a legacy song title into the anime name and the
// song label. A title like "Cowboy Bebop OP2" yields ("Cowboy Bebop",
// "OP 2"); a bare "Trigun ED" yields ("Trigun", "ED 1"); a title with
// no recognizable label defaults to ("<whole title>", "OP 1"). A
// leading three-letter uppercase tag ("TVA Some Title") is stripped
// first. Only a label that runs to the end of the title counts;
// anything after the number resets the scan.
func ParseTitle(title string) (anime, label string) {
	runes := []rune(title)
	if len(runes) > 3 && runes[3] == ' ' && isUpperWord(runes[:3]) {
		runes = runes[4:]
	}

	state := scanStart
	split := 0
	for i, c := range []rune(strings.ToLower(string(runes))) {
		switch {
		case state == scanStart && c == ' ':
			state = scanSpace
		case (state == scanSpace || state == scanSpaceAfter) && c == 'o':
			state = scanO
		case state == scanO && c == 'p':
			split = i - 1
			state = scanOP
		case (state == scanSpace || state == scanSpaceAfter) && c == 'e':
			state = scanE
		case state == scanE && c == 'd':
			split = i - 1
			state = scanED
		case (state == scanOP || state == scanED || state == scanNumber) && unicode.IsDigit(c):
			state = scanNumber
		case (state == scanOP || state == scanED) && c == ' ':
			state = scanSpaceAfter
		case (state == scanSpaceAfter || state == scanSpacedNum) && unicode.IsDigit(c):
			state = scanSpacedNum
		default:
			state = scanStart
		}
	}

	switch state {
	case scanOP:
		return string(runes[:split-1]), "OP 1"
	case scanED:
		return string(runes[:split-1]), "ED 1"
	case scanNumber:
		return string(runes[:split-1]),
			strings.ToUpper(string(runes[split:split+2])) + " " + string(runes[split+2:])
	case scanSpacedNum:
		return string(runes[:split-1]), strings.ToUpper(string(runes[split:]))
	default:
		return string(runes), "OP 1"
	}
}

func isUpperWord(runes []rune) bool {
	for _, c := range runes {
		if !unicode.IsUpper(c) {
			return false
		}
	}
	return true
}

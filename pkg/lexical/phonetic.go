package lexical

// soundexCode returns the digit class for an uppercase letter. Vowels
// and the separators H, W, Y return 0.
func soundexCode(c byte) byte {
	switch c {
	case 'B', 'F', 'P', 'V':
		return '1'
	case 'C', 'G', 'J', 'K', 'Q', 'S', 'X', 'Z':
		return '2'
	case 'D', 'T':
		return '3'
	case 'L':
		return '4'
	case 'M', 'N':
		return '5'
	case 'R':
		return '6'
	}
	return 0
}

// Soundex computes the classic four character code: uppercase first
// letter plus three digits, zero padded. Returns "" when the input has
// no ASCII letter.
func Soundex(word string) string {
	letters := asciiLetters(word)
	if len(letters) == 0 {
		return ""
	}

	out := make([]byte, 1, 4)
	out[0] = letters[0]
	last := soundexCode(letters[0])

	for i := 1; i < len(letters) && len(out) < 4; i++ {
		c := letters[i]
		code := soundexCode(c)
		if code == 0 {
			// Vowels reset adjacency, H and W do not.
			if c != 'H' && c != 'W' {
				last = 0
			}
			continue
		}
		if code != last {
			out = append(out, code)
			last = code
		}
	}

	for len(out) < 4 {
		out = append(out, '0')
	}
	return string(out)
}

// Metaphone computes a reduced phonetic key: initial cluster
// simplification, digraph folding, then internal vowel removal. The key
// is uppercase letters only, no digits.
func Metaphone(word string) string {
	w := asciiLetters(word)
	if len(w) == 0 {
		return ""
	}

	// Silent initial clusters.
	if len(w) >= 2 {
		switch string(w[:2]) {
		case "KN", "GN", "PN", "PS", "AE", "WR":
			w = w[1:]
		}
	}
	if w[0] == 'X' {
		w[0] = 'S'
	}

	out := make([]byte, 0, len(w))
	skip := false
	for i := 0; i < len(w); i++ {
		if skip {
			skip = false
			continue
		}
		c := w[i]
		var next byte
		if i+1 < len(w) {
			next = w[i+1]
		}

		// Collapse doubled letters.
		if i > 0 && c == w[i-1] {
			continue
		}

		switch c {
		case 'A', 'E', 'I', 'O', 'U':
			if len(out) == 0 {
				out = append(out, c)
			}
		case 'B':
			// Silent terminal B after M (bomb, dumb).
			if i == len(w)-1 && i > 0 && w[i-1] == 'M' {
				continue
			}
			out = append(out, 'B')
		case 'C':
			if next == 'K' {
				continue // CK -> K
			}
			if next == 'I' || next == 'E' || next == 'Y' {
				out = append(out, 'S')
			} else {
				out = append(out, 'K')
			}
		case 'D':
			out = append(out, 'T')
		case 'G':
			if next == 'H' && !(i+2 < len(w) && isVowel(w[i+2])) {
				skip = true // silent GH
				continue
			}
			if next == 'I' || next == 'E' || next == 'Y' {
				out = append(out, 'J')
			} else {
				out = append(out, 'K')
			}
		case 'H':
			// Digraphs (CH, SH, PH, TH, GH) fold at their first letter.
			if i > 0 && foldsH(w[i-1]) {
				continue
			}
			if isVowel(next) {
				out = append(out, 'H')
			}
		case 'P':
			if next == 'H' {
				out = append(out, 'F')
				skip = true
			} else {
				out = append(out, 'P')
			}
		case 'Q':
			out = append(out, 'K')
		case 'S':
			if next == 'C' && i+2 < len(w) && w[i+2] == 'H' {
				// SCH -> SK
				out = append(out, 'S', 'K')
				skip = true
			} else if next == 'H' {
				// SH keys apart from plain S.
				out = append(out, 'X')
				skip = true
			} else {
				out = append(out, 'S')
			}
		case 'T':
			out = append(out, 'T')
			if next == 'H' {
				skip = true
			}
		case 'V':
			out = append(out, 'F')
		case 'W':
			if isVowel(next) {
				out = append(out, 'W')
			}
		case 'X':
			out = append(out, 'K', 'S')
		case 'Y':
			if isVowel(next) {
				out = append(out, 'Y')
			}
		case 'Z':
			out = append(out, 'S')
		default:
			out = append(out, c)
		}
	}
	return string(out)
}

func foldsH(prev byte) bool {
	switch prev {
	case 'C', 'S', 'P', 'T', 'G':
		return true
	}
	return false
}

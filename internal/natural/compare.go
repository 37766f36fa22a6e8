// Package natural implements natural, case-insensitive string ordering
// compatible with PHP strnatcasecmp: embedded digit runs compare by value so
// that "item2" sorts before "item10".
package natural

// Compare returns -1, 0 or +1 comparing a and b in natural, case-insensitive order.
func Compare(a, b string) int {
	if len(a) == 0 || len(b) == 0 {
		switch {
		case len(a) == len(b):
			return 0
		case len(a) > len(b):
			return 1
		}
		return -1
	}
	ai, bi := 0, 0
	leading := true
	for {
		ca, cb := at(a, ai), at(b, bi)

		// leading zeros are skipped only at the very beginning
		for leading && ca == '0' && ai+1 < len(a) && isDigit(a[ai+1]) {
			ai++
			ca = a[ai]
		}
		for leading && cb == '0' && bi+1 < len(b) && isDigit(b[bi+1]) {
			bi++
			cb = b[bi]
		}
		leading = false

		for isSpace(ca) {
			ai++
			ca = at(a, ai)
		}
		for isSpace(cb) {
			bi++
			cb = at(b, bi)
		}

		if isDigit(ca) && isDigit(cb) {
			var result int
			if ca == '0' || cb == '0' {
				result = compareLeft(a, &ai, b, &bi)
			} else {
				result = compareRight(a, &ai, b, &bi)
			}
			switch {
			case result != 0:
				return result
			case ai == len(a) && bi == len(b):
				return 0
			case ai == len(a):
				return -1
			case bi == len(b):
				return 1
			}
			ca, cb = a[ai], b[bi]
		}

		ca, cb = upper(ca), upper(cb)
		if ca < cb {
			return -1
		} else if ca > cb {
			return 1
		}

		ai++
		bi++
		switch {
		case ai >= len(a) && bi >= len(b):
			return 0
		case ai >= len(a):
			return -1
		case bi >= len(b):
			return 1
		}
	}
}

// Less reports whether a sorts before b
func Less(a, b string) bool {
	return Compare(a, b) < 0
}

// compareRight compares right aligned digit runs: the longest run wins,
// otherwise the first differing digit decides.
func compareRight(a string, ai *int, b string, bi *int) int {
	bias := 0
	for ; ; *ai, *bi = *ai+1, *bi+1 {
		aDigit := *ai < len(a) && isDigit(a[*ai])
		bDigit := *bi < len(b) && isDigit(b[*bi])
		switch {
		case !aDigit && !bDigit:
			return bias
		case !aDigit:
			return -1
		case !bDigit:
			return 1
		case a[*ai] < b[*bi]:
			if bias == 0 {
				bias = -1
			}
		case a[*ai] > b[*bi]:
			if bias == 0 {
				bias = 1
			}
		}
	}
}

// compareLeft compares left aligned (fractional) digit runs: the first
// differing digit wins.
func compareLeft(a string, ai *int, b string, bi *int) int {
	for ; ; *ai, *bi = *ai+1, *bi+1 {
		aDigit := *ai < len(a) && isDigit(a[*ai])
		bDigit := *bi < len(b) && isDigit(b[*bi])
		switch {
		case !aDigit && !bDigit:
			return 0
		case !aDigit:
			return -1
		case !bDigit:
			return 1
		case a[*ai] < b[*bi]:
			return -1
		case a[*ai] > b[*bi]:
			return 1
		}
	}
}

// at returns the byte at index i or 0 past the end of s
func at(s string, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

package utils

import "math/rand"

const alphabet = "abcdefghijklmnopqrstuvwxyz"

// ContainsString returns true iff the provided string slice hay contains string
// needle.
func ContainsString(hay []string, needle string) bool {
	for _, str := range hay {
		if str == needle {
			return true
		}
	}
	return false
}

func Min(x, y int) int {
	if x < y {
		return x
	}
	return y
}

// RandomAlphabetString returns a random lower-case string of the given length,
// used for temp database names in tests.
func RandomAlphabetString(length int) string {
	b := make([]byte, length)
	for i := range b {
		b[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(b)
}

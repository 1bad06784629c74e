package test

import (
	"math/rand/v2"
	"strings"
)

const nameAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789-_"

// RandomFileName returns a file name of n random characters with ext appended.
func RandomFileName(n int, ext string) string {
	if n <= 0 {
		n = 1
	}
	var b strings.Builder
	b.Grow(n + len(ext))
	for range n {
		b.WriteByte(nameAlphabet[rand.IntN(len(nameAlphabet))])
	}
	b.WriteString(ext)
	return b.String()
}

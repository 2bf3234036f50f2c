package lib

import "unsafe"
import "strings"

// Parsecsv convert a string of comma separated values into list of
// string of values.
func Parsecsv(input string) []string {
	if input == "" {
		return nil
	}
	ss := strings.Split(input, ",")
	outs := make([]string, 0)
	for _, s := range ss {
		s = strings.Trim(s, " \t\r\n")
		if s == "" {
			continue
		}
		outs = append(outs, s)
	}
	return outs
}

// Memcpy copy memory block of length `ln` from `src` to `dst`. This
// function is useful if memory block is obtained outside golang
// runtime.
func Memcpy(dst, src unsafe.Pointer, ln int) int {
	dstnd := unsafe.Slice((*byte)(dst), ln)
	srcnd := unsafe.Slice((*byte)(src), ln)
	return copy(dstnd, srcnd)
}

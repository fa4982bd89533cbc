package util

import "fmt"

func Hex(stream []uint8) string {
	if len(stream) == 0 {
		return "[]"
	}
	s := ""
	for _, b := range stream {
		s += fmt.Sprintf(" %02X", b)
	}
	return "[" + s[1:] + "]"
}

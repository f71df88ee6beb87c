package domain

import "strings"

type ID string

func (vo ID) String() string {
	return string(vo)
}

func (vo ID) IsEmpty() bool {
	return vo == ""
}

type Name string

func (vo Name) String() string {
	return string(vo)
}

// Normalize strips surrounding whitespace.
func (vo Name) Normalize() Name {
	return Name(strings.TrimSpace(string(vo)))
}

func (vo Name) IsEmpty() bool {
	return vo.Normalize() == ""
}

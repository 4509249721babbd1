package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollapse(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"surrounding and inner runs", "  my   question ", "my question"},
		{"tabs and newlines", "list\t\tfiles\n", "list files"},
		{"already clean", "ls -la", "ls -la"},
		{"only whitespace", " \t ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Collapse(tt.in))
		})
	}
}

func TestComparable(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"punctuation inside a word", "  Correct Ans?,!.:;Wer  ", "correct answer"},
		{"case and trailing bang", "Answer, One!", "answer one"},
		{"punctuation between words", "answer , one", "answer one"},
		{"keeps other symbols", "ls -la | grep x", "ls -la | grep x"},
		{"case folding", "STRASSE", "strasse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Comparable(tt.in))
		})
	}
}

func TestComparable_UnicodeComposition(t *testing.T) {
	composed := "caf\u00e9"
	decomposed := "cafe\u0301"

	assert.True(t, Equal(composed, decomposed))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal("Show   Date.", "show date"))
	assert.False(t, Equal("show date", "show time"))
}

package security

import (
	"bytes"
	"strings"
	"testing"
)

func TestRandomString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		length   int
		alphabet string
		wantErr  bool
	}{
		{name: "negative length", length: -1, alphabet: "abc", wantErr: true},
		{name: "empty alphabet", length: 1, alphabet: "", wantErr: true},
		{name: "zero length", length: 0, alphabet: "abc"},
		{name: "single alphabet character", length: 8, alphabet: "X"},
		{name: "password alphabet", length: 64, alphabet: "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got, err := RandomString(testCase.length, testCase.alphabet)
			if testCase.wantErr {
				if err == nil {
					t.Fatalf("RandomString(%d, %q) expected error, got nil", testCase.length, testCase.alphabet)
				}
				return
			}
			if err != nil {
				t.Fatalf("RandomString(%d, %q) returned error: %v", testCase.length, testCase.alphabet, err)
			}
			if len(got) != testCase.length {
				t.Fatalf("RandomString(%d, %q) len = %d", testCase.length, testCase.alphabet, len(got))
			}
			for _, char := range got {
				if !strings.ContainsRune(testCase.alphabet, char) {
					t.Fatalf("RandomString produced char %q outside alphabet", char)
				}
			}
		})
	}
}

func TestRandomStringDiscardsBiasedBytes(t *testing.T) {
	t.Parallel()

	// With a 3-letter alphabet bytes 255 and up are rejected; 0, 1 and 5 map to a, b, c.
	source := bytes.NewReader([]byte{255, 0, 255, 1, 5, 0})
	got, err := randomString(source, 3, "abc")
	if err != nil {
		t.Fatalf("randomString returned error: %v", err)
	}
	if got != "abc" {
		t.Fatalf("randomString = %q, want %q", got, "abc")
	}
}

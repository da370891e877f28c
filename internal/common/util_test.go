package common

import "testing"

func TestWipeByteArray_Zeroes(t *testing.T) {
	b := []byte{1, 2, 3, 250}
	WipeByteArray(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped: %d", i, v)
		}
	}
}

func TestWipeByteArray_NilIsSafe(t *testing.T) {
	WipeByteArray(nil) // must not panic
}

func TestWipeByteArray_Empty(t *testing.T) {
	WipeByteArray([]byte{})
}

package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Home Appliances", "home-appliances"},
		{"  Trimmed  ", "trimmed"},
		{"Already-Slugged", "already-slugged"},
		{"Weird!@#Chars", "weird-chars"},
		{"Multiple   Spaces", "multiple-spaces"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateVerificationCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateVerificationCode()
		if len(code) != 6 {
			t.Fatalf("code %q is not 6 digits", code)
		}
		for _, c := range code {
			if c < '0' || c > '9' {
				t.Fatalf("code %q contains non-digit", code)
			}
		}
	}
}

func TestSplitCSV(t *testing.T) {
	got := SplitCSV(" a, b ,,c ")
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("SplitCSV = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("SplitCSV = %v, want %v", got, want)
		}
	}
	if len(SplitCSV("")) != 0 {
		t.Fatal("empty input should yield no parts")
	}
}

func TestGenerateRandomString(t *testing.T) {
	a := GenerateRandomString(12)
	b := GenerateRandomString(12)
	if len(a) != 12 || len(b) != 12 {
		t.Fatalf("wrong length: %q %q", a, b)
	}
	if a == b {
		t.Fatal("two random strings collided")
	}
}

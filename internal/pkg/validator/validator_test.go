package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-01-01", "2024-12-31", "2000-02-29"}
	invalid := []string{"2024-13-01", "2024-01-32", "01-01-2024", "2024/01/01", "", "not-a-date"}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidUsername(t *testing.T) {
	valid := []string{"alice", "bob.smith", "user_1", "a-b-c", "abc"}
	invalid := []string{"ab", "", "has space", "way@bad", strings51()}
	for _, u := range valid {
		if !IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = false, want true", u)
		}
	}
	for _, u := range invalid {
		if IsValidUsername(u) {
			t.Errorf("IsValidUsername(%q) = true, want false", u)
		}
	}
}

func strings51() string {
	s := ""
	for i := 0; i < 51; i++ {
		s += "a"
	}
	return s
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Paid", "Unpaid"}
	if !IsInSlice("Paid", slice) {
		t.Error("IsInSlice(Paid) = false, want true")
	}
	if IsInSlice("paid", slice) {
		t.Error("IsInSlice(paid) = true, want false")
	}
	if IsInSlice("", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

package slug

import "testing"

func TestMake(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "Excellence Academy", want: "excellence-academy"},
		{name: "symbol runs collapse", in: "A & B!!", want: "a-b"},
		{name: "leading and trailing stripped", in: "  --Alpha Prime-- ", want: "alpha-prime"},
		{name: "digits kept", in: "Class 12 Crash Course", want: "class-12-crash-course"},
		{name: "already a slug", in: "excellence-academy", want: "excellence-academy"},
		{name: "empty", in: "", want: ""},
		{name: "only symbols", in: "!!!", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Make(tt.in); got != tt.want {
				t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMakeIdempotent(t *testing.T) {
	inputs := []string{"Excellence Academy", "A & B!!", "Vidya  Mandir (Main Branch)"}
	for _, in := range inputs {
		once := Make(in)
		if twice := Make(once); twice != once {
			t.Errorf("Make not idempotent for %q: %q != %q", in, twice, once)
		}
	}
}

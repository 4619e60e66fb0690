package slug

import "testing"

func TestDerive(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "Valorant", "valorant"},
		{"spaces", "Just Chatting", "just-chatting"},
		{"ampersand", "Fitness & Health", "fitness-health"},
		{"collapses repeats", "a  --  b", "a-b"},
		{"trims edges", "  !Shadow Grind!  ", "shadow-grind"},
		{"already slug", "counter-strike", "counter-strike"},
		{"digits kept", "Top 10 Plays", "top-10-plays"},
		{"empty", "", ""},
		{"only symbols", "!!!", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Derive(tc.in); got != tc.want {
				t.Errorf("Derive(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestDeriveIsIdempotent(t *testing.T) {
	inputs := []string{"Just Chatting", "Fitness & Health", "VALORANT"}
	for _, in := range inputs {
		once := Derive(in)
		if twice := Derive(once); twice != once {
			t.Errorf("Derive(Derive(%q)) = %q, want %q", in, twice, once)
		}
	}
}

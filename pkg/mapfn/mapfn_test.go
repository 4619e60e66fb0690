package mapfn

import "testing"

func TestConvertSlice(t *testing.T) {
	got := ConvertSlice([]int{1, 2, 3}, func(v int) int { return v * 2 })
	want := []int{2, 4, 6}
	if len(got) != len(want) {
		t.Fatalf("length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestConvertSliceEmpty(t *testing.T) {
	got := ConvertSlice(nil, func(v int) int { return v })
	if len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestFilterSlice(t *testing.T) {
	got := FilterSlice([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 0 })
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Errorf("got %v, want [2 4]", got)
	}
}

func TestKeyBy(t *testing.T) {
	type pair struct {
		k string
		v int
	}
	got := KeyBy([]pair{{"a", 1}, {"b", 2}, {"a", 3}}, func(p pair) string { return p.k })
	if len(got) != 2 {
		t.Fatalf("length = %d, want 2", len(got))
	}
	if got["a"].v != 3 {
		t.Errorf("later element should win, got %d", got["a"].v)
	}
}

package store

import "testing"

func TestList_PrependOrdersNewestFirst(t *testing.T) {
	l := NewList[string]()
	l.Prepend("first")
	l.Prepend("second")
	l.Prepend("third")

	got := l.Recent(0)
	want := []string{"third", "second", "first"}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("item %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestList_AppendOrdersChronologically(t *testing.T) {
	l := NewList[int]()
	l.Append(1)
	l.Append(2)
	l.Append(3)

	got := l.Recent(0)
	for i, want := range []int{1, 2, 3} {
		if got[i] != want {
			t.Errorf("item %d: expected %d, got %d", i, want, got[i])
		}
	}
}

func TestList_RecentLimitsAndCopies(t *testing.T) {
	l := NewList[int]()
	for i := 0; i < 5; i++ {
		l.Prepend(i)
	}

	got := l.Recent(2)
	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got[0] != 4 || got[1] != 3 {
		t.Errorf("expected [4 3], got %v", got)
	}

	// Mutating the returned slice must not touch the list.
	got[0] = 99
	if l.Recent(1)[0] != 4 {
		t.Error("Recent returned a slice sharing backing storage with the list")
	}
}

func TestList_RecentBeyondLength(t *testing.T) {
	l := NewList[string]()
	l.Append("only")

	got := l.Recent(10)
	if len(got) != 1 {
		t.Fatalf("expected 1 item, got %d", len(got))
	}
}

func TestList_Clear(t *testing.T) {
	l := NewList[string]()
	l.Append("a")
	l.Append("b")
	l.Clear()

	if l.Len() != 0 {
		t.Errorf("expected empty list after clear, got %d items", l.Len())
	}
	if got := l.Recent(0); len(got) != 0 {
		t.Errorf("expected no items after clear, got %v", got)
	}
}

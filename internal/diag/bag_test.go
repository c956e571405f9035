package diag

import (
	"testing"

	"hufflint/internal/source"
)

func TestBagHonorsLargeLimits(t *testing.T) {
	// Лимит больше 65535 не должен урезаться.
	b := NewBag(1 << 16)
	if b.Cap() != 1<<16 {
		t.Fatalf("cap = %d", b.Cap())
	}
	if !b.Add(NewWarning(StyAlignment, source.Span{}, "m")) {
		t.Error("add under the limit should succeed")
	}
}

func TestBagMergeGrowsLimit(t *testing.T) {
	a := NewBag(2)
	b := NewBag(2)
	for i := 0; i < 2; i++ {
		a.Add(NewWarning(StyAlignment, source.Span{}, "a"))
		b.Add(NewWarning(StyAlignment, source.Span{}, "b"))
	}
	a.Merge(b)
	if a.Len() != 4 || a.Cap() < 4 {
		t.Fatalf("len = %d, cap = %d", a.Len(), a.Cap())
	}
}

package tiles

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPlan(t *testing.T) {
	moves, err := Plan(Size{Width: 4, Height: 2}, Size{Width: 2, Height: 2}, []int{1, 0})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	want := []Move{
		{DestIndex: 0, SourceIndex: 1, Source: image.Rect(2, 0, 4, 2), Dest: image.Rect(0, 0, 2, 2)},
		{DestIndex: 1, SourceIndex: 0, Source: image.Rect(0, 0, 2, 2), Dest: image.Rect(2, 0, 4, 2)},
	}
	if diff := cmp.Diff(want, moves); diff != "" {
		t.Errorf("Plan mismatch (-want+got):\n%v", diff)
	}
}

func TestPlan_RectsAreCongruent(t *testing.T) {
	ordering := []int{5, 2, 0, 4, 1, 3}
	moves, err := Plan(Size{Width: 9, Height: 10}, Size{Width: 3, Height: 5}, ordering)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	for _, m := range moves {
		if m.Source.Size() != m.Dest.Size() {
			t.Errorf("move %d: source %v and dest %v differ in size", m.DestIndex, m.Source, m.Dest)
		}
		if m.SourceIndex != ordering[m.DestIndex] {
			t.Errorf("move %d: source index got %d, want %d", m.DestIndex, m.SourceIndex, ordering[m.DestIndex])
		}
	}
}

func TestPlan_Invalid(t *testing.T) {
	if _, err := Plan(Size{Width: 4, Height: 4}, Size{Width: 2, Height: 2}, []int{0, 1, 2}); err == nil {
		t.Error("Plan should fail for a short ordering")
	}
}

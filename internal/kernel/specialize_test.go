package kernel

import (
	"errors"
	"fmt"
	"testing"
)

func TestSpecializeRejectsUnsupportedLengths(t *testing.T) {
	t.Parallel()

	for _, n := range []int{-4, 0, 3, 6, 12, 40, 100} {
		if _, err := Specialize(n); !errors.Is(err, ErrUnsupportedLength) {
			t.Errorf("Specialize(%d): err = %v, want ErrUnsupportedLength", n, err)
		}
	}
}

func TestSpecializeStageCount(t *testing.T) {
	t.Parallel()

	for n, stages := range map[int]int{1: 0, 2: 1, 4: 2, 8: 3, 256: 8} {
		p, err := Specialize(n)
		if err != nil {
			t.Fatalf("Specialize(%d): %v", n, err)
		}
		if p.Len() != n {
			t.Errorf("Specialize(%d).Len() = %d", n, p.Len())
		}
		if p.Stages() != stages {
			t.Errorf("Specialize(%d).Stages() = %d, want %d", n, p.Stages(), stages)
		}
	}
}

// Every stage must read in-range pair indices, keep twiddle indices inside
// the table, and source both butterfly halves exactly once per pair.
func TestSpecializeTableBounds(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 4, 8, 64, 512} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			p, err := Specialize(n)
			if err != nil {
				t.Fatalf("Specialize(%d): %v", n, err)
			}

			for s, st := range p.stages {
				reads := make([]int, n)
				for lane, bf := range st {
					if bf.a < 0 || int(bf.a) >= n || bf.b < 0 || int(bf.b) >= n {
						t.Fatalf("stage %d lane %d: pair (%d,%d) out of range", s, lane, bf.a, bf.b)
					}
					if int(bf.b)-int(bf.a) != n/2 {
						t.Fatalf("stage %d lane %d: pair distance %d, want %d", s, lane, bf.b-bf.a, n/2)
					}
					if bf.tw < 0 || int(bf.tw) >= n/2+1 {
						t.Fatalf("stage %d lane %d: twiddle index %d out of range", s, lane, bf.tw)
					}
					reads[bf.a]++
					reads[bf.b]++
				}
				// Each previous-stage slot feeds exactly two outputs.
				for slot, count := range reads {
					if count != 2 {
						t.Fatalf("stage %d: slot %d read %d times, want 2", s, slot, count)
					}
				}
			}
		})
	}
}

func TestSpecializeSize2Table(t *testing.T) {
	t.Parallel()

	p, err := Specialize(2)
	if err != nil {
		t.Fatalf("Specialize(2): %v", err)
	}

	st := p.stages[0]
	want := stage{
		{a: 0, b: 1, tw: 0, sub: false},
		{a: 0, b: 1, tw: 0, sub: true},
	}
	for lane := range want {
		if st[lane] != want[lane] {
			t.Errorf("lane %d: %+v, want %+v", lane, st[lane], want[lane])
		}
	}
}

func TestSpecializeCachesPrograms(t *testing.T) {
	t.Parallel()

	p1, err := Specialize(32)
	if err != nil {
		t.Fatalf("Specialize(32): %v", err)
	}
	p2, err := Specialize(32)
	if err != nil {
		t.Fatalf("Specialize(32): %v", err)
	}
	if p1 != p2 {
		t.Error("Specialize(32) did not return the cached program")
	}
}

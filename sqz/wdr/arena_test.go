package wdr

import "testing"

func listPositions(a *Arena, l List) [][2]uint16 {
	var out [][2]uint16
	for cur := l.Head; cur >= 0; {
		n := a.At(cur)
		out = append(out, [2]uint16{n.X, n.Y})
		cur = n.Next
	}
	return out
}

func TestAppendOrder(t *testing.T) {
	a := NewArena(4)
	l := NewList()
	for i := uint16(0); i < 4; i++ {
		l.Append(a, a.Alloc(i, i*2))
	}
	if l.Len != 4 {
		t.Fatalf("Len = %d, want 4", l.Len)
	}
	pos := listPositions(a, l)
	for i, p := range pos {
		if p[0] != uint16(i) || p[1] != uint16(i*2) {
			t.Errorf("entry %d = %v", i, p)
		}
	}
}

func TestExchange(t *testing.T) {
	a := NewArena(5)
	src, dst := NewList(), NewList()
	var idx []int32
	for i := uint16(0); i < 5; i++ {
		n := a.Alloc(i, 0)
		idx = append(idx, n)
		src.Append(a, n)
	}

	// Unlink the middle node (prev = idx[1]).
	Exchange(a, &src, &dst, idx[2], idx[1])
	// Unlink the head (prev = -1).
	Exchange(a, &src, &dst, idx[0], -1)
	// Unlink the tail (prev = idx[3]).
	Exchange(a, &src, &dst, idx[4], idx[3])

	if src.Len != 2 || dst.Len != 3 {
		t.Fatalf("lens = %d/%d, want 2/3", src.Len, dst.Len)
	}
	got := listPositions(a, src)
	if len(got) != 2 || got[0][0] != 1 || got[1][0] != 3 {
		t.Errorf("src = %v, want x positions 1,3", got)
	}
	// dst preserves exchange order.
	got = listPositions(a, dst)
	if got[0][0] != 2 || got[1][0] != 0 || got[2][0] != 4 {
		t.Errorf("dst = %v, want x positions 2,0,4", got)
	}
	if a.At(src.Tail).Next != -1 || a.At(dst.Tail).Next != -1 {
		t.Error("tails must terminate with -1")
	}
}

func TestExchangeToEmptyTail(t *testing.T) {
	a := NewArena(1)
	src, dst := NewList(), NewList()
	n := a.Alloc(9, 9)
	src.Append(a, n)
	Exchange(a, &src, &dst, n, -1)
	if src.Len != 0 || src.Head != -1 || src.Tail != -1 {
		t.Errorf("src not empty: %+v", src)
	}
	if dst.Head != n || dst.Tail != n || dst.Len != 1 {
		t.Errorf("dst = %+v", dst)
	}
}

func TestMerge(t *testing.T) {
	a := NewArena(6)
	src, dst := NewList(), NewList()
	for i := uint16(0); i < 3; i++ {
		dst.Append(a, a.Alloc(i, 0))
	}
	for i := uint16(3); i < 6; i++ {
		src.Append(a, a.Alloc(i, 0))
	}

	Merge(a, &src, &dst)
	if src.Len != 0 || src.Head != -1 {
		t.Errorf("src not emptied: %+v", src)
	}
	pos := listPositions(a, dst)
	if len(pos) != 6 {
		t.Fatalf("merged len = %d", len(pos))
	}
	for i, p := range pos {
		if p[0] != uint16(i) {
			t.Errorf("entry %d = %v", i, p)
		}
	}

	// Merging into an empty list adopts src wholesale.
	empty := NewList()
	Merge(a, &dst, &empty)
	if empty.Len != 6 || dst.Len != 0 {
		t.Errorf("merge into empty: %+v / %+v", empty, dst)
	}
}

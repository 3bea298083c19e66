package physics

// slot holds one entry of a table. gen starts at 1 and is bumped on removal,
// so the zero handle is never valid and stale handles never alias a reused slot.
type slot[T any] struct {
	gen  uint32
	live bool
	val  T
}

// table is a generation-tagged slot store shared by actors and solids.
type table[T any] struct {
	slots []slot[T]
	free  []uint32
	count int
}

func (t *table[T]) insert(v T) (index, gen uint32) {
	t.count++
	if n := len(t.free); n > 0 {
		index = t.free[n-1]
		t.free = t.free[:n-1]
		s := &t.slots[index]
		s.live = true
		s.val = v
		return index, s.gen
	}
	t.slots = append(t.slots, slot[T]{gen: 1, live: true, val: v})
	return uint32(len(t.slots) - 1), 1
}

func (t *table[T]) get(index, gen uint32) (*T, bool) {
	if int(index) >= len(t.slots) {
		return nil, false
	}
	s := &t.slots[index]
	if !s.live || s.gen != gen {
		return nil, false
	}
	return &s.val, true
}

func (t *table[T]) remove(index, gen uint32) bool {
	if _, ok := t.get(index, gen); !ok {
		return false
	}
	s := &t.slots[index]
	var zero T
	s.val = zero
	s.live = false
	s.gen++
	t.free = append(t.free, index)
	t.count--
	return true
}

// each visits live entries in slot order.
func (t *table[T]) each(fn func(index, gen uint32, v *T)) {
	for i := range t.slots {
		s := &t.slots[i]
		if s.live {
			fn(uint32(i), s.gen, &s.val)
		}
	}
}

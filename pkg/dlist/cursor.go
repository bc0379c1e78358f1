package dlist

// Cursor walks a CircularDList in ring order: Next from the back moves to
// the front and Prev from the front moves to the back.
//
// A cursor addresses positions, not elements: after the list is modified it
// keeps its position index (wrapped to the new length).
type Cursor[T any] struct {
	list *CircularDList[T]
	pos  int
}

// Cursor returns a cursor at position index (modulo Len).
func (l *CircularDList[T]) Cursor(index int) (*Cursor[T], error) {
	if l.size == 0 {
		return nil, ErrEmpty
	}
	return &Cursor[T]{
		list: l,
		pos:  l.wrap(index),
	}, nil
}

func (c *Cursor[T]) Value() (T, error) {
	return c.list.Peek(c.pos)
}

// Index is the current position counted from the front.
func (c *Cursor[T]) Index() int {
	if c.list.size == 0 {
		return 0
	}
	return c.list.wrap(c.pos)
}

func (c *Cursor[T]) Next() (T, error) {
	return c.step(1)
}

func (c *Cursor[T]) Prev() (T, error) {
	return c.step(-1)
}

func (c *Cursor[T]) step(delta int) (T, error) {
	if c.list.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	c.pos = c.list.wrap(c.pos + delta)
	return c.list.Peek(c.pos)
}

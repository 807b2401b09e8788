package future

// Resolved returns a future that completes with v on its first poll.
func Resolved[T any](v T) Future[T] {
	return Func[T](func(*Context) Poll[T] {
		return Ready(v)
	})
}

// Never returns a future that stays pending forever and never wakes.
func Never[T any]() Future[T] {
	return Func[T](func(*Context) Poll[T] {
		return Pending[T]()
	})
}

type mapped[T, U any] struct {
	inner Future[T]
	fn    func(T) U
	out   U
	done  bool
}

// Map returns a future that completes with fn applied to the value of f.
// fn runs exactly once; later polls return the cached value.
func Map[T, U any](f Future[T], fn func(T) U) Future[U] {
	return &mapped[T, U]{inner: f, fn: fn}
}

func (m *mapped[T, U]) Poll(cx *Context) Poll[U] {
	if m.done {
		return Ready(m.out)
	}

	v, ok := m.inner.Poll(cx).Value()
	if !ok {
		return Pending[U]()
	}

	m.out = m.fn(v)
	m.done = true
	m.inner = nil
	return Ready(m.out)
}

// Abandon forwards to the inner future if it has not completed.
func (m *mapped[T, U]) Abandon() {
	if !m.done {
		Abandon(m.inner)
	}
}

package future

// Poll is the outcome of one scheduling attempt: either pending, or ready
// with a value.
type Poll[T any] struct {
	value T
	ready bool
}

// Ready returns a completed Poll carrying v.
func Ready[T any](v T) Poll[T] {
	return Poll[T]{value: v, ready: true}
}

// Pending returns a Poll reporting that the value is not available yet.
func Pending[T any]() Poll[T] {
	return Poll[T]{}
}

// IsReady reports whether the poll completed.
func (p Poll[T]) IsReady() bool {
	return p.ready
}

// Value returns the completed value and true, or the zero value and false
// when the poll is pending.
func (p Poll[T]) Value() (T, bool) {
	return p.value, p.ready
}

// Waker is notified when a pending future can make progress.
// Wake may be called from any goroutine, any number of times.
type Waker interface {
	Wake()
}

// WakerFunc adapts a function to the Waker interface.
type WakerFunc func()

// Wake calls f.
func (f WakerFunc) Wake() {
	f()
}

// Noop returns a Waker that does nothing.
func Noop() Waker {
	return WakerFunc(func() {})
}

// Context carries the per-attempt state handed to Poll.
type Context struct {
	waker Waker
}

// NewContext returns a Context that wakes w. A nil w is replaced by Noop.
func NewContext(w Waker) *Context {
	if w == nil {
		w = Noop()
	}
	return &Context{waker: w}
}

// Waker returns the waker a pending future should register.
func (cx *Context) Waker() Waker {
	return cx.waker
}

// Future is a computation that eventually produces a value of type T.
//
// Poll must not block. When it returns a pending Poll it must make sure
// cx.Waker() is called once progress is possible.
type Future[T any] interface {
	Poll(cx *Context) Poll[T]
}

// Abandoner is implemented by futures that hold resources, such as armed
// timers, which should be released when their driver stops polling them
// before they complete. Abandon is called at most once and the future is not
// polled afterwards.
type Abandoner interface {
	Abandon()
}

// Abandon releases f's resources if f implements Abandoner.
func Abandon(f any) {
	if a, ok := f.(Abandoner); ok {
		a.Abandon()
	}
}

// Func adapts a poll function to the Future interface.
type Func[T any] func(cx *Context) Poll[T]

// Poll calls f.
func (f Func[T]) Poll(cx *Context) Poll[T] {
	return f(cx)
}

// Result holds the outcome of a fallible computation.
//
// Fields:
//   - Value: the produced value (only valid if Err is nil)
//   - Err: the failure, nil on success
type Result[T any] struct {
	Value T
	Err   error
}

// Ok returns a successful Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Err returns a failed Result.
func Err[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool {
	return r.Err == nil
}

// Unwrap returns the value and error held by r.
func (r Result[T]) Unwrap() (T, error) {
	return r.Value, r.Err
}

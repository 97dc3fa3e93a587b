// Package boxing covers values converted to interfaces.
package boxing

type point struct {
	x, y int
}

type empty struct{}

func use(v any) {}

func useAll(prefix string, vs ...any) {}

func useEach(vs ...any) {}

func pair() (int, error) { return 0, nil }

//allocfree:check
func box(n int, p point, ptr *point, err error, vs []any) {
	use(n) // want `value of type int is boxed into an interface`
	use(p) // want `value of type point is boxed into an interface`
	use(ptr)
	use(err)
	use(1)
	use(nil)
	use(empty{})
	useAll("x", n, ptr) // want `value of type int is boxed into an interface`
	useAll("x", vs...)
	_ = any(p) // want `value of type point is boxed into an interface`
	useEach(pair())

	var v any
	v = n // want `value of type int is boxed into an interface`
	v = ptr
	_ = v
}

//allocfree:check
func generic[T any](x T) {
	use(x)
}

//go:build !release

package debug

// Assert panics with the info if fn returns false. It compiles away in
// release builds.
func Assert(info string, fn func() bool) {
	if !fn() {
		panic("assertion failed: " + info)
	}
}

package lazy

// Field is a named value computed on first access and cached for the
// lifetime of the owning instance. The compute function typically closes
// over the owner, so a field declared by a plugin sees the plugin's state.
//
// Get memoizes the error as well as the value: a failed computation is not
// retried unless the caller clears the cache with Reset. Set unconditionally
// overwrites the cache and discards any memoized error.
type Field[T any] struct {
	name    string
	compute func() (T, error)
	value   T
	err     error
	done    bool
}

// New declares a field with a name and a compute function producing its
// default value.
func New[T any](name string, compute func() (T, error)) *Field[T] {
	return &Field[T]{name: name, compute: compute}
}

// Name returns the field's declared name.
func (f *Field[T]) Name() string { return f.name }

// Get returns the cached value, computing it on first access. The compute
// function runs at most once per instance.
func (f *Field[T]) Get() (T, error) {
	if !f.done {
		f.value, f.err = f.compute()
		f.done = true
	}
	return f.value, f.err
}

// Set overwrites the cached value, bypassing the compute function.
func (f *Field[T]) Set(v T) {
	f.value = v
	f.err = nil
	f.done = true
}

// Reset clears the cache so the next Get recomputes the value.
func (f *Field[T]) Reset() {
	var zero T
	f.value = zero
	f.err = nil
	f.done = false
}

// IsSet reports whether the field holds a cached value (computed or assigned).
func (f *Field[T]) IsSet() bool { return f.done }

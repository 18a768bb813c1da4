package glslprep

// IncludeProvider resolves include paths to shader source. Implementations
// can read from disk, memory, a network, or a build graph; the crawler treats
// them as a black box and wraps any error they return without interpreting it.
//
// The context type C is opaque to the crawler. Each include receives the
// context emitted by its including file and returns the context its own
// children should see, which lets a provider carry a current directory, a
// virtual mount point, or dependency-edge state down the include tree without
// any global state.
type IncludeProvider[C any] interface {
	GetInclude(path string, ctx C) (source string, next C, err error)
}

// SystemIncludeProvider is an optional capability for providers that resolve
// <bracketed> includes differently from "quoted" ones (the usual C-family
// split between system and local headers). The crawler routes bracketed
// directives through GetSystemInclude when the provider implements this
// interface and falls back to GetInclude otherwise, so providers that do not
// care about the distinction stay a single method.
type SystemIncludeProvider[C any] interface {
	IncludeProvider[C]

	GetSystemInclude(path string, ctx C) (source string, next C, err error)
}

// IncludeProviderFunc adapts a function to the IncludeProvider interface.
type IncludeProviderFunc[C any] func(path string, ctx C) (string, C, error)

// GetInclude calls f.
func (f IncludeProviderFunc[C]) GetInclude(path string, ctx C) (string, C, error) {
	return f(path, ctx)
}

package configs

// Configurable is a setting type that knows its CUE path.
type Configurable interface {
	ConfigExpr() string
}

// Lookup decodes the first value found at the path of T.
func Lookup[T Configurable](loader Loader) T {
	var zero T
	return First[T](loader, zero.ConfigExpr())
}

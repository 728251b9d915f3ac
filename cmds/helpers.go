package cmds

// Var defines name <value> and name. (reset) on the global executor.
func Var[T any](name string, desc string) *T {
	var value T

	Define(name, Func(func(v T) {
		value = v
	}).Desc(desc))

	var zero T
	Define(name+".", Func(func() {
		value = zero
	}).Desc("reset "+name).Hide())

	return &value
}

// Switch defines name and !name on the global executor.
func Switch(name string, desc string) *bool {
	var value bool

	Define(name, Func(func() {
		value = true
	}).Desc(desc))

	Define("!"+name, Func(func() {
		value = false
	}).Desc("undo "+name).Hide())

	return &value
}

func Collect[T any](name string, desc string) *[]T {
	var value []T
	Define(name, Func(func(v T) {
		value = append(value, v)
	}).Desc(desc))
	return &value
}

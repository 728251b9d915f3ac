package cmds

import (
	"fmt"
	"reflect"
)

type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
	// hidden commands run but are left out of the usage
	Hidden bool
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) Hide() *Command {
	c.Hidden = true
	return c
}

// Func wraps fn as a command. fn takes bool, integer, float or string
// arguments, or pointers to them for optional ones, and returns nothing or an error.
func Func(fn any) *Command {
	fnValue := reflect.ValueOf(fn)
	fnType := fnValue.Type()

	if fnValue.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}

	numRets := fnType.NumOut()
	if numRets >= 2 {
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	if numRets == 1 && fnType.Out(0) != errorType {
		panic(fmt.Errorf("must return error"))
	}

	for i := range fnType.NumIn() {
		if !isArgType(fnType.In(i)) {
			panic(fmt.Errorf("unsupported argument type: %v", fnType.In(i)))
		}
	}

	return &Command{
		Func: fnValue,
	}
}

func isArgType(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

package debugs

import (
	"fmt"
	"maps"
	"reflect"
	"slices"

	"github.com/reusee/starlarkutil"
	"github.com/reusee/tekla/tekla"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case bool:
		return starlark.Bool(v)

	case string:
		return starlark.String(v)

	case int:
		return starlark.MakeInt(v)

	case float64:
		return starlark.Float(v)

	case tekla.Token:
		d := starlark.NewDict(4)
		d.SetKey(starlark.String("kind"), starlark.String(v.Kind.String()))
		d.SetKey(starlark.String("text"), starlark.String(v.Text))
		d.SetKey(starlark.String("line"), starlark.MakeInt(v.Pos.Line))
		d.SetKey(starlark.String("column"), starlark.MakeInt(v.Pos.Column))
		return d

	case tekla.IllegalToken:
		d := toStarlarkValue(v.Token).(*starlark.Dict)
		d.SetKey(starlark.String("error"), starlark.String(v.Desc))
		return d

	case []any:
		elems := make([]starlark.Value, len(v))
		for i, e := range v {
			elems[i] = toStarlarkValue(e)
		}
		return starlark.NewList(elems)

	case map[string]any:
		d := starlark.NewDict(len(v))
		// sorted for stable printing in the REPL
		for _, k := range slices.Sorted(maps.Keys(v)) {
			d.SetKey(starlark.String(k), toStarlarkValue(v[k]))
		}
		return d

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Slice, reflect.Array:
		l := value.Len()
		elems := make([]starlark.Value, l)
		for i := range l {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}

// fromStarlarkValue converts to a tekla value. Integers become numbers.
func fromStarlarkValue(v starlark.Value) (tekla.Value, error) {
	switch v := v.(type) {
	case starlark.NoneType:
		return nil, nil
	case starlark.Bool:
		return bool(v), nil
	case starlark.String:
		return string(v), nil
	case starlark.Float:
		return float64(v), nil
	case starlark.Int:
		return float64(v.Float()), nil
	}
	return nil, fmt.Errorf("cannot convert %s to a tekla value", v.Type())
}

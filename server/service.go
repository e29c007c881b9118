package server

import (
	"encoding/json"
	"fmt"
	"reflect"

	"jsonrpc-client/message"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// method wraps a registered function. Positional params map one-to-one onto
// the function's parameters; a mismatched count is the caller's fault and
// yields the standard -32602 error.
type method struct {
	fn      reflect.Value
	numIn   int
	hasErr  bool
	inTypes []reflect.Type
}

// newMethod validates fn: it must be a function returning (T) or (T, error).
func newMethod(fn any) (*method, error) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return nil, fmt.Errorf("rpc: handler must be a function, got %s", v.Kind())
	}
	t := v.Type()
	if t.IsVariadic() {
		return nil, fmt.Errorf("rpc: variadic handlers are not supported")
	}
	switch t.NumOut() {
	case 1:
		if t.Out(0) == errorType {
			return nil, fmt.Errorf("rpc: handler must return a result before the error")
		}
	case 2:
		if t.Out(1) != errorType {
			return nil, fmt.Errorf("rpc: second return value must be error, got %s", t.Out(1))
		}
	default:
		return nil, fmt.Errorf("rpc: handler must return (T) or (T, error)")
	}

	m := &method{fn: v, numIn: t.NumIn(), hasErr: t.NumOut() == 2}
	for i := 0; i < t.NumIn(); i++ {
		m.inTypes = append(m.inTypes, t.In(i))
	}
	return m, nil
}

// call converts the decoded positional params into the function's parameter
// types and invokes it.
func (m *method) call(params any) (any, *message.ErrorObject) {
	list, ok := params.([]any)
	if !ok {
		// A single non-array value counts as one positional param
		if params == nil {
			list = nil
		} else {
			list = []any{params}
		}
	}
	if len(list) != m.numIn {
		return nil, message.NewError(message.CodeInvalidParams, "Invalid params")
	}

	args := make([]reflect.Value, m.numIn)
	for i, p := range list {
		// Round-trip through JSON to coerce the decoded value (float64,
		// string, map) into the declared parameter type
		raw, err := json.Marshal(p)
		if err != nil {
			return nil, message.NewError(message.CodeInvalidParams, "Invalid params")
		}
		argv := reflect.New(m.inTypes[i])
		if err := json.Unmarshal(raw, argv.Interface()); err != nil {
			return nil, message.NewError(message.CodeInvalidParams, "Invalid params")
		}
		args[i] = argv.Elem()
	}

	out := m.fn.Call(args)
	if m.hasErr && !out[1].IsNil() {
		return nil, message.NewError(message.CodeInternalError, out[1].Interface().(error).Error())
	}
	return out[0].Interface(), nil
}

package internal_test

import (
	"sync/atomic"

	"github.com/dmitrymomot/forms/internal"
	"github.com/dmitrymomot/forms/pkg/validator"
)

// counter is a validator stub that records how often it ran.
type counter struct {
	calls atomic.Int32
	fail  string
}

func (c *counter) validator(name string) validator.Validator {
	return validator.New(name, func(any) *validator.Fault {
		c.calls.Add(1)
		if c.fail != "" {
			return validator.NewFault(c.fail)
		}
		return nil
	})
}

func values(kv ...string) internal.Input {
	in := internal.Input{Values: map[string]any{}}
	for i := 0; i+1 < len(kv); i += 2 {
		in.Values[kv[i]] = kv[i+1]
	}
	return in
}

func bindOne(spec *internal.FieldSpec, raw any) (*internal.Form, *internal.Field) {
	def := internal.MustDefine("test", internal.WithFields(spec))
	form := def.Bind(internal.Input{Values: map[string]any{spec.Name(): raw}})
	field, _ := form.Field(spec.Name())
	return form, field
}

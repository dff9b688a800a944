package validator

import (
	"maps"
	"slices"
	"strings"
)

// state carries one execution of a rule tree. It is created per call, which
// keeps bound validators free of mutable state.
type state struct {
	opts     Options
	overlays []Messages
	errs     ValidationErrors
}

func newState(opts Options) *state {
	return &state{opts: opts}
}

func (st *state) push(m Messages) {
	st.overlays = append(st.overlays, m)
}

func (st *state) pop() {
	st.overlays = st.overlays[:len(st.overlays)-1]
}

// done reports whether execution must stop because of AbortEarly.
func (st *state) done() bool {
	return st.opts.AbortEarly && len(st.errs) > 0
}

// fork returns a state sharing options and overlays but collecting its own
// errors, used to try alternatives without polluting the parent.
func (st *state) fork() *state {
	return &state{opts: st.opts, overlays: slices.Clone(st.overlays)}
}

func (st *state) report(path []string, key, code string, params map[string]any) {
	if st.done() {
		return
	}
	if key == "" {
		key = "value"
	}

	values := make(map[string]any, len(params)+1)
	maps.Copy(values, params)
	values["key"] = key

	st.errs = append(st.errs, ValidationError{
		Field:             strings.Join(path, "."),
		Path:              slices.Clone(path),
		Message:           render(st.template(code), values),
		TranslationKey:    code,
		TranslationValues: values,
	})
}

// template resolves a rule code through the rule overlays (innermost first),
// then the bound language and finally the engine language.
func (st *state) template(code string) string {
	for i := len(st.overlays) - 1; i >= 0; i-- {
		if tmpl, ok := st.overlays[i].Lookup(code); ok {
			return tmpl
		}
	}
	if tmpl, ok := st.opts.Messages.Lookup(code); ok {
		return tmpl
	}
	if tmpl, ok := engineLanguage().Lookup(code); ok {
		return tmpl
	}
	return "%{key} is invalid"
}

func childPath(path []string, name string) []string {
	return append(slices.Clip(path), name)
}

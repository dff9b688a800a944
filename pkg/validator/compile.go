package validator

// Schema is either a Rule or a *Validator. The interface is sealed: Compile
// and Validate switch on the concrete type instead of probing for engine state.
type Schema interface {
	schema()
}

func (Rule) schema()       {}
func (*Validator) schema() {}

// Validator is a rule bound to execution options. It is immutable once
// created and safe for concurrent use.
type Validator struct {
	rule Rule
	opts Options
}

// Result is the outcome of a validation.
// Errors is nil if and only if validation succeeded; Value holds the
// coerced data, partially coerced when validation failed.
type Result struct {
	Errors ValidationErrors
	Value  any
}

// Valid reports whether the validation succeeded.
func (r Result) Valid() bool {
	return r.Errors == nil
}

// Err returns the violations as an error, or nil on success.
func (r Result) Err() error {
	if r.Errors == nil {
		return nil
	}
	return r.Errors
}

// Compile binds a rule with the default policy: all violations collected,
// coercion enabled, unknown object keys stripped, function values skipped.
// The catalog is deep-merged with the messages already attached to s, which
// win on conflicts: the rule's own overlay for a Rule, the bound language
// for a *Validator.
func Compile(s Schema) *Validator {
	opts := DefaultOptions()

	switch v := s.(type) {
	case *Validator:
		opts.Messages = opts.Messages.Merge(v.opts.Messages)
		return &Validator{rule: v.rule, opts: opts}
	case Rule:
		opts.Messages = opts.Messages.Merge(v.messages)
		return &Validator{rule: v, opts: opts}
	default:
		return &Validator{rule: Any(), opts: opts}
	}
}

// CompileWith binds a rule with explicit options. opts.Messages is merged on
// top of the catalog.
func CompileWith(s Schema, opts Options) *Validator {
	opts.Messages = Catalog().Merge(opts.Messages)

	switch v := s.(type) {
	case *Validator:
		return &Validator{rule: v.rule, opts: opts}
	case Rule:
		return &Validator{rule: v, opts: opts}
	default:
		return &Validator{rule: Any(), opts: opts}
	}
}

// Rule returns the bound rule.
func (v *Validator) Rule() Rule {
	return v.rule
}

// Options returns a copy of the bound options.
func (v *Validator) Options() Options {
	opts := v.opts
	opts.Messages = opts.Messages.Clone()
	return opts
}

// Validate runs the validator against data. Violations are deduplicated by
// message text, see the package level Validate.
func (v *Validator) Validate(data any) Result {
	return Validate(v, data)
}

// Validate runs s against data and never fails with an error: violations are
// returned in the Result. Errors sharing the same message text are collapsed
// into the first one, so the number of reported errors may be lower than the
// number of broken rules. A bare Rule runs with the engine options, see Rule.Validate.
func Validate(s Schema, data any) Result {
	var res Result
	switch v := s.(type) {
	case *Validator:
		res = execute(v.rule, v.opts, data)
	case Rule:
		res = v.Validate(data)
	default:
		return Result{Value: data}
	}

	if res.Errors != nil {
		res.Errors = res.Errors.Unique()
	}
	return res
}

func execute(r Rule, opts Options, data any) Result {
	st := newState(opts)
	value, _ := r.run(st, data, true, nil, "")
	if len(st.errs) == 0 {
		return Result{Value: value}
	}
	return Result{Errors: st.errs, Value: value}
}

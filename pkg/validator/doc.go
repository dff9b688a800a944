// Package validator provides a composable, immutable rule engine for
// validating dynamic data (decoded JSON, database rows, map[string]any) with
// implicit coercion and human-readable, deduplicated error messages.
//
// Rules are built from constructors (Any, String, Number, Boolean, Date,
// Object, Array, Alternatives) and refined with chained builder methods. Every
// method returns a modified copy, so a rule can be shared and extended from
// several places without surprises:
//
//	gender := validator.AnyValid(
//	    validator.String().Trim().Lowercase().Label("Gender"),
//	    []string{"male", "female", "other"},
//	)
//
//	user := validator.RuleSet(
//	    validator.Key("id", validator.ObjectID().Required()),
//	    validator.Key("age", validator.Number().Integer().Min(0).Max(150)),
//	    validator.Key("gender", gender),
//	)
//
// # Compile and Validate
//
// Compile binds a rule to the default execution policy returned by
// DefaultOptions: all violations are collected, coercion is enabled, unknown
// object keys are stripped from the output and function values are skipped.
// The default language pack (Catalog) is deep-merged with the messages already
// attached to the rule; the rule's messages win.
//
//	v := validator.Compile(user)
//	res := validator.Validate(v, payload)
//	if !res.Valid() {
//	    for _, e := range res.Errors {
//	        fmt.Println(e.Field, e.Message)
//	    }
//	}
//
// Validate never returns a violation as an error. Errors sharing the same
// message text are collapsed into the first occurrence, so the number of
// reported errors may be lower than the number of broken rules.
//
// # Messages
//
// Templates use named placeholders such as %{key}, %{limit} and %{valids}.
// A violation's template is resolved from the innermost rule overlay set with
// Rule.Messages, then the language bound by Compile, then the engine's
// built-in language, so every message is fully rendered.
//
// Leaf constraints (numeric bounds, string lengths and formats) are checked
// with github.com/go-playground/validator/v10 and string, numeric and date
// coercion relies on github.com/spf13/cast.
//
// # Concurrency
//
// Rules and validators hold no mutable state; a *Validator can be shared by
// any number of goroutines.
package validator

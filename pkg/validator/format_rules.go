package validator

import "slices"

// format is a named string format checked with a go-playground tag.
// The name doubles as the rule name in "string.<name>" message codes.
type format struct {
	name string
	tag  string
}

func (r Rule) withFormat(method, name, tag string) Rule {
	r.must(method, KindString)
	if slices.ContainsFunc(r.formats, func(f format) bool { return f.name == name }) {
		return r
	}
	r.formats = append(slices.Clip(r.formats), format{name: name, tag: tag})
	return r
}

// Email requires a valid e-mail address.
func (r Rule) Email() Rule { return r.withFormat("Email", "email", "email") }

// URI requires an absolute URL.
func (r Rule) URI() Rule { return r.withFormat("URI", "uri", "url") }

// GUID requires a UUID in its canonical textual form.
func (r Rule) GUID() Rule { return r.withFormat("GUID", "guid", "uuid") }

// IP requires an IPv4 or IPv6 address.
func (r Rule) IP() Rule { return r.withFormat("IP", "ip", "ip") }

// Hex requires hexadecimal characters only.
func (r Rule) Hex() Rule { return r.withFormat("Hex", "hex", "hexadecimal") }

// Alphanum requires ASCII letters and digits only.
func (r Rule) Alphanum() Rule { return r.withFormat("Alphanum", "alphanum", "alphanum") }

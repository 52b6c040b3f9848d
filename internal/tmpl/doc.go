// Package tmpl implements named-placeholder string substitution for the
// recurring message formats used across the bot.
//
// # Syntax
//
//   - $name or ${name}: a placeholder, where name matches [_a-zA-Z][_a-zA-Z0-9]*
//   - $$: a literal "$"
//
// Anything else starting with "$" is a malformed placeholder. There are no
// conditionals, loops or nested templates.
//
// # Modes
//
// Substitute is strict: the first placeholder without a binding yields a
// *MissingBindingError and a malformed placeholder yields an
// *InvalidPlaceholderError. SafeSubstitute never fails and copies unresolved
// placeholders to the output verbatim.
//
// # Usage
//
//	var nameTag = tmpl.New("${name}#${tag}")
//
//	s, err := nameTag.Substitute(tmpl.Vars{"name": "Ada", "tag": "0001"})
//	// s == "Ada#0001"
//
//	s = nameTag.SafeSubstitute(tmpl.Vars{"name": "Ada"})
//	// s == "Ada#${tag}"
//
// Templates are values and safe for concurrent use.
package tmpl

// Package locale maps the arbor error taxonomy to human-readable message
// strings keyed by BCP 47 language tags.
//
// The tree core is entirely unaware of this package: its errors carry a kind
// (a sentinel) and call-site detail, never a pre-rendered localised string,
// so localisation can never affect the core's control flow.
//
// A Catalog holds one complete message set for its default language. Other
// languages register only the strings that actually differ from the default;
// lookup falls back per tag using the x/text language matcher, so an
// unsupported regional variant such as de-AT resolves to its base de, and
// anything unmatched resolves to the default language.
package locale

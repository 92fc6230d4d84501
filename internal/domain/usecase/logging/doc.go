// Package logging implements the Logger that turns application events into
// leveled, service-tagged records and forwards them to the configured sinks.
//
// A Logger is built once from a resolved EffectiveConfig and passed to the
// code that needs it; there is no package-level instance. Every method runs
// to completion on the caller's goroutine and never returns or panics on bad
// input: malformed XML, unknown codes and sink failures degrade to error
// records or to the sink error callback.
//
// Messages that exist as keys in the translation table of the configured
// language are always translated, so a literal message that happens to equal
// a defined key is rendered as its translation.
package logging

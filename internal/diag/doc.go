// Package diag defines the core diagnostic model shared by all pipeline phases.
//
// # Purpose
//
//   - Provide deterministic, serialisable data structures that capture findings
//     produced by the lexer / parser / rule engine.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//   - Model fix suggestions as structured edits that the formatter can apply.
//
// # Scope
//
// Package diag does not perform any formatting or IO. Rendering lives in
// internal/diagfmt; application of fixes lives in internal/format and the
// driver layer.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – Info, Warning, Error, plus Fatal for per-file lex/parse
//     failures that stop further analysis of that file only.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//     Style codes additionally carry a rule identifier (RuleName) used by the
//     enabled_rules configuration.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//   - Fixes – optional Fix records describing how to address the problem.
//
// Notes should be used sparingly: each note must add new context (e.g. “label
// defined here”) rather than repeating the diagnostic message.
//
// TextEdit enforces spans in source coordinates; OldText acts as an optional
// guard that the formatter uses to validate the context before applying edits.
//
// Keep the data model deterministic: diagnostics are sorted and deduplicated
// by the Bag, and batch runs merge bags by simple concatenation.
package diag

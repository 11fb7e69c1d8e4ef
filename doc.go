// Package laika provides a multi-format document toolchain: it parses
// lightweight markup plus companion template and configuration documents,
// applies a pipeline of tree rewrites, and hands the result to a renderer.
//
// # Overview
//
// laika is organized around three leaf subsystems and the packages that
// depend on them:
//
//   - text: a custom, allocation-conscious parser combinator core with
//     positional source tracking and per-start-character dispatch.
//   - hocon: a two-stage HOCON configuration resolver, turning a raw parsed
//     builder tree into a resolved configuration value tree.
//   - directive / rewrite / bundle: a declarative directive DSL, a phased
//     bottom-up tree rewrite engine, and an extension bundle merge.
//
// The document, config, pipeline, legacy, and internal/mcpserver packages
// orchestrate those three subsystems into an end-to-end parse/resolve/
// rewrite pipeline. Concrete markup grammars, renderers, and built-in
// directives are treated as external collaborators and are not part of
// this module.
//
// See SPEC_FULL.md in the repository root for the full module map.
package laika

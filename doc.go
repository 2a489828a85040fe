// Package inlinekv provides:
//
// - Parsing of one line of inline key-value text (`name: 'foo', age: 30`) into an ordered Map
// - Typing of every value into a closed set of scalars (string, number, boolean, null, date)
// - A never-failing contract: malformed input degrades to an empty Map
// - An optional diagnostic channel via Issues (code, offset, message)
//
// Design policy:
// - Keep only public APIs in the root package; put the scanner and enforcement under internal/.
// - Place alternative splitting drivers under source/, value codecs under codec/, and the CLI under cmd/inlinekv.
// - No package-level mutable state: everything configurable travels in ParseOpt.
//
// Typical usage:
//
//  m := inlinekv.Parse("name: foo, number: 123, checked: true")
//  v, _ := m.Get("number")
//  n, _ := v.AsNumber()
//
//  m, iss := inlinekv.ParseWithIssues(line, inlinekv.ParseOpt{
//      Strictness: inlinekv.Strictness{OnDuplicateKey: inlinekv.Warn},
//  })
//
package inlinekv

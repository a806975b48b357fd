// Package calculator implements a line-oriented arithmetic expression
// evaluator.
//
// A line of input is first run through a validator that applies a strict
// lexical rule set: bounded length, no forbidden characters, no nonsensical
// adjacent character pairs, balanced parentheses, well-placed decimal
// points, and only registered function names. Lines that pass are evaluated
// by a recursive-descent parser that computes the result immediately,
// without building a syntax tree.
//
// Both binary precedence levels are strictly left-associative, including
// exponentiation: "2^3^2" is (2^3)^2 = 64. The ":" operator is a synonym
// for "/". Around thirty named functions are available under some
// sixty-eight aliases ("tg" and "tan" both mean the tangent), resolved
// case-insensitively.
//
// The package holds no state between calls other than the immutable alias
// table, so Validate and Evaluate are safe to call concurrently.
package calculator

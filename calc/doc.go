/*
Package calc implements a standalone, precedence-aware arithmetic evaluator
for plain (non-dice) formulas, backed by github.com/Knetic/govaluate.

Expressions follow govaluate's usual order of operations: parenthesis
(deepest first), functions, exponentiation, then multiplication/division
left to right, then addition/subtraction left to right.

calc is deliberately not used by the dice package's compound evaluator:
that fold is left-associative with no operator precedence (spec'd that way
to match MapTool's behaviour), while govaluate always applies standard
precedence and has no option to turn it off. calc exists for the separate
"plain calculator" surface the cmd/dicecore CLI's calc and repl commands
expose alongside dice rolling, not in place of it.
*/
package calc

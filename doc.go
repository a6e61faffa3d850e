// Package calc implements a scientific calculator's expression engine.
//
// Expressions are infix arithmetic as typed on a calculator keypad: "2+3*4",
// "sin(30)^2", "5!", "50%", "7 mod (3)", "-2^2" (which is -4, since negation
// binds looser than exponentiation). Whitespace is ignored entirely, names
// are case-insensitive, and × and ÷ work as * and /. The functions are sin,
// cos, tan, ln, log (base 10), sqrt, and abs; the constants are pi and e.
//
// Parsing produces a postfix program, so an expression can be parsed once and
// evaluated many times, e.g. while plotting. Trigonometric functions take
// their arguments in degrees unless a Context says otherwise.
//
// Format renders results so that they can be typed back in as input.
package calc

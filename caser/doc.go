// Package caser converts text between naming conventions.
//
// A conversion runs in two stages. The boundary detector splits the input into
// words, and the case renderer re-cases each word and joins the words with the
// target case's delimiter:
//
//	caser.ToCase("SuperMario64Game", caser.Snake)
//	// "super_mario_64_game"
//
// # Boundary Detection
//
// [ToCase] and [Words] use the maximal rule set: spaces, underscores, and
// hyphens are consumed as delimiters, and boundaries are inserted at
// lower-to-upper transitions ("aB"), before the final letter of an uppercase
// run followed by lowercase ("XMLHttp" splits as "XML", "Http"), and between
// letters and digits. Other punctuation never splits a word and is carried
// through unchanged.
//
// When the source case is known, [FromCase] narrows detection to the
// boundaries that case itself uses. Snake-declared input splits only on
// underscores, kebab-declared input only on hyphens, and camel-declared input
// only on capitalization and digit transitions:
//
//	caser.ToCase("my-kebab-var", caser.Snake)                      // "my_kebab_var"
//	caser.FromCase("my-kebab-var", caser.Snake).ToCase(caser.Snake) // "my-kebab-var" stays one word
//
// # Accuracy
//
// Conversion is total: it never fails, for any input and any declared source
// case. If no boundary is detected the whole input is treated as a single
// word, so a mistaken source declaration degrades accuracy, never success.
// Leading, trailing, and repeated delimiters are dropped rather than producing
// empty words.
//
// # Cases
//
// The supported cases form a closed set enumerable with [Cases]. Each case
// fixes a delimiter and a per-word casing pattern; see the [Case] constants.
// Casing touches only letters, so digits and punctuation inside a word are
// preserved:
//
//	caser.ToCase("10,000Days", caser.Snake) // "10,000_days"
package caser

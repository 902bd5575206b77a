// Package casetools provides tools for converting text between naming conventions.
//
// casetools converts identifiers and free text between cases such as snake_case,
// camelCase, PascalCase, kebab-case, Title Case, and SCREAMING_SNAKE_CASE by
// splitting input into words along detected boundaries and re-assembling the
// words under a target convention.
//
// # Overview
//
// The library consists of one primary package:
//
//   - caser: Split text into words and render them in a target case
//
// A command line tool, ccase, is provided under cmd/ccase for converting
// arguments from the shell.
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/casetools
//
// # Quick Start
//
// Convert text to a case:
//
//	import "github.com/erraggy/casetools/caser"
//
//	fmt.Println(caser.ToCase("XMLHttpRequest", caser.Snake))
//	// Output: xml_http_request
//
// By default conversion splits on every recognized word boundary: spaces,
// underscores, hyphens, lower-to-upper transitions, acronym endings, and
// letter/digit transitions. When the case of the input is known, declaring it
// narrows boundary detection to the boundaries that case actually uses:
//
//	s := caser.FromCase("my-kebab-var", caser.Kebab).ToCase(caser.Title)
//	// s == "My Kebab Var"
//
// Conversion never fails. Input that matches no boundary rule is treated as a
// single word, so the result may be less accurate but is always produced.
//
// # Caser Package
//
// The caser package implements the Case enum, the boundary detector, and the
// case renderer. See the caser package documentation for the full list of
// supported cases and the exact boundary rules.
//
// # Command Line Tool
//
// The ccase command converts its arguments:
//
//	ccase convert -t snake "XMLHttpRequest"
//	ccase convert -f camel -t kebab "myVariableName"
//	ccase words "SuperMario64Game"
//	ccase list
//
// # Version Information
//
// The root package exposes build metadata:
//
//	fmt.Println(casetools.Version())
package casetools

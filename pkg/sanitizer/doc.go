// Package sanitizer cleans user input before it is validated, logged or placed
// into outgoing mail.
//
// String helpers trim with browser whitespace rules (IsSpace), truncate,
// drop control characters and null bytes, and flatten text to a single line
// for mail headers. MaskEmail and MaskPhone hide contact details in logs.
// Apply and Compose chain transformations:
//
//	clean := sanitizer.Compose(
//		sanitizer.RemoveNullBytes,
//		sanitizer.RemoveControlChars,
//		sanitizer.Trim,
//	)
//
// All helpers are pure functions and safe for concurrent use.
package sanitizer

// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the path involved and
// remediation hints. Errors may point at a catalogued Issue whose Markdown
// guidance is rendered with glamour when the user asks for an explanation.
package issue

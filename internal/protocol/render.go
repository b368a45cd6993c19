package protocol

import "fmt"

// ResultBlock renders the substitution markup for a successful tool call.
func ResultBlock(name, serialized string) string {
	return fmt.Sprintf("<tool-result name=%q>\n%s\n</tool-result>", name, serialized)
}

// ErrorBlock renders the substitution markup for a failed tool call.
func ErrorBlock(name, message string) string {
	return fmt.Sprintf("<tool-error name=%q>\nError: %s\n</tool-error>", name, message)
}

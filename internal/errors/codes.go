package errors

// Error codes for the Wollok front end.
// These codes are used in diagnostics and documentation
// to provide consistent error identification across the toolchain.
//
// Error code ranges:
// E0100-E0199: Lexer and parser errors
// E0900-E0999: Reserved for tooling errors

const (
	// E0100: No token recognizer matched the input
	ErrorLexical = "E0100"

	// E0101: A grammar rule found a different token than it required
	ErrorUnexpectedToken = "E0101"

	// E0102: The token stream ended in the middle of a construct
	ErrorUnexpectedEOF = "E0102"

	// E0103: Grammar specific illegal shapes (trailing commas, stray prefixes)
	ErrorStructural = "E0103"

	// E0900: Source or configuration could not be read
	ErrorTooling = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorLexical:
		return "Input contains text that is not a valid token"
	case ErrorUnexpectedToken:
		return "A token appears where the grammar does not allow it"
	case ErrorUnexpectedEOF:
		return "Input ended before the construct was complete"
	case ErrorStructural:
		return "Construct has an invalid shape"
	case ErrorTooling:
		return "Tooling failure"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code == ErrorLexical:
		return "Lexer"
	case code > ErrorLexical && code < "E0200":
		return "Parser"
	case code >= "E0900" && code < "E1000":
		return "Tooling"
	default:
		return "Unknown"
	}
}

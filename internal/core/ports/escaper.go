package ports

// Escaper rewrites raw text into a form safe to splice between the
// delimiters of a backtick template literal in generated program text.
//
//go:generate go run go.uber.org/mock/mockgen -source=escaper.go -destination=mocks/mock_escaper.go -package=mocks
type Escaper interface {
	// EscapeForLiteral escapes literal-breaking metacharacters and control
	// characters. Pure and total; not idempotent, so callers escape exactly
	// once per embedding.
	EscapeForLiteral(s string) string
}

package ports

// StyleLoader is the bundler load-hook for style-sheet imports: it reads a
// style sheet and returns the generated module text that embeds it.
//
//go:generate go run go.uber.org/mock/mockgen -source=style_loader.go -destination=mocks/mock_style_loader.go -package=mocks
type StyleLoader interface {
	// LoadStyles reads the style sheet at path and returns program text
	// embedding its escaped content.
	LoadStyles(path string) (string, error)
}

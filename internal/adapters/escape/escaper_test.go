package escape_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/plugkit/internal/adapters/escape"
)

func TestEscapeForLiteral_NoGuardedCharacters(t *testing.T) {
	e := escape.NewEscaper()

	// Printable Unicode above U+009F survives unchanged, including the
	// symbolic glyphs the rendered styles depend on.
	inputs := []string{
		"",
		"content: '▾';",
		".icon::before { content: '→'; }",
		"café { color: rebeccapurple; }",
		"a:hover { opacity: 0.8; }",
	}
	for _, in := range inputs {
		assert.Equal(t, in, e.EscapeForLiteral(in), "input %q", in)
	}
}

func TestEscapeForLiteral_Metacharacters(t *testing.T) {
	e := escape.NewEscaper()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "backslash", in: "\\", want: "\\\\"},
		{name: "dollar", in: "$", want: "\\$"},
		{name: "backtick", in: "`", want: "\\`"},
		{name: "interpolation trigger", in: "${color}", want: "\\${color}"},
		{name: "all three in sequence", in: "\\$`", want: "\\\\\\$\\`"},
		{name: "content with escape", in: "content: '\\2193';", want: "content: '\\\\2193';"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.EscapeForLiteral(tt.in))
		})
	}
}

func TestEscapeForLiteral_ControlCharacters(t *testing.T) {
	e := escape.NewEscaper()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "nul", in: "\x00", want: `\u0000`},
		{name: "newline", in: "a\nb", want: `a\u000ab`},
		{name: "tab", in: "\t", want: `\u0009`},
		{name: "unit separator", in: "\x1f", want: `\u001f`},
		{name: "delete", in: "\x7f", want: `\u007f`},
		{name: "c1 low", in: "\u0080", want: `\u0080`},
		{name: "c1 high", in: "\u009f", want: `\u009f`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, e.EscapeForLiteral(tt.in))
		})
	}

	// The first printable characters on either side of the guarded ranges
	// pass through.
	assert.Equal(t, " ", e.EscapeForLiteral(" "))
	assert.Equal(t, "\u00a0", e.EscapeForLiteral("\u00a0"))
}

func TestEscapeForLiteral_NotIdempotent(t *testing.T) {
	e := escape.NewEscaper()

	once := e.EscapeForLiteral("$")
	twice := e.EscapeForLiteral(once)

	// Escaping is applied exactly once per embedding; a second pass
	// double-escapes.
	assert.Equal(t, `\$`, once)
	assert.Equal(t, `\\\$`, twice)
	assert.NotEqual(t, once, twice)
}

func TestEscapeForLiteral_OutputIsLiteralSafe(t *testing.T) {
	e := escape.NewEscaper()

	inputs := []string{
		"body { font: 12px/1.4 sans-serif; }",
		"`${`\\`}$",
		"$$$```\\\\\\",
		"a\x00b\x1fc\x7fde",
		"content: '▾'; /* ` and $ and \\ */",
		"\\u0041", // pre-existing unicode escape must not collapse
	}
	for _, in := range inputs {
		out := e.EscapeForLiteral(in)
		assertLiteralSafe(t, out)
	}
}

func TestEscapeForLiteral_RoundTrip(t *testing.T) {
	e := escape.NewEscaper()

	inputs := []string{
		"",
		"content: '▾';",
		"`${`\\`}$",
		"a\nb\tc",
		".x { background: url(\"a$b.png\"); }",
		"\\2193 ▾ `tick` ${interp}",
	}
	for _, in := range inputs {
		out := e.EscapeForLiteral(in)
		assert.Equal(t, in, evalLiteral(t, out), "input %q", in)
	}
}

// assertLiteralSafe verifies the three safety properties of escaped output:
// no unescaped backtick, no unescaped trailing backslash, and no unescaped
// dollar sign followed by an opening brace.
func assertLiteralSafe(t *testing.T, out string) {
	t.Helper()

	escaped := false
	for i, r := range out {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case '`':
			t.Fatalf("unescaped backtick at %d in %q", i, out)
		case '$':
			if i+1 < len(out) && out[i+1] == '{' {
				t.Fatalf("unescaped interpolation trigger at %d in %q", i, out)
			}
		}
	}
	if escaped {
		t.Fatalf("unescaped trailing backslash in %q", out)
	}
}

// evalLiteral decodes escaped output the way the consuming literal syntax
// would: \X yields X for the guarded metacharacters, \uXXXX yields the
// code point.
func evalLiteral(t *testing.T, out string) string {
	t.Helper()

	var b strings.Builder
	runes := []rune(out)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != '\\' {
			b.WriteRune(r)
			continue
		}
		require.Less(t, i+1, len(runes), "dangling escape in %q", out)
		i++
		switch runes[i] {
		case 'u':
			require.Less(t, i+4, len(runes), "truncated unicode escape in %q", out)
			code, err := strconv.ParseUint(string(runes[i+1:i+5]), 16, 32)
			require.NoError(t, err)
			b.WriteRune(rune(code))
			i += 4
		default:
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}

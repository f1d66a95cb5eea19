package format

import (
	"errors"
	"fmt"
	"strings"
)

// Format substitutes args into template left to right, one Placeholder per
// argument. Any mismatch between placeholders and arguments, or an argument
// that cannot be rendered, yields InvalidFormat. Format never panics.
func Format(template string, args ...any) string {
	s, err := Render(template, args...)
	if err != nil {
		return InvalidFormat
	}
	return s
}

// Render is Format with the failure reported. Each argument fills the first
// placeholder after the text produced by the previous one, so placeholders
// appearing inside argument text are never substituted.
func Render(template string, args ...any) (string, error) {
	if len(args) == 0 {
		if strings.Contains(template, Placeholder) {
			return "", ErrMissingArgument
		}
		return template, nil
	}

	var sb strings.Builder
	sb.Grow(len(template) + 8*len(args))

	rest := template
	for i, arg := range args {
		idx := strings.Index(rest, Placeholder)
		if idx < 0 {
			return "", fmt.Errorf("%w: argument %d has no placeholder", ErrMissingPlaceholder, i)
		}

		text, err := Stringify(arg)
		if err != nil {
			var ute *UnsupportedTypeError
			if errors.As(err, &ute) {
				ute.Index = i
			}
			return "", err
		}

		sb.WriteString(rest[:idx])
		sb.WriteString(text)
		rest = rest[idx+len(Placeholder):]
	}

	if strings.Contains(rest, Placeholder) {
		return "", fmt.Errorf("%w: %d supplied", ErrMissingArgument, len(args))
	}
	sb.WriteString(rest)

	return sb.String(), nil
}

// Count returns the number of placeholders in template.
func Count(template string) int {
	return strings.Count(template, Placeholder)
}

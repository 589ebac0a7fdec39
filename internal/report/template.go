package report

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/nao1215/ipfreq/internal/model"
)

// Recognized template placeholders.
const (
	placeholderCount = "{cnt}"
	placeholderIP    = "{ip}"
	placeholderHost  = "{host}"
)

// Default templates, chosen by whether hostname resolution is enabled.
const (
	// DefaultTemplate is used when hostnames are resolved.
	DefaultTemplate = "{cnt} {host} ({ip})"

	// DefaultNumericTemplate is used in numeric mode.
	DefaultNumericTemplate = "{cnt} {ip}"
)

// ErrUnknownPlaceholder is returned when a template contains a
// placeholder other than {cnt}, {ip}, or {host}.
var ErrUnknownPlaceholder = errors.New("unknown placeholder in format template")

// placeholderPattern finds every {...} placeholder in a template.
var placeholderPattern = regexp.MustCompile(`\{[^{}]*\}`)

// Template is a per-entry output format with named placeholders.
// It is parsed and validated once, before any scanning begins, and is
// immutable afterwards.
type Template struct {
	raw string
}

// ParseTemplate validates format and returns it as a Template.
// Every {...} placeholder must be one of {cnt}, {ip}, or {host};
// anything else is a configuration error.
func ParseTemplate(format string) (Template, error) {
	for _, ph := range placeholderPattern.FindAllString(format, -1) {
		switch ph {
		case placeholderCount, placeholderIP, placeholderHost:
		default:
			return Template{}, fmt.Errorf("%w: %s", ErrUnknownPlaceholder, ph)
		}
	}
	return Template{raw: format}, nil
}

// ContainsHost reports whether the template references {host}.
// Such a template requires hostname resolution and is rejected in
// numeric mode.
func ContainsHost(format string) bool {
	return strings.Contains(format, placeholderHost)
}

// Render substitutes the entry's values into the template and returns
// the resulting line, without a trailing newline.
func (t Template) Render(e model.Entry) string {
	replacer := strings.NewReplacer(
		placeholderCount, strconv.FormatUint(e.Count, 10),
		placeholderIP, e.Addr,
		placeholderHost, e.Host,
	)
	return replacer.Replace(t.raw)
}

// String returns the raw template text.
func (t Template) String() string {
	return t.raw
}

// Package routing extracts the route choice a model embeds in its response.
// The response contract asks the model to wrap its reasoning in
// <ANALYSIS>...</ANALYSIS> and its final pick in <CHOICE>...</CHOICE>.
package routing

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrNoChoiceMarkers indicates the response carried no <CHOICE> pair at
	// all: a format error, typically a model that ignored the response
	// contract.
	ErrNoChoiceMarkers = errors.New("no <CHOICE> markers in response")

	// ErrUnknownRoute indicates the markers were present but the captured
	// value is not in the allow-list: a validation error.
	ErrUnknownRoute = errors.New("route not in allow-list")
)

var (
	choicePattern   = regexp.MustCompile(`(?is)<choice>(.*?)</choice>`)
	analysisPattern = regexp.MustCompile(`(?is)<analysis>(.*?)</analysis>`)
)

// ExtractRouteChoice pulls the route name out of a model response and
// validates it against the allowed routes. Matching is case-insensitive and
// the captured value may span multiple lines; surrounding whitespace is
// trimmed. On success the canonical spelling from the allow-list is returned.
//
// The two failure kinds are distinguishable with errors.Is: missing markers
// wrap ErrNoChoiceMarkers, an out-of-list value wraps ErrUnknownRoute.
func ExtractRouteChoice(text string, allowed []string) (string, error) {
	m := choicePattern.FindStringSubmatch(text)
	if m == nil {
		return "", fmt.Errorf("routing: %w (response was %d chars)", ErrNoChoiceMarkers, len(text))
	}

	choice := strings.TrimSpace(m[1])
	for _, route := range allowed {
		if strings.EqualFold(choice, route) {
			return route, nil
		}
	}
	return "", fmt.Errorf("routing: %w: got %q, valid routes: %s", ErrUnknownRoute, choice, strings.Join(allowed, ", "))
}

// HasRouteMarkers is a lightweight format precheck: it reports whether the
// response contains both an <ANALYSIS> pair and a <CHOICE> pair, without
// attempting extraction or validation.
func HasRouteMarkers(text string) bool {
	return analysisPattern.MatchString(text) && choicePattern.MatchString(text)
}

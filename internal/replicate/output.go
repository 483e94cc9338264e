package replicate

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidModelOutput means the provider response parsed as JSON but no
// usable http URL could be extracted from it.
var ErrInvalidModelOutput = errors.New("invalid model output")

// ExtractOutputURL pulls the single result URL out of the provider's
// polymorphic response. The precedence order is part of the contract:
//
//  1. a bare JSON string
//  2. the first element of a non-empty array
//  3. an object's "output" field (itself a string or array)
//  4. an object's "url" field
//  5. the first http-prefixed string value in the object, scanning keys in
//     sorted order so the pick is deterministic
//
// Whatever is found must be non-empty and start with "http"; a relative or
// malformed URL is the same failure class as finding nothing.
func ExtractOutputURL(raw json.RawMessage) (string, error) {
	fail := func() (string, error) {
		return "", fmt.Errorf("%w: %s", ErrInvalidModelOutput, truncate(string(raw), 512))
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if isHTTPURL(asString) {
			return asString, nil
		}
		return fail()
	}

	var asList []json.RawMessage
	if err := json.Unmarshal(raw, &asList); err == nil {
		if len(asList) == 0 {
			return fail()
		}
		var head string
		if err := json.Unmarshal(asList[0], &head); err == nil && isHTTPURL(head) {
			return head, nil
		}
		return fail()
	}

	var asObject map[string]json.RawMessage
	if err := json.Unmarshal(raw, &asObject); err != nil {
		return fail()
	}

	if output, ok := asObject["output"]; ok {
		if u, err := ExtractOutputURL(output); err == nil {
			return u, nil
		}
	}

	if rawURL, ok := asObject["url"]; ok {
		var u string
		if err := json.Unmarshal(rawURL, &u); err == nil && isHTTPURL(u) {
			return u, nil
		}
	}

	keys := make([]string, 0, len(asObject))
	for k := range asObject {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		var v string
		if err := json.Unmarshal(asObject[k], &v); err == nil && isHTTPURL(v) {
			return v, nil
		}
	}

	return fail()
}

func isHTTPURL(s string) bool {
	return s != "" && strings.HasPrefix(s, "http")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

package httputil

import "strings"

// jsonMediaType is the only media type the API produces and consumes.
const jsonMediaType = "application/json"

// AcceptsJSON reports whether the Accept header value allows a JSON response.
// The header is split on commas, any media-type parameters after ';' are
// stripped, and the remaining token is compared exactly against
// "application/json" and "*/*". A plain substring check would accept values
// like "application/jsonx", so tokens are matched exactly.
func AcceptsJSON(acceptHeader string) bool {
	if acceptHeader == "" {
		return false
	}

	for _, part := range strings.Split(acceptHeader, ",") {
		mediaType := mediaTypeToken(part)
		if mediaType == jsonMediaType || mediaType == "*/*" {
			return true
		}
	}
	return false
}

// IsJSONBody reports whether the Content-Type header value declares a JSON body.
// Parameters such as "; charset=utf-8" are ignored; the media type itself must
// match "application/json" exactly.
func IsJSONBody(contentTypeHeader string) bool {
	return mediaTypeToken(contentTypeHeader) == jsonMediaType
}

// mediaTypeToken extracts the lowercase media type from a header token,
// dropping any parameters after ';'.
func mediaTypeToken(token string) string {
	if idx := strings.IndexByte(token, ';'); idx >= 0 {
		token = token[:idx]
	}
	return strings.ToLower(strings.TrimSpace(token))
}

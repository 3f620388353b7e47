package capture

import (
	"net/url"
	"regexp"
)

// relevantPath matches message-listing endpoints: group message listings and
// direct-message listings. Matching is on the path shape, not a host
// allow-list; the proxy already fronts only the target API.
var relevantPath = regexp.MustCompile(`/groups/[^/]+/messages$|/direct_messages$`)

// Relevant reports whether u denotes a message-listing or direct-message
// endpoint whose responses should be observed.
func Relevant(u *url.URL) bool {
	if u == nil {
		return false
	}
	return relevantPath.MatchString(u.Path)
}

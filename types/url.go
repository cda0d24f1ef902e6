package types

import (
	"net"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// SetPortInURL replaces (or adds) the port of rawURL. Inputs without a scheme
// are returned without one.
func SetPortInURL(rawURL string, port uint16) (string, error) {
	hasScheme := strings.Contains(rawURL, "://")
	withScheme := rawURL
	if !hasScheme {
		withScheme = "http://" + rawURL
	}

	u, err := url.Parse(withScheme)
	if err != nil {
		return "", errors.Wrapf(err, "invalid url %q", rawURL)
	}
	if u.Hostname() == "" {
		return "", errors.Errorf("url %q has no host", rawURL)
	}
	u.Host = net.JoinHostPort(u.Hostname(), strconv.Itoa(int(port)))

	if !hasScheme {
		return strings.TrimPrefix(u.String(), "http://"), nil
	}
	return u.String(), nil
}

// Utilities for parsing browser "copy as cURL" captures.
//
// Credential records originate from an authenticated browser session: the
// operator copies a request to the music service as a cURL command and the
// parser extracts the headers and cookie text to be stored for a user.
package shared

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

// CurlCapture represents headers and cookie text parsed from a cURL command.
//
// Header names are lowercased so lookups against the capture are stable
// regardless of how the browser cased them.
type CurlCapture struct {
	Headers map[string]string
	Cookie  string
}

// ParseCurlFile reads a file containing a cURL command and extracts headers.
func ParseCurlFile(filepath string) (*CurlCapture, error) {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read curl file: %w", err)
	}

	return ParseCurlCommand(content)
}

var (
	curlHeaderRegex = regexp.MustCompile(`-H\s+'([^']+)'|-H\s+"([^"]+)"`)
	curlCookieRegex = regexp.MustCompile(`-b\s+'([^']+)'|-b\s+"([^"]+)"`)
)

// ParseCurlCommand parses a cURL command string and extracts headers and the cookie.
//
// The cookie may arrive either as a -b flag or as a "cookie:" header; both
// forms end up in [CurlCapture.Cookie], never in the header map.
func ParseCurlCommand(data []byte) (*CurlCapture, error) {
	curlCmd := string(data)
	curlCmd = strings.ReplaceAll(curlCmd, "\\\n", " ")
	curlCmd = strings.ReplaceAll(curlCmd, "\\", "")

	headers := make(map[string]string)
	var cookie string

	matches := curlHeaderRegex.FindAllStringSubmatch(curlCmd, -1)

	for _, match := range matches {
		headerLine := match[1]
		if headerLine == "" {
			headerLine = match[2]
		}

		parts := strings.SplitN(headerLine, ":", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])

		if key == "cookie" {
			cookie = value
		} else {
			headers[key] = value
		}
	}

	if cookieMatches := curlCookieRegex.FindStringSubmatch(curlCmd); len(cookieMatches) > 1 {
		if cookieMatches[1] != "" {
			cookie = cookieMatches[1]
		} else {
			cookie = cookieMatches[2]
		}
	}

	if len(headers) == 0 && cookie == "" {
		return nil, fmt.Errorf("no headers found in curl command")
	}

	return &CurlCapture{
		Headers: headers,
		Cookie:  cookie,
	}, nil
}

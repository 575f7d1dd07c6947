package urls

import (
	"errors"
	"regexp"
)

var (
	ErrInvalidTweetURL = errors.New("invalid tweet URL format")

	tweetIDRegex  = regexp.MustCompile(`/status/(\d+)`)
	usernameRegex = regexp.MustCompile(`(?:x\.com|twitter\.com)/([^/]+)/status/`)
)

// ExtractTweetID returns the numeric status ID embedded in a tweet URL.
func ExtractTweetID(tweetURL string) (string, error) {
	match := tweetIDRegex.FindStringSubmatch(tweetURL)
	if match == nil {
		return "", ErrInvalidTweetURL
	}

	return match[1], nil
}

// ExtractUsername returns the author handle embedded in a tweet URL.
func ExtractUsername(tweetURL string) (string, error) {
	match := usernameRegex.FindStringSubmatch(tweetURL)
	if match == nil {
		return "", ErrInvalidTweetURL
	}

	return match[1], nil
}

// Parse extracts both identifiers a lookup needs from a tweet URL.
func Parse(tweetURL string) (tweetID string, username string, err error) {
	tweetID, err = ExtractTweetID(tweetURL)
	if err != nil {
		return "", "", err
	}

	username, err = ExtractUsername(tweetURL)
	if err != nil {
		return "", "", err
	}

	return tweetID, username, nil
}

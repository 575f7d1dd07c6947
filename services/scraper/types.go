package scraper

import (
	twitterscraper "github.com/imperatrona/twitter-scraper"
)

const sourceName = "scraper"

type Impl struct {
	tweetCount int
	scraper    *twitterscraper.Scraper
}

package graphclient

import (
	twitter "github.com/anatolykoptev/go-twitter"
)

const sourceName = "graphql"

type Impl struct {
	tweetCount int
	client     *twitter.Client
}

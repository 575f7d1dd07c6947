package responses

// Flat response shapes served by every lookup endpoint. Fields the backing
// library does not provide keep their zero value.

type Author struct {
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	Verified       bool   `json:"verified"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
}

type EngagementCounts struct {
	Likes    int `json:"likes"`
	Retweets int `json:"retweets"`
	Replies  int `json:"replies"`
}

type Tweet struct {
	TweetID         string           `json:"tweet_id"`
	Content         string           `json:"content"`
	Author          Author           `json:"author"`
	Engagement      EngagementCounts `json:"engagement"`
	CreatedAt       string           `json:"created_at"`
	Source          string           `json:"source"`
	IsCommunityPost bool             `json:"is_community_post"`
}

type Engagement struct {
	Likes     int    `json:"likes"`
	Retweets  int    `json:"retweets"`
	Replies   int    `json:"replies"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

type ArchivedTweet struct {
	TweetID         string `json:"tweet_id"`
	AuthorHandle    string `json:"author_handle"`
	Content         string `json:"content"`
	Likes           int    `json:"likes"`
	Retweets        int    `json:"retweets"`
	Replies         int    `json:"replies"`
	Timestamp       int64  `json:"timestamp"`
	Source          string `json:"source"`
	IsCommunityPost bool   `json:"is_community_post"`
}

type UserInfo struct {
	Username       string `json:"username"`
	DisplayName    string `json:"display_name"`
	Bio            string `json:"bio"`
	FollowersCount int    `json:"followers_count"`
	FollowingCount int    `json:"following_count"`
	Verified       bool   `json:"verified"`
	Location       string `json:"location,omitempty"`
	Website        string `json:"website,omitempty"`
	JoinDate       string `json:"join_date,omitempty"`
}

package response_models

type ForumPostResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Body       string   `json:"body,omitempty"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	AuthorID   string   `json:"author_id"`
	ReplyCount int      `json:"reply_count"`
	CreatedAt  int64    `json:"created_at"`
}

type ForumReplyResponse struct {
	ID        string `json:"id"`
	AuthorID  string `json:"author_id"`
	Body      string `json:"body"`
	CreatedAt int64  `json:"created_at"`
}

type ForumPostDetailResponse struct {
	Post    ForumPostResponse    `json:"post"`
	Replies []ForumReplyResponse `json:"replies"`
}

package request_models

type CreateForumPostRequest struct {
	Title    string   `json:"title" binding:"required,min=3,max=150"`
	Body     string   `json:"body" binding:"required"`
	Category string   `json:"category" binding:"required"`
	Tags     []string `json:"tags"`
}

type CreateForumReplyRequest struct {
	Body string `json:"body" binding:"required"`
}

package request_models

type TripTipsRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Interests   []string `json:"interests"`
	Days        int      `json:"days" binding:"min=0,max=30"`
}

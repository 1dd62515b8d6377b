package dto

type StoryRequest struct {
	Query string `json:"query" binding:"required"`
}

type StoryResponse struct {
	StoryText string `json:"story_text"`
}

package dto

type AudioRequest struct {
	TextToSpeak string `json:"text_to_speak" binding:"required"`
}

type AudioResponse struct {
	AudioBase64 string `json:"audio_base64"`
	MimeType    string `json:"mime_type"`
}

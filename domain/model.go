package domain

type StoryRequest struct {
	Theme string
}

type StoryResponse struct {
	StoryText string
}

type AudioRequest struct {
	TextToSpeak string
}

type AudioResponse struct {
	AudioBase64 string
	MimeType    string
}

// SpeechPayload is the inline audio returned by the speech provider, still base64 encoded.
type SpeechPayload struct {
	Data     string
	MimeType string
}

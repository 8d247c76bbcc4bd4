package lesson

// AddTranscriptRequest is the payload for posting a transcript fragment.
// Transcript intentionally carries no content validation: an empty final
// fragment is a legal no-op append.
type AddTranscriptRequest struct {
	RoomID     string `json:"room_id" validate:"required,room_id"`
	Transcript string `json:"transcript"`
	IsPartial  bool   `json:"is_partial"`
}

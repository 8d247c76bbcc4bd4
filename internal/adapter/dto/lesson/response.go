package lesson

// ConnectionDetails is everything the web client needs to join the
// LiveKit chat room.
type ConnectionDetails struct {
	ServerURL        string `json:"server_url"`
	RoomName         string `json:"room_name"`
	ParticipantName  string `json:"participant_name"`
	ParticipantToken string `json:"participant_token"`
}

// TokenResponse carries a temporary realtime transcription token
type TokenResponse struct {
	Token string `json:"token"`
}

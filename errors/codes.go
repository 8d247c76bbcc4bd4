package errors

// ErrorCode identifies an application error category
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_LESSON_NOT_FOUND
	ErrorCode_INVALID_ROOM_ID
	ErrorCode_AI_SUMMARY_FAILED
	ErrorCode_AI_TOKEN_FAILED
	ErrorCode_INTEGRATION_LIVEKIT_FAILED
	ErrorCode_INTEGRATION_STORAGE_FAILED
	ErrorCode_HTTP_OK
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                    "UNKNOWN",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_LESSON_NOT_FOUND:           "LESSON_NOT_FOUND",
	ErrorCode_INVALID_ROOM_ID:            "INVALID_ROOM_ID",
	ErrorCode_AI_SUMMARY_FAILED:          "AI_SUMMARY_FAILED",
	ErrorCode_AI_TOKEN_FAILED:            "AI_TOKEN_FAILED",
	ErrorCode_INTEGRATION_LIVEKIT_FAILED: "INTEGRATION_LIVEKIT_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_HTTP_OK:                    "OK",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

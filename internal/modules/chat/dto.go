package chat

type CreateConversationRequest struct {
	ParticipantID  int64  `json:"participant_id" binding:"required"`
	BookingID      *int64 `json:"booking_id"`
	InitialMessage string `json:"initial_message"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

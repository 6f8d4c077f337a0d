package models

import "slices"

// Session is a bookable yoga session as stored by the backend.
type Session struct {
	ID          int64     `json:"id,omitempty"`
	Name        string    `json:"name"`
	Date        Timestamp `json:"date"`
	TeacherID   int64     `json:"teacher_id"`
	Description string    `json:"description"`
	Users       []int64   `json:"users"`
	CreatedAt   Timestamp `json:"createdAt"`
	UpdatedAt   Timestamp `json:"updatedAt"`
}

func (s Session) HasParticipant(userID int64) bool {
	return slices.Contains(s.Users, userID)
}

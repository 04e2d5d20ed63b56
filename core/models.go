package core

import "time"

// User represents a registered account.
//
// This is the "identity" - who someone is. The password hash is the only
// credential material and is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Session is the server-side record of an active login. The ID is a
// 256-bit random value and is embedded in the auth token as the "sid"
// claim; deleting the record revokes every token that references it.
type Session struct {
	ID        string    `json:"id"`
	UserID    int64     `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

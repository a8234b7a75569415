package domain

// User as stored. Password holds the bcrypt hash, never the plain text.
type User struct {
	Id       string
	Username string
	Password string
	Fullname string
}

// RegisteredUser is what registration exposes back to the client.
type RegisteredUser struct {
	Id       string `json:"id"`
	Username string `json:"username"`
	Fullname string `json:"fullname"`
}

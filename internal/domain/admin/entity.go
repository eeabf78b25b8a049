package admin

type Profile struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash,omitempty"`

	// Password carries a legacy plaintext credential read from an old document.
	// The password migration moves it into PasswordHash and clears it.
	Password string `json:"password,omitempty"`
}

package employee

type Employee struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Username     string  `json:"username"`
	Position     string  `json:"position"`
	Salary       float64 `json:"salary"`
	Avatar       string  `json:"avatar"`
	PasswordHash string  `json:"passwordHash,omitempty"`

	// Password carries a legacy plaintext credential read from an old document.
	// The password migration moves it into PasswordHash and clears it.
	Password string `json:"password,omitempty"`
}

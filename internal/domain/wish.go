package domain

import "time"

// AnonymousAuthor es el nombre asignado cuando el remitente no se identifica.
const AnonymousAuthor = "Anonymous"

type Wish struct {
	Text      string    `json:"text"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"createdAt"`
}

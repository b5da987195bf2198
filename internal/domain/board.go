package domain

// Template es un mensaje predefinido que sirve como punto de partida.
type Template struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Text  string `json:"text"`
}

// Tones lista los tonos disponibles para redactar un mensaje.
var Tones = []string{"inspirational", "encouraging", "funny", "calm", "formal", "custom"}

// Templates son los mensajes de ejemplo que ofrece el tablón.
var Templates = []Template{
	{Label: "Short & Encouraging", Icon: "💪", Text: "You've got this! 💪 Keep calm and trust your preparation."},
	{Label: "Inspirational", Icon: "🌟", Text: "Believe in yourself — your hard work will pay off! 🌟📚"},
	{Label: "Light & Funny", Icon: "😄", Text: "Go smash those exams like a boss! 🧠⚡ (Don't forget to breathe.)"},
	{Label: "Supportive & Warm", Icon: "❤️", Text: "Wishing you clarity, focus and success. All the best! ❤️✍️"},
	{Label: "Calm & Focused", Icon: "🌿", Text: "One question at a time. You've prepared well — now show what you know. 🌿"},
}

// BoardInfo describe el tablón tal como lo presenta la capa de UI.
type BoardInfo struct {
	Title      string   `json:"title"`
	Subtitle   string   `json:"subtitle"`
	Dedication string   `json:"dedication"`
	Recipients []string `json:"recipients"`
}

// Stats resume la actividad del tablón.
type Stats struct {
	TotalWishes   int `json:"total_wishes"`
	UniqueAuthors int `json:"unique_authors"`
}

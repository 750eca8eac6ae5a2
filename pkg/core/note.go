package core

// Note is the central entity of the domain.
// It is a titled text entry identified by an ID that never changes after creation.
type Note struct {
	ID    int64  `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Body  string `json:"body" yaml:"body"`
}

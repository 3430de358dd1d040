package domain

// DeckFile is a fully assembled presentation ready to be streamed.
type DeckFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

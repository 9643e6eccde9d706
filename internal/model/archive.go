package model

import "time"

// Archive is a stored compressed container plus metadata.
type Archive struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	OriginalSize   int       `json:"original_size"`
	CompressedSize int       `json:"compressed_size"`
	Symbols        int       `json:"symbols"`
	FoldCase       bool      `json:"fold_case"`
	CreatedAt      time.Time `json:"created_at"`
	Data           []byte    `json:"-"`
}

// Ratio is compressed size over original size.
func (a *Archive) Ratio() float64 {
	if a.OriginalSize == 0 {
		return 0
	}
	return float64(a.CompressedSize) / float64(a.OriginalSize)
}

package storage

import (
	"context"
	"errors"
	"time"
)

var (
	ErrInvalidIssuance = errors.New("invalid issuance")
)

// Issuance is one issue request. Token values are never stored.
type Issuance struct {
	ID        int64
	Alphabet  string
	Length    int
	Count     int
	Unbiased  bool
	Subject   string
	CreatedAt time.Time
}

// AlphabetStats aggregates issuances per alphabet.
type AlphabetStats struct {
	Alphabet string `json:"alphabet"`
	Requests int64  `json:"requests"`
	Tokens   int64  `json:"tokens"`
	Chars    int64  `json:"chars"`
}

type Storage interface {
	SaveIssuance(ctx context.Context, iss Issuance) (int64, error)
	Stats(ctx context.Context) ([]AlphabetStats, error)
	Close() error
}

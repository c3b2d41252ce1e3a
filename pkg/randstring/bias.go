package randstring

// BiasReport describes how modulo reduction of a single byte distributes over an
// alphabet of Size characters.
type BiasReport struct {
	Size int `json:"size"`
	// Favored is the number of leading characters that receive one extra byte value.
	Favored int `json:"favored"`
	// FavoredProbability is the selection probability of each favored character.
	FavoredProbability float64 `json:"favored_probability"`
	// OtherProbability is the selection probability of every other character.
	// It is zero for alphabets larger than 256, whose tail is unreachable.
	OtherProbability float64 `json:"other_probability"`
}

// Bias computes the modulo-reduction distribution for an alphabet of size characters.
// Characters 0..256%size-1 map from floor(256/size)+1 byte values each, the rest from
// floor(256/size).
func Bias(size int) BiasReport {
	if size <= 0 {
		return BiasReport{}
	}

	perChar := byteRange / size
	favored := byteRange % size

	if favored == 0 {
		p := float64(perChar) / byteRange
		return BiasReport{Size: size, FavoredProbability: p, OtherProbability: p}
	}

	return BiasReport{
		Size:               size,
		Favored:            favored,
		FavoredProbability: float64(perChar+1) / byteRange,
		OtherProbability:   float64(perChar) / byteRange,
	}
}

// Uniform reports whether every character is equally likely.
func (r BiasReport) Uniform() bool {
	return r.Favored == 0
}

// Probability returns the selection probability of the character at index.
func (r BiasReport) Probability(index int) float64 {
	if index < 0 || index >= r.Size {
		return 0
	}
	if index < r.Favored {
		return r.FavoredProbability
	}

	return r.OtherProbability
}

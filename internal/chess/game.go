package chess

// Outcome is the result of a game.
type Outcome int8

const (
	NoOutcome Outcome = iota
	WhiteWon
	BlackWon
	Draw
)

// String returns the PGN result token of the outcome.
func (o Outcome) String() string {
	switch o {
	case WhiteWon:
		return "1-0"
	case BlackWon:
		return "0-1"
	case Draw:
		return "1/2-1/2"
	}
	return "*"
}

// WinFor returns the outcome in which colour wins.
func WinFor(colour Colour) Outcome {
	if colour == White {
		return WhiteWon
	}
	return BlackWon
}

// Termination is the way a game ended.
type Termination int8

const (
	NoTermination Termination = iota

	// Decisive terminations.
	Checkmate
	Resignation
	Timeout

	// Draws.
	Stalemate
	DrawByAgreement
	FiftyMoveRule
	TimeoutVsInsufficientMaterial
	InsufficientMaterial
	FivefoldRepetition
	// Repetition is a draw at a configured repetition limit below five.
	Repetition
)

// String returns the string representation of a termination.
func (t Termination) String() string {
	names := []string{
		"None", "Checkmate", "Resignation", "Timeout", "Stalemate",
		"DrawByAgreement", "FiftyMoveRule", "TimeoutVsInsufficientMaterial",
		"InsufficientMaterial", "FivefoldRepetition", "Repetition",
	}
	if t >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// IsDraw reports whether the termination always produces a drawn outcome.
func (t Termination) IsDraw() bool {
	switch t {
	case Stalemate, DrawByAgreement, FiftyMoveRule, TimeoutVsInsufficientMaterial,
		InsufficientMaterial, FivefoldRepetition, Repetition:
		return true
	}
	return false
}

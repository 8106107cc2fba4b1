package chess

// PGN tag names written when a game is exported.
const (
	EventTag       = "Event"
	SiteTag        = "Site"
	DateTag        = "Date"
	RoundTag       = "Round"
	WhiteTag       = "White"
	BlackTag       = "Black"
	ResultTag      = "Result"
	SetUpTag       = "SetUp"
	FENTag         = "FEN"
	TerminationTag = "Termination"
	PlyCountTag    = "PlyCount"
)

// SevenTagRoster contains the seven required PGN tags in order.
var SevenTagRoster = []string{
	EventTag,
	SiteTag,
	DateTag,
	RoundTag,
	WhiteTag,
	BlackTag,
	ResultTag,
}

// derivedTags are computed from the game itself and cannot be set by callers.
var derivedTags = map[string]bool{
	ResultTag:      true,
	SetUpTag:       true,
	FENTag:         true,
	TerminationTag: true,
	PlyCountTag:    true,
}

// IsSevenTagRosterTag returns true if the tag is one of the seven required tags.
func IsSevenTagRosterTag(tag string) bool {
	for _, t := range SevenTagRoster {
		if t == tag {
			return true
		}
	}
	return false
}

// IsDerivedTag returns true if the tag value comes from the game record
// (result, starting position, termination, ply count).
func IsDerivedTag(tag string) bool {
	return derivedTags[tag]
}

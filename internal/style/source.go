package style

// SourceTag labels a frame with the kind of modifier that produced it. It
// drives canonical selector ordering and is not part of node identity.
type SourceTag string

const (
	SourceMedia      SourceTag = "media"
	SourceSupports   SourceTag = "supports"
	SourceContainer  SourceTag = "container"
	SourceResponsive SourceTag = "responsive"
	SourceGroup      SourceTag = "group"
	SourcePeer       SourceTag = "peer"
	SourceDark       SourceTag = "dark"
	SourceUniversal  SourceTag = "universal"
	SourceData       SourceTag = "data"
	SourceAria       SourceTag = "aria"
	SourceAttribute  SourceTag = "attribute"
	SourcePseudo     SourceTag = "pseudo"
	SourceBase       SourceTag = "base"
	SourceStarting   SourceTag = "starting"
)

var sourcePriority = map[SourceTag]int{
	SourceMedia:      0,
	SourceSupports:   1,
	SourceContainer:  2,
	SourceResponsive: 10,
	SourceGroup:      20,
	SourcePeer:       30,
	SourceDark:       40,
	SourceUniversal:  50,
	SourceData:       60,
	SourceAria:       70,
	SourceAttribute:  80,
	SourcePseudo:     90,
	SourceBase:       100,
	SourceStarting:   110,
}

// Normalize maps unknown or empty tags to SourceBase.
func (s SourceTag) Normalize() SourceTag {
	if _, ok := sourcePriority[s]; ok {
		return s
	}
	return SourceBase
}

// Priority returns the composition rank of s; lower ranks compose further out.
func (s SourceTag) Priority() int {
	return sourcePriority[s.Normalize()]
}

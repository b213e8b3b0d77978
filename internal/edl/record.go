package edl

// ClipRecord is one clip extracted from a REEL line.
type ClipRecord struct {
	ClipName string `json:"clip"`
	Shot     string `json:"shot"`
	Episode  string `json:"episode"`
	Season   string `json:"season"`
}

// Columns returns the record in display order: Clip, Shot, Episode, Season.
func (r ClipRecord) Columns() []string {
	return []string{r.ClipName, r.Shot, r.Episode, r.Season}
}

// Result is the outcome of one extraction pass.
type Result struct {
	Records   []ClipRecord
	Malformed []*MalformedLineError
	// Lines is the number of lines scanned.
	Lines int
	// Reels is the number of REEL lines seen.
	Reels int
	// Filtered counts REEL lines whose clip name did not start with a
	// season/episode token.
	Filtered int
}

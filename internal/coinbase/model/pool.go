package model

// PoolTag is a known mining pool identified by a substring of its coinbase text.
type PoolTag struct {
	Key  string
	Name string
	Link string
}

// MatchView names the decoded view an attribution was found in.
type MatchView string

var (
	ViewNone  MatchView = "none"
	ViewUTF8  MatchView = "utf8"
	ViewASCII MatchView = "ascii"
)

// Attribution is the result of matching a decoded script against pool tags.
// Name and Link are empty when nothing matched.
type Attribution struct {
	PoolName string
	PoolLink string
	View     MatchView
}

// Matched reports whether a pool was found.
func (a Attribution) Matched() bool {
	return a.View != "" && a.View != ViewNone
}

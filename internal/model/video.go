package model

// Video is an externally hosted video identified by its player id
type Video struct {
	ID    string `json:"id" bson:"id"`
	Title string `json:"title" bson:"title"`
}

// Playback tracks the video currently loaded into a session's player.
// LoadID changes on every load; Ended is set once the load has produced
// its forward transition.
type Playback struct {
	VideoID string `json:"videoId,omitempty"`
	LoadID  string `json:"loadId,omitempty"`
	Ended   bool   `json:"ended,omitempty"`
}

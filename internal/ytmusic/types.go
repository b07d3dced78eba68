package ytmusic

// Item is a single piece of content in a feed: a track, album, playlist or mix.
type Item struct {
	ID       string `json:"id,omitempty"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle,omitempty"`
}

// Section is a titled group of items in a feed, in upstream order.
type Section struct {
	Title string `json:"title"`
	Items []Item `json:"items"`
}

// Playlist describes a playlist saved in the user's library.
type Playlist struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

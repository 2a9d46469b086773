package itunes

// searchResponse is the body of GET /search on the iTunes Search API.
type searchResponse struct {
	ResultCount int         `json:"resultCount"`
	Results     []apiResult `json:"results"`
}

// apiResult is one podcast entry in a search response. Only the fields
// mapped into domain.CatalogPodcast are decoded.
type apiResult struct {
	TrackID       int64    `json:"trackId"`
	TrackName     string   `json:"trackName"`
	ArtistName    string   `json:"artistName"`
	Description   string   `json:"description"`
	ArtworkURL600 string   `json:"artworkUrl600"`
	ArtworkURL100 string   `json:"artworkUrl100"`
	FeedURL       string   `json:"feedUrl"`
	TrackViewURL  string   `json:"trackViewUrl"`
	Genres        []string `json:"genres"`
	ReleaseDate   string   `json:"releaseDate"`
	TrackCount    int      `json:"trackCount"`
}

package rawg

type namedEntity struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type storeLink struct {
	ID    int         `json:"id"`
	Store namedEntity `json:"store"`
}

// gameDetail is the payload of GET /games/{id}.
type gameDetail struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	Released        string        `json:"released"`
	DescriptionRaw  string        `json:"description_raw"`
	Website         string        `json:"website"`
	Metacritic      *int          `json:"metacritic"`
	Playtime        *int          `json:"playtime"`
	BackgroundImage string        `json:"background_image"`
	Developers      []namedEntity `json:"developers"`
	Publishers      []namedEntity `json:"publishers"`
	Genres          []namedEntity `json:"genres"`
	Stores          []storeLink   `json:"stores"`
	Tags            []namedEntity `json:"tags"`
}

type gameSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Released string `json:"released"`
}

type searchResponse struct {
	Count   int           `json:"count"`
	Results []gameSummary `json:"results"`
}

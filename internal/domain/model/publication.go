package model

// Publication is a title/body record returned by the posts API.
type Publication struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

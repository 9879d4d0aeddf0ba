package model

// Style hooks attached to the rendered blocks so the host page can target them.
const (
	ClassPublication      = "publication"
	ClassTitleContainer   = "title-container"
	ClassPublicationIcon  = "publication-icon"
	ClassPublicationTitle = "publication-title"
	ClassPublicationBody  = "publication-body"
)

const (
	// IconSrc is the relative path of the icon shown on every card.
	IconSrc = "assets/icon.png"
	IconAlt = "Publication Icon"
)

// Card is the view of a single publication.
type Card struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	IconSrc string `json:"icon_src"`
	IconAlt string `json:"icon_alt"`
}

// Board is the ordered list of cards to mount into the host page.
type Board struct {
	Cards []Card `json:"cards"`
}

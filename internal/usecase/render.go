package usecase

import "postboard/internal/domain/model"

// BuildBoard turns publications into cards, one per publication, keeping their order.
func BuildBoard(publications []model.Publication) model.Board {
	cards := make([]model.Card, 0, len(publications))
	for _, p := range publications {
		cards = append(cards, model.Card{
			Title:   p.Title,
			Body:    p.Body,
			IconSrc: model.IconSrc,
			IconAlt: model.IconAlt,
		})
	}
	return model.Board{Cards: cards}
}

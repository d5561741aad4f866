package models

import "time"

// SavedItemType - tipo de elemento guardado
type SavedItemType string

const (
	SavedItemJob     SavedItemType = "job"
	SavedItemCourse  SavedItemType = "course"
	SavedItemEvent   SavedItemType = "event"
	SavedItemCompany SavedItemType = "company"
)

// SavedItem - favorito de un estudiante. El índice único compuesto
// (user_id, item_type, item_id) impide guardados duplicados.
type SavedItem struct {
	ID        string        `bson:"_id" json:"id"`
	UserID    string        `bson:"user_id" json:"user_id"`
	ItemType  SavedItemType `bson:"item_type" json:"item_type"`
	ItemID    string        `bson:"item_id" json:"item_id"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}

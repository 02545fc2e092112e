package models

import "time"

type Team struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Заполняется репозиторием при явной загрузке состава
	Players []Player `json:"players,omitempty" db:"-"`
}

// PlayerCount возвращает размер загруженного состава.
func (t Team) PlayerCount() int {
	return len(t.Players)
}

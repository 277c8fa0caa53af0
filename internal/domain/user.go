package domain

import "time"

const DefaultTimezone = "UTC"

// User - профиль пользователя чата. ID совпадает с id пользователя в мессенджере.
type User struct {
	ID        int64
	Username  string
	FirstName string
	Timezone  string // IANA, например "Europe/Moscow"
	CreatedAt time.Time
	UpdatedAt *time.Time
}

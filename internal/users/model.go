package users

import "time"

type User struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	GivenName  string    `json:"givenName"`
	FamilyName string    `json:"familyName"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

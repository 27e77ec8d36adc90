package v1

import (
	"fmt"

	"github.com/dompetku/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type UserEditable struct {
	Name   string `json:"name" example:"Ayu Lestari" default:""`              // Name of the user
	Email  string `json:"email" example:"ayu@example.com" default:""`         // Email address, must be unique
	Number string `json:"number" example:"+62 812 0000 0000" default:""`      // Phone number
}

// model returns the database resource for the API representation of the editable fields
func (editable UserEditable) model() models.User {
	return models.User{
		Name:   editable.Name,
		Email:  editable.Email,
		Number: editable.Number,
	}
}

type UserLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/users/fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`                 // The user itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?user=fd81dc45-a3a2-468e-a6fa-b2618f30aa45"` // The user's transactions
}

// User is the representation of a User in API v1.
type User struct {
	models.DefaultModel
	UserEditable
	Links UserLinks `json:"links"`
}

// newUser returns the API v1 representation of the resource.
func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name:   model.Name,
			Email:  model.Email,
			Number: model.Number,
		},
		Links: UserLinks{
			Self:         fmt.Sprintf("%s/v1/users/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?user=%s", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data  []User  `json:"data"`                                                          // List of users
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *User   `json:"data"`                                                          // The User data
}

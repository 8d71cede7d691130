package handler

import (
	"time"

	"storefront/internal/domain/entity"
	"storefront/internal/usecase"

	"github.com/google/uuid"
)

// The payload types translate domain entities into the wire shapes of the
// API. Image bytes marshal as base64 and stay null when absent.

type addressPayload struct {
	Country string `json:"country"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
	Street  string `json:"street"`
}

type userPayload struct {
	ID        uuid.UUID       `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Address   *addressPayload `json:"address,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type productPayload struct {
	ID            uuid.UUID                   `json:"id"`
	Title         string                      `json:"title"`
	Description   string                      `json:"description,omitempty"`
	Specification []entity.SpecificationGroup `json:"specification,omitempty"`
	Price         float64                     `json:"price"`
	Discount      int                         `json:"discount"`
	Rating        float64                     `json:"rating"`
	CategoryID    uuid.UUID                   `json:"categoryId"`
	Subcategory   string                      `json:"subcategory,omitempty"`
	Image         []byte                      `json:"image"`
}

type categoryPayload struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type commentPayload struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	CreatedAt time.Time `json:"createdAt"`
}

type cartEntryPayload struct {
	Product   productPayload `json:"product"`
	Quantity  int            `json:"quantity"`
	LineTotal float64        `json:"lineTotal"`
}

type cartPayload struct {
	Items []cartEntryPayload `json:"items"`
	Total float64            `json:"total"`
}

func newAddressPayload(address entity.Address) *addressPayload {
	if address == (entity.Address{}) {
		return nil
	}

	return &addressPayload{
		Country: address.Country,
		City:    address.City,
		ZipCode: address.ZipCode,
		Street:  address.Street,
	}
}

func newUserPayload(user *entity.User) *userPayload {
	return &userPayload{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Address:   newAddressPayload(user.Address),
		CreatedAt: user.CreatedAt,
	}
}

func newUserPayloads(users []*entity.User) []*userPayload {
	payloads := make([]*userPayload, 0, len(users))
	for _, user := range users {
		payloads = append(payloads, newUserPayload(user))
	}

	return payloads
}

func newProductPayload(product *entity.Product) productPayload {
	return productPayload{
		ID:            product.ID,
		Title:         product.Title,
		Description:   product.Description,
		Specification: product.Specification,
		Price:         product.Price,
		Discount:      product.Discount,
		Rating:        product.Rating,
		CategoryID:    product.CategoryID,
		Subcategory:   product.Subcategory,
		Image:         product.Image,
	}
}

func newProductPayloads(products []*entity.Product) []productPayload {
	payloads := make([]productPayload, 0, len(products))
	for _, product := range products {
		payloads = append(payloads, newProductPayload(product))
	}

	return payloads
}

func newCategoryPayloads(categories []*entity.Category) []categoryPayload {
	payloads := make([]categoryPayload, 0, len(categories))
	for _, category := range categories {
		payloads = append(payloads, categoryPayload{ID: category.ID, Name: category.Name})
	}

	return payloads
}

func newCommentPayload(comment *entity.Comment) commentPayload {
	return commentPayload{
		ID:        comment.ID,
		Text:      comment.Text,
		Rating:    comment.Rating,
		FirstName: comment.AuthorFirstName,
		LastName:  comment.AuthorLastName,
		CreatedAt: comment.CreatedAt,
	}
}

func newCommentPayloads(comments []*entity.Comment) []commentPayload {
	payloads := make([]commentPayload, 0, len(comments))
	for _, comment := range comments {
		payloads = append(payloads, newCommentPayload(comment))
	}

	return payloads
}

func newCartPayload(output *usecase.CartOutput) cartPayload {
	items := make([]cartEntryPayload, 0, len(output.Entries))
	for _, entry := range output.Entries {
		items = append(items, cartEntryPayload{
			Product:   newProductPayload(&entry.Product),
			Quantity:  entry.Quantity,
			LineTotal: entry.LineTotal(),
		})
	}

	return cartPayload{Items: items, Total: output.Total}
}

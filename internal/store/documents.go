// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/MKhiriev/go-vinted/models"
)

// Collection names and document field names. The field names are the ones
// earlier deployments wrote, so existing data loads without migration.
const (
	usersCollection  = "users"
	offersCollection = "offers"

	fieldID = "_id"

	fieldEmail    = "email"
	fieldUsername = "account.username"
	fieldAccount  = "account"
	fieldToken    = "token"

	fieldOfferTitle = "product_name"
	fieldOfferPrice = "product_price"
	fieldOfferOwner = "owner"
)

type imageDocument struct {
	PublicID string `bson:"public_id"`
	URL      string `bson:"secure_url"`
	Folder   string `bson:"folder,omitempty"`
}

type accountDocument struct {
	Username string         `bson:"username"`
	Avatar   *imageDocument `bson:"avatar,omitempty"`
}

type userDocument struct {
	ID            primitive.ObjectID `bson:"_id"`
	Email         string             `bson:"email"`
	Account       accountDocument    `bson:"account"`
	Newsletter    bool               `bson:"newsletter"`
	Token         string             `bson:"token"`
	Hash          string             `bson:"hash"`
	Salt          string             `bson:"salt"`
	HashAlgorithm string             `bson:"hash_algorithm,omitempty"`
}

type offerDocument struct {
	ID          primitive.ObjectID  `bson:"_id"`
	Title       string              `bson:"product_name"`
	Description string              `bson:"product_description"`
	Price       int                 `bson:"product_price"`
	Details     []map[string]string `bson:"product_details"`
	Image       imageDocument       `bson:"product_image"`
	Pictures    []imageDocument     `bson:"product_pictures"`
	Owner       primitive.ObjectID  `bson:"owner"`
}

func newImageDocument(image models.Image) imageDocument {
	return imageDocument{PublicID: image.PublicID, URL: image.URL, Folder: image.Folder}
}

func (d imageDocument) toModel() models.Image {
	return models.Image{PublicID: d.PublicID, URL: d.URL, Folder: d.Folder}
}

func newAccountDocument(account models.Account) accountDocument {
	doc := accountDocument{Username: account.Username}
	if account.Avatar != nil {
		avatar := newImageDocument(*account.Avatar)
		doc.Avatar = &avatar
	}
	return doc
}

func (d accountDocument) toModel() models.Account {
	account := models.Account{Username: d.Username}
	if d.Avatar != nil {
		avatar := d.Avatar.toModel()
		account.Avatar = &avatar
	}
	return account
}

func newUserDocument(user models.User) userDocument {
	return userDocument{
		ID:            user.ID,
		Email:         user.Email,
		Account:       newAccountDocument(user.Account),
		Newsletter:    user.Newsletter,
		Token:         user.Token,
		Hash:          user.Hash,
		Salt:          user.Salt,
		HashAlgorithm: user.HashAlgorithm,
	}
}

func (d userDocument) toModel() models.User {
	return models.User{
		ID:            d.ID,
		Email:         d.Email,
		Account:       d.Account.toModel(),
		Newsletter:    d.Newsletter,
		Token:         d.Token,
		Hash:          d.Hash,
		Salt:          d.Salt,
		HashAlgorithm: d.HashAlgorithm,
	}
}

func newOfferDocument(offer models.Offer) offerDocument {
	details := make([]map[string]string, 0, len(offer.Details))
	for _, detail := range offer.Details {
		details = append(details, map[string]string(detail))
	}

	pictures := make([]imageDocument, 0, len(offer.Pictures))
	for _, picture := range offer.Pictures {
		pictures = append(pictures, newImageDocument(picture))
	}

	return offerDocument{
		ID:          offer.ID,
		Title:       offer.Title,
		Description: offer.Description,
		Price:       offer.Price,
		Details:     details,
		Image:       newImageDocument(offer.PreviewImage),
		Pictures:    pictures,
		Owner:       offer.OwnerID,
	}
}

func (d offerDocument) toModel() models.Offer {
	details := make(models.OfferDetails, 0, len(d.Details))
	for _, detail := range d.Details {
		details = append(details, models.OfferDetail(detail))
	}

	pictures := make([]models.Image, 0, len(d.Pictures))
	for _, picture := range d.Pictures {
		pictures = append(pictures, picture.toModel())
	}

	return models.Offer{
		ID:           d.ID,
		Title:        d.Title,
		Description:  d.Description,
		Price:        d.Price,
		Details:      details,
		PreviewImage: d.Image.toModel(),
		Pictures:     pictures,
		OwnerID:      d.Owner,
	}
}

package users

import (
	"errors"
	"strconv"
)

// CollectionName is the table/collection holding profile documents.
const CollectionName = "Users"

var ErrUnknownField = errors.New("unknown profile field")

// User is the profile document keyed by the identity provider's user id.
// Credentials never live here; the identity provider keeps its own hash.
type User struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Email       string  `json:"email"`
	PhoneNumber string  `json:"phoneNumber"`
	Therapist   bool    `json:"therapist"`
	Bio         string  `json:"bio"`
}

type Field string

const (
	FieldUsername    Field = "username"
	FieldImageURL    Field = "imageUrl"
	FieldPhoneNumber Field = "phoneNumber"
	FieldTherapist   Field = "therapist"
	FieldBio         Field = "bio"
)

// Column maps an editable field to its store column.
func (f Field) Column() (string, error) {
	switch f {
	case FieldUsername:
		return "username", nil
	case FieldImageURL:
		return "image_url", nil
	case FieldPhoneNumber:
		return "phone_number", nil
	case FieldTherapist:
		return "therapist", nil
	case FieldBio:
		return "bio", nil
	}
	return "", ErrUnknownField
}

// Parse converts the raw value into the type stored for the field.
func (f Field) Parse(raw string) (interface{}, error) {
	if _, err := f.Column(); err != nil {
		return nil, err
	}
	if f == FieldTherapist {
		return strconv.ParseBool(raw)
	}
	return raw, nil
}

// Apply sets the field on u. value must come from Parse.
func (f Field) Apply(u *User, value interface{}) {
	switch f {
	case FieldUsername:
		u.Username = value.(string)
	case FieldImageURL:
		s := value.(string)
		u.ImageURL = &s
	case FieldPhoneNumber:
		u.PhoneNumber = value.(string)
	case FieldTherapist:
		u.Therapist = value.(bool)
	case FieldBio:
		u.Bio = value.(string)
	}
}

type UpdateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type SignupRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Username    string `json:"username"`
	PhoneNumber string `json:"phoneNumber"`
	Image       string `json:"image,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	ID    string `json:"id"`
	Token string `json:"token"`
}

package repository

import (
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/quickcare/backend-api-go/events"
	"github.com/quickcare/backend-api-go/users"
)

const usersTable = "users"

func insertAccountQuery(account users.Account) (string, []interface{}, error) {
	createdAt := account.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	return psql.Insert("accounts").
		Columns("id", "email", "password_hash", "created_at").
		Values(account.ID, account.Email, account.PasswordHash, createdAt).
		ToSql()
}

func upsertUserQuery(user users.User) (string, []interface{}, error) {
	return psql.Insert(usersTable).
		Columns("id", "username", "image_url", "email", "phone_number", "therapist", "bio").
		Values(user.ID, user.Username, user.ImageURL, user.Email, user.PhoneNumber, user.Therapist, user.Bio).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"username = EXCLUDED.username, " +
			"image_url = EXCLUDED.image_url, " +
			"email = EXCLUDED.email, " +
			"phone_number = EXCLUDED.phone_number, " +
			"therapist = EXCLUDED.therapist, " +
			"bio = EXCLUDED.bio").
		ToSql()
}

func updateUserFieldQuery(id string, field users.Field, value interface{}) (string, []interface{}, error) {
	column, err := field.Column()
	if err != nil {
		return "", nil, err
	}
	return psql.Update(usersTable).
		Set(column, value).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func insertSearchQuery(search events.SearchPerformed) (string, []interface{}, error) {
	var userID interface{}
	if search.UserID != "" {
		userID = search.UserID
	}
	return psql.Insert("search_history").
		Columns("id", "user_id", "latitude", "longitude", "condition", "top_n", "result_count", "success", "searched_at").
		Values(search.ID, userID, search.Latitude, search.Longitude, search.Condition, search.TopN, search.Count, search.Success, time.Unix(search.Epoch, 0).UTC()).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
}

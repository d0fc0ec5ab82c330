package events

import (
	"time"

	"github.com/quickcare/backend-api-go/hospitals"
)

const (
	SearchPerformedTopicName = "topic.search.performed"
	UserCreatedTopicName     = "topic.users.created"
)

type SearchPerformed struct {
	ID        string  `json:"id"`
	UserID    string  `json:"user_id,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Condition string  `json:"condition"`
	TopN      int     `json:"top_n"`
	Count     int     `json:"count"`
	Success   bool    `json:"success"`
	Epoch     int64   `json:"epoch"`
}

func NewSearchPerformed(id, userID string, req hospitals.SearchRequest, res *hospitals.SearchResult, now time.Time) SearchPerformed {
	e := SearchPerformed{
		ID:        id,
		UserID:    userID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Condition: req.Disease,
		TopN:      req.TopN,
		Epoch:     now.Unix(),
	}
	if res != nil {
		e.Count = len(res.Hospitals)
		e.Success = res.Success
	}
	return e
}

type UserCreated struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Epoch    int64  `json:"epoch"`
}

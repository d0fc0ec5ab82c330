package hospitals

import (
	"errors"
	"strings"
)

const DefaultTopN = 5

var (
	ErrInvalidCoordinates = errors.New("Invalid coordinates: latitude must be -90 to 90, longitude -180 to 180")
	ErrEmptyCondition     = errors.New("Disease cannot be empty")
)

type Hospital struct {
	Name       string  `json:"Hospital_Name"`
	Address    string  `json:"Address_Original_First_Line"`
	State      string  `json:"State"`
	District   string  `json:"District"`
	Pincode    string  `json:"Pincode"`
	Telephone  string  `json:"Telephone"`
	Mobile     string  `json:"Mobile_Number"`
	Emergency  string  `json:"Emergency_Num"`
	Facilities string  `json:"Facilities"`
	DistanceKm float64 `json:"Distance"`
}

type Coordinates struct {
	Lat float64 `json:"latitude"`
	Lng float64 `json:"longitude"`
}

// Valid reports whether the pair lies inside [-90,90] x [-180,180].
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

type SearchRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Disease   string  `json:"disease"`
	TopN      int     `json:"top_n"`
}

func NewSearchRequest(coords Coordinates, condition string, topN int) SearchRequest {
	if topN <= 0 {
		topN = DefaultTopN
	}
	return SearchRequest{
		Latitude:  coords.Lat,
		Longitude: coords.Lng,
		Disease:   condition,
		TopN:      topN,
	}
}

func (r SearchRequest) Coordinates() Coordinates {
	return Coordinates{Lat: r.Latitude, Lng: r.Longitude}
}

// Validate checks the request locally. Coordinates are checked first.
func (r SearchRequest) Validate() error {
	if !r.Coordinates().Valid() {
		return ErrInvalidCoordinates
	}
	if strings.TrimSpace(r.Disease) == "" {
		return ErrEmptyCondition
	}
	return nil
}

type SearchResult struct {
	Success      bool          `json:"success"`
	Count        int           `json:"count"`
	Hospitals    []Hospital    `json:"hospitals"`
	SearchParams SearchRequest `json:"search_params"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

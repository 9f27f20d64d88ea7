package models

type AmenityAddress struct {
	AddressLine string `json:"addressLine" bson:"addressLine"`
	City        string `json:"city" bson:"city"`
	Country     string `json:"country" bson:"country"`
	Postcode    string `json:"postcode" bson:"postcode"`
}

type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

type AmenityLocation struct {
	Address     AmenityAddress `json:"address" bson:"address"`
	Coordinates Coordinates    `json:"coordinates" bson:"coordinates"`
}

// Amenity is a user-submitted point of interest. Category is an open
// vocabulary: the curated common list plus free-text custom categories.
type Amenity struct {
	ID        string          `json:"id" bson:"_id"`
	Name      string          `json:"name" bson:"name"`
	Category  string          `json:"category" bson:"category"`
	Location  AmenityLocation `json:"location" bson:"location"`
	Website   string          `json:"website,omitempty" bson:"website,omitempty"`
	Phone     string          `json:"phone,omitempty" bson:"phone,omitempty"`
	CreatedBy string          `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
	Rating    float64         `json:"rating,omitempty" bson:"rating,omitempty"`
	CountryID string          `json:"countryId,omitempty" bson:"countryId,omitempty"`
	RegionID  string          `json:"regionId,omitempty" bson:"regionId,omitempty"`
	CountyID  string          `json:"countyId,omitempty" bson:"countyId,omitempty"`
}

// UpstreamAmenity is the flat record shape served by the remote amenity API.
// Distances cross this boundary in miles; everything internal is kilometres.
type UpstreamAmenity struct {
	ID            int     `json:"id"`
	ModifiedDate  string  `json:"modifiedDate"`
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Locality      string  `json:"locality"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	AmenityType   string  `json:"amenityType"`
	AmenityURL    string  `json:"amenityUrl"`
	Phone         string  `json:"phone"`
	Active        bool    `json:"active"`
	Rating        float64 `json:"rating"`
	ModifiedBy    string  `json:"modifiedBy"`
	DistanceMiles float64 `json:"distanceMiles"`
}

// AmenityPage is the paginated envelope used by the amenity list endpoint
// when page/pageSize query parameters are present.
type AmenityPage struct {
	TotalRecords int       `json:"totalRecords"`
	Page         int       `json:"page"`
	PageSize     int       `json:"pageSize"`
	TotalPages   int       `json:"totalPages"`
	Data         []Amenity `json:"data"`
}

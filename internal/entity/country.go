package entity

type NativeName struct {
	Official string `json:"official"`
	Common   string `json:"common"`
}

// CountryDetails is built fresh for every request from the country-metadata upstream.
type CountryDetails struct {
	CountryCode    string                `json:"country_code"`
	ISO2Code       string                `json:"iso_2_letter_code"`
	CommonName     string                `json:"common_name"`
	OfficialName   string                `json:"official_name"`
	NativeNames    map[string]NativeName `json:"native_names"`
	LocalLanguages map[string]string     `json:"local_languages"`
	TimeZones      []string              `json:"time_zones"`
	FlagPNG        string                `json:"-"`
}

type CurrentTime struct {
	TimeZone    string `json:"time_zone"`
	ISODateTime string `json:"iso_datetime"`
}

// CountryDetailsResponse keeps the key spelling clients of the gateway already depend on.
type CountryDetailsResponse struct {
	CommonName     string                `json:"common_name"`
	OfficialName   string                `json:"official_name"`
	NativeName     map[string]NativeName `json:"native_name"`
	LocalLanguages map[string]string     `json:"local_languagues"`
	CurrentTimes   []map[string]string   `json:"current_time(s)"`
}

type HealthResponse struct {
	HealthCheck string `json:"health_check"`
}

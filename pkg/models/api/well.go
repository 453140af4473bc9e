package api

type Well struct {
	Name string `json:"name"`
}

type ForecastResponse struct {
	Well     string    `json:"well"`
	Years    int       `json:"years"`
	Qlim     float64   `json:"qlim"`
	TlimDays int       `json:"tlim_days"`
	Daily    []float64 `json:"daily"`
	Monthly  []float64 `json:"monthly"`
}

type CumulativeResponse struct {
	Well   string  `json:"well"`
	Month  int     `json:"month"`
	Volume float64 `json:"volume"`
}

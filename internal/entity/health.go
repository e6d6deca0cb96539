package entity

type Health struct {
	OK     bool    `json:"ok"`
	Uptime float64 `json:"uptime"`
}

package model

// Tool is one entry in the static security tools directory
type Tool struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	URL         string   `json:"url"`
	Pricing     string   `json:"pricing"`
	Tags        []string `json:"tags"`
}

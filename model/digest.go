package model

// DigestItem is one tip/check/pattern entry in a daily digest
type DigestItem struct {
	Type  string `json:"type" yaml:"type"`
	Title string `json:"title" yaml:"title"`
	Why   string `json:"why" yaml:"why"`
	Fix   string `json:"fix" yaml:"fix"`
}

// Digest is one day's pre-generated risk digest
type Digest struct {
	Date        string       `json:"date"`
	Headline    string       `json:"headline"`
	DigestItems []DigestItem `json:"digest_items"`
}

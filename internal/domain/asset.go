package domain

// Asset is one flat record produced by the bulk import boundary. The core
// only consumes these records; parsing the source spreadsheet happens at the
// importer.
type Asset struct {
	Hostname     string
	SerialNumber string
	Model        string
	LocationName string
	CustomerName string
}

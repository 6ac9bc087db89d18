package types

// Settings are the answers collected for one generation run. They are
// passed by value and never changed after collection.
type Settings struct {
	Name     string
	Stage    string
	Region   string
	DynamoDB bool
}

package layout

// SiteName is appended to every page title
const SiteName = "Hangman Solver"

// PageData holds the data every page shares
type PageData struct {
	Title string
}

// FullTitle is the document title, e.g. "Solver | Hangman Solver"
func (d PageData) FullTitle() string {
	if d.Title == "" {
		return SiteName
	}
	return d.Title + " | " + SiteName
}

package hscrape

// Logo is the site's branding image.
type Logo struct {
	URL     string `json:"url"`
	Alt     string `json:"alt"`
	HomeURL string `json:"homeUrl"`
}

// MenuItem is a top-level entry of the header menu.
type MenuItem struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// MenuGenre is a genre shortcut from the header's series submenu.
type MenuGenre struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	URL   string `json:"url"`
	Title string `json:"title"`
}

// SidebarItem is a compact series entry from the sidebar widgets.
type SidebarItem struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Poster string `json:"poster"`
	Rating string `json:"rating"`
	Year   string `json:"year"`
}

// SiteChrome is the navigation furniture shared by every page.
type SiteChrome struct {
	Logo       Logo           `json:"logo"`
	Menu       []MenuItem     `json:"menu"`
	MenuGenres []MenuGenre    `json:"menuGenres"`
	Popular    []SidebarItem  `json:"popular"`
	NewSeries  []SidebarItem  `json:"newSeries"`
	Genres     []GenreSummary `json:"genres"`
	Years      []string       `json:"years"`
	Partners   []Tag          `json:"partnerLinks"`
	Footer     []Tag          `json:"footerLinks"`
	Copyright  string         `json:"copyright"`
}

// ChromeParser extracts the site chrome from a full page.
type ChromeParser interface {
	ParseChrome(html string) (*SiteChrome, error)
}

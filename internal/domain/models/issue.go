package models

// IssueData contiene la información de una issue obtenida del proveedor.
type IssueData struct {
	Number int
	Title  string
	Body   string
	Author string
	Labels []string
	URL    string
}

package domain

type Feedback struct {
	ID        int32  `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	ContactNo string `json:"contact_no"`
	Comments  string `json:"comments"`
	CreatedOn string `json:"created_on"`
}

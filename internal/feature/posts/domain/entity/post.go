package entity

// Post is a blog article. Date is a display string such as "March 05, 2024".
type Post struct {
	ID       uint
	Title    string
	Subtitle string
	Date     string
	Body     string
	ImgURL   string
	AuthorID uint
}

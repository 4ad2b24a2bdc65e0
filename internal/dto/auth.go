package dto

type DashboardResponse struct {
	LoggedIn    bool   `json:"logged_in"`
	UserID      int64  `json:"user_id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
}

type CategoryResponse struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Colour string `json:"colour"`
}

type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

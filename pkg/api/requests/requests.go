package requests

type Signup struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type Login struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAccount struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type CreateAdmin struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SaveChart struct {
	FileID     uint   `json:"fileId"`
	ChartType  string `json:"chartType"`
	XAxis      string `json:"xAxis"`
	YAxis      string `json:"yAxis"`
	Color      string `json:"color"`
	Title      string `json:"title"`
	ShowLegend bool   `json:"showLegend"`
	Image      string `json:"image"`
}

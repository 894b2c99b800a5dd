package domain

// MailMessage es un mensaje del inbox temporal que consume el dashboard.
type MailMessage struct {
	ID        string `json:"id"`
	FromName  string `json:"fromName"`
	FromEmail string `json:"fromEmail"`
	Subject   string `json:"subject"`
	Time      string `json:"time"`
	Tag       string `json:"tag"`
	Body      string `json:"body"`
	Unread    bool   `json:"unread"`
}

// DashboardContent agrupa el contenido que muestra el dashboard.
type DashboardContent struct {
	ActiveAddress string        `json:"activeAddress"`
	Domain        string        `json:"domain"`
	InboxCount    int           `json:"inboxCount"`
	Messages      []MailMessage `json:"messages"`
}

package usecase

type SendSMSInput struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type SendSMSOutput struct {
	ID  string `json:"-"`
	SID string `json:"sid"`
}

package request

type Credentials struct {
	UserName string `json:"user_name,omitempty"`
	Password string `json:"password,omitempty"`
}

type Inquiry struct {
	Name               string `json:"name"`
	Email              string `json:"email"`
	Mobile             string `json:"mobile,omitempty"`
	Affiliation        string `json:"affiliation,omitempty"`
	Content            string `json:"content"`
	AgreePrivacyPolicy bool   `json:"agreePrivacyPolicy"`
}

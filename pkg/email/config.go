package email

// Config holds the sender identity and Postmark credentials. The Postmark
// tokens are optional so development environments can run on the DevSender
// without provider accounts; SenderEmail is always required because it
// establishes the From identity for every letter.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"SENDER_EMAIL,required"`
	SupportEmail         string `env:"SUPPORT_EMAIL,required"`
}

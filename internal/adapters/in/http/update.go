package http

// Transport webhook payload. Only the fields the workflow consumes are
// declared; everything else in the update is ignored on decode.

// Update is one inbound webhook event from the chat transport.
type Update struct {
	UpdateID         int64             `json:"update_id"`
	Message          *Message          `json:"message"`
	PreCheckoutQuery *PreCheckoutQuery `json:"pre_checkout_query"`
}

// Message is a user message: text, a document upload, or a successful
// payment notice.
type Message struct {
	Chat              Chat               `json:"chat"`
	Text              string             `json:"text"`
	Document          *Document          `json:"document"`
	SuccessfulPayment *SuccessfulPayment `json:"successful_payment"`
}

// Chat identifies the conversation; its ID is the session key.
type Chat struct {
	ID int64 `json:"id"`
}

// Document is an uploaded file reference. The transport keeps the bytes;
// only the opaque handle and display name pass through.
type Document struct {
	FileID   string `json:"file_id"`
	FileName string `json:"file_name"`
}

// SuccessfulPayment is the provider's payment confirmation.
type SuccessfulPayment struct {
	Currency                string     `json:"currency"`
	TotalAmount             int64      `json:"total_amount"`
	ProviderPaymentChargeID string     `json:"provider_payment_charge_id"`
	OrderInfo               *OrderInfo `json:"order_info"`
}

// OrderInfo carries the payer contact fields the invoice requested.
type OrderInfo struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// PreCheckoutQuery is the provider's final pre-charge check.
type PreCheckoutQuery struct {
	ID   string `json:"id"`
	From User   `json:"from"`
}

// User identifies the account behind a pre-checkout query.
type User struct {
	ID int64 `json:"id"`
}

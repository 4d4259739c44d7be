package model

// NotificationSettings is the email-notification configuration as stored:
// a single Firestore document with recipients kept as an array.
type NotificationSettings struct {
	Sender     string   `firestore:"sender" json:"sender"`
	Password   string   `firestore:"password" json:"password"`
	Recipients []string `firestore:"recipients" json:"recipients"`
}
